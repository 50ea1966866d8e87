package llm

import (
	"circle/internal/api/config"
	"context"
	"errors"
	log "log/slog"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tmc/langchaingo/llms"
)

const suggestPrompt = `You help members of a faith community respond to each other's posts.
Given a post, produce exactly 3 short, warm, encouraging reply suggestions.
Return ONLY a JSON array of 3 strings, nothing else.`

// SuggestReplies asks the model for reply suggestions to a post
func SuggestReplies(ctx context.Context, postContent string) ([]string, error) {
	resp, err := fetchModel(ctx, suggestPrompt, postContent, 0.8)
	if err != nil {
		log.Error("LLM suggest request failed", "err", err)
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("llm returned no choices")
	}

	raw := strings.TrimSpace(resp.Choices[0].Content)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var suggestions []string
	if err = json.Unmarshal([]byte(raw), &suggestions); err != nil {
		log.Error("LLM suggest response parse failed", "raw", raw, "err", err)
		return nil, err
	}
	return suggestions, nil
}

func fetchModel(ctx context.Context, systemPrompt string, userPrompt string, temp float64) (*llms.ContentResponse, error) {
	if err := TextSem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer TextSem.Release(1)
	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}
	return llmClient.GenerateContent(ctx, messages,
		llms.WithModel(config.Cfg.LLM.TextModel),
		llms.WithTemperature(temp),
	)
}
