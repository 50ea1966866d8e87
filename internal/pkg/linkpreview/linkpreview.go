package linkpreview

import (
	"circle/internal/pkg/consts"
	"circle/internal/pkg/redis"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/go-shiori/go-readability"
	"github.com/goccy/go-json"
)

const (
	fetchTimeout = 8 * time.Second
	cacheTTL     = 24 * time.Hour
	maxExcerpt   = 300
)

// Preview holds the card data extracted from a shared link
type Preview struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	ImageURL string `json:"image_url"`
}

type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*Preview, error)
}

type fetcherImpl struct {
	httpClient *resty.Client
}

func NewFetcher() Fetcher {
	ua := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	client := resty.New().
		SetTimeout(fetchTimeout).
		SetHeader("User-Agent", ua)
	return &fetcherImpl{httpClient: client}
}

// Fetch resolves a link card, via cache first. Open Graph tags win;
// readability extraction fills in what the page does not declare.
func (s *fetcherImpl) Fetch(ctx context.Context, rawURL string) (*Preview, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil || (parsedURL.Scheme != "http" && parsedURL.Scheme != "https") {
		return nil, errors.New("invalid link url")
	}

	cacheKey := consts.LinkPreviewKey + rawURL
	if cached, _ := redis.GetValue(ctx, cacheKey); cached != "" {
		var preview Preview
		if err = json.Unmarshal([]byte(cached), &preview); err == nil {
			return &preview, nil
		}
	}

	resp, err := s.httpClient.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, err
	}
	html := resp.String()

	preview := &Preview{URL: rawURL}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		preview.Title = metaContent(doc, "og:title")
		preview.Excerpt = metaContent(doc, "og:description")
		preview.ImageURL = metaContent(doc, "og:image")
		if preview.Title == "" {
			preview.Title = strings.TrimSpace(doc.Find("title").First().Text())
		}
	}

	if preview.Title == "" || preview.Excerpt == "" {
		article, rErr := readability.FromReader(strings.NewReader(html), parsedURL)
		if rErr == nil {
			if preview.Title == "" {
				preview.Title = article.Title
			}
			if preview.Excerpt == "" {
				preview.Excerpt = strings.TrimSpace(article.Excerpt)
			}
			if preview.ImageURL == "" {
				preview.ImageURL = article.Image
			}
		}
	}

	if len(preview.Excerpt) > maxExcerpt {
		preview.Excerpt = preview.Excerpt[:maxExcerpt]
	}

	if preview.Title == "" {
		return nil, errors.New("no preview content found")
	}

	if data, mErr := json.Marshal(preview); mErr == nil {
		if err = redis.SetWithExpiration(ctx, cacheKey, string(data), cacheTTL); err != nil {
			log.Warn("Link preview cache write failed", "url", rawURL, "err", err)
		}
	}

	return preview, nil
}

func metaContent(doc *goquery.Document, property string) string {
	content, _ := doc.Find(fmt.Sprintf(`meta[property="%s"]`, property)).First().Attr("content")
	return strings.TrimSpace(content)
}
