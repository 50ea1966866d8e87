package mailer

import (
	"circle/internal/api/config"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

type mailerImpl struct {
	client *resty.Client
}

// NewMailer builds the transactional mail client. No retries: the
// provider may have accepted a request whose response was lost, and a
// retry would deliver the notification twice.
func NewMailer() Mailer {
	client := resty.New().
		SetTimeout(10 * time.Second)
	return &mailerImpl{client: client}
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Send posts one transactional email to the mail API. Disabled setups
// log and return nil so callers never branch on it.
func (s *mailerImpl) Send(ctx context.Context, to, subject, html string) error {
	cfg := config.Cfg.Mail
	if !cfg.Enabled {
		log.Info("Mail disabled, skipping send", "to", to, "subject", subject)
		return nil
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(cfg.APIKey).
		SetBody(&sendRequest{
			From:    cfg.From,
			To:      to,
			Subject: subject,
			HTML:    html,
		}).
		Post(cfg.APIURL)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("mail api status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
