package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ServerChan pushes notifications through the ServerChan (sctapi.ftqq.com)
// WeChat bridge using a markdown body.
type ServerChan struct {
	client  *resty.Client
	sendKey string
}

// NewServerChan creates a ServerChan notifier.
func NewServerChan(sendKey string) *ServerChan {
	return &ServerChan{
		client: resty.New().
			SetBaseURL("https://sctapi.ftqq.com").
			SetTimeout(15 * time.Second),
		sendKey: sendKey,
	}
}

func (s *ServerChan) Name() string { return "serverchan" }

// Push sends the message, attempt-once.
func (s *ServerChan) Push(ctx context.Context, msg Message) error {
	desp := fmt.Sprintf("**%s**\n\n", msg.Title)
	if msg.SiteURL != "" {
		desp += fmt.Sprintf("[Online view](%s)\n\n", msg.SiteURL)
	}
	desp += fmt.Sprintf("[Download PDF](%s)", msg.ReportURL)

	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"title": msg.Title,
			"desp":  desp,
		}).
		Post(fmt.Sprintf("/%s.send", s.sendKey))
	if err != nil {
		return fmt.Errorf("serverchan push: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("serverchan push: status %d", resp.StatusCode())
	}
	return nil
}
