package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// PushPlus pushes notifications through pushplus.plus using an HTML body.
type PushPlus struct {
	client *resty.Client
	token  string
}

// NewPushPlus creates a PushPlus notifier.
func NewPushPlus(token string) *PushPlus {
	return &PushPlus{
		client: resty.New().
			SetBaseURL("https://www.pushplus.plus").
			SetTimeout(15 * time.Second),
		token: token,
	}
}

func (p *PushPlus) Name() string { return "pushplus" }

// Push sends the message, attempt-once.
func (p *PushPlus) Push(ctx context.Context, msg Message) error {
	content := fmt.Sprintf("<b>%s</b><br>", msg.Title)
	if msg.SiteURL != "" {
		content += fmt.Sprintf(`<a href="%s">Online view</a><br>`, msg.SiteURL)
	}
	content += fmt.Sprintf(`<a href="%s">Download PDF</a>`, msg.ReportURL)

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"token":    p.token,
			"title":    msg.Title,
			"content":  content,
			"template": "html",
		}).
		Post("/send")
	if err != nil {
		return fmt.Errorf("pushplus push: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("pushplus push: status %d", resp.StatusCode())
	}
	return nil
}
