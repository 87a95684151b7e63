// Package notifier delivers best-effort push notifications linking to the
// generated report. Delivery failures never fail the run.
package notifier

import "context"

// Message carries the notification content: a title plus the links to the
// online page and the PDF output.
type Message struct {
	Title     string
	SiteURL   string
	ReportURL string
}

// Notifier pushes a report notification through one channel.
type Notifier interface {
	Name() string
	Push(ctx context.Context, msg Message) error
}
