// Package mail provides outgoing email delivery.
package mail

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/habitlog-backend/internal/service/notification"
)

// LogMailer writes outgoing emails to the log instead of delivering them.
type LogMailer struct {
	log *slog.Logger
}

func NewLogMailer(log *slog.Logger) *LogMailer {
	return &LogMailer{log: log.With("adapter", "mail")}
}

func (m *LogMailer) Send(ctx context.Context, msg notification.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.log.InfoContext(ctx, "email sent",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.Int("body_bytes", len(msg.Body)),
	)
	return nil
}
