// Package notify delivers accepted event suggestions to the hub
// maintainer. The hub only hands a finished Suggestion to a Notifier;
// the actual mail or chat transport is a deployment concern.
package notify

import (
	"context"

	"github.com/leaguehub/leaguehub/internal/domain"
	"github.com/leaguehub/leaguehub/internal/logger"
)

// Notifier receives sanitized suggestions after they pass validation.
type Notifier interface {
	NotifySuggestion(ctx context.Context, s *domain.Suggestion) error
}

// LogNotifier writes suggestions to the structured log. It is the
// default transport and the fallback when no external one is configured;
// the maintainer tails the log or ships it to their alerting stack.
type LogNotifier struct {
	log logger.Logger
}

func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifySuggestion(_ context.Context, s *domain.Suggestion) error {
	n.log.Info("event_suggestion",
		logger.String("id", s.ID),
		logger.String("name", s.Name),
		logger.String("start_date", s.StartDate),
		logger.String("end_date", s.EndDate),
		logger.String("type", string(s.Type)),
		logger.String("contact", s.Contact),
		logger.String("notes", s.Notes),
		logger.String("submitted_at", s.SubmittedAt),
	)
	return nil
}
