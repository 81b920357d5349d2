package command

import (
	"context"
	"fmt"

	"github.com/sumitd/costtrack/internal/alert/domain"
	"github.com/sumitd/costtrack/kafka"
	"github.com/sumitd/costtrack/pkg/logger"
)

// RaiseAlertCommand represents the command to record a classified alert
type RaiseAlertCommand struct {
	UserID uint
	Draft  domain.Draft
}

// RaiseAlertHandler persists classified alerts and publishes them as
// events. It is the single write path for alerts raised by order and
// inventory writes.
type RaiseAlertHandler struct {
	repo      domain.AlertRepository
	publisher *kafka.Publisher // nil when eventing is disabled
}

// NewRaiseAlertHandler creates a new raise alert handler
func NewRaiseAlertHandler(repo domain.AlertRepository, publisher *kafka.Publisher) *RaiseAlertHandler {
	return &RaiseAlertHandler{repo: repo, publisher: publisher}
}

// Handle executes the raise alert command
func (h *RaiseAlertHandler) Handle(ctx context.Context, cmd RaiseAlertCommand) (*domain.Alert, error) {
	if cmd.UserID == 0 {
		return nil, fmt.Errorf("user id is required")
	}

	alert := &domain.Alert{
		UserID:   cmd.UserID,
		ItemName: cmd.Draft.ItemName,
		Message:  cmd.Draft.Message,
		Priority: cmd.Draft.Priority,
		Type:     cmd.Draft.Type,
	}

	if err := h.repo.Create(alert); err != nil {
		return nil, err
	}

	if h.publisher != nil {
		event := kafka.AlertRaisedEvent{
			UserID:    cmd.UserID,
			AlertID:   alert.ID,
			ItemName:  alert.ItemName,
			Message:   alert.Message,
			Priority:  alert.Priority,
			AlertType: alert.Type,
		}
		// The alert row is the source of truth; a failed publish is
		// logged, not propagated.
		if err := h.publisher.PublishAlertRaised(ctx, event); err != nil {
			logger.Error(ctx).Err(err).Uint("alert_id", alert.ID).Msg("Failed to publish alert event")
		}
	}

	return alert, nil
}
