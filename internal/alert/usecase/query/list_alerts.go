package query

import (
	"fmt"

	"github.com/sumitd/costtrack/internal/alert/domain"
)

// ListAlertsQuery represents the query to list a user's alerts
type ListAlertsQuery struct {
	UserID     uint
	UnreadOnly bool
}

// ListAlertsHandler handles list alerts query
type ListAlertsHandler struct {
	repo domain.AlertRepository
}

// NewListAlertsHandler creates a new list alerts handler
func NewListAlertsHandler(repo domain.AlertRepository) *ListAlertsHandler {
	return &ListAlertsHandler{repo: repo}
}

// Handle executes the list alerts query
func (h *ListAlertsHandler) Handle(query ListAlertsQuery) ([]domain.Alert, error) {
	var (
		alerts []domain.Alert
		err    error
	)
	if query.UnreadOnly {
		alerts, err = h.repo.FindUnread(query.UserID)
	} else {
		alerts, err = h.repo.FindByUser(query.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}
