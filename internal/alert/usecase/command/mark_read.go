package command

import (
	"fmt"

	"github.com/sumitd/costtrack/internal/alert/domain"
)

// MarkReadCommand represents the command to mark one alert as read
type MarkReadCommand struct {
	UserID  uint
	AlertID uint
}

// MarkReadHandler handles mark read command
type MarkReadHandler struct {
	repo domain.AlertRepository
}

// NewMarkReadHandler creates a new mark read handler
func NewMarkReadHandler(repo domain.AlertRepository) *MarkReadHandler {
	return &MarkReadHandler{repo: repo}
}

// Handle executes the mark read command
func (h *MarkReadHandler) Handle(cmd MarkReadCommand) (*domain.Alert, error) {
	if cmd.AlertID == 0 {
		return nil, fmt.Errorf("alert id is required")
	}
	return h.repo.MarkRead(cmd.UserID, cmd.AlertID)
}
