package command

import (
	"fmt"

	"github.com/sumitd/costtrack/internal/alert/domain"
)

// DeleteAlertCommand represents the command to delete an alert
type DeleteAlertCommand struct {
	UserID  uint
	AlertID uint
}

// DeleteAlertHandler handles delete alert command
type DeleteAlertHandler struct {
	repo domain.AlertRepository
}

// NewDeleteAlertHandler creates a new delete alert handler
func NewDeleteAlertHandler(repo domain.AlertRepository) *DeleteAlertHandler {
	return &DeleteAlertHandler{repo: repo}
}

// Handle executes the delete alert command
func (h *DeleteAlertHandler) Handle(cmd DeleteAlertCommand) error {
	if cmd.AlertID == 0 {
		return fmt.Errorf("alert id is required")
	}
	return h.repo.Delete(cmd.UserID, cmd.AlertID)
}
