package command

import (
	"github.com/sumitd/costtrack/internal/alert/domain"
)

// MarkAllReadCommand represents the command to mark every alert as read
type MarkAllReadCommand struct {
	UserID uint
}

// MarkAllReadHandler handles mark all read command
type MarkAllReadHandler struct {
	repo domain.AlertRepository
}

// NewMarkAllReadHandler creates a new mark all read handler
func NewMarkAllReadHandler(repo domain.AlertRepository) *MarkAllReadHandler {
	return &MarkAllReadHandler{repo: repo}
}

// Handle executes the mark all read command
func (h *MarkAllReadHandler) Handle(cmd MarkAllReadCommand) error {
	return h.repo.MarkAllRead(cmd.UserID)
}
