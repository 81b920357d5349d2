package query

import (
	"fmt"

	"github.com/sumitd/costtrack/internal/order/domain"
)

// ListUsagesQuery represents the query to list a user's actual usages
type ListUsagesQuery struct {
	UserID uint
}

// ListUsagesHandler handles list usages query
type ListUsagesHandler struct {
	repo domain.ActualUsageRepository
}

// NewListUsagesHandler creates a new list usages handler
func NewListUsagesHandler(repo domain.ActualUsageRepository) *ListUsagesHandler {
	return &ListUsagesHandler{repo: repo}
}

// Handle executes the list usages query
func (h *ListUsagesHandler) Handle(query ListUsagesQuery) ([]domain.ActualUsage, error) {
	usages, err := h.repo.FindByUser(query.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list actual usages: %w", err)
	}
	return usages, nil
}
