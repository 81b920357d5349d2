package query

import (
	"github.com/sumitd/costtrack/internal/order/domain"
)

// GetUsageQuery represents the query to get the usage for one order
type GetUsageQuery struct {
	UserID  uint
	OrderID string
}

// GetUsageHandler handles get usage query
type GetUsageHandler struct {
	repo domain.ActualUsageRepository
}

// NewGetUsageHandler creates a new get usage handler
func NewGetUsageHandler(repo domain.ActualUsageRepository) *GetUsageHandler {
	return &GetUsageHandler{repo: repo}
}

// Handle executes the get usage query
func (h *GetUsageHandler) Handle(query GetUsageQuery) (*domain.ActualUsage, error) {
	return h.repo.FindByOrderID(query.UserID, query.OrderID)
}
