package query

import (
	"github.com/sumitd/costtrack/internal/order/domain"
)

// GetOrderQuery represents the query to get one order by its id
type GetOrderQuery struct {
	UserID  uint
	OrderID string
}

// GetOrderHandler handles get order query
type GetOrderHandler struct {
	repo domain.OrderRepository
}

// NewGetOrderHandler creates a new get order handler
func NewGetOrderHandler(repo domain.OrderRepository) *GetOrderHandler {
	return &GetOrderHandler{repo: repo}
}

// Handle executes the get order query
func (h *GetOrderHandler) Handle(query GetOrderQuery) (*domain.Order, error) {
	return h.repo.FindByOrderID(query.UserID, query.OrderID)
}
