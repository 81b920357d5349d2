package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	alertcommand "github.com/sumitd/costtrack/internal/alert/usecase/command"
	"github.com/sumitd/costtrack/internal/inventory/domain"
	"github.com/sumitd/costtrack/internal/inventory/usecase/command"
	"github.com/sumitd/costtrack/internal/inventory/usecase/query"
	userhttp "github.com/sumitd/costtrack/internal/user/delivery/http"
	"github.com/sumitd/costtrack/pkg/httperr"
)

// InventoryHandler handles HTTP requests for inventory items
type InventoryHandler struct {
	upsertHandler   *command.UpsertItemHandler
	deleteHandler   *command.DeleteItemHandler
	listHandler     *query.ListItemsHandler
	lowStockHandler *query.LowStockHandler
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(repo domain.ItemRepository, alerts *alertcommand.RaiseAlertHandler) *InventoryHandler {
	return &InventoryHandler{
		upsertHandler:   command.NewUpsertItemHandler(repo, alerts),
		deleteHandler:   command.NewDeleteItemHandler(repo),
		listHandler:     query.NewListItemsHandler(repo),
		lowStockHandler: query.NewLowStockHandler(repo),
	}
}

// UpsertItem handles POST /api/inventory
func (h *InventoryHandler) UpsertItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req struct {
		ItemName         string  `json:"item_name"`
		CurrentStock     float64 `json:"current_stock"`
		MinimumStock     float64 `json:"minimum_stock"`
		DailyConsumption float64 `json:"daily_consumption"`
		LeadTime         float64 `json:"lead_time"`
		SafetyStock      float64 `json:"safety_stock"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.upsertHandler.Handle(r.Context(), command.UpsertItemCommand{
		UserID:           userID,
		ItemName:         req.ItemName,
		CurrentStock:     req.CurrentStock,
		MinimumStock:     req.MinimumStock,
		DailyConsumption: req.DailyConsumption,
		LeadTime:         req.LeadTime,
		SafetyStock:      req.SafetyStock,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	respondJSON(w, status, result.Item)
}

// ListItems handles GET /api/inventory
func (h *InventoryHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	items, err := h.listHandler.Handle(r.Context(), query.ListItemsQuery{UserID: userID})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	if items == nil {
		items = []domain.Item{}
	}

	respondJSON(w, http.StatusOK, items)
}

// LowStock handles GET /api/inventory/low-stock
func (h *InventoryHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	items, err := h.lowStockHandler.Handle(r.Context(), query.LowStockQuery{UserID: userID})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	if items == nil {
		items = []domain.Item{}
	}

	respondJSON(w, http.StatusOK, items)
}

// DeleteItem handles DELETE /api/inventory/{itemName}
func (h *InventoryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	itemName := mux.Vars(r)["itemName"]
	if err := h.deleteHandler.Handle(r.Context(), command.DeleteItemCommand{
		UserID:   userID,
		ItemName: itemName,
	}); err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Inventory item deleted successfully"})
}

// RegisterRoutes registers all inventory routes
func (h *InventoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/inventory", userhttp.AuthMiddleware(h.UpsertItem)).Methods("POST")
	router.HandleFunc("/api/inventory", userhttp.AuthMiddleware(h.ListItems)).Methods("GET")
	router.HandleFunc("/api/inventory/low-stock", userhttp.AuthMiddleware(h.LowStock)).Methods("GET")
	router.HandleFunc("/api/inventory/{itemName}", userhttp.AuthMiddleware(h.DeleteItem)).Methods("DELETE")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
