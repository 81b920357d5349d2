package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation for the cost tracking service
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// UpsertItem godoc
// @Summary Create or replace an inventory item
// @Description Saves an inventory item and recomputes its reorder level, reorder quantity and alert status
// @Tags Inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{item_name=string,current_stock=number,minimum_stock=number,daily_consumption=number,lead_time=number,safety_stock=number} true "Inventory item data"
// @Success 200 {object} object{id=int,item_name=string,reorder_level=number,reorder_quantity=number,alert_status=bool}
// @Success 201 {object} object{id=int,item_name=string,reorder_level=number,reorder_quantity=number,alert_status=bool}
// @Failure 400 {object} object{error=string}
// @Router /api/inventory [post]
func (h *InventoryHandler) UpsertItemDoc() {}

// ListItems godoc
// @Summary List inventory items
// @Description Get all inventory items owned by the authenticated user
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Success 200 {array} object{id=int,item_name=string,current_stock=number}
// @Router /api/inventory [get]
func (h *InventoryHandler) ListItemsDoc() {}

// LowStock godoc
// @Summary List low stock items
// @Description Get items flagged for reorder, lowest stock first
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Success 200 {array} object{id=int,item_name=string,reorder_quantity=number}
// @Router /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStockDoc() {}

// DeleteItem godoc
// @Summary Delete an inventory item
// @Description Remove an inventory item by name
// @Tags Inventory
// @Security BearerAuth
// @Produce json
// @Param itemName path string true "Item name"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /api/inventory/{itemName} [delete]
func (h *InventoryHandler) DeleteItemDoc() {}
