package http

// CreateOrder godoc
// @Summary Create a production order
// @Description Create a new production order; the planned amount is derived from quantity and rate
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{order_id=string,item_name=string,planned_qty=number,planned_rate=number} true "Order data"
// @Success 201 {object} object{message=string,order=object}
// @Failure 400 {object} object{error=string}
// @Router /api/orders [post]
func (h *OrderHandler) CreateOrderDoc() {}

// ListOrders godoc
// @Summary List orders
// @Description Get all production orders owned by the authenticated user
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} object{id=int,order_id=string,item_name=string,planned_amount=number}
// @Router /api/orders [get]
func (h *OrderHandler) ListOrdersDoc() {}

// GetOrder godoc
// @Summary Get an order
// @Description Get a production order by its order id
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} object{id=int,order_id=string,planned_amount=number}
// @Failure 404 {object} object{error=string}
// @Router /api/orders/{orderId} [get]
func (h *OrderHandler) GetOrderDoc() {}

// UpdateOrder godoc
// @Summary Update an order
// @Description Update a production order; the planned amount is recomputed
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param orderId path string true "Order ID"
// @Param request body object{item_name=string,planned_qty=number,planned_rate=number} true "Order data"
// @Success 200 {object} object{message=string,order=object}
// @Failure 404 {object} object{error=string}
// @Router /api/orders/{orderId} [put]
func (h *OrderHandler) UpdateOrderDoc() {}

// DeleteOrder godoc
// @Summary Delete an order
// @Description Delete a production order and its recorded usage
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{error=string}
// @Router /api/orders/{orderId} [delete]
func (h *OrderHandler) DeleteOrderDoc() {}

// RecordUsage godoc
// @Summary Record actual usage
// @Description Record actual consumption against an order; recomputes variance and may raise a variance alert. Re-submitting for the same order overwrites the prior record.
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{order_id=string,actual_qty=number,actual_rate=number} true "Usage data"
// @Success 200 {object} object{message=string,actual_usage=object}
// @Success 201 {object} object{message=string,actual_usage=object}
// @Failure 404 {object} object{error=string}
// @Router /api/actual-usage [post]
func (h *OrderHandler) RecordUsageDoc() {}

// ListUsages godoc
// @Summary List actual usage records
// @Description Get all recorded consumption for the authenticated user
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} object{id=int,order_id=string,variance=number,status=string}
// @Router /api/actual-usage [get]
func (h *OrderHandler) ListUsagesDoc() {}

// GetUsage godoc
// @Summary Get actual usage for an order
// @Description Get the recorded consumption for one order
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Param orderId path string true "Order ID"
// @Success 200 {object} object{id=int,order_id=string,variance=number,status=string}
// @Failure 404 {object} object{error=string}
// @Router /api/actual-usage/{orderId} [get]
func (h *OrderHandler) GetUsageDoc() {}
