package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	alertcommand "github.com/sumitd/costtrack/internal/alert/usecase/command"
	"github.com/sumitd/costtrack/internal/order/domain"
	"github.com/sumitd/costtrack/internal/order/usecase/command"
	"github.com/sumitd/costtrack/internal/order/usecase/query"
	userhttp "github.com/sumitd/costtrack/internal/user/delivery/http"
	"github.com/sumitd/costtrack/pkg/httperr"
)

// OrderHandler handles HTTP requests for orders and actual usage
type OrderHandler struct {
	// Command handlers
	createHandler      *command.CreateOrderHandler
	updateHandler      *command.UpdateOrderHandler
	deleteHandler      *command.DeleteOrderHandler
	recordUsageHandler *command.RecordUsageHandler

	// Query handlers
	getOrderHandler   *query.GetOrderHandler
	listOrdersHandler *query.ListOrdersHandler
	getUsageHandler   *query.GetUsageHandler
	listUsagesHandler *query.ListUsagesHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	ordersCreated  prometheus.Counter
	ordersDeleted  prometheus.Counter
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	orders domain.OrderRepository,
	usages domain.ActualUsageRepository,
	alerts *alertcommand.RaiseAlertHandler,
) *OrderHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "costtrack_order_requests_total",
			Help: "Total number of order endpoint requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "costtrack_order_request_duration_seconds",
			Help:    "Duration of order endpoint requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	ordersCreated := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "costtrack_orders_created_total",
			Help: "Total number of production orders created",
		},
	)

	ordersDeleted := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "costtrack_orders_deleted_total",
			Help: "Total number of production orders deleted",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(ordersCreated)
	prometheus.MustRegister(ordersDeleted)

	return &OrderHandler{
		createHandler:      command.NewCreateOrderHandler(orders),
		updateHandler:      command.NewUpdateOrderHandler(orders),
		deleteHandler:      command.NewDeleteOrderHandler(orders, usages),
		recordUsageHandler: command.NewRecordUsageHandler(orders, usages, alerts),
		getOrderHandler:    query.NewGetOrderHandler(orders),
		listOrdersHandler:  query.NewListOrdersHandler(orders),
		getUsageHandler:    query.NewGetUsageHandler(usages),
		listUsagesHandler:  query.NewListUsagesHandler(usages),
		requestCounter:     requestCounter,
		requestLatency:     requestLatency,
		ordersCreated:      ordersCreated,
		ordersDeleted:      ordersDeleted,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *OrderHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req struct {
		OrderID     string  `json:"order_id"`
		ItemName    string  `json:"item_name"`
		PlannedQty  float64 `json:"planned_qty"`
		PlannedRate float64 `json:"planned_rate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.createHandler.Handle(command.CreateOrderCommand{
		UserID:      userID,
		OrderID:     req.OrderID,
		ItemName:    req.ItemName,
		PlannedQty:  req.PlannedQty,
		PlannedRate: req.PlannedRate,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	h.ordersCreated.Inc()
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Order created successfully",
		"order":   order,
	})
}

// ListOrders handles GET /api/orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	orders, err := h.listOrdersHandler.Handle(query.ListOrdersQuery{UserID: userID})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	respondJSON(w, http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/{orderId}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	order, err := h.getOrderHandler.Handle(query.GetOrderQuery{
		UserID:  userID,
		OrderID: mux.Vars(r)["orderId"],
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// UpdateOrder handles PUT /api/orders/{orderId}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req struct {
		ItemName    string  `json:"item_name"`
		PlannedQty  float64 `json:"planned_qty"`
		PlannedRate float64 `json:"planned_rate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.updateHandler.Handle(command.UpdateOrderCommand{
		UserID:      userID,
		OrderID:     mux.Vars(r)["orderId"],
		ItemName:    req.ItemName,
		PlannedQty:  req.PlannedQty,
		PlannedRate: req.PlannedRate,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Order updated successfully",
		"order":   order,
	})
}

// DeleteOrder handles DELETE /api/orders/{orderId}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteOrderCommand{
		UserID:  userID,
		OrderID: mux.Vars(r)["orderId"],
	}); err != nil {
		httperr.Write(w, err)
		return
	}

	h.ordersDeleted.Inc()
	respondJSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}

// RecordUsage handles POST /api/actual-usage
func (h *OrderHandler) RecordUsage(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req struct {
		OrderID    string  `json:"order_id"`
		ActualQty  float64 `json:"actual_qty"`
		ActualRate float64 `json:"actual_rate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.recordUsageHandler.Handle(r.Context(), command.RecordUsageCommand{
		UserID:     userID,
		OrderID:    req.OrderID,
		ActualQty:  req.ActualQty,
		ActualRate: req.ActualRate,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	respondJSON(w, status, map[string]interface{}{
		"message":      "Actual usage saved",
		"actual_usage": result.Usage,
	})
}

// ListUsages handles GET /api/actual-usage
func (h *OrderHandler) ListUsages(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	usages, err := h.listUsagesHandler.Handle(query.ListUsagesQuery{UserID: userID})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	if usages == nil {
		usages = []domain.ActualUsage{}
	}

	respondJSON(w, http.StatusOK, usages)
}

// GetUsage handles GET /api/actual-usage/{orderId}
func (h *OrderHandler) GetUsage(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	usage, err := h.getUsageHandler.Handle(query.GetUsageQuery{
		UserID:  userID,
		OrderID: mux.Vars(r)["orderId"],
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, usage)
}

// RegisterRoutes registers all order and actual usage routes
func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", userhttp.AuthMiddleware(h.CreateOrder))).Methods("POST")
	router.HandleFunc("/api/orders", h.metricsMiddleware("/api/orders", userhttp.AuthMiddleware(h.ListOrders))).Methods("GET")
	router.HandleFunc("/api/orders/{orderId}", h.metricsMiddleware("/api/orders/{orderId}", userhttp.AuthMiddleware(h.GetOrder))).Methods("GET")
	router.HandleFunc("/api/orders/{orderId}", h.metricsMiddleware("/api/orders/{orderId}", userhttp.AuthMiddleware(h.UpdateOrder))).Methods("PUT")
	router.HandleFunc("/api/orders/{orderId}", h.metricsMiddleware("/api/orders/{orderId}", userhttp.AuthMiddleware(h.DeleteOrder))).Methods("DELETE")

	router.HandleFunc("/api/actual-usage", h.metricsMiddleware("/api/actual-usage", userhttp.AuthMiddleware(h.RecordUsage))).Methods("POST")
	router.HandleFunc("/api/actual-usage", h.metricsMiddleware("/api/actual-usage", userhttp.AuthMiddleware(h.ListUsages))).Methods("GET")
	router.HandleFunc("/api/actual-usage/{orderId}", h.metricsMiddleware("/api/actual-usage/{orderId}", userhttp.AuthMiddleware(h.GetUsage))).Methods("GET")
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
