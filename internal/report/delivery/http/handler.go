package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	alertdomain "github.com/sumitd/costtrack/internal/alert/domain"
	inventorydomain "github.com/sumitd/costtrack/internal/inventory/domain"
	orderdomain "github.com/sumitd/costtrack/internal/order/domain"
	"github.com/sumitd/costtrack/internal/report/usecase/query"
	userhttp "github.com/sumitd/costtrack/internal/user/delivery/http"
	"github.com/sumitd/costtrack/pkg/httperr"
)

// ReportHandler handles HTTP requests for the dashboard and reports
type ReportHandler struct {
	dashboardHandler *query.DashboardStatsHandler
	varianceHandler  *query.VarianceReportHandler
	reorderHandler   *query.ReorderReportHandler
	summaryHandler   *query.OrderSummaryHandler
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	orders orderdomain.OrderRepository,
	usages orderdomain.ActualUsageRepository,
	items inventorydomain.ItemRepository,
	alerts alertdomain.AlertRepository,
) *ReportHandler {
	return &ReportHandler{
		dashboardHandler: query.NewDashboardStatsHandler(orders, usages, items, alerts),
		varianceHandler:  query.NewVarianceReportHandler(orders, usages),
		reorderHandler:   query.NewReorderReportHandler(items),
		summaryHandler:   query.NewOrderSummaryHandler(orders, usages),
	}
}

// DashboardStats handles GET /api/dashboard/stats
func (h *ReportHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	dashboard, err := h.dashboardHandler.Handle(r.Context(), query.DashboardStatsQuery{UserID: userID})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dashboard)
}

// VarianceReport handles GET /api/reports/variance
func (h *ReportHandler) VarianceReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	rows, err := h.varianceHandler.Handle(r.Context(), query.VarianceReportQuery{UserID: userID})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, rows)
}

// ReorderReport handles GET /api/reports/reorder
func (h *ReportHandler) ReorderReport(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	rows, err := h.reorderHandler.Handle(r.Context(), query.ReorderReportQuery{UserID: userID})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, rows)
}

// OrderSummary handles GET /api/reports/order-summary
func (h *ReportHandler) OrderSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	rows, err := h.summaryHandler.Handle(r.Context(), query.OrderSummaryQuery{UserID: userID})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, rows)
}

// RegisterRoutes registers all dashboard and report routes
func (h *ReportHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/dashboard/stats", userhttp.AuthMiddleware(h.DashboardStats)).Methods("GET")
	router.HandleFunc("/api/reports/variance", userhttp.AuthMiddleware(h.VarianceReport)).Methods("GET")
	router.HandleFunc("/api/reports/reorder", userhttp.AuthMiddleware(h.ReorderReport)).Methods("GET")
	router.HandleFunc("/api/reports/order-summary", userhttp.AuthMiddleware(h.OrderSummary)).Methods("GET")
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
