package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sumitd/costtrack/internal/alert/domain"
	"github.com/sumitd/costtrack/internal/alert/usecase/command"
	"github.com/sumitd/costtrack/internal/alert/usecase/query"
	userhttp "github.com/sumitd/costtrack/internal/user/delivery/http"
	"github.com/sumitd/costtrack/pkg/httperr"
)

// AlertHandler handles HTTP requests for alerts
type AlertHandler struct {
	markReadHandler    *command.MarkReadHandler
	markAllReadHandler *command.MarkAllReadHandler
	deleteHandler      *command.DeleteAlertHandler
	listHandler        *query.ListAlertsHandler
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(repo domain.AlertRepository) *AlertHandler {
	return &AlertHandler{
		markReadHandler:    command.NewMarkReadHandler(repo),
		markAllReadHandler: command.NewMarkAllReadHandler(repo),
		deleteHandler:      command.NewDeleteAlertHandler(repo),
		listHandler:        query.NewListAlertsHandler(repo),
	}
}

// ListAlerts handles GET /api/alerts
func (h *AlertHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

// ListUnread handles GET /api/alerts/unread
func (h *AlertHandler) ListUnread(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

func (h *AlertHandler) list(w http.ResponseWriter, r *http.Request, unreadOnly bool) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	alerts, err := h.listHandler.Handle(query.ListAlertsQuery{UserID: userID, UnreadOnly: unreadOnly})
	if err != nil {
		httperr.Write(w, err)
		return
	}
	if alerts == nil {
		alerts = []domain.Alert{}
	}

	respondJSON(w, http.StatusOK, alerts)
}

// MarkRead handles PUT /api/alerts/{id}/read
func (h *AlertHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid alert ID")
		return
	}

	alert, err := h.markReadHandler.Handle(command.MarkReadCommand{UserID: userID, AlertID: uint(id)})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Alert marked as read",
		"alert":   alert,
	})
}

// MarkAllRead handles PUT /api/alerts/read-all
func (h *AlertHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	if err := h.markAllReadHandler.Handle(command.MarkAllReadCommand{UserID: userID}); err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "All alerts marked as read"})
}

// DeleteAlert handles DELETE /api/alerts/{id}
func (h *AlertHandler) DeleteAlert(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid alert ID")
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteAlertCommand{UserID: userID, AlertID: uint(id)}); err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Alert deleted successfully"})
}

// RegisterRoutes registers all alert routes. The read-all route is
// registered before the {id} routes so mux does not swallow it.
func (h *AlertHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/alerts", userhttp.AuthMiddleware(h.ListAlerts)).Methods("GET")
	router.HandleFunc("/api/alerts/unread", userhttp.AuthMiddleware(h.ListUnread)).Methods("GET")
	router.HandleFunc("/api/alerts/read-all", userhttp.AuthMiddleware(h.MarkAllRead)).Methods("PUT")
	router.HandleFunc("/api/alerts/{id}/read", userhttp.AuthMiddleware(h.MarkRead)).Methods("PUT")
	router.HandleFunc("/api/alerts/{id}", userhttp.AuthMiddleware(h.DeleteAlert)).Methods("DELETE")
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
