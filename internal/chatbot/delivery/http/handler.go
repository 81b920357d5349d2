package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sumitd/costtrack/internal/chatbot/usecase/query"
	userhttp "github.com/sumitd/costtrack/internal/user/delivery/http"
	"github.com/sumitd/costtrack/pkg/httperr"
)

// ChatbotHandler handles HTTP requests for the chatbot
type ChatbotHandler struct {
	askHandler *query.AskChatbotHandler
}

// NewChatbotHandler creates a new chatbot handler
func NewChatbotHandler(askHandler *query.AskChatbotHandler) *ChatbotHandler {
	return &ChatbotHandler{askHandler: askHandler}
}

// Ask handles POST /api/chatbot
func (h *ChatbotHandler) Ask(w http.ResponseWriter, r *http.Request) {
	userID, ok := userhttp.UserID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.askHandler.Handle(r.Context(), query.AskChatbotQuery{
		UserID:  userID,
		Message: req.Message,
	})
	if err != nil {
		httperr.Write(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"response": response})
}

// RegisterRoutes registers all chatbot routes
func (h *ChatbotHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/chatbot", userhttp.AuthMiddleware(h.Ask)).Methods("POST")
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
