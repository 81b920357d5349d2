// Package httperr maps domain sentinel errors to HTTP status codes and
// writes the service's standard JSON error body. Add a case to status
// for each new domain sentinel error.
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	alertdomain "github.com/sumitd/costtrack/internal/alert/domain"
	"github.com/sumitd/costtrack/internal/chatbot"
	"github.com/sumitd/costtrack/internal/costing"
	inventorydomain "github.com/sumitd/costtrack/internal/inventory/domain"
	orderdomain "github.com/sumitd/costtrack/internal/order/domain"
	userdomain "github.com/sumitd/costtrack/internal/user/domain"
)

// Write maps err to an HTTP status and writes {"error": message}.
// Wrapped sentinel errors are matched with errors.Is.
func Write(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status(err))
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func status(err error) int {
	switch {
	case errors.Is(err, costing.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, orderdomain.ErrOrderNotFound),
		errors.Is(err, orderdomain.ErrUsageNotFound),
		errors.Is(err, inventorydomain.ErrItemNotFound),
		errors.Is(err, alertdomain.ErrAlertNotFound),
		errors.Is(err, userdomain.ErrUserNotFound):
		return http.StatusNotFound
	// Duplicate natural keys surface as 400, not 409. Existing clients
	// depend on this.
	case errors.Is(err, orderdomain.ErrDuplicateOrderID),
		errors.Is(err, inventorydomain.ErrDuplicateItem),
		errors.Is(err, userdomain.ErrUserExists),
		errors.Is(err, userdomain.ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, chatbot.ErrUpstreamUnavailable):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
