package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"mealflow/pkg/meal"
	"mealflow/pkg/order"
)

const (
	codeNotFound           = "not_found"
	codeMealNotFound       = "meal_not_found"
	codeMethodNotAllowed   = "method_not_allowed"
	codeInvalidRequestBody = "invalid_request_body"
	codeInvalidArgument    = "invalid_argument"
	codeInvalidOrder       = "invalid_order"
	codeEmptyStore         = "empty_store"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

// fail maps err to a status code and error body.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var missing *order.MealNotFoundError
	switch {
	case errors.As(err, &missing):
		writeError(w, http.StatusNotFound, codeMealNotFound, missing.Error())
	case errors.Is(err, meal.ErrNotFound):
		msg := err.Error()
		if id := mux.Vars(r)["id"]; id != "" {
			msg = "could not find meal " + id
		}
		writeError(w, http.StatusNotFound, codeNotFound, msg)
	case errors.Is(err, meal.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, codeInvalidArgument, "meal must not be empty")
	case errors.Is(err, order.ErrInvalidOrder):
		writeError(w, http.StatusBadRequest, codeInvalidOrder, err.Error())
	case errors.Is(err, meal.ErrEmptyStore):
		writeError(w, http.StatusInternalServerError, codeEmptyStore, err.Error())
	default:
		h.log.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, codeNotFound, "route not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
}
