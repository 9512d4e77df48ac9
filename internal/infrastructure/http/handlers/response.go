package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	domerrors "github.com/taskhive/taskhive/internal/domain/errors"
)

// envelope is the uniform success wrapper: {success, data, count?}.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Count   *int        `json:"count,omitempty"`
}

func writeData(w http.ResponseWriter, code int, data interface{}) {
	writeJSON(w, code, envelope{Success: true, Data: data})
}

// writeList includes the count field the way list endpoints always do.
func writeList(w http.ResponseWriter, code int, data interface{}, count int) {
	writeJSON(w, code, envelope{Success: true, Data: data, Count: &count})
}

// writeErr sends {"success": false, "error": message}.
func writeErr(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]interface{}{"success": false, "error": message})
}

// writeValidationErr sends the 422 envelope with a field-to-message map.
func writeValidationErr(w http.ResponseWriter, fields map[string]string) {
	writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"success": false,
		"message": "Validation failed",
		"errors":  fields,
	})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainErr maps core error kinds to HTTP statuses. Anything unrecognized
// is a store or programming failure: logged and surfaced as 500 without detail.
func writeDomainErr(w http.ResponseWriter, log zerolog.Logger, err error) {
	switch {
	case errors.Is(err, domerrors.ErrNotFound):
		writeErr(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domerrors.ErrForbidden):
		writeErr(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domerrors.ErrUserExists):
		writeErr(w, http.StatusConflict, err.Error())
	case errors.Is(err, domerrors.ErrInvalidCredentials):
		writeErr(w, http.StatusUnauthorized, err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
	}
}
