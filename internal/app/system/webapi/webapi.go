// internal/app/system/webapi/webapi.go

// Package webapi holds the JSON response plumbing shared by the API
// features: success/error envelopes and the permissive CORS layer the
// static site front-end needs for cross-origin calls.
package webapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lotusandpine/studiohub/internal/domain/apperr"
	"go.uber.org/zap"
)

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a {error} body with the given status code.
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, map[string]string{"error": msg})
}

// WriteErrorDetails writes a {error, details} body for failures where the
// downstream diagnostic is worth surfacing to the caller.
func WriteErrorDetails(w http.ResponseWriter, status int, msg, details string) {
	WriteJSON(w, status, map[string]string{"error": msg, "details": details})
}

// WriteAppError maps a domain error onto its HTTP status and writes the
// JSON error body. Unrecognized errors become a generic 500; the real
// cause should already have been logged by the handler.
func WriteAppError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, apperr.ErrUnauthorized):
		WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		WriteError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrAlreadyAdmin),
		errors.Is(err, apperr.ErrSelfRemoval):
		WriteError(w, http.StatusBadRequest, err.Error())
	case apperr.IsValidation(err):
		WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrMailerNotConfigured):
		WriteError(w, http.StatusInternalServerError, err.Error())
	default:
		var pe *apperr.ProviderError
		if errors.As(err, &pe) {
			WriteErrorDetails(w, http.StatusInternalServerError, pe.Op+" failed", pe.Err.Error())
			return
		}
		if log != nil {
			log.Error("unhandled error at response boundary", zap.Error(err))
		}
		WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

// DecodeJSON decodes the request body into dst, rejecting unknown
// payloads that are not valid JSON.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return apperr.Validation("invalid JSON body")
	}
	return nil
}
