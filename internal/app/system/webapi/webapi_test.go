package webapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lotusandpine/studiohub/internal/app/system/webapi"
	"github.com/lotusandpine/studiohub/internal/domain/apperr"
	"go.uber.org/zap"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	return body
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	webapi.WriteJSON(rec, http.StatusOK, map[string]bool{"success": true})

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want application/json", ct)
	}
	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Errorf("body: got %v", body)
	}
}

func TestWriteAppError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unauthorized", apperr.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", apperr.ErrForbidden, http.StatusForbidden},
		{"not found", apperr.ErrNotFound, http.StatusNotFound},
		{"already admin", apperr.ErrAlreadyAdmin, http.StatusBadRequest},
		{"self removal", apperr.ErrSelfRemoval, http.StatusBadRequest},
		{"validation", apperr.Validation("name and phone required"), http.StatusBadRequest},
		{"mailer not configured", apperr.ErrMailerNotConfigured, http.StatusInternalServerError},
		{"provider", apperr.Provider("send contact email", apperr.ErrNotFound), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			webapi.WriteAppError(rec, zap.NewNop(), tt.err)
			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
			body := decodeBody(t, rec)
			if _, ok := body["error"]; !ok {
				t.Error("expected an error field in the body")
			}
		})
	}
}

func TestWriteAppError_ProviderIncludesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	webapi.WriteAppError(rec, zap.NewNop(), apperr.Provider("send contact email", apperr.ErrNotFound))

	body := decodeBody(t, rec)
	if body["details"] == "" || body["details"] == nil {
		t.Errorf("expected provider details in body, got %v", body)
	}
}

func TestCORS_Preflight(t *testing.T) {
	handler := webapi.CORS("")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight should not reach the handler")
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin: got %q, want *", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); got == "" {
		t.Error("expected Allow-Headers to be set")
	}
}

func TestCORS_PassThrough(t *testing.T) {
	called := false
	handler := webapi.CORS("https://studio.example")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Error("expected non-preflight request to reach the handler")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://studio.example" {
		t.Errorf("Allow-Origin: got %q", got)
	}
}
