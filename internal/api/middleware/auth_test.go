package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnerAuth(t *testing.T) {
	const pin = "200500"

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := OwnerAuth(pin)(next)

	tests := []struct {
		name       string
		pin        string
		setHeader  bool
		wantStatus int
	}{
		{
			name:       "correct PIN passes through",
			pin:        "200500",
			setHeader:  true,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "wrong PIN is rejected",
			pin:        "123456",
			setHeader:  true,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing header is rejected",
			setHeader:  false,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "empty PIN is rejected",
			pin:        "",
			setHeader:  true,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/dates/2025-06-05/bookings/toggle", nil)
			if tt.setHeader {
				req.Header.Set(OwnerPINHeader, tt.pin)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.Contains(t, rec.Body.String(), "owner PIN required")
			}
		})
	}
}
