package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/phrasecast/pkg/ctxutil"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		incoming  string
		wantReuse bool
	}{
		{name: "generated when absent", incoming: "", wantReuse: false},
		{name: "reused when valid", incoming: "client-req-42", wantReuse: true},
		{name: "replaced when containing spaces", incoming: "bad id", wantReuse: false},
		{name: "replaced when too long", incoming: strings.Repeat("a", maxRequestIDLength+1), wantReuse: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var ctxID string
			handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxID = ctxutil.RequestIDFromCtx(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			respID := rec.Header().Get(RequestIDHeader)
			if respID != ctxID {
				t.Errorf("response id %q != context id %q", respID, ctxID)
			}
			if tt.wantReuse {
				if respID != tt.incoming {
					t.Errorf("id = %q, want %q", respID, tt.incoming)
				}
				return
			}
			if _, err := uuid.Parse(respID); err != nil {
				t.Errorf("expected generated uuid, got %q", respID)
			}
		})
	}
}
