package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/leaflane/storefront-platform/internal/api/middleware"
)

// CreateTestRequest builds a request carrying a discard logger and any path
// parameters, matching what the logging middleware injects in production.
func CreateTestRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}

// CreateSessionRequest is CreateTestRequest plus the session header the cart
// endpoints key on.
func CreateSessionRequest(method, target string, body io.Reader, sessionID string) *http.Request {
	req := CreateTestRequest(method, target, body, nil)
	req.Header.Set("X-Session-ID", sessionID)

	return req
}
