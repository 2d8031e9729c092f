package context

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	// HeaderCloudTrace is set by Google front ends as "TRACE_ID/SPAN_ID;o=OPTIONS".
	HeaderCloudTrace = "X-Cloud-Trace-Context"
)

// RequestIDFromHeader picks the client supplied request ID, then the Cloud trace ID.
// It returns an empty string when neither is present.
func RequestIDFromHeader(header http.Header) string {
	if requestID := strings.TrimSpace(header.Get(HeaderXRequestID)); requestID != "" {
		return requestID
	}

	traceID, _, _ := strings.Cut(header.Get(HeaderCloudTrace), "/")

	return strings.TrimSpace(traceID)
}

// GetRequestID returns the request ID stored in echo.Context, or a fresh UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID carried by ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}
