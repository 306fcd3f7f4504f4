package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID to and from clients. The
	// notification forwarder echoes it back so its deliveries can be
	// correlated with ledger reads.
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is where the trace ID lives on the Echo context
	TraceIDContextKey = "trace_id"
)

// RequestID attaches a trace ID to every request: the caller's, when
// the header is present, otherwise a fresh UUID. The ID is stored on
// the context and mirrored into the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID reads the trace ID set by RequestID, or "" when the
// middleware has not run for this context.
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
