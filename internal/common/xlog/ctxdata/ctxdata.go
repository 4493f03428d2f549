// Package ctxdata stores request-scoped logging data on the context.
package ctxdata

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey string

const (
	correlationIdKey contextKey = "x-correlation-id"
	hostKey          contextKey = "host"

	CorrelationIdHeader = "X-Correlation-Id"
)

type SetOption func(ctx context.Context) context.Context

func SetCorrelationId(id string) SetOption {
	return func(ctx context.Context) context.Context {
		return context.WithValue(ctx, correlationIdKey, id)
	}
}

func SetHost(host string) SetOption {
	return func(ctx context.Context) context.Context {
		return context.WithValue(ctx, hostKey, host)
	}
}

func Sets(ctx context.Context, opts ...SetOption) context.Context {
	for _, opt := range opts {
		ctx = opt(ctx)
	}
	return ctx
}

// SetContextFromHTTP takes the correlation id from the request header, or
// mints one when the caller did not send any.
func SetContextFromHTTP(ctx context.Context, r *http.Request, host string) context.Context {
	cid := r.Header.Get(CorrelationIdHeader)
	if cid == "" {
		cid = uuid.New().String()
	}
	return Sets(ctx, SetCorrelationId(cid), SetHost(host))
}

func GetCorrelationId(ctx context.Context) string {
	if v, ok := ctx.Value(correlationIdKey).(string); ok {
		return v
	}
	return ""
}

func GetHost(ctx context.Context) string {
	if v, ok := ctx.Value(hostKey).(string); ok {
		return v
	}
	return ""
}
