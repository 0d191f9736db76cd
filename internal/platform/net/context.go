// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyLocale ctxKey = "locale"

// WithRequest annotates context with the request id and negotiated locale
func WithRequest(ctx context.Context, reqID, locale string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if locale != "" {
		ctx = context.WithValue(ctx, keyLocale, locale)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// Locale returns the negotiated locale on the context if present
func Locale(ctx context.Context) string {
	if v, ok := ctx.Value(keyLocale).(string); ok {
		return v
	}
	return ""
}
