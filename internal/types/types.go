package types

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Request describes a single call against the weenect API. Path is
// relative to the API version prefix. JSON, when set, is marshalled as
// the request body and takes precedence over Body.
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Body    io.Reader
	JSON    interface{}
	Query   url.Values
}

// Logger interface for logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Hooks provides lifecycle hooks for requests
type Hooks struct {
	OnRequest  func(ctx context.Context, req *http.Request)
	OnResponse func(ctx context.Context, resp *http.Response, duration time.Duration)
	OnError    func(ctx context.Context, err error)
}
