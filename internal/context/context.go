// Package context provides request scoped values and a context that outlives its parent
package context

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

type requestIDKey struct{}

const requestIDField = "request_id"

type DetachedContext struct {
	parent context.Context
}

// Detach is to create a clone of the existing context. This new context does not cancel when the parent context cancels.
// Values such as the request id stay reachable.
func Detach(ctx context.Context) context.Context {
	return DetachedContext{ctx}
}

// Deadline returns the time when work done on behalf of this context should be completed.
func (d DetachedContext) Deadline() (deadline time.Time, ok bool) {
	return time.Time{}, false
}

// Done returns a channel that's closed when work done on behalf of this context should be cancelled.
func (d DetachedContext) Done() <-chan struct{} {
	return nil
}

func (d DetachedContext) Err() error {
	return nil
}

func (d DetachedContext) Value(key any) any {
	return d.parent.Value(key)
}

// WithRequestID stores the id of the inbound request.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDHook adds the request id to every entry logged with log.WithContext.
type RequestIDHook struct{}

func (RequestIDHook) Levels() []log.Level {
	return log.AllLevels
}

func (RequestIDHook) Fire(entry *log.Entry) error {
	if id := RequestID(entry.Context); id != "" {
		entry.Data[requestIDField] = id
	}
	return nil
}
