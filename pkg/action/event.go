package action

import (
	"fmt"
	"net/http"
	"net/url"
	"sync/atomic"
)

// Event is a UI form submission.
type Event interface {
	PreventDefault()
	Field(name string) (string, bool)
}

type FormEvent struct {
	values           url.Values
	defaultPrevented atomic.Bool
}

// NewFormEvent creates a new FormEvent over the submitted form values.
func NewFormEvent(values url.Values) *FormEvent {
	if values == nil {
		values = url.Values{}
	}
	return &FormEvent{values: values}
}

// FormEventFromRequest parses the request form and wraps it as a FormEvent.
func FormEventFromRequest(request *http.Request) (*FormEvent, error) {
	if err := request.ParseForm(); err != nil {
		return nil, fmt.Errorf("failed to parse form: %w", err)
	}
	return NewFormEvent(request.Form), nil
}

// PreventDefault marks the submission as handled.
func (e *FormEvent) PreventDefault() {
	e.defaultPrevented.Store(true)
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *FormEvent) DefaultPrevented() bool {
	return e.defaultPrevented.Load()
}

// Field returns the first value submitted under name. A field that was
// submitted empty is present; only an absent name reports false.
func (e *FormEvent) Field(name string) (string, bool) {
	values, ok := e.values[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
