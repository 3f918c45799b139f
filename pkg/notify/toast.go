package notify

import (
	"context"
	"errors"
	"time"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindLoading Kind = "loading"
)

type Toast struct {
	ID      string    `json:"id"`
	Kind    Kind      `json:"kind"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

type Sink interface {
	Deliver(ctx context.Context, toast Toast) error
}

type SinkFunc func(ctx context.Context, toast Toast) error

// Deliver calls f.
func (f SinkFunc) Deliver(ctx context.Context, toast Toast) error {
	return f(ctx, toast)
}

// Fanout delivers each toast to every sink in order. A failing sink does not
// stop the others.
type Fanout []Sink

// Deliver implements Sink.
func (f Fanout) Deliver(ctx context.Context, toast Toast) error {
	var errs []error
	for _, sink := range f {
		if sink == nil {
			continue
		}
		if err := sink.Deliver(ctx, toast); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
