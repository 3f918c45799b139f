package action

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
	"go.uber.org/zap"
)

type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
)

const (
	eventStart  = "start"
	eventFinish = "finish"
)

// machine guards one action kind. The fsm serializes events, so the
// idle->pending transition doubles as an atomic busy check.
type machine struct {
	kind Kind
	fsm  *fsm.FSM
}

func newMachine(kind Kind, logger *zap.Logger) *machine {
	m := &machine{kind: kind}
	m.fsm = fsm.NewFSM(
		string(StateIdle),
		fsm.Events{
			{Name: eventStart, Src: []string{string(StateIdle)}, Dst: string(StatePending)},
			{Name: eventFinish, Src: []string{string(StatePending)}, Dst: string(StateIdle)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				logger.Debug("action state changed",
					zap.String("action", string(kind)),
					zap.String("from", e.Src),
					zap.String("to", e.Dst))
			},
		},
	)
	return m
}

func (m *machine) acquire(ctx context.Context) error {
	err := m.fsm.Event(context.WithoutCancel(ctx), eventStart)
	if err == nil {
		return nil
	}

	var invalid fsm.InvalidEventError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%s: %w", m.kind, ErrActionPending)
	}
	return fmt.Errorf("failed to enter pending state for %s: %w", m.kind, err)
}

func (m *machine) release(ctx context.Context) {
	_ = m.fsm.Event(context.WithoutCancel(ctx), eventFinish)
}

func (m *machine) current() State {
	return State(m.fsm.Current())
}
