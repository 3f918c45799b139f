package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashgraph-online/contract-actions-go/pkg/action"
	"go.uber.org/zap"
)

var _ action.Notifier = (*Notifier)(nil)

type Option func(*Notifier)

// WithLogger sets the logger used to report sink failures.
func WithLogger(logger *zap.Logger) Option {
	return func(n *Notifier) {
		if logger != nil {
			n.logger = logger
		}
	}
}

// WithClock overrides the toast timestamp source.
func WithClock(now func() time.Time) Option {
	return func(n *Notifier) {
		if now != nil {
			n.now = now
		}
	}
}

// WithIDGenerator overrides how toast IDs are generated.
func WithIDGenerator(newID func() string) Option {
	return func(n *Notifier) {
		if newID != nil {
			n.newID = newID
		}
	}
}

type Notifier struct {
	sink   Sink
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// New creates a Notifier that delivers to sink. A nil sink discards toasts.
func New(sink Sink, opts ...Option) *Notifier {
	if sink == nil {
		sink = Fanout{}
	}
	notifier := &Notifier{
		sink:   sink,
		logger: zap.NewNop(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(notifier)
	}
	notifier.logger = notifier.logger.Named("notify")
	return notifier
}

// Success shows a success toast.
func (n *Notifier) Success(message string) {
	n.deliver(context.Background(), n.toast(n.newID(), KindSuccess, message))
}

// Error shows an error toast.
func (n *Notifier) Error(message string) {
	n.deliver(context.Background(), n.toast(n.newID(), KindError, message))
}

// Promise shows messages.Pending, runs operation, then replaces the pending
// toast with the success or error message. The operation's error is returned
// unchanged.
func (n *Notifier) Promise(
	ctx context.Context,
	messages action.PromiseMessages,
	operation func(context.Context) error,
) error {
	id := n.newID()
	deliveryCtx := context.WithoutCancel(ctx)

	n.deliver(deliveryCtx, n.toast(id, KindLoading, messages.Pending))
	if err := operation(ctx); err != nil {
		n.deliver(deliveryCtx, n.toast(id, KindError, messages.Error))
		return err
	}
	n.deliver(deliveryCtx, n.toast(id, KindSuccess, messages.Success))
	return nil
}

func (n *Notifier) toast(id string, kind Kind, message string) Toast {
	return Toast{
		ID:      id,
		Kind:    kind,
		Message: message,
		Time:    n.now(),
	}
}

func (n *Notifier) deliver(ctx context.Context, toast Toast) {
	if err := n.sink.Deliver(ctx, toast); err != nil {
		n.logger.Warn("failed to deliver toast",
			zap.String("toast_id", toast.ID),
			zap.String("kind", string(toast.Kind)),
			zap.Error(err))
	}
}
