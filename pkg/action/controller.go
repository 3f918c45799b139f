package action

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"go.uber.org/zap"
)

const DefaultFieldName = "numberToSet"

type Messages struct {
	// ReadSuccess and WriteSuccess are format strings with one %s verb that
	// receives the full-precision decimal value.
	ReadSuccess     string
	ReadFailure     string
	ReadFailureLog  string
	WritePending    string
	WriteSuccess    string
	WriteFailure    string
	WriteFailureLog string
}

// DefaultMessages returns the wording used by the number front-end.
func DefaultMessages() Messages {
	return Messages{
		ReadSuccess:     "Number is: %s",
		ReadFailure:     "Failed to get number",
		ReadFailureLog:  "Failed to get number",
		WritePending:    "Setting number...",
		WriteSuccess:    "Number set to: %s",
		WriteFailure:    "Error setting number",
		WriteFailureLog: "Failed to set number",
	}
}

func (m Messages) withDefaults() Messages {
	defaults := DefaultMessages()
	fill := func(target *string, fallback string) {
		if strings.TrimSpace(*target) == "" {
			*target = fallback
		}
	}
	fill(&m.ReadSuccess, defaults.ReadSuccess)
	fill(&m.ReadFailure, defaults.ReadFailure)
	fill(&m.ReadFailureLog, defaults.ReadFailureLog)
	fill(&m.WritePending, defaults.WritePending)
	fill(&m.WriteSuccess, defaults.WriteSuccess)
	fill(&m.WriteFailure, defaults.WriteFailure)
	fill(&m.WriteFailureLog, defaults.WriteFailureLog)
	return m
}

type Config struct {
	Endpoint RemoteEndpoint
	Identity IdentityProvider
	Notifier Notifier
	Logger   *zap.Logger
	Metrics  *Metrics
	Messages Messages
	// FieldName is the form field holding the value to write.
	FieldName string
	// ConfirmTimeout bounds the wait for write confirmation. Zero waits
	// until the endpoint settles or ctx is done.
	ConfirmTimeout time.Duration
}

type Controller struct {
	endpoint       RemoteEndpoint
	identity       IdentityProvider
	notifier       Notifier
	logger         *zap.Logger
	metrics        *Metrics
	messages       Messages
	fieldName      string
	confirmTimeout time.Duration
	read           *machine
	write          *machine
}

// NewController creates a new Controller.
func NewController(config Config) (*Controller, error) {
	if config.Endpoint == nil {
		return nil, fmt.Errorf("remote endpoint is required")
	}
	if config.Identity == nil {
		return nil, fmt.Errorf("identity provider is required")
	}
	if config.Notifier == nil {
		return nil, fmt.Errorf("notifier is required")
	}
	if config.ConfirmTimeout < 0 {
		return nil, fmt.Errorf("confirm timeout cannot be negative")
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("action")

	fieldName := strings.TrimSpace(config.FieldName)
	if fieldName == "" {
		fieldName = DefaultFieldName
	}

	return &Controller{
		endpoint:       config.Endpoint,
		identity:       config.Identity,
		notifier:       config.Notifier,
		logger:         logger,
		metrics:        config.Metrics,
		messages:       config.Messages.withDefaults(),
		fieldName:      fieldName,
		confirmTimeout: config.ConfirmTimeout,
		read:           newMachine(KindRead, logger),
		write:          newMachine(KindWrite, logger),
	}, nil
}

// State returns the current state of the given action.
func (c *Controller) State(kind Kind) State {
	if kind == KindWrite {
		return c.write.current()
	}
	return c.read.current()
}

// Busy reports whether either action is pending.
func (c *Controller) Busy() bool {
	return c.read.current() == StatePending || c.write.current() == StatePending
}

// FieldName returns the form field PerformWrite reads.
func (c *Controller) FieldName() string {
	return c.fieldName
}

// PerformRead queries the endpoint on behalf of the current caller and
// reports the value.
func (c *Controller) PerformRead(ctx context.Context, event Event) Outcome {
	event.PreventDefault()

	return c.run(ctx, c.read, func(ctx context.Context) Outcome {
		value, err := recoverInto(func() (*big.Int, error) {
			caller, err := c.identity.Resolve(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve caller identity: %w", err)
			}
			value, err := c.endpoint.Read(ctx, caller)
			if err != nil {
				return nil, err
			}
			if value == nil {
				return nil, ErrNoValue
			}
			return value, nil
		})
		if err != nil {
			c.logger.Error(c.messages.ReadFailureLog, zap.Error(err))
			c.notifier.Error(c.messages.ReadFailure)
			return OutcomeFailed
		}

		c.notifier.Success(fmt.Sprintf(c.messages.ReadSuccess, value.String()))
		return OutcomeSucceeded
	})
}

// PerformWrite parses the submitted value and writes it through the
// endpoint, waiting for confirmation. A submission without the value field
// is ignored.
func (c *Controller) PerformWrite(ctx context.Context, event Event) Outcome {
	event.PreventDefault()

	raw, ok := event.Field(c.fieldName)
	if !ok {
		c.metrics.record(KindWrite, OutcomeSkipped)
		return OutcomeSkipped
	}

	value, err := ParseValue(raw)
	if err != nil {
		c.logger.Error(c.messages.WriteFailureLog, zap.Error(err))
		c.notifier.Error(c.messages.WriteFailure)
		c.metrics.record(KindWrite, OutcomeFailed)
		return OutcomeFailed
	}

	return c.run(ctx, c.write, func(ctx context.Context) Outcome {
		caller, err := recoverInto(func() (Identity, error) {
			return c.identity.Resolve(ctx)
		})
		if err != nil {
			c.logger.Error(c.messages.WriteFailureLog,
				zap.Error(fmt.Errorf("failed to resolve caller identity: %w", err)))
			c.notifier.Error(c.messages.WriteFailure)
			return OutcomeFailed
		}

		messages := PromiseMessages{
			Pending: c.messages.WritePending,
			Success: fmt.Sprintf(c.messages.WriteSuccess, value.String()),
			Error:   c.messages.WriteFailure,
		}
		err = c.notifier.Promise(ctx, messages, func(ctx context.Context) error {
			_, err := recoverInto(func() (Receipt, error) {
				return c.submit(ctx, new(big.Int).Set(value), caller)
			})
			return err
		})
		if err != nil {
			c.logger.Error(c.messages.WriteFailureLog,
				zap.String("value", value.String()),
				zap.Error(err))
			return OutcomeFailed
		}
		return OutcomeSucceeded
	})
}

func (c *Controller) submit(ctx context.Context, value *big.Int, caller Identity) (Receipt, error) {
	submission, err := c.endpoint.Write(ctx, value, caller)
	if err != nil {
		return Receipt{}, err
	}
	if submission == nil {
		return Receipt{}, fmt.Errorf("endpoint returned no submission")
	}

	if c.confirmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.confirmTimeout)
		defer cancel()
	}

	receipt, err := submission.Wait(ctx)
	if err != nil {
		return Receipt{}, fmt.Errorf("write was not confirmed: %w", err)
	}

	c.logger.Debug("write confirmed",
		zap.String("transaction_id", receipt.TransactionID),
		zap.String("status", receipt.Status))
	return receipt, nil
}

// run moves m to pending for the duration of body and always returns it to
// idle, including when body panics.
func (c *Controller) run(ctx context.Context, m *machine, body func(context.Context) Outcome) Outcome {
	if err := m.acquire(ctx); err != nil {
		c.logger.Warn("rejected action invocation", zap.Error(err))
		c.metrics.record(m.kind, OutcomeRejected)
		return OutcomeRejected
	}

	started := time.Now()
	c.metrics.started(m.kind)

	outcome := OutcomeFailed
	defer func() {
		m.release(ctx)
		c.metrics.finished(m.kind, outcome, time.Since(started))
	}()

	outcome = body(ctx)
	return outcome
}

func recoverInto[T any](fn func() (T, error)) (result T, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			var zero T
			result, err = zero, &PanicError{Value: recovered}
		}
	}()
	return fn()
}
