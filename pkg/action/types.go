package action

import (
	"context"
	"math/big"
)

type Identity struct {
	AccountID string
	Address   string
}

type Receipt struct {
	TransactionID string
	Status        string
}

type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
	OutcomeRejected  Outcome = "rejected"
	OutcomeSkipped   Outcome = "skipped"
)

type Kind string

const (
	KindRead  Kind = "read"
	KindWrite Kind = "write"
)

type PromiseMessages struct {
	Pending string
	Success string
	Error   string
}

// RemoteEndpoint is the contract surface the controller drives.
type RemoteEndpoint interface {
	Read(ctx context.Context, caller Identity) (*big.Int, error)
	Write(ctx context.Context, value *big.Int, caller Identity) (Submission, error)
}

// Submission is a write accepted for processing. Wait blocks until the
// write is durably confirmed or fails.
type Submission interface {
	Wait(ctx context.Context) (Receipt, error)
}

// IdentityProvider resolves the caller on whose behalf an action runs.
// The controller calls it once per invocation and never caches the result.
type IdentityProvider interface {
	Resolve(ctx context.Context) (Identity, error)
}

// Notifier surfaces user-facing messages. Promise must emit Pending before
// operation runs and exactly one of Success or Error after it returns.
type Notifier interface {
	Success(message string)
	Error(message string)
	Promise(ctx context.Context, messages PromiseMessages, operation func(context.Context) error) error
}

type IdentityProviderFunc func(ctx context.Context) (Identity, error)

// Resolve calls f.
func (f IdentityProviderFunc) Resolve(ctx context.Context) (Identity, error) {
	return f(ctx)
}
