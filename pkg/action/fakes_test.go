package action

import (
	"context"
	"fmt"
	"math/big"
	"sync"
)

type notification struct {
	kind    string
	message string
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls []notification
}

func (n *recordingNotifier) Success(message string) {
	n.add("success", message)
}

func (n *recordingNotifier) Error(message string) {
	n.add("error", message)
}

func (n *recordingNotifier) Promise(
	ctx context.Context,
	messages PromiseMessages,
	operation func(context.Context) error,
) error {
	n.add("pending", messages.Pending)
	if err := operation(ctx); err != nil {
		n.add("error", messages.Error)
		return err
	}
	n.add("success", messages.Success)
	return nil
}

func (n *recordingNotifier) add(kind string, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notification{kind: kind, message: message})
}

func (n *recordingNotifier) snapshot() []notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification(nil), n.calls...)
}

func (n *recordingNotifier) count(kind string) int {
	total := 0
	for _, call := range n.snapshot() {
		if call.kind == kind {
			total++
		}
	}
	return total
}

type fakeSubmission struct {
	wait func(ctx context.Context) (Receipt, error)
}

func (s *fakeSubmission) Wait(ctx context.Context) (Receipt, error) {
	return s.wait(ctx)
}

type fakeEndpoint struct {
	mu         sync.Mutex
	readValue  *big.Int
	readErr    error
	readPanic  any
	writeErr   error
	waitErr    error
	waitFunc   func(ctx context.Context) (Receipt, error)
	readCalls  []Identity
	writeCalls []*big.Int
}

func (e *fakeEndpoint) Read(_ context.Context, caller Identity) (*big.Int, error) {
	e.mu.Lock()
	e.readCalls = append(e.readCalls, caller)
	e.mu.Unlock()

	if e.readPanic != nil {
		panic(e.readPanic)
	}
	return e.readValue, e.readErr
}

func (e *fakeEndpoint) Write(_ context.Context, value *big.Int, _ Identity) (Submission, error) {
	e.mu.Lock()
	e.writeCalls = append(e.writeCalls, value)
	e.mu.Unlock()

	if e.writeErr != nil {
		return nil, e.writeErr
	}
	if e.waitFunc != nil {
		return &fakeSubmission{wait: e.waitFunc}, nil
	}
	return &fakeSubmission{wait: func(context.Context) (Receipt, error) {
		if e.waitErr != nil {
			return Receipt{}, e.waitErr
		}
		return Receipt{TransactionID: "0.0.1001@1700000000.000000001", Status: "SUCCESS"}, nil
	}}, nil
}

func (e *fakeEndpoint) writes() []*big.Int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*big.Int(nil), e.writeCalls...)
}

func (e *fakeEndpoint) reads() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.readCalls)
}

type countingIdentity struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (p *countingIdentity) Resolve(context.Context) (Identity, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.err != nil {
		return Identity{}, p.err
	}
	return Identity{
		AccountID: "0.0.1001",
		Address:   fmt.Sprintf("%040x", 1001+p.calls),
	}, nil
}

func (p *countingIdentity) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
