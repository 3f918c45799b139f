// Package action implements the remote action controller used by the
// contract front-end. A Controller runs one read action (a view call that
// does not change ledger state) and one write action (a state-changing
// transaction that must be confirmed) against a RemoteEndpoint, tracks
// whether each action is idle or pending, and reports every outcome to a
// Notifier.
//
// Failures never escape the controller. Identity, parse, and endpoint errors
// are logged to the diagnostic zap logger and surfaced to the user as error
// notifications; the Perform methods return an Outcome describing which
// branch was taken.
//
// # Getting Started
//
//	controller, err := action.NewController(action.Config{
//		Endpoint: contractClient,
//		Identity: identity.FromOperator(operator),
//		Notifier: notify.New(notify.NewLogSink(logger)),
//		Logger:   logger,
//	})
//
//	outcome := controller.PerformWrite(ctx, action.NewFormEvent(url.Values{
//		"numberToSet": {"12345678901234567890"},
//	}))
//
// This package is part of the Hashgraph Online Contract Actions SDK for Go.
package action
