// Package notify turns action notifications into toasts and delivers them to
// one or more sinks.
//
// A Notifier implements action.Notifier. Every toast carries an ID; the
// pending and settled toasts of a promise share one ID so a renderer can
// replace the spinner in place. Delivery is best effort: sink failures are
// logged and never reach the caller.
//
//	sink := notify.Fanout{notify.NewLogSink(logger)}
//	notifier := notify.New(sink, notify.WithLogger(logger))
package notify
