package notify

import (
	"context"

	"go.uber.org/zap"
)

type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a sink that writes toasts to logger. Error toasts are
// logged at error level, everything else at info.
func NewLogSink(logger *zap.Logger) *LogSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogSink{logger: logger.Named("toast")}
}

// Deliver implements Sink.
func (s *LogSink) Deliver(_ context.Context, toast Toast) error {
	fields := []zap.Field{
		zap.String("toast_id", toast.ID),
		zap.String("kind", string(toast.Kind)),
		zap.Time("time", toast.Time),
	}
	if toast.Kind == KindError {
		s.logger.Error(toast.Message, fields...)
		return nil
	}
	s.logger.Info(toast.Message, fields...)
	return nil
}
