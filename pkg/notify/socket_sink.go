package notify

import (
	"context"
	"fmt"
	"strings"
	"sync"

	socketio "github.com/zhouhui8915/go-socket.io-client"
)

const SocketEvent = "toast"

type SocketSinkConfig struct {
	URL    string
	APIKey string
	// Event overrides the socket.io event name. Defaults to SocketEvent.
	Event string
}

type emitter interface {
	Emit(event string, args ...interface{}) error
}

// SocketSink pushes toasts to a socket.io server, typically a bridge that
// renders them in a browser.
type SocketSink struct {
	mu      sync.Mutex
	emitter emitter
	event   string
}

// NewSocketSink connects to the socket.io server at config.URL.
func NewSocketSink(config SocketSinkConfig) (*SocketSink, error) {
	socketURL := strings.TrimSpace(config.URL)
	if socketURL == "" {
		return nil, fmt.Errorf("socket URL is required")
	}

	options := &socketio.Options{
		Transport: "websocket",
		Query:     map[string]string{},
		Header:    map[string][]string{},
	}
	if apiKey := strings.TrimSpace(config.APIKey); apiKey != "" {
		options.Query["apiKey"] = apiKey
		options.Header["x-api-key"] = []string{apiKey}
	}

	client, err := socketio.NewClient(socketURL, options)
	if err != nil {
		return nil, fmt.Errorf("failed to connect toast socket: %w", err)
	}
	return newSocketSink(client, config.Event), nil
}

func newSocketSink(target emitter, event string) *SocketSink {
	event = strings.TrimSpace(event)
	if event == "" {
		event = SocketEvent
	}
	return &SocketSink{emitter: target, event: event}
}

// Deliver implements Sink.
func (s *SocketSink) Deliver(ctx context.Context, toast Toast) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.emitter.Emit(s.event, toast); err != nil {
		return fmt.Errorf("failed to emit %s event: %w", s.event, err)
	}
	return nil
}
