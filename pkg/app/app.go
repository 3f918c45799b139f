package app

import (
	"fmt"
	"strings"

	"github.com/hashgraph-online/contract-actions-go/pkg/action"
	"github.com/hashgraph-online/contract-actions-go/pkg/contract"
	"github.com/hashgraph-online/contract-actions-go/pkg/identity"
	"github.com/hashgraph-online/contract-actions-go/pkg/mirror"
	"github.com/hashgraph-online/contract-actions-go/pkg/notify"
	"github.com/hashgraph-online/contract-actions-go/pkg/shared"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type Options struct {
	Config   shared.AppConfig
	Operator shared.OperatorConfig
	Logger   *zap.Logger
	// Registerer receives the controller metrics. Nil keeps them unexported.
	Registerer prometheus.Registerer
	// Sinks are added after the log sink and the optional socket sink.
	Sinks []notify.Sink
}

type App struct {
	Controller *action.Controller
	Contract   *contract.Client
	Mirror     *mirror.Client
	Logger     *zap.Logger
}

// New wires a Controller for the configured contract.
func New(options Options) (*App, error) {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	config := options.Config

	network := options.Operator.Network
	if strings.TrimSpace(network) == "" {
		network = config.Network
	}

	contractClient, err := contract.NewClient(contract.ClientConfig{
		OperatorAccountID:  options.Operator.AccountID,
		OperatorPrivateKey: options.Operator.PrivateKey,
		Network:            network,
		ContractID:         config.ContractID,
		Gas:                config.Gas,
		ReadFunction:       config.ReadFunction,
		WriteFunction:      config.WriteFunction,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create contract client: %w", err)
	}

	mirrorClient, err := mirror.NewClient(mirror.Config{
		Network: network,
		BaseURL: config.MirrorBaseURL,
		APIKey:  config.MirrorAPIKey,
	})
	if err != nil {
		_ = contractClient.Close()
		return nil, fmt.Errorf("failed to create mirror client: %w", err)
	}

	provider, err := identity.NewMirrorProvider(mirrorClient, options.Operator.AccountID, logger)
	if err != nil {
		_ = contractClient.Close()
		return nil, err
	}

	sinks := notify.Fanout{notify.NewLogSink(logger)}
	if socketURL := strings.TrimSpace(config.ToastSocketURL); socketURL != "" {
		socketSink, err := notify.NewSocketSink(notify.SocketSinkConfig{URL: socketURL})
		if err != nil {
			_ = contractClient.Close()
			return nil, err
		}
		sinks = append(sinks, socketSink)
	}
	sinks = append(sinks, options.Sinks...)

	controller, err := action.NewController(action.Config{
		Endpoint:       contractClient,
		Identity:       provider,
		Notifier:       notify.New(sinks, notify.WithLogger(logger)),
		Logger:         logger,
		Metrics:        action.NewMetrics(options.Registerer),
		FieldName:      config.FieldName,
		ConfirmTimeout: config.ConfirmTimeout,
	})
	if err != nil {
		_ = contractClient.Close()
		return nil, err
	}

	return &App{
		Controller: controller,
		Contract:   contractClient,
		Mirror:     mirrorClient,
		Logger:     logger,
	}, nil
}

// NewFromEnv loads AppConfig and operator credentials from the environment
// and builds the logger they describe.
func NewFromEnv(registerer prometheus.Registerer) (*App, error) {
	config, err := shared.LoadAppConfig()
	if err != nil {
		return nil, err
	}
	operator, err := shared.OperatorConfigFromEnv()
	if err != nil {
		return nil, err
	}
	logger, err := shared.NewLogger(config.LogLevel, config.LogFormat)
	if err != nil {
		return nil, err
	}

	return New(Options{
		Config:     config,
		Operator:   operator,
		Logger:     logger,
		Registerer: registerer,
	})
}

// Close releases the contract client and flushes the logger.
func (a *App) Close() error {
	_ = a.Logger.Sync()
	return a.Contract.Close()
}
