package shared

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// AppConfig holds the contract front-end settings that are not operator
// credentials.
type AppConfig struct {
	Network        string        `env:"HEDERA_NETWORK"          envDefault:"testnet"`
	ContractID     string        `env:"CONTRACT_ID,required,notEmpty"`
	Gas            uint64        `env:"CONTRACT_GAS"            envDefault:"100000"`
	ReadFunction   string        `env:"CONTRACT_READ_FUNCTION"  envDefault:"getNumber"`
	WriteFunction  string        `env:"CONTRACT_WRITE_FUNCTION" envDefault:"setNumber"`
	ConfirmTimeout time.Duration `env:"CONFIRM_TIMEOUT"         envDefault:"2m"`
	FieldName      string        `env:"NUMBER_FIELD"            envDefault:"numberToSet"`
	MirrorBaseURL  string        `env:"MIRROR_BASE_URL"`
	MirrorAPIKey   string        `env:"MIRROR_API_KEY"`
	ToastSocketURL string        `env:"TOAST_SOCKET_URL"`
	LogLevel       string        `env:"LOG_LEVEL"               envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT"              envDefault:"console"`
}

// LoadAppConfig reads AppConfig from the environment, loading a nearby .env
// file first when present.
func LoadAppConfig() (AppConfig, error) {
	loadDotEnvIfPresent()

	config, err := env.ParseAs[AppConfig]()
	if err != nil {
		return AppConfig{}, fmt.Errorf("parse env: %w", err)
	}

	network, err := NormalizeNetwork(config.Network)
	if err != nil {
		return AppConfig{}, err
	}
	config.Network = network

	if config.Gas == 0 {
		return AppConfig{}, fmt.Errorf("CONTRACT_GAS must be positive")
	}
	if config.ConfirmTimeout < 0 {
		return AppConfig{}, fmt.Errorf("CONFIRM_TIMEOUT cannot be negative")
	}

	return config, nil
}
