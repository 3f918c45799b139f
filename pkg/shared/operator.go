package shared

import (
	"fmt"
	"os"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

type OperatorConfig struct {
	AccountID  string
	PrivateKey string
	Network    string
}

// Operator is an OperatorConfig with its account and key parsed.
type Operator struct {
	AccountID  hedera.AccountID
	PrivateKey hedera.PrivateKey
	Network    string
}

var (
	networkEnvKeys    = []string{"HEDERA_NETWORK", "NETWORK"}
	accountIDEnvKeys  = []string{"HEDERA_ACCOUNT_ID", "HEDERA_OPERATOR_ID", "ACCOUNT_ID", "OPERATOR_ID"}
	privateKeyEnvKeys = []string{"HEDERA_PRIVATE_KEY", "HEDERA_OPERATOR_KEY", "PRIVATE_KEY", "OPERATOR_KEY"}

	scopedAccountIDSuffixes  = []string{"HEDERA_ACCOUNT_ID", "HEDERA_OPERATOR_ID", "OPERATOR_ID"}
	scopedPrivateKeySuffixes = []string{"HEDERA_PRIVATE_KEY", "HEDERA_OPERATOR_KEY", "OPERATOR_KEY"}
)

// OperatorConfigFromEnv reads operator credentials from the environment.
// Network-scoped variables (TESTNET_*, MAINNET_*, PREVIEWNET_*) win over the
// unscoped ones for the selected network.
func OperatorConfigFromEnv() (OperatorConfig, error) {
	loadDotEnvIfPresent()

	network := firstNonEmptyEnv(networkEnvKeys...)
	if network == "" {
		network = NetworkTestnet
	}

	accountID := firstNonEmptyEnv(accountIDEnvKeys...)
	privateKey := firstNonEmptyEnv(privateKeyEnvKeys...)

	if normalized, err := NormalizeNetwork(network); err == nil {
		if scoped := firstNonEmptyEnv(scopedEnvKeys(normalized, scopedAccountIDSuffixes)...); scoped != "" {
			accountID = scoped
		}
		if scoped := firstNonEmptyEnv(scopedEnvKeys(normalized, scopedPrivateKeySuffixes)...); scoped != "" {
			privateKey = scoped
		}
	}

	if accountID == "" {
		return OperatorConfig{}, fmt.Errorf("HEDERA_ACCOUNT_ID is required")
	}
	if privateKey == "" {
		return OperatorConfig{}, fmt.Errorf("HEDERA_PRIVATE_KEY is required")
	}

	return OperatorConfig{
		AccountID:  accountID,
		PrivateKey: privateKey,
		Network:    network,
	}, nil
}

// ParseOperator validates the credentials and parses the account ID and key.
func ParseOperator(config OperatorConfig) (Operator, error) {
	network, err := NormalizeNetwork(config.Network)
	if err != nil {
		return Operator{}, err
	}
	if strings.TrimSpace(config.AccountID) == "" {
		return Operator{}, fmt.Errorf("operator account ID is required")
	}
	if strings.TrimSpace(config.PrivateKey) == "" {
		return Operator{}, fmt.Errorf("operator private key is required")
	}

	accountID, err := hedera.AccountIDFromString(strings.TrimSpace(config.AccountID))
	if err != nil {
		return Operator{}, fmt.Errorf("invalid operator account ID: %w", err)
	}

	privateKey, err := ParsePrivateKey(config.PrivateKey)
	if err != nil {
		return Operator{}, err
	}

	return Operator{
		AccountID:  accountID,
		PrivateKey: privateKey,
		Network:    network,
	}, nil
}

// NewOperatorClient creates a Hedera client that signs as the operator.
func NewOperatorClient(operator Operator) (*hedera.Client, error) {
	client, err := NewHederaClient(operator.Network)
	if err != nil {
		return nil, err
	}
	client.SetOperator(operator.AccountID, operator.PrivateKey)
	return client, nil
}

func scopedEnvKeys(network string, suffixes []string) []string {
	prefix := strings.ToUpper(network) + "_"
	keys := make([]string, 0, len(suffixes))
	for _, suffix := range suffixes {
		keys = append(keys, prefix+suffix)
	}
	return keys
}

func firstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" {
			return value
		}
	}
	return ""
}

// ParsePrivateKey parses a DER or raw hex private key, trying ED25519 first,
// then ECDSA (secp256k1), then the generic decoder.
func ParsePrivateKey(raw string) (hedera.PrivateKey, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return hedera.PrivateKey{}, fmt.Errorf("private key cannot be empty")
	}

	ed25519Key, edErr := hedera.PrivateKeyFromStringEd25519(candidate)
	if edErr == nil {
		return ed25519Key, nil
	}

	ecdsaKey, ecdsaErr := hedera.PrivateKeyFromStringECDSA(candidate)
	if ecdsaErr == nil {
		return ecdsaKey, nil
	}

	genericKey, genericErr := hedera.PrivateKeyFromString(candidate)
	if genericErr == nil {
		return genericKey, nil
	}

	return hedera.PrivateKey{}, fmt.Errorf(
		"failed to parse private key as ED25519 (%v), ECDSA (%v), or generic (%v)",
		edErr,
		ecdsaErr,
		genericErr,
	)
}
