package shared

import (
	"sync"
	"testing"
)

const testPrivateKey = "302e020100300506032b65700422042091132178e72057a1d7528025956fe39b0b847f200ab59b2fdd367017f3087137"

func resetOperatorEnv(t *testing.T) {
	t.Helper()
	dotenvLoadOnce = sync.Once{}
	dotenvLoadOnce.Do(func() {})

	keys := append([]string{}, networkEnvKeys...)
	keys = append(keys, accountIDEnvKeys...)
	keys = append(keys, privateKeyEnvKeys...)
	for _, network := range []string{NetworkMainnet, NetworkTestnet, NetworkPreviewnet} {
		keys = append(keys, scopedEnvKeys(network, scopedAccountIDSuffixes)...)
		keys = append(keys, scopedEnvKeys(network, scopedPrivateKeySuffixes)...)
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestScopedEnvKeys(t *testing.T) {
	keys := scopedEnvKeys(NetworkMainnet, scopedAccountIDSuffixes)
	expected := []string{"MAINNET_HEDERA_ACCOUNT_ID", "MAINNET_HEDERA_OPERATOR_ID", "MAINNET_OPERATOR_ID"}
	if len(keys) != len(expected) {
		t.Fatalf("unexpected keys: %v", keys)
	}
	for i := range expected {
		if keys[i] != expected[i] {
			t.Fatalf("expected %q, got %q", expected[i], keys[i])
		}
	}
}

func TestFirstNonEmptyEnv(t *testing.T) {
	t.Setenv("_TEST_FIRST_A", "   ")
	t.Setenv("_TEST_FIRST_B", "hello")

	if result := firstNonEmptyEnv("_TEST_FIRST_A", "_TEST_FIRST_B"); result != "hello" {
		t.Fatalf("expected 'hello', got %q", result)
	}
	if result := firstNonEmptyEnv("_TEST_NONEXISTENT_1"); result != "" {
		t.Fatalf("expected empty string, got %q", result)
	}
}

func TestOperatorConfigFromEnvMissingValues(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_PRIVATE_KEY", testPrivateKey)
	if _, err := OperatorConfigFromEnv(); err == nil {
		t.Fatal("expected error for missing account ID")
	}

	resetOperatorEnv(t)
	t.Setenv("HEDERA_ACCOUNT_ID", "0.0.12345")
	if _, err := OperatorConfigFromEnv(); err == nil {
		t.Fatal("expected error for missing private key")
	}
}

func TestOperatorConfigFromEnvDefaultNetwork(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("HEDERA_ACCOUNT_ID", "0.0.12345")
	t.Setenv("HEDERA_PRIVATE_KEY", testPrivateKey)

	config, err := OperatorConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Network != NetworkTestnet {
		t.Fatalf("expected default network 'testnet', got %q", config.Network)
	}
	if config.AccountID != "0.0.12345" {
		t.Fatalf("expected account ID '0.0.12345', got %q", config.AccountID)
	}
}

func TestOperatorConfigFromEnvScoped(t *testing.T) {
	cases := []struct {
		network  string
		scoped   string
		expected string
	}{
		{"mainnet", "MAINNET_HEDERA_ACCOUNT_ID", "0.0.99999"},
		{"testnet", "TESTNET_OPERATOR_ID", "0.0.88888"},
		{"previewnet", "PREVIEWNET_HEDERA_OPERATOR_ID", "0.0.77777"},
	}

	for _, tc := range cases {
		resetOperatorEnv(t)
		t.Setenv("HEDERA_NETWORK", tc.network)
		t.Setenv("HEDERA_ACCOUNT_ID", "0.0.11111")
		t.Setenv("HEDERA_PRIVATE_KEY", testPrivateKey)
		t.Setenv(tc.scoped, tc.expected)

		config, err := OperatorConfigFromEnv()
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.network, err)
		}
		if config.AccountID != tc.expected {
			t.Fatalf("%s: expected scoped account ID %q, got %q", tc.network, tc.expected, config.AccountID)
		}
	}
}

func TestOperatorConfigFromEnvFallbackOperatorKeys(t *testing.T) {
	resetOperatorEnv(t)
	t.Setenv("NETWORK", "testnet")
	t.Setenv("OPERATOR_ID", "0.0.77777")
	t.Setenv("OPERATOR_KEY", testPrivateKey)

	config, err := OperatorConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.AccountID != "0.0.77777" || config.PrivateKey != testPrivateKey {
		t.Fatalf("unexpected config: %+v", config)
	}
}

func TestParseOperator(t *testing.T) {
	operator, err := ParseOperator(OperatorConfig{
		AccountID:  " 0.0.12345 ",
		PrivateKey: testPrivateKey,
		Network:    "TESTNET",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if operator.AccountID.String() != "0.0.12345" {
		t.Fatalf("unexpected account ID: %s", operator.AccountID.String())
	}
	if operator.Network != NetworkTestnet {
		t.Fatalf("unexpected network: %s", operator.Network)
	}

	client, err := NewOperatorClient(operator)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.GetOperatorAccountID().String() != "0.0.12345" {
		t.Fatalf("unexpected client operator: %s", client.GetOperatorAccountID().String())
	}
}

func TestParseOperatorInvalid(t *testing.T) {
	cases := []OperatorConfig{
		{AccountID: "0.0.1", PrivateKey: testPrivateKey, Network: "badnet"},
		{AccountID: "", PrivateKey: testPrivateKey},
		{AccountID: "0.0.1", PrivateKey: ""},
		{AccountID: "not-an-account", PrivateKey: testPrivateKey},
		{AccountID: "0.0.1", PrivateKey: "notavalidkey"},
	}
	for _, config := range cases {
		if _, err := ParseOperator(config); err == nil {
			t.Fatalf("expected error for %+v", config)
		}
	}
}

func TestParsePrivateKey(t *testing.T) {
	for _, input := range []string{"", "   ", "notavalidkey", "0xinvalidhex"} {
		if _, err := ParsePrivateKey(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}

	key, err := ParsePrivateKey(testPrivateKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key.String() == "" {
		t.Fatal("expected non-empty key string")
	}
}
