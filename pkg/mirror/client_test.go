package mirror

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClientDefaults(t *testing.T) {
	cases := []struct {
		network  string
		expected string
	}{
		{"testnet", "https://testnet.mirrornode.hedera.com"},
		{"", "https://testnet.mirrornode.hedera.com"},
		{"mainnet", "https://mainnet-public.mirrornode.hedera.com"},
		{"previewnet", "https://previewnet.mirrornode.hedera.com"},
	}

	for _, tc := range cases {
		client, err := NewClient(Config{Network: tc.network})
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.network, err)
		}
		if client.BaseURL() != tc.expected {
			t.Fatalf("expected %s for %q, got %s", tc.expected, tc.network, client.BaseURL())
		}
	}
}

func TestNewClientCustomBaseURL(t *testing.T) {
	client, err := NewClient(Config{
		Network: "badnet",
		BaseURL: "https://custom.example.com/",
		APIKey:  " my-api-key ",
		Headers: map[string]string{"X-Custom": "test"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.baseURL != "https://custom.example.com" {
		t.Fatalf("unexpected baseURL: %s", client.baseURL)
	}
	if client.apiKey != "my-api-key" {
		t.Fatalf("expected trimmed api key, got %q", client.apiKey)
	}
	if client.headers["X-Custom"] != "test" {
		t.Fatalf("expected header X-Custom=test, got %q", client.headers["X-Custom"])
	}
}

func TestNewClientInvalid(t *testing.T) {
	cases := []Config{
		{Network: "badnet"},
		{BaseURL: "ftp://mirror.example.com"},
		{BaseURL: "https://"},
		{BaseURL: "://broken"},
	}
	for _, config := range cases {
		if _, err := NewClient(config); err == nil {
			t.Fatalf("expected error for %+v", config)
		}
	}
}

func TestNewClientWithHTTPClient(t *testing.T) {
	customHTTP := &http.Client{}
	client, err := NewClient(Config{HTTPClient: customHTTP})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.httpClient != customHTTP {
		t.Fatal("expected custom http client to be used")
	}
}

func TestGetAccountEmpty(t *testing.T) {
	client, _ := NewClient(Config{Network: "testnet"})
	if _, err := client.GetAccount(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty account ID")
	}
}

func TestGetAccountSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/accounts/0.0.1001" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("unexpected accept header: %s", r.Header.Get("Accept"))
		}
		w.Write([]byte(`{"account":"0.0.1001","evm_address":"0x00000000000000000000000000000000000003e9","memo":"number app","deleted":false}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL})
	info, err := client.GetAccount(context.Background(), " 0.0.1001 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Account != "0.0.1001" || info.Memo != "number app" {
		t.Fatalf("unexpected account info: %+v", info)
	}
	if info.EVMAddress != "0x00000000000000000000000000000000000003e9" {
		t.Fatalf("unexpected evm address: %s", info.EVMAddress)
	}
}

func TestGetAccountEVMAddress(t *testing.T) {
	responses := map[string]string{
		"/api/v1/accounts/0.0.1": `{"account":"0.0.1","evm_address":"0xABCDEFabcdef0000000000000000000000000001"}`,
		"/api/v1/accounts/0.0.2": `{"account":"0.0.2","evm_address":"abcdefabcdef0000000000000000000000000002"}`,
		"/api/v1/accounts/0.0.3": `{"account":"0.0.3","evm_address":null}`,
		"/api/v1/accounts/0.0.4": `{"account":"0.0.4","evm_address":"0x0000000000000000000000000000000000000004","deleted":true}`,
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(responses[r.URL.Path]))
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL})
	ctx := context.Background()

	address, err := client.GetAccountEVMAddress(ctx, "0.0.1")
	if err != nil || address != "0xabcdefabcdef0000000000000000000000000001" {
		t.Fatalf("unexpected result %q, %v", address, err)
	}
	address, err = client.GetAccountEVMAddress(ctx, "0.0.2")
	if err != nil || address != "0xabcdefabcdef0000000000000000000000000002" {
		t.Fatalf("unexpected result %q, %v", address, err)
	}
	address, err = client.GetAccountEVMAddress(ctx, "0.0.3")
	if err != nil || address != "" {
		t.Fatalf("expected empty address, got %q, %v", address, err)
	}
	if _, err := client.GetAccountEVMAddress(ctx, "0.0.4"); err == nil {
		t.Fatal("expected error for deleted account")
	}
}

func TestGetJSONNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"_status":{"messages":[{"message":"Not found"}]}}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL})
	_, err := client.GetAccount(context.Background(), "0.0.404")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "Not found") {
		t.Fatalf("expected mirror message in error, got %v", err)
	}
}

func TestGetJSONServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL})
	_, err := client.GetAccount(context.Background(), "0.0.1")
	if err == nil || !strings.Contains(err.Error(), "status 500: upstream exploded") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetJSONInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL})
	if _, err := client.GetAccount(context.Background(), "0.0.1"); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestGetJSONSendsAuthAndHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("expected bearer token, got %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("X-Custom") != "value" {
			t.Errorf("expected X-Custom header, got %q", r.Header.Get("X-Custom"))
		}
		w.Write([]byte(`{"account":"0.0.1"}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Headers: map[string]string{"X-Custom": "value"},
	})
	if _, err := client.GetAccount(context.Background(), "0.0.1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetJSONCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"account":"0.0.1"}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.GetAccount(ctx, "0.0.1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGetContractResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/contracts/results/0.0.1001-1700000000-000000001" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"contract_id":"0.0.5005","gas_used":24512,"gas_limit":100000,"result":"SUCCESS","status":"0x1"}`))
	}))
	defer server.Close()

	client, _ := NewClient(Config{BaseURL: server.URL})
	result, err := client.GetContractResult(context.Background(), "0.0.1001@1700000000.000000001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ContractID != "0.0.5005" || result.GasUsed != 24512 || result.Result != "SUCCESS" {
		t.Fatalf("unexpected contract result: %+v", result)
	}

	if _, err := client.GetContractResult(context.Background(), " "); err == nil {
		t.Fatal("expected error for empty transaction ID")
	}
}

func TestNormalizeTransactionID(t *testing.T) {
	cases := map[string]string{
		"0.0.1001@1700000000.000000001": "0.0.1001-1700000000-000000001",
		"0.0.1001-1700000000-000000001": "0.0.1001-1700000000-000000001",
		"0xabc123":                      "0xabc123",
	}
	for input, expected := range cases {
		normalized, err := NormalizeTransactionID(input)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", input, err)
		}
		if normalized != expected {
			t.Fatalf("expected %q, got %q", expected, normalized)
		}
	}

	for _, input := range []string{"", "0.0.1001@1700000000", "@1700000000.1"} {
		if _, err := NormalizeTransactionID(input); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}
