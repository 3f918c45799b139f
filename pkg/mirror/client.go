package mirror

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashgraph-online/contract-actions-go/pkg/shared"
)

var ErrNotFound = errors.New("mirror node resource not found")

type Config struct {
	Network    string
	BaseURL    string
	HTTPClient *http.Client
	APIKey     string
	Headers    map[string]string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	headers    map[string]string
}

// NewClient creates a new Client.
func NewClient(config Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(config.BaseURL), "/")
	if baseURL == "" {
		defaultURL, err := shared.DefaultMirrorBaseURL(config.Network)
		if err != nil {
			return nil, err
		}
		baseURL = defaultURL
	}

	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mirror base URL: %w", err)
	}
	if parsedBaseURL.Scheme != "http" && parsedBaseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid mirror base URL: scheme must be http or https")
	}
	if strings.TrimSpace(parsedBaseURL.Host) == "" {
		return nil, fmt.Errorf("invalid mirror base URL: host is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	headers := make(map[string]string, len(config.Headers))
	for key, value := range config.Headers {
		headers[key] = value
	}

	return &Client{
		baseURL:    strings.TrimRight(parsedBaseURL.String(), "/"),
		httpClient: httpClient,
		apiKey:     strings.TrimSpace(config.APIKey),
		headers:    headers,
	}, nil
}

// BaseURL returns the mirror node root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetAccount returns the mirror node view of an account. accountID may be a
// Hedera ID (0.0.x), an EVM address, or an alias.
func (c *Client) GetAccount(ctx context.Context, accountID string) (AccountInfo, error) {
	var accountInfo AccountInfo
	normalizedAccountID := strings.TrimSpace(accountID)
	if normalizedAccountID == "" {
		return accountInfo, fmt.Errorf("account ID is required")
	}

	path := fmt.Sprintf("/api/v1/accounts/%s", url.PathEscape(normalizedAccountID))
	if err := c.getJSON(ctx, path, &accountInfo); err != nil {
		return accountInfo, err
	}

	return accountInfo, nil
}

// GetAccountEVMAddress returns the 0x-prefixed EVM address the mirror node
// reports for the account, or an empty string when it has none.
func (c *Client) GetAccountEVMAddress(ctx context.Context, accountID string) (string, error) {
	accountInfo, err := c.GetAccount(ctx, accountID)
	if err != nil {
		return "", err
	}
	if accountInfo.Deleted {
		return "", fmt.Errorf("account %s is deleted", accountID)
	}

	address := strings.TrimSpace(accountInfo.EVMAddress)
	if address == "" {
		return "", nil
	}
	if !strings.HasPrefix(address, "0x") {
		address = "0x" + address
	}
	return strings.ToLower(address), nil
}

// GetContractResult returns the contract call record for a transaction. The
// ID may use the SDK form (0.0.x@seconds.nanos) or the mirror form
// (0.0.x-seconds-nanos).
func (c *Client) GetContractResult(ctx context.Context, transactionID string) (ContractResult, error) {
	var result ContractResult
	normalizedTransactionID, err := NormalizeTransactionID(transactionID)
	if err != nil {
		return result, err
	}

	path := fmt.Sprintf("/api/v1/contracts/results/%s", url.PathEscape(normalizedTransactionID))
	if err := c.getJSON(ctx, path, &result); err != nil {
		return result, err
	}

	return result, nil
}

// NormalizeTransactionID converts an SDK transaction ID to the dashed form
// used in mirror node paths.
func NormalizeTransactionID(transactionID string) (string, error) {
	trimmed := strings.TrimSpace(transactionID)
	if trimmed == "" {
		return "", fmt.Errorf("transaction ID is required")
	}
	if !strings.Contains(trimmed, "@") {
		return trimmed, nil
	}

	account, validStart, _ := strings.Cut(trimmed, "@")
	seconds, nanos, ok := strings.Cut(validStart, ".")
	if account == "" || seconds == "" || !ok || nanos == "" {
		return "", fmt.Errorf("invalid transaction ID %q", transactionID)
	}
	return fmt.Sprintf("%s-%s-%s", account, seconds, nanos), nil
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	for key, value := range c.headers {
		request.Header.Set(key, value)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("mirror node request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read mirror node response: %w", err)
	}

	if response.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, describeError(body))
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf(
			"mirror node request failed with status %d: %s",
			response.StatusCode,
			describeError(body),
		)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode mirror node response: %w", err)
	}

	return nil
}

func describeError(body []byte) string {
	var decoded errorResponse
	if err := json.Unmarshal(body, &decoded); err == nil && len(decoded.Status.Messages) > 0 {
		messages := make([]string, 0, len(decoded.Status.Messages))
		for _, message := range decoded.Status.Messages {
			messages = append(messages, message.Message)
		}
		return strings.Join(messages, "; ")
	}
	return strings.TrimSpace(string(body))
}
