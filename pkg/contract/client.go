package contract

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/hashgraph-online/contract-actions-go/pkg/action"
	"github.com/hashgraph-online/contract-actions-go/pkg/shared"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

var _ action.RemoteEndpoint = (*Client)(nil)

type Client struct {
	hederaClient    *hedera.Client
	operatorID      hedera.AccountID
	contractID      hedera.ContractID
	gas             uint64
	readFunction    string
	writeFunction   string
	maxQueryPayment int64
}

// NewClient creates a new Client.
func NewClient(config ClientConfig) (*Client, error) {
	operator, err := shared.ParseOperator(shared.OperatorConfig{
		AccountID:  config.OperatorAccountID,
		PrivateKey: config.OperatorPrivateKey,
		Network:    config.Network,
	})
	if err != nil {
		return nil, err
	}

	contractID, readFunction, gas, err := resolveTarget(config.ContractID, config.ReadFunction, DefaultReadFunction, config.Gas)
	if err != nil {
		return nil, err
	}
	writeFunction := strings.TrimSpace(config.WriteFunction)
	if writeFunction == "" {
		writeFunction = DefaultWriteFunction
	}
	if config.MaxQueryPaymentTinybar < 0 {
		return nil, fmt.Errorf("max query payment cannot be negative")
	}

	hederaClient, err := shared.NewOperatorClient(operator)
	if err != nil {
		return nil, err
	}

	return &Client{
		hederaClient:    hederaClient,
		operatorID:      operator.AccountID,
		contractID:      contractID,
		gas:             gas,
		readFunction:    readFunction,
		writeFunction:   writeFunction,
		maxQueryPayment: config.MaxQueryPaymentTinybar,
	}, nil
}

// HederaClient returns the underlying Hedera SDK client.
func (c *Client) HederaClient() *hedera.Client {
	return c.hederaClient
}

// ContractID returns the contract the client calls.
func (c *Client) ContractID() string {
	return c.contractID.String()
}

// Close releases the connections held by the Hedera client.
func (c *Client) Close() error {
	return c.hederaClient.Close()
}

// Read returns the number stored for caller.
func (c *Client) Read(ctx context.Context, caller action.Identity) (*big.Int, error) {
	address, err := c.callerAddress(caller)
	if err != nil {
		return nil, err
	}

	query, err := BuildReadQuery(ReadQueryParams{
		ContractID:      c.contractID.String(),
		Function:        c.readFunction,
		Gas:             c.gas,
		CallerAddress:   address,
		MaxQueryPayment: c.maxQueryPayment,
	})
	if err != nil {
		return nil, err
	}

	result, err := runWithContext(ctx, func() (hedera.ContractFunctionResult, error) {
		return query.Execute(c.hederaClient)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute %s: %w", c.readFunction, err)
	}

	value, err := DecodeUint256(result.ContractCallResult, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s result: %w", c.readFunction, err)
	}
	return value, nil
}

// Write submits value for caller. The returned Submission settles once the
// network has produced a receipt.
func (c *Client) Write(ctx context.Context, value *big.Int, caller action.Identity) (action.Submission, error) {
	encoded, err := EncodeUint256(value)
	if err != nil {
		return nil, err
	}
	address, err := c.callerAddress(caller)
	if err != nil {
		return nil, err
	}

	transaction, err := BuildWriteTx(WriteTxParams{
		ContractID:    c.contractID.String(),
		Function:      c.writeFunction,
		Gas:           c.gas,
		Value:         encoded,
		CallerAddress: address,
	})
	if err != nil {
		return nil, err
	}

	response, err := runWithContext(ctx, func() (hedera.TransactionResponse, error) {
		return transaction.Execute(c.hederaClient)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute %s: %w", c.writeFunction, err)
	}

	return &Submission{
		hederaClient: c.hederaClient,
		response:     response,
	}, nil
}

// callerAddress prefers the identity's EVM address and falls back to the
// long-zero form of its account ID, then of the operator.
func (c *Client) callerAddress(caller action.Identity) (string, error) {
	if strings.TrimSpace(caller.Address) != "" {
		return NormalizeAddress(caller.Address)
	}

	accountID := c.operatorID
	if trimmed := strings.TrimSpace(caller.AccountID); trimmed != "" {
		parsed, err := hedera.AccountIDFromString(trimmed)
		if err != nil {
			return "", fmt.Errorf("invalid caller account ID: %w", err)
		}
		accountID = parsed
	}
	return NormalizeAddress(accountID.ToSolidityAddress())
}

type Submission struct {
	hederaClient *hedera.Client
	response     hedera.TransactionResponse
}

// TransactionID returns the ID of the submitted transaction.
func (s *Submission) TransactionID() string {
	return s.response.TransactionID.String()
}

// Wait blocks until the receipt is available or ctx is done. Any status
// other than SUCCESS is an error.
func (s *Submission) Wait(ctx context.Context) (action.Receipt, error) {
	receipt, err := runWithContext(ctx, func() (hedera.TransactionReceipt, error) {
		return s.response.GetReceipt(s.hederaClient)
	})
	if err != nil {
		return action.Receipt{}, fmt.Errorf("failed to get receipt for %s: %w", s.TransactionID(), err)
	}
	if receipt.Status != hedera.StatusSuccess {
		return action.Receipt{}, fmt.Errorf("transaction %s failed with status %s", s.TransactionID(), receipt.Status.String())
	}

	return action.Receipt{
		TransactionID: s.TransactionID(),
		Status:        receipt.Status.String(),
	}, nil
}

// runWithContext runs a blocking SDK call and stops waiting for it when ctx
// is done. The call itself keeps running until the SDK returns.
func runWithContext[T any](ctx context.Context, call func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	type outcome struct {
		value T
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		value, err := call()
		done <- outcome{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case result := <-done:
		return result.value, result.err
	}
}
