package contract

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// BuildReadQuery builds the view call for the configured read function.
func BuildReadQuery(params ReadQueryParams) (*hedera.ContractCallQuery, error) {
	contractID, functionName, gas, err := resolveTarget(params.ContractID, params.Function, DefaultReadFunction, params.Gas)
	if err != nil {
		return nil, err
	}

	address, err := NormalizeAddress(params.CallerAddress)
	if err != nil {
		return nil, err
	}
	functionParameters, err := hedera.NewContractFunctionParameters().AddAddress(address)
	if err != nil {
		return nil, fmt.Errorf("failed to encode caller address: %w", err)
	}

	query := hedera.NewContractCallQuery().
		SetContractID(contractID).
		SetGas(gas).
		SetFunction(functionName, functionParameters)
	if params.MaxQueryPayment > 0 {
		query.SetMaxQueryPayment(hedera.HbarFromTinybar(params.MaxQueryPayment))
	}

	return query, nil
}

// BuildWriteTx builds the state-changing call for the configured write
// function. params.Value must be a 32-byte word from EncodeUint256.
func BuildWriteTx(params WriteTxParams) (*hedera.ContractExecuteTransaction, error) {
	contractID, functionName, gas, err := resolveTarget(params.ContractID, params.Function, DefaultWriteFunction, params.Gas)
	if err != nil {
		return nil, err
	}
	if len(params.Value) != wordSize {
		return nil, fmt.Errorf("value must be a %d-byte word, got %d bytes", wordSize, len(params.Value))
	}

	address, err := NormalizeAddress(params.CallerAddress)
	if err != nil {
		return nil, err
	}
	functionParameters, err := hedera.NewContractFunctionParameters().
		AddUint256(params.Value).
		AddAddress(address)
	if err != nil {
		return nil, fmt.Errorf("failed to encode caller address: %w", err)
	}

	transaction := hedera.NewContractExecuteTransaction().
		SetContractID(contractID).
		SetGas(gas).
		SetFunction(functionName, functionParameters)
	if memo := strings.TrimSpace(params.Memo); memo != "" {
		transaction.SetTransactionMemo(memo)
	}

	return transaction, nil
}

func resolveTarget(rawContractID, function, defaultFunction string, gas uint64) (hedera.ContractID, string, uint64, error) {
	trimmedContractID := strings.TrimSpace(rawContractID)
	if trimmedContractID == "" {
		return hedera.ContractID{}, "", 0, fmt.Errorf("contract ID is required")
	}
	contractID, err := hedera.ContractIDFromString(trimmedContractID)
	if err != nil {
		return hedera.ContractID{}, "", 0, fmt.Errorf("invalid contract ID: %w", err)
	}

	functionName := strings.TrimSpace(function)
	if functionName == "" {
		functionName = defaultFunction
	}
	if gas == 0 {
		gas = DefaultGas
	}

	return contractID, functionName, gas, nil
}
