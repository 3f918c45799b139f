// Package contract implements action.RemoteEndpoint on top of a Hedera
// smart contract that stores a single number. Reads run getNumber(address)
// through a ContractCallQuery; writes run setNumber(uint256,address) through
// a ContractExecuteTransaction whose receipt is the confirmation step.
//
// # Getting Started
//
//	client, err := contract.NewClient(contract.ClientConfig{
//		OperatorAccountID:  "0.0.1234",
//		OperatorPrivateKey: "<private-key>",
//		Network:            "testnet",
//		ContractID:         "0.0.5005",
//	})
//
//	value, err := client.Read(ctx, action.Identity{AccountID: "0.0.1234"})
//
// Function names and gas are configurable for contracts that follow the same
// shape under different names.
package contract
