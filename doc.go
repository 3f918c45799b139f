// The Hashgraph Online Contract Actions SDK for Go drives a number-storing
// Hedera smart contract the way a browser front-end does: a read action that
// queries the caller's stored value and a write action that submits a new
// value and waits for the network receipt. Each action is idle or pending,
// and every outcome is reported to the user as a toast.
//
// # Packages
//
//   - action: the remote action controller, input parsing, and metrics
//   - contract: the Hedera contract endpoint (getNumber / setNumber)
//   - identity: caller identity providers (operator, mirror node, secp256k1 key)
//   - mirror: Hedera mirror node REST client
//   - notify: toast notifier with log and socket.io sinks
//   - shared: networks, operator credentials, app config, and logging
//   - app: wires the packages above from environment configuration
//
// # Documentation
//
// Hashgraph Online ecosystem: https://hol.org
//
// # Installation
//
//	go get github.com/hashgraph-online/contract-actions-go@latest
package contract_actions_go
