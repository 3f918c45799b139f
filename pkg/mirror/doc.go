// Package mirror is a small Hedera mirror node REST client. The contract
// front-end uses it to look up the EVM address of the account on whose
// behalf a contract action runs.
package mirror
