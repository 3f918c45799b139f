// Package shared provides the plumbing every other package in the Contract
// Actions SDK builds on: network normalization, Hedera client construction,
// operator credential loading (environment variables or a nearby .env file),
// key parsing, application settings, and the zap logger used as the
// diagnostic channel.
//
// # Environment Variables
//
// Operator credentials are read from HEDERA_ACCOUNT_ID / HEDERA_PRIVATE_KEY or
// their aliases, optionally scoped per network (TESTNET_HEDERA_ACCOUNT_ID,
// MAINNET_HEDERA_PRIVATE_KEY, ...). Application settings are described by the
// env tags on AppConfig.
package shared
