// Package identity provides action.IdentityProvider implementations that
// resolve the caller's Hedera account and EVM address.
//
// StaticProvider returns the long-zero address of a fixed account.
// MirrorProvider asks the mirror node for the account's current EVM address
// on every Resolve, so alias changes are picked up between invocations.
// KeyProvider derives the address from a secp256k1 public key.
package identity
