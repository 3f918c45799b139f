package identity

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/hashgraph-online/contract-actions-go/pkg/action"
	"golang.org/x/crypto/sha3"
)

type KeyProvider struct {
	identity action.Identity
}

// NewKeyProvider creates a provider for an ECDSA account whose EVM address is
// derived from its secp256k1 public key. publicKey is SEC1 hex, compressed or
// uncompressed.
func NewKeyProvider(accountID string, publicKey string) (*KeyProvider, error) {
	parsedAccountID, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}
	publicKeyBytes, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(publicKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid public key hex: %w", err)
	}
	address, err := EVMAddressFromPublicKey(publicKeyBytes)
	if err != nil {
		return nil, err
	}

	return &KeyProvider{identity: action.Identity{
		AccountID: parsedAccountID.String(),
		Address:   address,
	}}, nil
}

// Resolve returns the key-derived identity.
func (p *KeyProvider) Resolve(ctx context.Context) (action.Identity, error) {
	if err := ctx.Err(); err != nil {
		return action.Identity{}, err
	}
	return p.identity, nil
}

// EVMAddressFromPublicKey returns the 0x-prefixed address of a secp256k1
// public key: the last 20 bytes of the Keccak-256 hash of the uncompressed
// point without its 0x04 prefix.
func EVMAddressFromPublicKey(publicKey []byte) (string, error) {
	parsed, err := btcec.ParsePubKey(publicKey)
	if err != nil {
		return "", fmt.Errorf("invalid secp256k1 public key: %w", err)
	}

	hash := sha3.NewLegacyKeccak256()
	hash.Write(parsed.SerializeUncompressed()[1:])
	digest := hash.Sum(nil)
	return "0x" + hex.EncodeToString(digest[len(digest)-20:]), nil
}
