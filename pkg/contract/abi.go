package contract

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

const wordSize = 32

var (
	ErrValueOutOfRange = errors.New("value is outside the uint256 range")

	maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
)

// EncodeUint256 returns value as a 32-byte big-endian word.
func EncodeUint256(value *big.Int) ([]byte, error) {
	if value == nil {
		return nil, fmt.Errorf("value is required")
	}
	if value.Sign() < 0 || value.Cmp(maxUint256) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValueOutOfRange, value.String())
	}
	return value.FillBytes(make([]byte, wordSize)), nil
}

// DecodeUint256 reads the index-th 32-byte word of an ABI-encoded result.
func DecodeUint256(data []byte, index int) (*big.Int, error) {
	if index < 0 {
		return nil, fmt.Errorf("word index cannot be negative")
	}
	end := (index + 1) * wordSize
	if len(data) < end {
		return nil, fmt.Errorf("contract result has %d bytes, need %d for word %d", len(data), end, index)
	}
	return new(big.Int).SetBytes(data[index*wordSize : end]), nil
}

// NormalizeAddress validates a 20-byte EVM address and returns it as 40
// lower-case hex characters without a 0x prefix.
func NormalizeAddress(address string) (string, error) {
	trimmed := strings.TrimSpace(address)
	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		trimmed = trimmed[2:]
	}
	if len(trimmed) != 40 {
		return "", fmt.Errorf("address %q must be 20 bytes of hex", address)
	}
	if _, err := hex.DecodeString(trimmed); err != nil {
		return "", fmt.Errorf("address %q is not valid hex: %w", address, err)
	}
	return strings.ToLower(trimmed), nil
}
