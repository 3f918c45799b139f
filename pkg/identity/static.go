package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashgraph-online/contract-actions-go/pkg/action"
	"github.com/hashgraph-online/contract-actions-go/pkg/shared"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

var (
	_ action.IdentityProvider = (*StaticProvider)(nil)
	_ action.IdentityProvider = (*MirrorProvider)(nil)
	_ action.IdentityProvider = (*KeyProvider)(nil)
)

type StaticProvider struct {
	identity action.Identity
}

// NewStatic creates a provider that always resolves to accountID and its
// long-zero EVM address.
func NewStatic(accountID string) (*StaticProvider, error) {
	parsed, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}
	return &StaticProvider{identity: longZeroIdentity(parsed)}, nil
}

// FromOperator creates a StaticProvider for the SDK operator account.
func FromOperator(operator shared.Operator) *StaticProvider {
	return &StaticProvider{identity: longZeroIdentity(operator.AccountID)}
}

// Resolve returns the fixed identity.
func (p *StaticProvider) Resolve(ctx context.Context) (action.Identity, error) {
	if err := ctx.Err(); err != nil {
		return action.Identity{}, err
	}
	return p.identity, nil
}

// LongZeroAddress returns the 0x-prefixed EVM address Hedera assigns to an
// account number.
func LongZeroAddress(accountID hedera.AccountID) string {
	return "0x" + strings.ToLower(accountID.ToSolidityAddress())
}

func longZeroIdentity(accountID hedera.AccountID) action.Identity {
	return action.Identity{
		AccountID: accountID.String(),
		Address:   LongZeroAddress(accountID),
	}
}

func parseAccountID(accountID string) (hedera.AccountID, error) {
	trimmed := strings.TrimSpace(accountID)
	if trimmed == "" {
		return hedera.AccountID{}, fmt.Errorf("account ID is required")
	}
	parsed, err := hedera.AccountIDFromString(trimmed)
	if err != nil {
		return hedera.AccountID{}, fmt.Errorf("invalid account ID: %w", err)
	}
	return parsed, nil
}
