package identity

import (
	"context"
	"fmt"

	"github.com/hashgraph-online/contract-actions-go/pkg/action"
	"github.com/hashgraph-online/contract-actions-go/pkg/mirror"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"go.uber.org/zap"
)

type MirrorProvider struct {
	mirrorClient *mirror.Client
	accountID    hedera.AccountID
	logger       *zap.Logger
}

// NewMirrorProvider creates a new MirrorProvider for accountID.
func NewMirrorProvider(mirrorClient *mirror.Client, accountID string, logger *zap.Logger) (*MirrorProvider, error) {
	if mirrorClient == nil {
		return nil, fmt.Errorf("mirror client is required")
	}
	parsed, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &MirrorProvider{
		mirrorClient: mirrorClient,
		accountID:    parsed,
		logger:       logger.Named("identity"),
	}, nil
}

// Resolve looks the account up on the mirror node. Accounts without an EVM
// address resolve to their long-zero address.
func (p *MirrorProvider) Resolve(ctx context.Context) (action.Identity, error) {
	accountID := p.accountID.String()
	address, err := p.mirrorClient.GetAccountEVMAddress(ctx, accountID)
	if err != nil {
		return action.Identity{}, fmt.Errorf("failed to look up account %s: %w", accountID, err)
	}
	if address == "" {
		p.logger.Debug("mirror node reported no evm address, using long-zero address",
			zap.String("account_id", accountID))
		return longZeroIdentity(p.accountID), nil
	}

	return action.Identity{
		AccountID: accountID,
		Address:   address,
	}, nil
}
