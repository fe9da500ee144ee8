package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/sling/internal/domain"
)

// ListAccountsResult contains the node's accounts
type ListAccountsResult struct {
	ChainID  uint64
	Accounts []domain.Account
}

// ListAccounts is a use case for listing node-managed accounts
type ListAccounts struct {
	node NodeClient
}

// NewListAccounts creates a new ListAccounts use case
func NewListAccounts(node NodeClient) *ListAccounts {
	return &ListAccounts{node: node}
}

// Run executes the use case
func (uc *ListAccounts) Run(ctx context.Context) (*ListAccountsResult, error) {
	chainID, err := uc.node.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	addresses, err := uc.node.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}

	accounts := make([]domain.Account, 0, len(addresses))
	for _, addr := range addresses {
		balance, err := uc.node.Balance(ctx, addr)
		if err != nil {
			return nil, fmt.Errorf("failed to get balance of %s: %w", addr.Hex(), err)
		}
		accounts = append(accounts, domain.Account{Address: addr, Balance: balance})
	}

	return &ListAccountsResult{
		ChainID:  chainID.Uint64(),
		Accounts: accounts,
	}, nil
}
