package blockchain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// ChainIDProbe dials arbitrary node URLs to read their chain ID
type ChainIDProbe struct{}

// NewChainIDProbe creates a new chain ID probe
func NewChainIDProbe() *ChainIDProbe {
	return &ChainIDProbe{}
}

// ProbeChainID connects to rpcURL and returns its chain ID
func (p *ChainIDProbe) ProbeChainID(ctx context.Context, rpcURL string) (uint64, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return chainID.Uint64(), nil
}

// Ensure the probe implements the interface
var _ usecase.ChainIDProbe = (*ChainIDProbe)(nil)
