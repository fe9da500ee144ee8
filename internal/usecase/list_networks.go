package usecase

import (
	"context"
	"time"

	"github.com/trebuchet-org/sling/internal/domain/config"
)

// NetworkResolver resolves network names from foundry.toml
type NetworkResolver interface {
	Networks() []string
	Resolve(nameOrURL string) (*config.Network, error)
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name    string
	RPCURL  string
	ChainID uint64
	Error   error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	resolver NetworkResolver
	probe    ChainIDProbe
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(resolver NetworkResolver, probe ChainIDProbe) *ListNetworks {
	return &ListNetworks{
		resolver: resolver,
		probe:    probe,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	names := uc.resolver.Networks()

	networks := make([]NetworkStatus, 0, len(names))
	for _, name := range names {
		status := NetworkStatus{Name: name}

		network, err := uc.resolver.Resolve(name)
		if err != nil {
			status.Error = err
			networks = append(networks, status)
			continue
		}
		status.RPCURL = network.RPCURL

		probeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		status.ChainID, status.Error = uc.probe.ProbeChainID(probeCtx, network.RPCURL)
		cancel()

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}
