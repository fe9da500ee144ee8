package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/sling/internal/adapters/abi"
	"github.com/trebuchet-org/sling/internal/adapters/artifacts"
	"github.com/trebuchet-org/sling/internal/adapters/blockchain"
	"github.com/trebuchet-org/sling/internal/adapters/interactive"
	"github.com/trebuchet-org/sling/internal/adapters/progress"
	"github.com/trebuchet-org/sling/internal/config"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	artifacts.ProvideFs,
	artifacts.NewRepository,
	wire.Bind(new(usecase.ArtifactRepository), new(*artifacts.Repository)),
)

// ABISet provides the constructor encoder
var ABISet = wire.NewSet(
	abi.NewEncoder,
	wire.Bind(new(usecase.DeploymentEncoder), new(*abi.Encoder)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.ProvideClientAdapter,
	wire.Bind(new(usecase.NodeClient), new(*blockchain.ClientAdapter)),

	blockchain.NewChainIDProbe,
	wire.Bind(new(usecase.ChainIDProbe), new(*blockchain.ChainIDProbe)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.AccountSelector), new(*interactive.SelectorAdapter)),

	progress.NewSink,
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	wire.Bind(new(usecase.NetworkResolver), new(*config.NetworkResolver)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ABISet,
	BlockchainSet,
	InteractiveSet,
	ConfigSet,
)
