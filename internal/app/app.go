package app

import (
	"github.com/trebuchet-org/sling/internal/domain/config"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	DeployContract  *usecase.DeployContract
	ListAccounts    *usecase.ListAccounts
	InspectArtifact *usecase.InspectArtifact
	ListArtifacts   *usecase.ListArtifacts
	ListNetworks    *usecase.ListNetworks
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	deployContract *usecase.DeployContract,
	listAccounts *usecase.ListAccounts,
	inspectArtifact *usecase.InspectArtifact,
	listArtifacts *usecase.ListArtifacts,
	listNetworks *usecase.ListNetworks,
) *App {
	return &App{
		Config:          cfg,
		DeployContract:  deployContract,
		ListAccounts:    listAccounts,
		InspectArtifact: inspectArtifact,
		ListArtifacts:   listArtifacts,
		ListNetworks:    listNetworks,
	}
}
