//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/sling/internal/adapters"
	"github.com/trebuchet-org/sling/internal/config"
	"github.com/trebuchet-org/sling/internal/logging"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// InitApp creates a fully wired App instance and the cleanup releasing its connections
func InitApp(v *viper.Viper) (*App, func(), error) {
	wire.Build(
		// Configuration and logging
		config.ConfigSet,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewDeployContract,
		usecase.NewListAccounts,
		usecase.NewInspectArtifact,
		usecase.NewListArtifacts,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil, nil
}
