//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/petalsoft/sakuradrill/internal/infrastructure/config"
	"github.com/petalsoft/sakuradrill/internal/infrastructure/database"
	"github.com/petalsoft/sakuradrill/internal/infrastructure/logging"
)

var configSet = wire.NewSet(
	config.Load,
)

var infrastructureSet = wire.NewSet(
	logging.NewLogger,
	database.NewRemotePool,
)

var repositorySet = wire.NewSet(
	provideCatalog,
	provideProgressRepository,
	provideRemoteStore,
)

var usecaseSet = wire.NewSet(
	provideRand,
	provideSyncer,
	provideDrill,
	provideReview,
	provideFlashcards,
	provideBackup,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		infrastructureSet,
		repositorySet,
		usecaseSet,
		wire.Struct(new(Container), "*"),
	)
	return nil, nil, nil
}
