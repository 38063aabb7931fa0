//go:build wireinject
// +build wireinject

package di

import (
	"agentcrm/internal"
	"agentcrm/internal/controllers"
	"agentcrm/internal/providers"
	"agentcrm/internal/services"
	"agentcrm/internal/storage"
	"agentcrm/internal/structures"

	wire "github.com/google/wire"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		storage.NewCompressor,
		storage.NewFileManager,
		wire.Bind(new(services.SnapshotPersister), new(*storage.FileManager)),
		services.NewSystemClock,
		services.NewCrmService,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewHandler,
		internal.NewApp,
	)

	return nil, nil
}
