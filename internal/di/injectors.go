//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"chatalyzer/internal"
	"chatalyzer/internal/controllers"
	"chatalyzer/internal/providers"
	"chatalyzer/internal/services"
	"chatalyzer/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewZstdCompressor,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		services.NewAnalyzerService,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
