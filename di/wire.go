//go:build wireinject
// +build wireinject

package di

import (
	"reservo/config"
	"reservo/infras/otel"
	"reservo/infras/redis"
	"reservo/shared/cache"
	"reservo/transport/http"
	"reservo/transport/http/middleware"
	"reservo/transport/http/router"

	importerService "reservo/internal/domains/importer/service"
	reservationService "reservo/internal/domains/reservation/service"
	importerHandler "reservo/internal/handlers/importer"
	reservationHandler "reservo/internal/handlers/reservation"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCounter,
)

var reservationDomain = wire.NewSet(
	reservationService.New,
)

var importerDomain = wire.NewSet(
	importerService.New,
)

var domains = wire.NewSet(
	reservationDomain,
	importerDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	reservationHandler.New,
	importerHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
