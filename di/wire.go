//go:build wireinject
// +build wireinject

package di

import (
	"clockwise/config"
	"clockwise/infras/jwt"
	"clockwise/infras/otel"
	"clockwise/internal/domains/catalog"
	clockRenderer "clockwise/internal/domains/clock"
	clockHandler "clockwise/internal/handlers/clock"
	dashboardHandler "clockwise/internal/handlers/dashboard"
	"clockwise/shared/cache"
	"clockwise/transport/http"
	"clockwise/transport/http/middleware"
	"clockwise/transport/http/router"
	"clockwise/transport/http/view"

	sessionRepository "clockwise/internal/domains/session/repository"
	sessionService "clockwise/internal/domains/session/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewSessionMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
	cache.NewLimiter,
	view.New,
)

var sessionDomain = wire.NewSet(
	sessionRepository.New,
	sessionService.New,
)

var clockDomain = wire.NewSet(
	catalog.NewDefault,
	clockRenderer.New,
)

var domains = wire.NewSet(
	sessionDomain,
	clockDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	dashboardHandler.New,
	clockHandler.New,
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
