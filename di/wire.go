//go:build wireinject
// +build wireinject

package di

import (
	"posada/config"
	"posada/infras/jwt"
	"posada/infras/kafka"
	"posada/infras/otel"
	"posada/infras/postgres"
	"posada/infras/redis"
	"posada/shared/cache"
	"posada/transport/http"
	"posada/transport/http/middleware"
	"posada/transport/http/router"

	occupationRepository "posada/internal/domains/occupation/repository"
	occupationService "posada/internal/domains/occupation/service"
	occupationHandler "posada/internal/handlers/occupation"

	guestRepository "posada/internal/domains/guest/repository"
	guestService "posada/internal/domains/guest/service"
	guestHandler "posada/internal/handlers/guest"

	roomRepository "posada/internal/domains/room/repository"
	roomService "posada/internal/domains/room/service"
	roomHandler "posada/internal/handlers/room"

	userRepository "posada/internal/domains/user/repository"
	userService "posada/internal/domains/user/service"
	userHandler "posada/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var occupationDomain = wire.NewSet(
	occupationRepository.New,
	occupationRepository.NewGuestLink,
	occupationService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var domains = wire.NewSet(
	occupationDomain,
	guestDomain,
	roomDomain,
	userDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	occupationHandler.New,
	guestHandler.New,
	roomHandler.New,
	userHandler.New,
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
