//go:build wireinject
// +build wireinject

package di

import (
	"hotelops/config"
	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	"hotelops/infras/redis"
	"hotelops/shared/cache"
	"hotelops/transport/http"
	"hotelops/transport/http/middleware"
	"hotelops/transport/http/router"

	"github.com/google/wire"

	bookingRepository "hotelops/internal/domains/booking/repository"
	bookingService "hotelops/internal/domains/booking/service"
	guestRepository "hotelops/internal/domains/guest/repository"
	guestService "hotelops/internal/domains/guest/service"
	paymentRepository "hotelops/internal/domains/payment/repository"
	paymentService "hotelops/internal/domains/payment/service"
	reportRepository "hotelops/internal/domains/report/repository"
	reportService "hotelops/internal/domains/report/service"
	roomRepository "hotelops/internal/domains/room/repository"
	roomService "hotelops/internal/domains/room/service"
	staffRepository "hotelops/internal/domains/staff/repository"
	staffService "hotelops/internal/domains/staff/service"

	bookingHandler "hotelops/internal/handlers/booking"
	guestHandler "hotelops/internal/handlers/guest"
	paymentHandler "hotelops/internal/handlers/payment"
	reportHandler "hotelops/internal/handlers/report"
	roomHandler "hotelops/internal/handlers/room"
	staffHandler "hotelops/internal/handlers/staff"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var reportDomain = wire.NewSet(
	reportRepository.New,
	reportService.New,
)

var domains = wire.NewSet(
	roomDomain,
	guestDomain,
	bookingDomain,
	paymentDomain,
	staffDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	staffHandler.New,
	reportHandler.New,
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
