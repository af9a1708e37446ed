package router

import (
	"github.com/go-chi/chi/v5"

	"hotelops/internal/handlers/booking"
	"hotelops/internal/handlers/guest"
	"hotelops/internal/handlers/payment"
	"hotelops/internal/handlers/report"
	"hotelops/internal/handlers/room"
	"hotelops/internal/handlers/staff"
)

type DomainHandlers struct {
	Room    room.Handler
	Guest   guest.Handler
	Booking booking.Handler
	Payment payment.Handler
	Staff   staff.Handler
	Report  report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
