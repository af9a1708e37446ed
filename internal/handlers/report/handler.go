package report

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hotelops/infras/otel"
	"hotelops/internal/domains/report/service"
	"hotelops/shared/constant"
	"hotelops/shared/failure"
	"hotelops/shared/timezone"
	"hotelops/transport/http/response"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/available-rooms", handler.AvailableRooms)
		routerGroup.Get("/guests/{id}/bookings", handler.GuestBookings)
		routerGroup.Get("/total-revenue", handler.TotalRevenue)
		routerGroup.Get("/revenue-by-room-type", handler.RevenueByRoomType)
		routerGroup.Get("/monthly-revenue", handler.MonthlyRevenue)
		routerGroup.Get("/occupancy-rate", handler.OccupancyRateByRoomType)
		routerGroup.Get("/repeat-guests", handler.GuestsWithMultipleBookings)
		routerGroup.Get("/bookings-by-room-type", handler.BookingCountByRoomType)
		routerGroup.Get("/average-stay", handler.AverageStayByRoomType)
		routerGroup.Get("/overdue-checkouts", handler.OverdueCheckouts)
		routerGroup.Get("/high-spenders", handler.HighSpendingGuests)
		routerGroup.Get("/upcoming-check-ins", handler.UpcomingCheckIns)
		routerGroup.Get("/late-payments", handler.LatePayments)
		routerGroup.Get("/idle-rooms", handler.IdleRooms)
		routerGroup.Get("/most-booked-room-type", handler.MostBookedRoomType)
		routerGroup.Get("/unpaid-balances", handler.UnpaidBalances)
		routerGroup.Get("/top-guests", handler.TopGuestsBySpend)
		routerGroup.Get("/room-type-inventory", handler.RoomTypeInventory)
		routerGroup.Get("/payment-status-breakdown", handler.PaymentStatusBreakdown)
	})
}

// serve wraps the boilerplate shared by every report endpoint: open a span,
// fetch the result, and write it (or the error) as JSON.
func (handler *Handler) serve(w http.ResponseWriter, r *http.Request, name string, fetch func(ctx context.Context) (any, error)) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	res, err := fetch(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("report", name).Msg("failed to generate report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Report generated successfully: " + name)

	response.WithJSON(w, http.StatusOK, res)
}

// asOfFromRequest resolves the reference date for date-relative reports.
// An absent as_of parameter means "now" in the application timezone.
func asOfFromRequest(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get(constant.RequestParamAsOf)
	if raw == "" {
		return timezone.Now(), nil
	}

	asOf, err := timezone.Parse(constant.DateOnlyFormat, raw)
	if err != nil {
		return time.Time{}, failure.InvalidAsOfParam
	}

	return asOf, nil
}

// AvailableRooms lists rooms currently marked available.
func (handler *Handler) AvailableRooms(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "AvailableRooms", func(ctx context.Context) (any, error) {
		return handler.service.AvailableRooms(ctx)
	})
}

// GuestBookings lists all bookings made by one guest.
func (handler *Handler) GuestBookings(w http.ResponseWriter, r *http.Request) {
	guestID := chi.URLParam(r, constant.RequestParamID)

	handler.serve(w, r, "GuestBookings", func(ctx context.Context) (any, error) {
		return handler.service.GuestBookings(ctx, guestID)
	})
}

// TotalRevenue sums the agreed total of every booking.
func (handler *Handler) TotalRevenue(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "TotalRevenue", func(ctx context.Context) (any, error) {
		return handler.service.TotalRevenue(ctx)
	})
}

func (handler *Handler) RevenueByRoomType(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "RevenueByRoomType", func(ctx context.Context) (any, error) {
		return handler.service.RevenueByRoomType(ctx)
	})
}

// MonthlyRevenue breaks the reference year's revenue down by month.
func (handler *Handler) MonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfFromRequest(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	handler.serve(w, r, "MonthlyRevenue", func(ctx context.Context) (any, error) {
		return handler.service.MonthlyRevenue(ctx, asOf)
	})
}

func (handler *Handler) OccupancyRateByRoomType(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfFromRequest(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	handler.serve(w, r, "OccupancyRateByRoomType", func(ctx context.Context) (any, error) {
		return handler.service.OccupancyRateByRoomType(ctx, asOf)
	})
}

func (handler *Handler) GuestsWithMultipleBookings(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "GuestsWithMultipleBookings", func(ctx context.Context) (any, error) {
		return handler.service.GuestsWithMultipleBookings(ctx)
	})
}

func (handler *Handler) BookingCountByRoomType(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "BookingCountByRoomType", func(ctx context.Context) (any, error) {
		return handler.service.BookingCountByRoomType(ctx)
	})
}

func (handler *Handler) AverageStayByRoomType(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "AverageStayByRoomType", func(ctx context.Context) (any, error) {
		return handler.service.AverageStayByRoomType(ctx)
	})
}

// OverdueCheckouts lists stays whose check-out date has passed the
// reference date.
func (handler *Handler) OverdueCheckouts(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfFromRequest(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	handler.serve(w, r, "OverdueCheckouts", func(ctx context.Context) (any, error) {
		return handler.service.OverdueCheckouts(ctx, asOf)
	})
}

func (handler *Handler) HighSpendingGuests(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "HighSpendingGuests", func(ctx context.Context) (any, error) {
		return handler.service.HighSpendingGuests(ctx)
	})
}

func (handler *Handler) UpcomingCheckIns(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfFromRequest(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	handler.serve(w, r, "UpcomingCheckIns", func(ctx context.Context) (any, error) {
		return handler.service.UpcomingCheckIns(ctx, asOf)
	})
}

func (handler *Handler) LatePayments(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "LatePayments", func(ctx context.Context) (any, error) {
		return handler.service.LatePayments(ctx)
	})
}

func (handler *Handler) IdleRooms(w http.ResponseWriter, r *http.Request) {
	asOf, err := asOfFromRequest(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	handler.serve(w, r, "IdleRooms", func(ctx context.Context) (any, error) {
		return handler.service.IdleRooms(ctx, asOf)
	})
}

func (handler *Handler) MostBookedRoomType(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "MostBookedRoomType", func(ctx context.Context) (any, error) {
		return handler.service.MostBookedRoomType(ctx)
	})
}

func (handler *Handler) UnpaidBalances(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "UnpaidBalances", func(ctx context.Context) (any, error) {
		return handler.service.UnpaidBalances(ctx)
	})
}

func (handler *Handler) TopGuestsBySpend(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "TopGuestsBySpend", func(ctx context.Context) (any, error) {
		return handler.service.TopGuestsBySpend(ctx)
	})
}

func (handler *Handler) RoomTypeInventory(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "RoomTypeInventory", func(ctx context.Context) (any, error) {
		return handler.service.RoomTypeInventory(ctx)
	})
}

func (handler *Handler) PaymentStatusBreakdown(w http.ResponseWriter, r *http.Request) {
	handler.serve(w, r, "PaymentStatusBreakdown", func(ctx context.Context) (any, error) {
		return handler.service.PaymentStatusBreakdown(ctx)
	})
}
