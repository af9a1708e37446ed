package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"hotelops/config"
	"hotelops/infras/otel"
	bookingModel "hotelops/internal/domains/booking/model"
	"hotelops/internal/domains/report/model"
	"hotelops/internal/domains/report/repository"
	roomModel "hotelops/internal/domains/room/model"
	"hotelops/shared"
	"hotelops/shared/cache"
	"hotelops/shared/constant"
)

// Report exposes the reporting query library. Fixed report parameters
// (spend threshold, top-guest limit, upcoming window, idle months) come
// from configuration; the reference date is passed by the caller.
type Report interface {
	AvailableRooms(ctx context.Context) ([]roomModel.Room, error)
	GuestBookings(ctx context.Context, guestID string) ([]bookingModel.Booking, error)
	TotalRevenue(ctx context.Context) (float64, error)
	RevenueByRoomType(ctx context.Context) ([]model.RoomTypeRevenue, error)
	MonthlyRevenue(ctx context.Context, asOf time.Time) ([]model.MonthlyRevenue, error)
	OccupancyRateByRoomType(ctx context.Context, asOf time.Time) ([]model.RoomTypeOccupancy, error)
	GuestsWithMultipleBookings(ctx context.Context) ([]model.GuestBookingCount, error)
	BookingCountByRoomType(ctx context.Context) ([]model.RoomTypePopularity, error)
	AverageStayByRoomType(ctx context.Context) ([]model.RoomTypeStay, error)
	OverdueCheckouts(ctx context.Context, asOf time.Time) ([]model.OverdueCheckout, error)
	HighSpendingGuests(ctx context.Context) ([]model.GuestSpend, error)
	UpcomingCheckIns(ctx context.Context, asOf time.Time) ([]model.UpcomingCheckIn, error)
	LatePayments(ctx context.Context) ([]model.LatePayment, error)
	IdleRooms(ctx context.Context, asOf time.Time) ([]model.IdleRoom, error)
	MostBookedRoomType(ctx context.Context) (model.RoomTypePopularity, error)
	UnpaidBalances(ctx context.Context) ([]model.UnpaidBalance, error)
	TopGuestsBySpend(ctx context.Context) ([]model.GuestSpend, error)
	RoomTypeInventory(ctx context.Context) ([]model.RoomTypeInventory, error)
	PaymentStatusBreakdown(ctx context.Context) ([]model.PaymentStatusTotal, error)
}

type serviceImpl struct {
	repo  repository.Report
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Report, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Report {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// fromCache runs one report through the cache-aside path shared by every
// query: serve the cached result when present, otherwise fetch and store.
func fromCache[T any](ctx context.Context, s *serviceImpl, name, cacheKey string, fetch func(context.Context) (T, error)) (T, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+name)
	defer scope.End()

	var res T

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for report")

		return res, nil
	}

	res, err := fetch(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("report", name).Msg("failed to build report")

		return res, fmt.Errorf("failed to build report (%s): %w", name, err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("report", name).Msg("failed to save report to cache")
		}
	}()

	return res, nil
}

func reportKey(name string, parts ...string) string {
	return shared.BuildCacheKey(constant.CacheReportPrefix+":"+name, parts...)
}

func dateKey(asOf time.Time) string {
	return asOf.Format(constant.DateOnlyFormat)
}

func (s *serviceImpl) AvailableRooms(ctx context.Context) ([]roomModel.Room, error) {
	return fromCache(ctx, s, "AvailableRooms", reportKey("available_rooms"), func(ctx context.Context) ([]roomModel.Room, error) {
		return s.repo.AvailableRooms(ctx)
	})
}

func (s *serviceImpl) GuestBookings(ctx context.Context, guestID string) ([]bookingModel.Booking, error) {
	return fromCache(ctx, s, "GuestBookings", reportKey("guest_bookings", guestID), func(ctx context.Context) ([]bookingModel.Booking, error) {
		return s.repo.GuestBookings(ctx, guestID)
	})
}

func (s *serviceImpl) TotalRevenue(ctx context.Context) (float64, error) {
	return fromCache(ctx, s, "TotalRevenue", reportKey("total_revenue"), func(ctx context.Context) (float64, error) {
		return s.repo.TotalRevenue(ctx)
	})
}

func (s *serviceImpl) RevenueByRoomType(ctx context.Context) ([]model.RoomTypeRevenue, error) {
	return fromCache(ctx, s, "RevenueByRoomType", reportKey("revenue_by_room_type"), func(ctx context.Context) ([]model.RoomTypeRevenue, error) {
		return s.repo.RevenueByRoomType(ctx)
	})
}

func (s *serviceImpl) MonthlyRevenue(ctx context.Context, asOf time.Time) ([]model.MonthlyRevenue, error) {
	return fromCache(ctx, s, "MonthlyRevenue", reportKey("monthly_revenue", dateKey(asOf)), func(ctx context.Context) ([]model.MonthlyRevenue, error) {
		return s.repo.MonthlyRevenue(ctx, asOf)
	})
}

func (s *serviceImpl) OccupancyRateByRoomType(ctx context.Context, asOf time.Time) ([]model.RoomTypeOccupancy, error) {
	return fromCache(ctx, s, "OccupancyRateByRoomType", reportKey("occupancy_rate", dateKey(asOf)), func(ctx context.Context) ([]model.RoomTypeOccupancy, error) {
		return s.repo.OccupancyRateByRoomType(ctx, asOf)
	})
}

func (s *serviceImpl) GuestsWithMultipleBookings(ctx context.Context) ([]model.GuestBookingCount, error) {
	return fromCache(ctx, s, "GuestsWithMultipleBookings", reportKey("repeat_guests"), func(ctx context.Context) ([]model.GuestBookingCount, error) {
		return s.repo.GuestsWithMultipleBookings(ctx)
	})
}

func (s *serviceImpl) BookingCountByRoomType(ctx context.Context) ([]model.RoomTypePopularity, error) {
	return fromCache(ctx, s, "BookingCountByRoomType", reportKey("bookings_by_room_type"), func(ctx context.Context) ([]model.RoomTypePopularity, error) {
		return s.repo.BookingCountByRoomType(ctx)
	})
}

func (s *serviceImpl) AverageStayByRoomType(ctx context.Context) ([]model.RoomTypeStay, error) {
	return fromCache(ctx, s, "AverageStayByRoomType", reportKey("average_stay"), func(ctx context.Context) ([]model.RoomTypeStay, error) {
		return s.repo.AverageStayByRoomType(ctx)
	})
}

func (s *serviceImpl) OverdueCheckouts(ctx context.Context, asOf time.Time) ([]model.OverdueCheckout, error) {
	return fromCache(ctx, s, "OverdueCheckouts", reportKey("overdue_checkouts", dateKey(asOf)), func(ctx context.Context) ([]model.OverdueCheckout, error) {
		return s.repo.OverdueCheckouts(ctx, asOf)
	})
}

func (s *serviceImpl) HighSpendingGuests(ctx context.Context) ([]model.GuestSpend, error) {
	threshold := s.cfg.Report.SpendThreshold

	return fromCache(ctx, s, "HighSpendingGuests", reportKey("high_spenders", strconv.FormatFloat(threshold, 'f', -1, 64)), func(ctx context.Context) ([]model.GuestSpend, error) {
		return s.repo.HighSpendingGuests(ctx, threshold)
	})
}

func (s *serviceImpl) UpcomingCheckIns(ctx context.Context, asOf time.Time) ([]model.UpcomingCheckIn, error) {
	window := s.cfg.Report.UpcomingWindowDays

	return fromCache(ctx, s, "UpcomingCheckIns", reportKey("upcoming_check_ins", dateKey(asOf), strconv.Itoa(window)), func(ctx context.Context) ([]model.UpcomingCheckIn, error) {
		return s.repo.UpcomingCheckIns(ctx, asOf, window)
	})
}

func (s *serviceImpl) LatePayments(ctx context.Context) ([]model.LatePayment, error) {
	return fromCache(ctx, s, "LatePayments", reportKey("late_payments"), func(ctx context.Context) ([]model.LatePayment, error) {
		return s.repo.LatePayments(ctx)
	})
}

func (s *serviceImpl) IdleRooms(ctx context.Context, asOf time.Time) ([]model.IdleRoom, error) {
	months := s.cfg.Report.IdleMonths

	return fromCache(ctx, s, "IdleRooms", reportKey("idle_rooms", dateKey(asOf), strconv.Itoa(months)), func(ctx context.Context) ([]model.IdleRoom, error) {
		return s.repo.IdleRooms(ctx, asOf, months)
	})
}

func (s *serviceImpl) MostBookedRoomType(ctx context.Context) (model.RoomTypePopularity, error) {
	return fromCache(ctx, s, "MostBookedRoomType", reportKey("most_booked_room_type"), func(ctx context.Context) (model.RoomTypePopularity, error) {
		return s.repo.MostBookedRoomType(ctx)
	})
}

func (s *serviceImpl) UnpaidBalances(ctx context.Context) ([]model.UnpaidBalance, error) {
	return fromCache(ctx, s, "UnpaidBalances", reportKey("unpaid_balances"), func(ctx context.Context) ([]model.UnpaidBalance, error) {
		return s.repo.UnpaidBalances(ctx)
	})
}

func (s *serviceImpl) TopGuestsBySpend(ctx context.Context) ([]model.GuestSpend, error) {
	limit := s.cfg.Report.TopGuestsLimit

	return fromCache(ctx, s, "TopGuestsBySpend", reportKey("top_guests", strconv.Itoa(limit)), func(ctx context.Context) ([]model.GuestSpend, error) {
		return s.repo.TopGuestsBySpend(ctx, limit)
	})
}

func (s *serviceImpl) RoomTypeInventory(ctx context.Context) ([]model.RoomTypeInventory, error) {
	return fromCache(ctx, s, "RoomTypeInventory", reportKey("room_type_inventory"), func(ctx context.Context) ([]model.RoomTypeInventory, error) {
		return s.repo.RoomTypeInventory(ctx)
	})
}

func (s *serviceImpl) PaymentStatusBreakdown(ctx context.Context) ([]model.PaymentStatusTotal, error) {
	return fromCache(ctx, s, "PaymentStatusBreakdown", reportKey("payment_status_breakdown"), func(ctx context.Context) ([]model.PaymentStatusTotal, error) {
		return s.repo.PaymentStatusBreakdown(ctx)
	})
}
