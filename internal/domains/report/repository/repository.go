package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hotelops/infras/otel"
	"hotelops/infras/postgres"
	bookingModel "hotelops/internal/domains/booking/model"
	"hotelops/internal/domains/report/model"
	roomModel "hotelops/internal/domains/room/model"
	"hotelops/shared/constant"
	"hotelops/shared/logger"
)

// Report is the read-only query library over the booking schema. Every
// method is a pure projection of stored state; the date-relative ones take
// the reference date as an explicit parameter instead of reading the
// database clock, so results stay deterministic and testable.
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
	HighSpendingGuests(ctx context.Context, threshold float64) ([]model.GuestSpend, error)
	UpcomingCheckIns(ctx context.Context, asOf time.Time, windowDays int) ([]model.UpcomingCheckIn, error)
	LatePayments(ctx context.Context) ([]model.LatePayment, error)
	IdleRooms(ctx context.Context, asOf time.Time, idleMonths int) ([]model.IdleRoom, error)
	MostBookedRoomType(ctx context.Context) (model.RoomTypePopularity, error)
	UnpaidBalances(ctx context.Context) ([]model.UnpaidBalance, error)
	TopGuestsBySpend(ctx context.Context, limit int) ([]model.GuestSpend, error)
	RoomTypeInventory(ctx context.Context) ([]model.RoomTypeInventory, error)
	PaymentStatusBreakdown(ctx context.Context) ([]model.PaymentStatusTotal, error)
}

const (
	queryAvailableRooms = `
		SELECT id, room_type, price, is_available, created_at, modified_at, created_by, modified_by
		FROM rooms
		WHERE is_available
		ORDER BY room_type, price`

	queryGuestBookings = `
		SELECT id, guest_id, room_id, check_in, check_out, total_amount, created_at, modified_at, created_by, modified_by
		FROM bookings
		WHERE guest_id = $1
		ORDER BY check_in`

	queryTotalRevenue = `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM bookings`

	queryRevenueByRoomType = `
		SELECT r.room_type, SUM(b.total_amount) AS revenue
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		GROUP BY r.room_type
		ORDER BY revenue DESC`

	queryMonthlyRevenue = `
		SELECT EXTRACT(MONTH FROM check_in)::int AS month, SUM(total_amount) AS revenue
		FROM bookings
		WHERE EXTRACT(YEAR FROM check_in) = EXTRACT(YEAR FROM $1::date)
		GROUP BY month
		ORDER BY month`

	// Occupancy here is bookings per elapsed day since the room type's
	// first check-in, as a percentage. GREATEST keeps the divisor at one
	// when the first check-in is on or after the reference date.
	queryOccupancyRateByRoomType = `
		SELECT r.room_type,
		       COUNT(b.id) AS bookings,
		       GREATEST($1::date - MIN(b.check_in), 1) AS span_days,
		       ROUND(COUNT(b.id)::numeric * 100 / GREATEST($1::date - MIN(b.check_in), 1), 2) AS occupancy_rate
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		GROUP BY r.room_type
		ORDER BY r.room_type`

	queryGuestsWithMultipleBookings = `
		SELECT g.id AS guest_id, g.name, COUNT(b.id) AS booking_count
		FROM guests g
		JOIN bookings b ON b.guest_id = g.id
		GROUP BY g.id, g.name
		HAVING COUNT(b.id) > 1
		ORDER BY booking_count DESC, g.name`

	queryBookingCountByRoomType = `
		SELECT r.room_type, COUNT(b.id) AS bookings
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		GROUP BY r.room_type
		ORDER BY bookings DESC`

	queryAverageStayByRoomType = `
		SELECT r.room_type, ROUND(AVG(b.check_out - b.check_in), 2) AS avg_stay_days
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		GROUP BY r.room_type
		ORDER BY r.room_type`

	queryOverdueCheckouts = `
		SELECT b.id AS booking_id, g.name AS guest_name, b.room_id, r.room_type, b.check_out
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		JOIN guests g ON g.id = b.guest_id
		WHERE b.check_out < $1::date AND r.is_available = FALSE
		ORDER BY b.check_out`

	queryHighSpendingGuests = `
		SELECT g.id AS guest_id, g.name, SUM(b.total_amount) AS total_spend
		FROM guests g
		JOIN bookings b ON b.guest_id = g.id
		GROUP BY g.id, g.name
		HAVING SUM(b.total_amount) > $1
		ORDER BY total_spend DESC`

	queryUpcomingCheckIns = `
		SELECT b.id AS booking_id, g.name AS guest_name, r.room_type, b.check_in
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		JOIN guests g ON g.id = b.guest_id
		WHERE b.check_in >= $1::date AND b.check_in <= $1::date + $2::int
		ORDER BY b.check_in`

	queryLatePayments = `
		SELECT p.id AS payment_id, p.booking_id, p.amount_paid, p.payment_date, b.check_out
		FROM payments p
		JOIN bookings b ON b.id = p.booking_id
		WHERE p.payment_date > b.check_out
		ORDER BY p.payment_date`

	queryIdleRooms = `
		SELECT r.id AS room_id, r.room_type, r.price
		FROM rooms r
		WHERE NOT EXISTS (
			SELECT 1
			FROM bookings b
			WHERE b.room_id = r.id
			  AND b.check_in >= $1::date - ($2::int * INTERVAL '1 month')
		)
		ORDER BY r.room_type, r.price`

	// Ties are broken by whatever ordering the engine settles on after the
	// booking count; the report is defined as a single row either way.
	queryMostBookedRoomType = `
		SELECT r.room_type, COUNT(b.id) AS bookings
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		GROUP BY r.room_type
		ORDER BY bookings DESC
		LIMIT 1`

	queryUnpaidBalances = `
		SELECT b.id AS booking_id,
		       g.name AS guest_name,
		       b.total_amount,
		       COALESCE(SUM(p.amount_paid), 0) AS amount_paid,
		       b.total_amount - COALESCE(SUM(p.amount_paid), 0) AS unpaid_amount
		FROM bookings b
		JOIN guests g ON g.id = b.guest_id
		LEFT JOIN payments p ON p.booking_id = b.id
		GROUP BY b.id, g.name, b.total_amount
		HAVING b.total_amount - COALESCE(SUM(p.amount_paid), 0) > 0
		ORDER BY unpaid_amount DESC`

	queryTopGuestsBySpend = `
		SELECT g.id AS guest_id, g.name, SUM(b.total_amount) AS total_spend
		FROM guests g
		JOIN bookings b ON b.guest_id = g.id
		GROUP BY g.id, g.name
		ORDER BY total_spend DESC
		LIMIT $1`

	queryRoomTypeInventory = `
		SELECT room_type, COUNT(*) AS rooms, ROUND(AVG(price), 2) AS avg_price
		FROM rooms
		GROUP BY room_type
		ORDER BY room_type`

	queryPaymentStatusBreakdown = `
		SELECT status, COUNT(*) AS payments, COALESCE(SUM(amount_paid), 0) AS total
		FROM payments
		GROUP BY status
		ORDER BY status`
)

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) selectRows(ctx context.Context, name, query string, dest any, args ...any) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, model.EntityName, name))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err := repo.db.Read.SelectContext(ctx, dest, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to run report query (%s): %w", name, err)
	}

	return nil
}

func (repo *repositoryImpl) AvailableRooms(ctx context.Context) ([]roomModel.Room, error) {
	var rows []roomModel.Room

	return rows, repo.selectRows(ctx, "AvailableRooms", queryAvailableRooms, &rows)
}

func (repo *repositoryImpl) GuestBookings(ctx context.Context, guestID string) ([]bookingModel.Booking, error) {
	var rows []bookingModel.Booking

	return rows, repo.selectRows(ctx, "GuestBookings", queryGuestBookings, &rows, guestID)
}

func (repo *repositoryImpl) TotalRevenue(ctx context.Context) (float64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.TotalRevenue", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryTotalRevenue)

	var total float64
	if err := repo.db.Read.GetContext(ctx, &total, queryTotalRevenue); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to run report query (TotalRevenue): %w", err)
	}

	return total, nil
}

func (repo *repositoryImpl) RevenueByRoomType(ctx context.Context) ([]model.RoomTypeRevenue, error) {
	var rows []model.RoomTypeRevenue

	return rows, repo.selectRows(ctx, "RevenueByRoomType", queryRevenueByRoomType, &rows)
}

func (repo *repositoryImpl) MonthlyRevenue(ctx context.Context, asOf time.Time) ([]model.MonthlyRevenue, error) {
	var rows []model.MonthlyRevenue

	return rows, repo.selectRows(ctx, "MonthlyRevenue", queryMonthlyRevenue, &rows, asOf)
}

func (repo *repositoryImpl) OccupancyRateByRoomType(ctx context.Context, asOf time.Time) ([]model.RoomTypeOccupancy, error) {
	var rows []model.RoomTypeOccupancy

	return rows, repo.selectRows(ctx, "OccupancyRateByRoomType", queryOccupancyRateByRoomType, &rows, asOf)
}

func (repo *repositoryImpl) GuestsWithMultipleBookings(ctx context.Context) ([]model.GuestBookingCount, error) {
	var rows []model.GuestBookingCount

	return rows, repo.selectRows(ctx, "GuestsWithMultipleBookings", queryGuestsWithMultipleBookings, &rows)
}

func (repo *repositoryImpl) BookingCountByRoomType(ctx context.Context) ([]model.RoomTypePopularity, error) {
	var rows []model.RoomTypePopularity

	return rows, repo.selectRows(ctx, "BookingCountByRoomType", queryBookingCountByRoomType, &rows)
}

func (repo *repositoryImpl) AverageStayByRoomType(ctx context.Context) ([]model.RoomTypeStay, error) {
	var rows []model.RoomTypeStay

	return rows, repo.selectRows(ctx, "AverageStayByRoomType", queryAverageStayByRoomType, &rows)
}

func (repo *repositoryImpl) OverdueCheckouts(ctx context.Context, asOf time.Time) ([]model.OverdueCheckout, error) {
	var rows []model.OverdueCheckout

	return rows, repo.selectRows(ctx, "OverdueCheckouts", queryOverdueCheckouts, &rows, asOf)
}

func (repo *repositoryImpl) HighSpendingGuests(ctx context.Context, threshold float64) ([]model.GuestSpend, error) {
	var rows []model.GuestSpend

	return rows, repo.selectRows(ctx, "HighSpendingGuests", queryHighSpendingGuests, &rows, threshold)
}

func (repo *repositoryImpl) UpcomingCheckIns(ctx context.Context, asOf time.Time, windowDays int) ([]model.UpcomingCheckIn, error) {
	var rows []model.UpcomingCheckIn

	return rows, repo.selectRows(ctx, "UpcomingCheckIns", queryUpcomingCheckIns, &rows, asOf, windowDays)
}

func (repo *repositoryImpl) LatePayments(ctx context.Context) ([]model.LatePayment, error) {
	var rows []model.LatePayment

	return rows, repo.selectRows(ctx, "LatePayments", queryLatePayments, &rows)
}

func (repo *repositoryImpl) IdleRooms(ctx context.Context, asOf time.Time, idleMonths int) ([]model.IdleRoom, error) {
	var rows []model.IdleRoom

	return rows, repo.selectRows(ctx, "IdleRooms", queryIdleRooms, &rows, asOf, idleMonths)
}

func (repo *repositoryImpl) MostBookedRoomType(ctx context.Context) (model.RoomTypePopularity, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.MostBookedRoomType", constant.OtelRepositoryScopeName, model.EntityName))
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryMostBookedRoomType)

	var row model.RoomTypePopularity

	err := repo.db.Read.GetContext(ctx, &row, queryMostBookedRoomType)
	if errors.Is(err, sql.ErrNoRows) {
		return row, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return row, fmt.Errorf("failed to run report query (MostBookedRoomType): %w", err)
	}

	return row, nil
}

func (repo *repositoryImpl) UnpaidBalances(ctx context.Context) ([]model.UnpaidBalance, error) {
	var rows []model.UnpaidBalance

	return rows, repo.selectRows(ctx, "UnpaidBalances", queryUnpaidBalances, &rows)
}

func (repo *repositoryImpl) TopGuestsBySpend(ctx context.Context, limit int) ([]model.GuestSpend, error) {
	var rows []model.GuestSpend

	return rows, repo.selectRows(ctx, "TopGuestsBySpend", queryTopGuestsBySpend, &rows, limit)
}

func (repo *repositoryImpl) RoomTypeInventory(ctx context.Context) ([]model.RoomTypeInventory, error) {
	var rows []model.RoomTypeInventory

	return rows, repo.selectRows(ctx, "RoomTypeInventory", queryRoomTypeInventory, &rows)
}

func (repo *repositoryImpl) PaymentStatusBreakdown(ctx context.Context) ([]model.PaymentStatusTotal, error) {
	var rows []model.PaymentStatusTotal

	return rows, repo.selectRows(ctx, "PaymentStatusBreakdown", queryPaymentStatusBreakdown, &rows)
}
