package model

import "time"

const (
	EntityName = "report"
)

// Report rows are projections over the entity tables; each struct maps a
// single result row of one of the named reporting queries.

type RoomTypeRevenue struct {
	RoomType string  `db:"room_type" json:"room_type"`
	Revenue  float64 `db:"revenue"   json:"revenue"`
}

type MonthlyRevenue struct {
	Month   int     `db:"month"   json:"month"`
	Revenue float64 `db:"revenue" json:"revenue"`
}

// RoomTypeOccupancy carries the occupancy heuristic: bookings divided by
// elapsed days since the room type's earliest check-in, as a percentage.
// It deliberately ignores how many rooms of the type exist and how their
// stays overlap; the figure is an approximation, not a utilization rate.
type RoomTypeOccupancy struct {
	RoomType      string  `db:"room_type"      json:"room_type"`
	Bookings      int     `db:"bookings"       json:"bookings"`
	SpanDays      int     `db:"span_days"      json:"span_days"`
	OccupancyRate float64 `db:"occupancy_rate" json:"occupancy_rate"`
}

type GuestBookingCount struct {
	GuestID      string `db:"guest_id"      json:"guest_id"`
	Name         string `db:"name"          json:"name"`
	BookingCount int    `db:"booking_count" json:"booking_count"`
}

type RoomTypeStay struct {
	RoomType    string  `db:"room_type"     json:"room_type"`
	AvgStayDays float64 `db:"avg_stay_days" json:"avg_stay_days"`
}

type OverdueCheckout struct {
	BookingID string    `db:"booking_id" json:"booking_id"`
	GuestName string    `db:"guest_name" json:"guest_name"`
	RoomID    string    `db:"room_id"    json:"room_id"`
	RoomType  string    `db:"room_type"  json:"room_type"`
	CheckOut  time.Time `db:"check_out"  json:"check_out"`
}

type GuestSpend struct {
	GuestID    string  `db:"guest_id"    json:"guest_id"`
	Name       string  `db:"name"        json:"name"`
	TotalSpend float64 `db:"total_spend" json:"total_spend"`
}

type UpcomingCheckIn struct {
	BookingID string    `db:"booking_id" json:"booking_id"`
	GuestName string    `db:"guest_name" json:"guest_name"`
	RoomType  string    `db:"room_type"  json:"room_type"`
	CheckIn   time.Time `db:"check_in"   json:"check_in"`
}

type LatePayment struct {
	PaymentID   string    `db:"payment_id"   json:"payment_id"`
	BookingID   string    `db:"booking_id"   json:"booking_id"`
	AmountPaid  float64   `db:"amount_paid"  json:"amount_paid"`
	PaymentDate time.Time `db:"payment_date" json:"payment_date"`
	CheckOut    time.Time `db:"check_out"    json:"check_out"`
}

type IdleRoom struct {
	RoomID   string  `db:"room_id"   json:"room_id"`
	RoomType string  `db:"room_type" json:"room_type"`
	Price    float64 `db:"price"     json:"price"`
}

type RoomTypePopularity struct {
	RoomType string `db:"room_type" json:"room_type"`
	Bookings int    `db:"bookings"  json:"bookings"`
}

type UnpaidBalance struct {
	BookingID    string  `db:"booking_id"    json:"booking_id"`
	GuestName    string  `db:"guest_name"    json:"guest_name"`
	TotalAmount  float64 `db:"total_amount"  json:"total_amount"`
	AmountPaid   float64 `db:"amount_paid"   json:"amount_paid"`
	UnpaidAmount float64 `db:"unpaid_amount" json:"unpaid_amount"`
}

type RoomTypeInventory struct {
	RoomType string  `db:"room_type" json:"room_type"`
	Rooms    int     `db:"rooms"     json:"rooms"`
	AvgPrice float64 `db:"avg_price" json:"avg_price"`
}

type PaymentStatusTotal struct {
	Status   string  `db:"status"   json:"status"`
	Payments int     `db:"payments" json:"payments"`
	Total    float64 `db:"total"    json:"total"`
}
