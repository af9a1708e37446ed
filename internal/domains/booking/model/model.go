package model

import (
	"time"

	"hotelops/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldGuestID     = "guest_id"
	FieldRoomID      = "room_id"
	FieldCheckIn     = "check_in"
	FieldCheckOut    = "check_out"
	FieldTotalAmount = "total_amount"
)

type Booking struct {
	ID          string    `db:"id"`
	GuestID     string    `db:"guest_id"`
	RoomID      string    `db:"room_id"`
	CheckIn     time.Time `db:"check_in"`
	CheckOut    time.Time `db:"check_out"`
	TotalAmount float64   `db:"total_amount"`
	model.Metadata
}
