package model

import (
	"time"

	"hotelops/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID          = "id"
	FieldBookingID   = "booking_id"
	FieldAmountPaid  = "amount_paid"
	FieldPaymentDate = "payment_date"
	FieldStatus      = "status"
)

type Payment struct {
	ID          string    `db:"id"`
	BookingID   string    `db:"booking_id"`
	AmountPaid  float64   `db:"amount_paid"`
	PaymentDate time.Time `db:"payment_date"`
	Status      string    `db:"status"`
	model.Metadata
}
