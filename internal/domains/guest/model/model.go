package model

import (
	"time"

	"hotelops/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldJoinDate = "join_date"
)

type Guest struct {
	ID       string    `db:"id"`
	Name     string    `db:"name"`
	Email    string    `db:"email"`
	Phone    string    `db:"phone"`
	JoinDate time.Time `db:"join_date"`
	model.Metadata
}
