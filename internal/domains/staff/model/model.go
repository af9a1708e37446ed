package model

import "hotelops/shared/model"

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID   = "id"
	FieldName = "name"
	FieldRole = "role"
)

type Staff struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Role string `db:"role"`
	model.Metadata
}
