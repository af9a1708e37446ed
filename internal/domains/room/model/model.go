package model

import "hotelops/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldRoomType    = "room_type"
	FieldPrice       = "price"
	FieldIsAvailable = "is_available"
)

type Room struct {
	ID          string  `db:"id"`
	RoomType    string  `db:"room_type"`
	Price       float64 `db:"price"`
	IsAvailable bool    `db:"is_available"`
	model.Metadata
}
