package dto

import (
	"github.com/google/uuid"

	"hotelops/internal/domains/room/model"
	"hotelops/shared"
	gDto "hotelops/shared/dto"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"
)

type CreateRoomRequest struct {
	RoomType    string  `json:"room_type"    validate:"required,max=50"`
	Price       float64 `json:"price"        validate:"required,gt=0"`
	IsAvailable *bool   `json:"is_available" validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	// New rooms are rentable unless stated otherwise.
	available := true
	if c.IsAvailable != nil {
		available = *c.IsAvailable
	}

	return model.Room{
		ID:          uuid.NewString(),
		RoomType:    c.RoomType,
		Price:       c.Price,
		IsAvailable: available,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomType    string  `db:"room_type"    json:"room_type"    validate:"omitempty,max=50"`
	Price       float64 `db:"price"        json:"price"        validate:"omitempty,gt=0"`
	IsAvailable *bool   `db:"is_available" json:"is_available" validate:"omitempty"`
}

type RoomResponse struct {
	ID          string  `json:"id"`
	RoomType    string  `json:"room_type"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"is_available"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomType = model.RoomType
	r.Price = model.Price
	r.IsAvailable = model.IsAvailable
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
