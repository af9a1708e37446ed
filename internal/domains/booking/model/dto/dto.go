package dto

import (
	"github.com/google/uuid"

	"hotelops/internal/domains/booking/model"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	"hotelops/shared/failure"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"
)

type CreateBookingRequest struct {
	GuestID     string  `json:"guest_id"     validate:"required"`
	RoomID      string  `json:"room_id"      validate:"required"`
	CheckIn     string  `json:"check_in"     validate:"required,dateonly"`
	CheckOut    string  `json:"check_out"    validate:"required,dateonly"`
	TotalAmount float64 `json:"total_amount" validate:"required,gt=0"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	checkOut, err := timezone.Parse(constant.DateOnlyFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	// A stay is at least one night.
	if !checkOut.After(checkIn) {
		return model.Booking{}, failure.BadRequestFromString("check_out must be after check_in") //nolint:wrapcheck
	}

	return model.Booking{
		ID:          uuid.NewString(),
		GuestID:     c.GuestID,
		RoomID:      c.RoomID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		TotalAmount: c.TotalAmount,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingRequest struct {
	CheckIn     string  `json:"check_in"     validate:"omitempty,dateonly"`
	CheckOut    string  `json:"check_out"    validate:"omitempty,dateonly"`
	TotalAmount float64 `db:"total_amount" json:"total_amount" validate:"omitempty,gt=0"`
}

type BookingResponse struct {
	ID          string  `json:"id"`
	GuestID     string  `json:"guest_id"`
	RoomID      string  `json:"room_id"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
	TotalAmount float64 `json:"total_amount"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.RoomID = model.RoomID
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.TotalAmount = model.TotalAmount
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
