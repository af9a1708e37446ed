package dto

import (
	"github.com/google/uuid"

	"hotelops/internal/domains/guest/model"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"
)

type CreateGuestRequest struct {
	Name     string `json:"name"      validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email,max=100"`
	Phone    string `json:"phone"     validate:"omitempty,max=20"`
	JoinDate string `json:"join_date" validate:"omitempty,dateonly"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	// Join date defaults to the registration date.
	joinDate := timezone.Now()
	if c.JoinDate != constant.Empty {
		if parsed, err := timezone.Parse(constant.DateOnlyFormat, c.JoinDate); err == nil {
			joinDate = parsed
		}
	}

	return model.Guest{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		JoinDate: joinDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	Name  string `db:"name"  json:"name"  validate:"omitempty,max=100"`
	Email string `db:"email" json:"email" validate:"omitempty,email,max=100"`
	Phone string `db:"phone" json:"phone" validate:"omitempty,max=20"`
}

type GuestResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	JoinDate string `json:"join_date"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.JoinDate = model.JoinDate.Format(constant.DateOnlyFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
