package dto

import (
	"github.com/google/uuid"

	"hotelops/internal/domains/payment/model"
	"hotelops/shared"
	"hotelops/shared/constant"
	gDto "hotelops/shared/dto"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"
)

type CreatePaymentRequest struct {
	BookingID   string  `json:"booking_id"   validate:"required"`
	AmountPaid  float64 `json:"amount_paid"  validate:"required,gt=0"`
	PaymentDate string  `json:"payment_date" validate:"omitempty,dateonly"`
	Status      string  `json:"status"       validate:"omitempty,oneof=Paid Unpaid"`
}

func (c *CreatePaymentRequest) ToModel(user string) model.Payment {
	// Payment date defaults to the recording date.
	paymentDate := timezone.Now()
	if c.PaymentDate != constant.Empty {
		if parsed, err := timezone.Parse(constant.DateOnlyFormat, c.PaymentDate); err == nil {
			paymentDate = parsed
		}
	}

	status := constant.PaymentStatusUnpaid
	if c.Status != constant.Empty {
		status = c.Status
	}

	return model.Payment{
		ID:          uuid.NewString(),
		BookingID:   c.BookingID,
		AmountPaid:  c.AmountPaid,
		PaymentDate: paymentDate,
		Status:      status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePaymentRequest struct {
	AmountPaid float64 `db:"amount_paid" json:"amount_paid" validate:"omitempty,gt=0"`
	Status     string  `db:"status"      json:"status"      validate:"omitempty,oneof=Paid Unpaid"`
}

type PaymentResponse struct {
	ID          string  `json:"id"`
	BookingID   string  `json:"booking_id"`
	AmountPaid  float64 `json:"amount_paid"`
	PaymentDate string  `json:"payment_date"`
	Status      string  `json:"status"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.AmountPaid = model.AmountPaid
	r.PaymentDate = model.PaymentDate.Format(constant.DateOnlyFormat)
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
