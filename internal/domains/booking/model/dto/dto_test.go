package dto_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotelops/internal/domains/booking/model"
	"hotelops/internal/domains/booking/model/dto"
	"hotelops/shared/failure"
	gModel "hotelops/shared/model"
	"hotelops/shared/timezone"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreateBookingRequest
		wantErr  bool
		wantCode int
	}{
		{
			name: "valid one night stay",
			req: dto.CreateBookingRequest{
				GuestID:     "guest-1",
				RoomID:      "room-1",
				CheckIn:     "2024-11-01",
				CheckOut:    "2024-11-02",
				TotalAmount: 100.00,
			},
		},
		{
			name: "check out equal to check in",
			req: dto.CreateBookingRequest{
				GuestID:     "guest-1",
				RoomID:      "room-1",
				CheckIn:     "2024-11-01",
				CheckOut:    "2024-11-01",
				TotalAmount: 100.00,
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "check out before check in",
			req: dto.CreateBookingRequest{
				GuestID:     "guest-1",
				RoomID:      "room-1",
				CheckIn:     "2024-11-05",
				CheckOut:    "2024-11-01",
				TotalAmount: 100.00,
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "malformed check in date",
			req: dto.CreateBookingRequest{
				GuestID:     "guest-1",
				RoomID:      "room-1",
				CheckIn:     "01/11/2024",
				CheckOut:    "2024-11-02",
				TotalAmount: 100.00,
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.ToModel("test-user")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tt.req.GuestID, got.GuestID)
			assert.Equal(t, tt.req.RoomID, got.RoomID)
			assert.Equal(t, tt.req.TotalAmount, got.TotalAmount)
			assert.True(t, got.CheckOut.After(got.CheckIn))
			assert.Equal(t, "test-user", got.CreatedBy)
		})
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	booking := model.Booking{
		ID:          "booking-1",
		GuestID:     "guest-1",
		RoomID:      "room-1",
		CheckIn:     time.Date(2024, time.November, 1, 0, 0, 0, 0, timezone.GetLocation()),
		CheckOut:    time.Date(2024, time.November, 5, 0, 0, 0, 0, timezone.GetLocation()),
		TotalAmount: 400.00,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var res dto.BookingResponse
	res.FromModel(booking)

	assert.Equal(t, "booking-1", res.ID)
	assert.Equal(t, "2024-11-01", res.CheckIn)
	assert.Equal(t, "2024-11-05", res.CheckOut)
	assert.Equal(t, 400.00, res.TotalAmount)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	models := []model.Booking{
		{ID: "booking-1"},
		{ID: "booking-2"},
		{ID: "booking-3"},
	}

	var res dto.GetBookingsResponse
	res.FromModels(models, 7, 3)

	assert.Len(t, res.Bookings, 3)
	assert.Equal(t, 7, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
}
