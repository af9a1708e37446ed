package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelops/infras/otel/mocks"
	paymentMocks "hotelops/internal/domains/payment/mocks"
	"hotelops/internal/domains/payment/model/dto"
	"hotelops/internal/domains/payment/service"
	cacheMocks "hotelops/shared/cache/mocks"
	"hotelops/shared/constant"
	"hotelops/shared/failure"
)

func TestPaymentService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockCache, mockOtel)

	// Payment writes sweep the cached reports, nothing else.
	mockCache.EXPECT().
		Clear(gomock.Any(), constant.CacheReportPrefix+constant.Asterix).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name      string
		req       dto.CreatePaymentRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful payment",
			req: dto.CreatePaymentRequest{
				BookingID:  "booking-2",
				AmountPaid: 150.00,
				Status:     constant.PaymentStatusPaid,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown booking is rejected",
			req: dto.CreatePaymentRequest{
				BookingID:  "no-such-booking",
				AmountPaid: 100.00,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{
						Code:   "23503",
						Detail: "Key (booking_id)=(no-such-booking) is not present in table \"bookings\".",
					})
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			req: dto.CreatePaymentRequest{
				BookingID:  "booking-2",
				AmountPaid: 150.00,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyActor, "test-user")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaymentService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockCache, mockOtel)

	mockCache.EXPECT().
		Clear(gomock.Any(), constant.CacheReportPrefix+constant.Asterix).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name      string
		req       dto.UpdatePaymentRequest
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "mark payment as paid",
			req:  dto.UpdatePaymentRequest{Status: constant.PaymentStatusPaid},
			id:   "payment-5",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "payment not found",
			req:  dto.UpdatePaymentRequest{AmountPaid: 10},
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyActor, "test-user")
			err := svc.Update(ctx, tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
