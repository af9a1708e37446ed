package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelops/config"
	"hotelops/infras/otel/mocks"
	reportMocks "hotelops/internal/domains/report/mocks"
	"hotelops/internal/domains/report/model"
	"hotelops/internal/domains/report/service"
	cacheMocks "hotelops/shared/cache/mocks"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Report.SpendThreshold = 1000
	cfg.Report.TopGuestsLimit = 5
	cfg.Report.UpcomingWindowDays = 7
	cfg.Report.IdleMonths = 6

	return cfg
}

func TestReportService_TotalRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reportMocks.NewMockReport(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		want      float64
	}{
		{
			name: "cache miss, fetched from repository",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					TotalRevenue(gomock.Any()).
					Return(3700.0, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			want:    3700.0,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					TotalRevenue(gomock.Any()).
					Return(0.0, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "cache hit skips the repository",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.TotalRevenue(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestReportService_OverdueCheckouts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reportMocks.NewMockReport(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel)

	asOf := time.Date(2024, time.November, 20, 0, 0, 0, 0, time.UTC)
	overdue := []model.OverdueCheckout{
		{
			BookingID: "booking-1",
			GuestName: "Alice Tan",
			RoomID:    "room-1",
			RoomType:  "Single",
			CheckOut:  time.Date(2024, time.November, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	mockRepo.EXPECT().
		OverdueCheckouts(gomock.Any(), asOf).
		Return(overdue, nil).
		Times(2)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	// Same stored state and same reference date must yield the same rows.
	first, err := svc.OverdueCheckouts(context.Background(), asOf)
	assert.NoError(t, err)

	second, err := svc.OverdueCheckouts(context.Background(), asOf)
	assert.NoError(t, err)

	assert.Equal(t, overdue, first)
	assert.Equal(t, first, second)
}

func TestReportService_OccupancyRateByRoomType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reportMocks.NewMockReport(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel)

	asOf := time.Date(2024, time.November, 20, 0, 0, 0, 0, time.UTC)

	// The heuristic is bookings × 100 over the days since the room type's
	// earliest check-in, kept literally: it ignores how many rooms of the
	// type exist and how their stays overlap.
	rows := []model.RoomTypeOccupancy{
		{RoomType: "Double", Bookings: 3, SpanDays: 80, OccupancyRate: 3.75},
		{RoomType: "Suite", Bookings: 2, SpanDays: 107, OccupancyRate: 1.87},
	}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	mockRepo.EXPECT().
		OccupancyRateByRoomType(gomock.Any(), asOf).
		Return(rows, nil).
		Times(2)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	first, err := svc.OccupancyRateByRoomType(context.Background(), asOf)
	assert.NoError(t, err)

	second, err := svc.OccupancyRateByRoomType(context.Background(), asOf)
	assert.NoError(t, err)

	assert.Equal(t, rows, first)
	assert.Equal(t, first, second)

	for _, row := range first {
		assert.InDelta(t, float64(row.Bookings)*100/float64(row.SpanDays), row.OccupancyRate, 0.01)
	}
}

func TestReportService_HighSpendingGuests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reportMocks.NewMockReport(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := newTestConfig()
	cfg.Report.SpendThreshold = 2000

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	// The configured threshold must reach the repository untouched.
	mockRepo.EXPECT().
		HighSpendingGuests(gomock.Any(), 2000.0).
		Return([]model.GuestSpend{{GuestID: "guest-4", Name: "Dmitri Volkov", TotalSpend: 2500}}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	got, err := svc.HighSpendingGuests(context.Background())

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "Dmitri Volkov", got[0].Name)
}

func TestReportService_UpcomingCheckIns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reportMocks.NewMockReport(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel)

	asOf := time.Date(2024, time.November, 20, 0, 0, 0, 0, time.UTC)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockRepo.EXPECT().
		UpcomingCheckIns(gomock.Any(), asOf, 7).
		Return([]model.UpcomingCheckIn{{BookingID: "booking-3", GuestName: "Bruno Costa", RoomType: "Suite", CheckIn: asOf.AddDate(0, 0, 2)}}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	got, err := svc.UpcomingCheckIns(context.Background(), asOf)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "booking-3", got[0].BookingID)
}

func TestReportService_TopGuestsBySpend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reportMocks.NewMockReport(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := newTestConfig()
	cfg.Report.TopGuestsLimit = 3

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockRepo.EXPECT().
		TopGuestsBySpend(gomock.Any(), 3).
		Return([]model.GuestSpend{
			{GuestID: "guest-4", Name: "Dmitri Volkov", TotalSpend: 1650},
			{GuestID: "guest-2", Name: "Bruno Costa", TotalSpend: 1200},
		}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	got, err := svc.TopGuestsBySpend(context.Background())

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.GreaterOrEqual(t, got[0].TotalSpend, got[1].TotalSpend)
}

func TestReportService_GuestsWithMultipleBookings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reportMocks.NewMockReport(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockRepo.EXPECT().
		GuestsWithMultipleBookings(gomock.Any()).
		Return([]model.GuestBookingCount{{GuestID: "guest-2", Name: "Bruno Costa", BookingCount: 2}}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	got, err := svc.GuestsWithMultipleBookings(context.Background())

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 2, got[0].BookingCount)
}

func TestReportService_MostBookedRoomType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reportMocks.NewMockReport(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		want      model.RoomTypePopularity
	}{
		{
			name: "single winner",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					MostBookedRoomType(gomock.Any()).
					Return(model.RoomTypePopularity{RoomType: "Double", Bookings: 3}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			want: model.RoomTypePopularity{RoomType: "Double", Bookings: 3},
		},
		{
			name: "no bookings yields a zero row",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					MostBookedRoomType(gomock.Any()).
					Return(model.RoomTypePopularity{}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			want: model.RoomTypePopularity{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.MostBookedRoomType(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestReportService_UnpaidBalances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reportMocks.NewMockReport(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, newTestConfig(), mockCache, mockOtel)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	// A fully paid booking never reaches the result set; the repository
	// query excludes zero balances, so only positive balances come back.
	mockRepo.EXPECT().
		UnpaidBalances(gomock.Any()).
		Return([]model.UnpaidBalance{
			{BookingID: "booking-2", GuestName: "Bruno Costa", TotalAmount: 300, AmountPaid: 150, UnpaidAmount: 150},
		}, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	got, err := svc.UnpaidBalances(context.Background())

	assert.NoError(t, err)
	assert.Len(t, got, 1)

	for _, row := range got {
		assert.Positive(t, row.UnpaidAmount)
		assert.Equal(t, row.TotalAmount-row.AmountPaid, row.UnpaidAmount)
	}
}
