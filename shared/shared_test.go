package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotelops/shared"
	"hotelops/shared/constant"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *bool
	}{
		{
			name:  "true value",
			value: "true",
			want:  boolPtr(true),
		},
		{
			name:  "false value",
			value: "false",
			want:  boolPtr(false),
		},
		{
			name:  "empty string",
			value: "",
			want:  nil,
		},
		{
			name:  "garbage value",
			value: "maybe",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.ConvertStringToBool(tt.value)

			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "exact division", total: 20, limit: 10, want: 2},
		{name: "remainder rounds up", total: 21, limit: 10, want: 3},
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "zero limit", total: 20, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type update struct {
		RoomType     string  `db:"room_type"`
		PricePerNight float64 `db:"price_per_night"`
		Untracked    string
	}

	got := shared.TransformFields(update{RoomType: "Suite"}, "test-user")

	assert.Equal(t, "Suite", got["room_type"])
	assert.NotContains(t, got, "price_per_night")
	assert.Equal(t, "test-user", got[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, got[constant.FieldModifiedAt])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room", shared.BuildCacheKey("room"))
	assert.Equal(t, "room:get:room-1", shared.BuildCacheKey("room", "get", "room-1"))
	assert.Equal(t, "report:total-revenue", shared.BuildCacheKey("report:total-revenue"))
}

func boolPtr(b bool) *bool {
	return &b
}
