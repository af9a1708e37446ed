package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"hotelops/shared/failure"
)

func TestFromPostgres(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name: "unique violation maps to conflict",
			err: &pq.Error{
				Code:   "23505",
				Detail: "Key (email)=(alice.tan@example.com) already exists.",
			},
			wantCode: http.StatusConflict,
			wantMsg:  "Key (email)=(alice.tan@example.com) already exists.",
		},
		{
			name: "foreign key violation maps to bad request",
			err: &pq.Error{
				Code:   "23503",
				Detail: "Key (guest_id)=(no-such-guest) is not present in table \"guests\".",
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "check violation maps to bad request",
			err: &pq.Error{
				Code:    "23514",
				Message: "new row for relation \"bookings\" violates check constraint \"bookings_dates_check\"",
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "new row for relation \"bookings\" violates check constraint \"bookings_dates_check\"",
		},
		{
			name: "not null violation maps to bad request",
			err: &pq.Error{
				Code:    "23502",
				Message: "null value in column \"room_type\" violates not-null constraint",
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := failure.FromPostgres(tt.err)

			assert.Error(t, got)
			assert.Equal(t, tt.wantCode, failure.GetCode(got))

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, got.Error())
			}
		})
	}
}

func TestFromPostgres_PassThrough(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, failure.FromPostgres(nil))
	})

	t.Run("non-postgres error is returned unchanged", func(t *testing.T) {
		err := errors.New("connection refused")

		got := failure.FromPostgres(err)

		assert.Equal(t, err, got)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(got))
	})

	t.Run("unrelated pq error is returned unchanged", func(t *testing.T) {
		pqErr := &pq.Error{Code: "57014", Message: "canceling statement due to statement timeout"}

		got := failure.FromPostgres(pqErr)

		assert.Equal(t, pqErr, got)
	})
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, failure.GetCode(failure.NotFound("guest not found")))
	assert.Equal(t, http.StatusConflict, failure.GetCode(failure.Conflict("duplicate email")))
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(failure.BadRequestFromString("bad input")))
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(failure.InvalidAsOfParam))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("boom")))
}
