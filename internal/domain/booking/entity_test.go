//go:build unit

package booking_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeSlot(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{
			name:  "valid future window",
			start: now.Add(time.Hour),
			end:   now.Add(2 * time.Hour),
		},
		{
			name:  "start exactly now is allowed",
			start: now,
			end:   now.Add(time.Hour),
		},
		{
			name:  "end equals start",
			start: now.Add(time.Hour),
			end:   now.Add(time.Hour),
			errIs: booking.ErrInvalidTimeSlot,
		},
		{
			name:  "end before start",
			start: now.Add(2 * time.Hour),
			end:   now.Add(time.Hour),
			errIs: booking.ErrInvalidTimeSlot,
		},
		{
			name:  "start in the past",
			start: now.Add(-time.Minute),
			end:   now.Add(time.Hour),
			errIs: booking.ErrTimeSlotInPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := booking.NewTimeSlot(tt.start, tt.end, now)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, slot.Start())
			assert.Equal(t, tt.end, slot.End())
		})
	}
}

func TestReconstructTimeSlotAllowsPast(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	slot := booking.ReconstructTimeSlot(now.Add(-2*time.Hour), now.Add(-time.Hour))
	assert.True(t, slot.EndedBefore(now))
	assert.False(t, slot.StartsAfter(now))
}

func TestNewBookingStartsWaiting(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, booking.StatusWaiting, b.Status())
}

func TestDecide(t *testing.T) {
	t.Run("approve from WAITING", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Decide(true))
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("reject from WAITING", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Decide(false))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("APPROVED is terminal", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Decide(true))

		assert.ErrorIs(t, b.Decide(true), booking.ErrAlreadyApproved)
		assert.ErrorIs(t, b.Decide(false), booking.ErrAlreadyApproved)
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("REJECTED can be decided again", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Decide(false))

		require.NoError(t, b.Decide(true))
		assert.Equal(t, booking.StatusApproved, b.Status())
	})
}

func TestVisibleTo(t *testing.T) {
	bb := builder.NewBookingBuilder()
	b := bb.BuildReconstructed()

	assert.True(t, b.VisibleTo(bb.BookerID, bb.OwnerID))
	assert.True(t, b.VisibleTo(bb.OwnerID, bb.OwnerID))
	assert.False(t, b.VisibleTo(uuid.New(), bb.OwnerID))
}
