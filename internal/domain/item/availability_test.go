//go:build unit

package item_test

import (
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ref(start, end time.Time, status booking.Status) item.BookingRef {
	return builder.NewBookingBuilder().
		With(func(b *builder.BookingBuilder) {
			b.Start = start
			b.End = end
			b.Status = status
		}).
		BuildRef()
}

func TestLastBooking(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, item.LastBooking(nil, now))
		assert.Nil(t, item.LastBooking([]item.BookingRef{}, now))
	})

	t.Run("picks greatest end at or before now", func(t *testing.T) {
		older := ref(now.Add(-5*time.Hour), now.Add(-4*time.Hour), booking.StatusApproved)
		newer := ref(now.Add(-3*time.Hour), now.Add(-2*time.Hour), booking.StatusApproved)

		got := item.LastBooking([]item.BookingRef{older, newer}, now)
		require.NotNil(t, got)
		assert.Equal(t, newer.ID, got.ID)
	})

	t.Run("end exactly now counts", func(t *testing.T) {
		edge := ref(now.Add(-time.Hour), now, booking.StatusApproved)

		got := item.LastBooking([]item.BookingRef{edge}, now)
		require.NotNil(t, got)
		assert.Equal(t, edge.ID, got.ID)
	})

	t.Run("future end is excluded", func(t *testing.T) {
		running := ref(now.Add(-time.Hour), now.Add(time.Hour), booking.StatusApproved)
		assert.Nil(t, item.LastBooking([]item.BookingRef{running}, now))
	})

	t.Run("non approved statuses are ignored", func(t *testing.T) {
		waiting := ref(now.Add(-3*time.Hour), now.Add(-2*time.Hour), booking.StatusWaiting)
		rejected := ref(now.Add(-5*time.Hour), now.Add(-4*time.Hour), booking.StatusRejected)
		assert.Nil(t, item.LastBooking([]item.BookingRef{waiting, rejected}, now))
	})
}

func TestNextBooking(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("picks smallest start strictly after now", func(t *testing.T) {
		sooner := ref(now.Add(time.Hour), now.Add(2*time.Hour), booking.StatusApproved)
		later := ref(now.Add(3*time.Hour), now.Add(4*time.Hour), booking.StatusApproved)

		got := item.NextBooking([]item.BookingRef{later, sooner}, now)
		require.NotNil(t, got)
		assert.Equal(t, sooner.ID, got.ID)
	})

	t.Run("start exactly now does not count", func(t *testing.T) {
		edge := ref(now, now.Add(time.Hour), booking.StatusApproved)
		assert.Nil(t, item.NextBooking([]item.BookingRef{edge}, now))
	})

	t.Run("only approved qualify", func(t *testing.T) {
		waiting := ref(now.Add(time.Hour), now.Add(2*time.Hour), booking.StatusWaiting)
		assert.Nil(t, item.NextBooking([]item.BookingRef{waiting}, now))
	})
}

func TestLastAndNextAreIndependent(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	past := ref(now.Add(-2*time.Hour), now.Add(-time.Hour), booking.StatusApproved)
	future := ref(now.Add(time.Hour), now.Add(2*time.Hour), booking.StatusApproved)
	refs := []item.BookingRef{past, future}

	last := item.LastBooking(refs, now)
	next := item.NextBooking(refs, now)

	require.NotNil(t, last)
	require.NotNil(t, next)
	assert.Equal(t, past.ID, last.ID)
	assert.Equal(t, future.ID, next.ID)
}
