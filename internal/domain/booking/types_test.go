//go:build unit

package booking_test

import (
	"testing"

	"shareit/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseState(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  booking.State
		errIs error
	}{
		{name: "uppercase", raw: "ALL", want: booking.StateAll},
		{name: "lowercase", raw: "current", want: booking.StateCurrent},
		{name: "mixed case", raw: "FuTuRe", want: booking.StateFuture},
		{name: "surrounding whitespace", raw: "  past  ", want: booking.StatePast},
		{name: "waiting", raw: "WAITING", want: booking.StateWaiting},
		{name: "rejected", raw: "rejected", want: booking.StateRejected},
		{name: "unknown word", raw: "SOMETIMES", errIs: booking.ErrUnknownState},
		{name: "empty", raw: "", errIs: booking.ErrUnknownState},
		{name: "status that is not a state", raw: "APPROVED", errIs: booking.ErrUnknownState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := booking.ParseState(tt.raw)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, booking.StatusWaiting.IsValid())
	assert.True(t, booking.StatusApproved.IsValid())
	assert.True(t, booking.StatusRejected.IsValid())
	assert.False(t, booking.Status("CANCELLED").IsValid())
}
