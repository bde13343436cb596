//go:build unit

package queries

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name       string
		from, size int
		wantOffset int32
		wantLimit  int32
	}{
		{name: "first block", from: 0, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "from inside first block", from: 7, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "from at block boundary", from: 10, size: 10, wantOffset: 10, wantLimit: 10},
		{name: "from inside later block", from: 25, size: 10, wantOffset: 20, wantLimit: 10},
		{name: "size one", from: 3, size: 1, wantOffset: 3, wantLimit: 1},
		{name: "negative from clamps to zero", from: -5, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "zero size clamps to one", from: 4, size: 0, wantOffset: 4, wantLimit: 1},
		{name: "from at the int32 ceiling", from: math.MaxInt32, size: 10, wantOffset: 2147483640, wantLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage(tt.from, tt.size)
			assert.Equal(t, tt.wantOffset, page.Offset)
			assert.Equal(t, tt.wantLimit, page.Limit)
		})
	}

	t.Run("from beyond int32 keeps a non-negative offset", func(t *testing.T) {
		if strconv.IntSize == 32 {
			t.Skip("from cannot exceed int32 on this platform")
		}
		from := math.MaxInt32
		page := NewPage(from+from, 7)
		assert.Equal(t, int32(math.MaxInt32-math.MaxInt32%7), page.Offset)
		assert.Equal(t, int32(7), page.Limit)
	})

	t.Run("size beyond int32 clamps the limit", func(t *testing.T) {
		if strconv.IntSize == 32 {
			t.Skip("size cannot exceed int32 on this platform")
		}
		size := math.MaxInt32
		page := NewPage(0, size+size)
		assert.Equal(t, int32(0), page.Offset)
		assert.Equal(t, int32(math.MaxInt32), page.Limit)
	})
}
