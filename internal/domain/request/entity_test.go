//go:build unit

package request_test

import (
	"testing"

	"shareit/internal/domain/request"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		r, err := builder.NewRequestBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, r)
		assert.NotEqual(t, uuid.Nil, r.ID())
	})

	t.Run("description is trimmed", func(t *testing.T) {
		r, err := builder.NewRequestBuilder().
			With(func(b *builder.RequestBuilder) { b.Description = "  need a ladder  " }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "need a ladder", r.Description())
	})

	t.Run("empty description", func(t *testing.T) {
		_, err := builder.NewRequestBuilder().
			With(func(b *builder.RequestBuilder) { b.Description = "   " }).
			BuildDomain()
		require.ErrorIs(t, err, request.ErrEmptyDescription)
	})
}
