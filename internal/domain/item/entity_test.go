//go:build unit

package item_test

import (
	"testing"

	"shareit/internal/domain/item"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		it, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, it)

		assert.NotEqual(t, uuid.Nil, it.ID())
		assert.Equal(t, "Cordless Drill", it.Name())
		assert.True(t, it.Available())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := builder.NewItemBuilder().
			With(func(b *builder.ItemBuilder) { b.Name = "   " }).
			BuildDomain()
		require.ErrorIs(t, err, item.ErrEmptyName)
	})

	t.Run("empty description", func(t *testing.T) {
		_, err := builder.NewItemBuilder().
			With(func(b *builder.ItemBuilder) { b.Description = "" }).
			BuildDomain()
		require.ErrorIs(t, err, item.ErrEmptyDescription)
	})

	t.Run("name is trimmed", func(t *testing.T) {
		it, err := builder.NewItemBuilder().
			With(func(b *builder.ItemBuilder) { b.Name = "  Ladder  " }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Ladder", it.Name())
	})
}

func TestApplyPatch(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }

	t.Run("partial update keeps other fields", func(t *testing.T) {
		it, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)

		it.ApplyPatch(strPtr("Impact Driver"), nil, nil)

		assert.Equal(t, "Impact Driver", it.Name())
		assert.Equal(t, "18V drill with two batteries", it.Description())
		assert.True(t, it.Available())
	})

	t.Run("blank string is treated as absent", func(t *testing.T) {
		it, err := builder.NewItemBuilder().BuildDomain()
		require.NoError(t, err)

		it.ApplyPatch(strPtr("  "), strPtr(""), boolPtr(false))

		assert.Equal(t, "Cordless Drill", it.Name())
		assert.Equal(t, "18V drill with two batteries", it.Description())
		assert.False(t, it.Available())
	})
}

func TestIsOwnedBy(t *testing.T) {
	bb := builder.NewItemBuilder()
	it, err := bb.BuildDomain()
	require.NoError(t, err)

	assert.True(t, it.IsOwnedBy(bb.OwnerID))
	assert.False(t, it.IsOwnedBy(uuid.New()))
}
