package imageable

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "relstore/internal/shared/errors"
)

func TestRegistry_Check(t *testing.T) {
	registry := NewRegistry()
	registry.Register("Gadget", func(ctx context.Context, id uint) (bool, error) {
		return id == 1, nil
	})

	ctx := context.Background()

	t.Run("existing target passes", func(t *testing.T) {
		assert.NoError(t, registry.Check(ctx, "Gadget", 1))
	})

	t.Run("unregistered type", func(t *testing.T) {
		err := registry.Check(ctx, "Widget", 1)
		assert.True(t, apperrors.IsUnknownTypeError(err))
	})

	t.Run("missing target", func(t *testing.T) {
		err := registry.Check(ctx, "Gadget", 2)
		assert.True(t, apperrors.IsDanglingReferenceError(err))
	})
}

func TestRegistry_TypeNames(t *testing.T) {
	registry := NewRegistry()
	registry.Register("Zebra", func(context.Context, uint) (bool, error) { return true, nil })
	registry.Register("Apple", func(context.Context, uint) (bool, error) { return true, nil })

	names := registry.TypeNames()
	require.Len(t, names, 2)
	assert.Equal(t, []string{"Apple", "Zebra"}, names, "names are sorted")
}
