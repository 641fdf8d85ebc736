package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundary_HasEnoughPoints(t *testing.T) {
	assert.False(t, Boundary{}.HasEnoughPoints())
	assert.False(t, Boundary{{X: 0, Y: 0}, {X: 1, Y: 0}}.HasEnoughPoints())
	assert.True(t, Boundary{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}.HasEnoughPoints())
}

func TestBoundary_ScanValue(t *testing.T) {
	original := Boundary{{X: 0, Y: 0}, {X: 10.5, Y: 0}, {X: 10.5, Y: 7.25}}

	value, err := original.Value()
	require.NoError(t, err)

	t.Run("scan bytes", func(t *testing.T) {
		var got Boundary
		require.NoError(t, got.Scan(value))
		assert.Equal(t, original, got)
	})

	t.Run("scan string", func(t *testing.T) {
		var got Boundary
		require.NoError(t, got.Scan(string(value.([]byte))))
		assert.Equal(t, original, got)
	})

	t.Run("scan nil resets", func(t *testing.T) {
		got := Boundary{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 1}}
		require.NoError(t, got.Scan(nil))
		assert.Nil(t, got)
	})

	t.Run("unsupported type", func(t *testing.T) {
		var got Boundary
		assert.Error(t, got.Scan(42))
	})
}
