package kernel_test

import (
	"testing"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoint(t *testing.T) {
	t.Run("should store coordinates as given", func(t *testing.T) {
		p := kernel.NewPoint(-70.65, -33.45)

		assert.InDelta(t, -70.65, p.Lon(), 0)
		assert.InDelta(t, -33.45, p.Lat(), 0)
		require.NoError(t, p.Validate())
	})

	t.Run("should accept out-of-range latitude without validation", func(t *testing.T) {
		// The boundary performs no coordinate-range checks.
		p := kernel.NewPoint(400.0, 123.0)

		require.NoError(t, p.Validate())
		assert.InDelta(t, 123.0, p.Lat(), 0)
	})
}

func TestPoint_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var p kernel.Point

		err := p.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrPointIsNotConstructed)
	})
}

func TestPoint_IsEqual(t *testing.T) {
	t.Run("should compare coordinates", func(t *testing.T) {
		a := kernel.NewPoint(-70.62, -33.42)
		b := kernel.NewPoint(-70.62, -33.42)
		c := kernel.NewPoint(-70.70, -33.42)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.True(t, equal)

		equal, err = a.IsEqual(c)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("should fail for zero value operand", func(t *testing.T) {
		a := kernel.NewPoint(-70.62, -33.42)
		var b kernel.Point

		_, err := a.IsEqual(b)

		require.Error(t, err)
	})
}

func TestPoint_DistanceTo(t *testing.T) {
	t.Run("should compute known geodesic distance", func(t *testing.T) {
		// Two points along the Alameda in Santiago, roughly 1.5 km apart.
		a := kernel.NewPoint(-70.6506, -33.4372)
		b := kernel.NewPoint(-70.6344, -33.4367)

		d, err := a.DistanceTo(b)

		require.NoError(t, err)
		assert.InDelta(t, 1505, d, 30)
	})

	t.Run("should return zero for identical points", func(t *testing.T) {
		a := kernel.NewPoint(-70.65, -33.45)

		d, err := a.DistanceTo(a)

		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-9)
	})

	t.Run("should be symmetric", func(t *testing.T) {
		pairs := [][2]kernel.Point{
			{kernel.NewPoint(-70.65, -33.45), kernel.NewPoint(-70.60, -33.40)},
			{kernel.NewPoint(0, 0), kernel.NewPoint(1, 1)},
			{kernel.NewPoint(179.9, 45), kernel.NewPoint(-179.9, 45)},
		}

		for _, pair := range pairs {
			ab, err := pair[0].DistanceTo(pair[1])
			require.NoError(t, err)
			ba, err := pair[1].DistanceTo(pair[0])
			require.NoError(t, err)

			assert.InDelta(t, ab, ba, 1e-6)
		}
	})

	t.Run("should fail for zero value operand", func(t *testing.T) {
		a := kernel.NewPoint(-70.65, -33.45)
		var b kernel.Point

		_, err := a.DistanceTo(b)

		require.Error(t, err)
	})
}
