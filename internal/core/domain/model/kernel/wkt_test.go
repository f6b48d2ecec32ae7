package kernel_test

import (
	"testing"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePoint(t *testing.T) {
	t.Run("should parse valid point", func(t *testing.T) {
		p, err := kernel.ParsePoint("POINT(-70.62 -33.42)")

		require.NoError(t, err)
		assert.InDelta(t, -70.62, p.Lon(), 0)
		assert.InDelta(t, -33.42, p.Lat(), 0)
	})

	t.Run("should tolerate surrounding whitespace", func(t *testing.T) {
		p, err := kernel.ParsePoint("  POINT( -70.62   -33.42 ) ")

		require.NoError(t, err)
		assert.InDelta(t, -70.62, p.Lon(), 0)
	})

	t.Run("should reject wrong keyword", func(t *testing.T) {
		_, err := kernel.ParsePoint("PINT(-70.62 -33.42)")

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMalformedGeometry)
	})

	t.Run("should reject missing coordinate", func(t *testing.T) {
		_, err := kernel.ParsePoint("POINT(-70.62)")

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMalformedGeometry)
	})

	t.Run("should reject non-numeric coordinate", func(t *testing.T) {
		_, err := kernel.ParsePoint("POINT(abc -33.42)")

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMalformedGeometry)
	})
}

func TestParsePolygon(t *testing.T) {
	t.Run("should parse closed ring", func(t *testing.T) {
		polygon, err := kernel.ParsePolygon(
			"POLYGON((-70.65 -33.45, -70.60 -33.45, -70.60 -33.40, -70.65 -33.40, -70.65 -33.45))")

		require.NoError(t, err)
		assert.Len(t, polygon.Ring(), 5)
	})

	t.Run("should reject unclosed ring", func(t *testing.T) {
		_, err := kernel.ParsePolygon(
			"POLYGON((-70.65 -33.45, -70.60 -33.45, -70.60 -33.40, -70.65 -33.40))")

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMalformedGeometry)
	})

	t.Run("should reject too few vertices", func(t *testing.T) {
		_, err := kernel.ParsePolygon("POLYGON((0 0, 1 1, 0 0))")

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMalformedGeometry)
	})

	t.Run("should reject missing inner parentheses", func(t *testing.T) {
		_, err := kernel.ParsePolygon("POLYGON(0 0, 1 0, 1 1, 0 0)")

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMalformedGeometry)
	})
}

func TestParseLineString(t *testing.T) {
	t.Run("should parse route", func(t *testing.T) {
		route, err := kernel.ParseLineString("LINESTRING(-70.70 -33.42, -70.62 -33.42, -70.55 -33.42)")

		require.NoError(t, err)
		assert.Len(t, route.Points(), 3)
	})

	t.Run("should reject single point", func(t *testing.T) {
		_, err := kernel.ParseLineString("LINESTRING(-70.70 -33.42)")

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrMalformedGeometry)
	})
}

func TestFormatRoundTrip(t *testing.T) {
	t.Run("point survives round trip", func(t *testing.T) {
		original := kernel.NewPoint(-70.62, -33.42)

		text, err := kernel.FormatPoint(original)
		require.NoError(t, err)
		assert.Equal(t, "POINT(-70.62 -33.42)", text)

		parsed, err := kernel.ParsePoint(text)
		require.NoError(t, err)

		equal, err := parsed.IsEqual(original)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("polygon survives round trip", func(t *testing.T) {
		original := santiagoSquare(t)

		text, err := kernel.FormatPolygon(original)
		require.NoError(t, err)

		parsed, err := kernel.ParsePolygon(text)
		require.NoError(t, err)
		assert.Equal(t, original.Ring(), parsed.Ring())
	})

	t.Run("line string survives round trip", func(t *testing.T) {
		original, err := kernel.NewLineString([]kernel.Point{
			kernel.NewPoint(-70.70, -33.42),
			kernel.NewPoint(-70.62, -33.42),
		})
		require.NoError(t, err)

		text, err := kernel.FormatLineString(original)
		require.NoError(t, err)
		assert.Equal(t, "LINESTRING(-70.7 -33.42, -70.62 -33.42)", text)

		parsed, err := kernel.ParseLineString(text)
		require.NoError(t, err)
		assert.Equal(t, original.Points(), parsed.Points())
	})

	t.Run("format fails for zero values", func(t *testing.T) {
		_, err := kernel.FormatPoint(kernel.Point{})
		require.Error(t, err)

		_, err = kernel.FormatPolygon(kernel.Polygon{})
		require.Error(t, err)

		_, err = kernel.FormatLineString(kernel.LineString{})
		require.Error(t, err)
	})
}
