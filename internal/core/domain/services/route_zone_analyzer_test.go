package services_test

import (
	"testing"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/coverage"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteZoneAnalyzer_ZonesCrossed(t *testing.T) {
	analyzer := services.NewRouteZoneAnalyzer()

	// Three adjacent 0.05 degree wide zones along a horizontal band.
	zoneA := rectArea(t, "zoneA", -70.65, -33.45, -70.60, -33.40)
	zoneB := rectArea(t, "zoneB", -70.60, -33.45, -70.55, -33.40)
	zoneC := rectArea(t, "zoneC", -70.55, -33.45, -70.50, -33.40)
	zones := []*coverage.CoverageArea{zoneA, zoneB, zoneC}

	t.Run("should list every zone the route passes through", func(t *testing.T) {
		route, err := kernel.NewLineString([]kernel.Point{
			kernel.NewPoint(-70.70, -33.42),
			kernel.NewPoint(-70.45, -33.42),
		})
		require.NoError(t, err)

		crossed, err := analyzer.ZonesCrossed(route, zones)

		require.NoError(t, err)
		require.Len(t, crossed, 3)
		assert.True(t, crossed[0].IsEqual(zoneA.ID()))
		assert.True(t, crossed[1].IsEqual(zoneB.ID()))
		assert.True(t, crossed[2].IsEqual(zoneC.ID()))
	})

	t.Run("should count a zone once even when multiple segments cross it", func(t *testing.T) {
		route, err := kernel.NewLineString([]kernel.Point{
			kernel.NewPoint(-70.64, -33.42),
			kernel.NewPoint(-70.63, -33.43),
			kernel.NewPoint(-70.62, -33.41),
			kernel.NewPoint(-70.61, -33.44),
		})
		require.NoError(t, err)

		crossed, err := analyzer.ZonesCrossed(route, zones)

		require.NoError(t, err)
		require.Len(t, crossed, 1)
		assert.True(t, crossed[0].IsEqual(zoneA.ID()))
	})

	t.Run("should return empty set for route outside every zone", func(t *testing.T) {
		route, err := kernel.NewLineString([]kernel.Point{
			kernel.NewPoint(-71.00, -34.00),
			kernel.NewPoint(-71.10, -34.10),
		})
		require.NoError(t, err)

		crossed, err := analyzer.ZonesCrossed(route, zones)

		require.NoError(t, err)
		assert.Empty(t, crossed)
	})

	t.Run("should return empty set for zero value route", func(t *testing.T) {
		crossed, err := analyzer.ZonesCrossed(kernel.LineString{}, zones)

		require.NoError(t, err)
		assert.Empty(t, crossed)
	})

	t.Run("should return empty set with no zones", func(t *testing.T) {
		route, err := kernel.NewLineString([]kernel.Point{
			kernel.NewPoint(-70.70, -33.42),
			kernel.NewPoint(-70.45, -33.42),
		})
		require.NoError(t, err)

		crossed, err := analyzer.ZonesCrossed(route, nil)

		require.NoError(t, err)
		assert.Empty(t, crossed)
	})
}

func TestRouteZoneAnalyzer_CrossesMoreThan(t *testing.T) {
	analyzer := services.NewRouteZoneAnalyzer()

	zoneA := rectArea(t, "zoneA", -70.65, -33.45, -70.60, -33.40)
	zoneB := rectArea(t, "zoneB", -70.60, -33.45, -70.55, -33.40)
	zoneC := rectArea(t, "zoneC", -70.55, -33.45, -70.50, -33.40)
	zones := []*coverage.CoverageArea{zoneA, zoneB, zoneC}

	longRoute, err := kernel.NewLineString([]kernel.Point{
		kernel.NewPoint(-70.70, -33.42),
		kernel.NewPoint(-70.45, -33.42),
	})
	require.NoError(t, err)

	shortRoute, err := kernel.NewLineString([]kernel.Point{
		kernel.NewPoint(-70.64, -33.42),
		kernel.NewPoint(-70.62, -33.42),
	})
	require.NoError(t, err)

	t.Run("should flag route crossing more zones than threshold", func(t *testing.T) {
		flagged, err := analyzer.CrossesMoreThan(longRoute, zones, services.DefaultZoneThreshold)

		require.NoError(t, err)
		assert.True(t, flagged)
	})

	t.Run("should not flag route at or below threshold", func(t *testing.T) {
		flagged, err := analyzer.CrossesMoreThan(shortRoute, zones, services.DefaultZoneThreshold)

		require.NoError(t, err)
		assert.False(t, flagged)

		flagged, err = analyzer.CrossesMoreThan(longRoute, zones, 3)
		require.NoError(t, err)
		assert.False(t, flagged)
	})
}
