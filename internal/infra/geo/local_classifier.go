// Package geo classifies subscriber coordinates into named traffic areas.
package geo

import (
	"context"
	"fmt"
	"math"

	"trafficalert/config"
	domainerrors "trafficalert/internal/domain/errors"
	"trafficalert/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

type namedBound struct {
	name  string
	bound orb.Bound
}

// localClassifier resolves areas from a configured bounds table without network access.
// Points outside every bound snap to the area with the nearest centre within maxFallbackKm.
type localClassifier struct {
	areas         []namedBound
	maxFallbackKm float64
}

// NewLocalClassifier builds a classifier from config bounds; order decides overlaps.
func NewLocalClassifier(areas []config.AreaBounds, maxFallbackKm float64) service.GeoClassifier {
	bounds := make([]namedBound, 0, len(areas))
	for _, area := range areas {
		bounds = append(bounds, namedBound{
			name: area.Name,
			bound: orb.Bound{
				Min: orb.Point{area.MinLon, area.MinLat},
				Max: orb.Point{area.MaxLon, area.MaxLat},
			},
		})
	}

	return &localClassifier{areas: bounds, maxFallbackKm: maxFallbackKm}
}

func (c *localClassifier) Classify(_ context.Context, lat, lon int) (string, error) {
	point := orb.Point{float64(lon), float64(lat)}

	for _, area := range c.areas {
		if area.bound.Contains(point) {
			return area.name, nil
		}
	}

	nearest := ""
	nearestKm := math.Inf(1)
	for _, area := range c.areas {
		km := geo.DistanceHaversine(point, area.bound.Center()) / 1000
		if km < nearestKm {
			nearest, nearestKm = area.name, km
		}
	}

	if nearest == "" || nearestKm > c.maxFallbackKm {
		return "", domainerrors.ErrAreaNotFound.WithDetails(
			fmt.Sprintf("no traffic area within %.0f km of (%d, %d)", c.maxFallbackKm, lat, lon),
		)
	}

	return nearest, nil
}
