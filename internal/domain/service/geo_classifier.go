package service

import "context"

// GeoClassifier maps integer-degree coordinates to a named traffic area
type GeoClassifier interface {
	// Classify returns the traffic area covering the point, or ErrAreaNotFound.
	Classify(ctx context.Context, lat, lon int) (string, error)
}
