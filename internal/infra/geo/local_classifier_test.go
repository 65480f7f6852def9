package geo

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"trafficalert/config"
	domainerrors "trafficalert/internal/domain/errors"
	"trafficalert/internal/infra/sr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAreas = []config.AreaBounds{
	{Name: "Uppland", MinLat: 59, MaxLat: 60.99, MinLon: 16.5, MaxLon: 19.5},
	{Name: "Gävleborg", MinLat: 61, MaxLat: 62.5, MinLon: 14.5, MaxLon: 18.5},
}

func TestLocalClassifier_Classify(t *testing.T) {
	classifier := NewLocalClassifier(testAreas, 200)

	tests := []struct {
		name     string
		lat, lon int
		want     string
		wantErr  error
	}{
		{name: "inside Uppland", lat: 60, lon: 18, want: "Uppland"},
		{name: "inside Gävleborg", lat: 61, lon: 18, want: "Gävleborg"},
		{name: "northern Gävleborg", lat: 62, lon: 17, want: "Gävleborg"},
		{name: "just outside, snaps to nearest", lat: 63, lon: 17, want: "Gävleborg"},
		{name: "far away", lat: 40, lon: 0, wantErr: domainerrors.ErrAreaNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := classifier.Classify(context.Background(), tt.lat, tt.lon)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLocalClassifier_NoAreas(t *testing.T) {
	_, err := NewLocalClassifier(nil, 150).Classify(context.Background(), 60, 18)

	assert.ErrorIs(t, err, domainerrors.ErrAreaNotFound)
}

func TestNewGeoClassifier(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srClient := &sr.Client{}

	t.Run("sr", func(t *testing.T) {
		cfg := &config.Config{Geo: &config.GeoConfig{Provider: "sr"}}
		classifier, err := NewGeoClassifier(ClassifierParams{Config: cfg, Logger: logger, SRClient: srClient})
		require.NoError(t, err)
		assert.Same(t, srClient, classifier)
	})

	t.Run("local", func(t *testing.T) {
		cfg := &config.Config{Geo: &config.GeoConfig{Provider: "local", Areas: testAreas, MaxFallbackKm: 100}}
		classifier, err := NewGeoClassifier(ClassifierParams{Config: cfg, Logger: logger, SRClient: srClient})
		require.NoError(t, err)
		assert.IsType(t, &localClassifier{}, classifier)
	})

	t.Run("local without areas", func(t *testing.T) {
		cfg := &config.Config{Geo: &config.GeoConfig{Provider: "local"}}
		_, err := NewGeoClassifier(ClassifierParams{Config: cfg, Logger: logger, SRClient: srClient})
		assert.Error(t, err)
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := &config.Config{Geo: &config.GeoConfig{Provider: "osm"}}
		_, err := NewGeoClassifier(ClassifierParams{Config: cfg, Logger: logger, SRClient: srClient})
		assert.Error(t, err)
	})
}
