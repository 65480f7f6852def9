package geo

import (
	"log/slog"

	"trafficalert/config"
	"trafficalert/internal/domain/constants"
	"trafficalert/internal/domain/service"
	"trafficalert/internal/infra/sr"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ClassifierParams holds dependencies for the GeoClassifier, injected by Fx
type ClassifierParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	SRClient *sr.Client
}

// NewGeoClassifier picks the classifier named by geo.provider
func NewGeoClassifier(params ClassifierParams) (service.GeoClassifier, error) {
	cfg := params.Config.Geo

	switch cfg.Provider {
	case constants.GeoProviderSR:
		params.Logger.Info("Using SR traffic API for area classification")

		return params.SRClient, nil

	case constants.GeoProviderLocal:
		if len(cfg.Areas) == 0 {
			return nil, errors.New("geo.areas is required for local provider")
		}
		params.Logger.Info("Using local bounds for area classification",
			slog.Int("areas", len(cfg.Areas)),
			slog.Float64("max_fallback_km", cfg.MaxFallbackKm),
		)

		return NewLocalClassifier(cfg.Areas, cfg.MaxFallbackKm), nil

	default:
		return nil, errors.Errorf("unknown geo provider: %s", cfg.Provider)
	}
}
