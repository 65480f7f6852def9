package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	DefaultPollInterval    = 10 * time.Minute
	DefaultExpiryThreshold = 24 * time.Hour
	DefaultFeedTimeout     = 20 * time.Second
	DefaultAreaWorkers     = 4
	DefaultTimezone        = "Europe/Stockholm"
	DefaultFeedBaseURL     = "http://api.sr.se/api/v2"
	DefaultMaxFallbackKm   = 150.0
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Dispatch configures the poll cycle
	Dispatch *DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// Feed configures the upstream traffic message source
	Feed *FeedConfig `json:"feed" yaml:"feed"`

	// Geo configures how coordinates are classified into traffic areas
	Geo *GeoConfig `json:"geo" yaml:"geo"`

	// Transport configures outbound notification channels
	Transport *TransportConfig `json:"transport" yaml:"transport"`

	// PubSub configuration for the outbound notification queue
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DispatchConfig defines the poll cycle timing and expiry policy
type DispatchConfig struct {
	Interval        time.Duration `json:"interval" yaml:"interval"`
	ExpiryThreshold time.Duration `json:"expiryThreshold" yaml:"expiryThreshold"`

	// Number of areas fetched and fanned out concurrently within a cycle
	AreaWorkers int `json:"areaWorkers" yaml:"areaWorkers"`

	// IANA zone used when rendering message timestamps
	Timezone string `json:"timezone" yaml:"timezone"`

	// Persist the poll boundary so a restart resumes instead of catching up
	PersistCursor bool `json:"persistCursor" yaml:"persistCursor"`
}

// FeedConfig defines the Sveriges Radio traffic API client
type FeedConfig struct {
	BaseURL        string        `json:"baseUrl" yaml:"baseUrl"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
	UserAgent      string        `json:"userAgent" yaml:"userAgent"`
}

// GeoConfig defines the area classifier
type GeoConfig struct {
	// Provider type: "sr" asks the traffic API, "local" uses the Areas table
	Provider string `json:"provider" yaml:"provider"`

	Areas []AreaBounds `json:"areas" yaml:"areas"`

	// Nearest-area fallback radius for points outside every bound
	MaxFallbackKm float64 `json:"maxFallbackKm" yaml:"maxFallbackKm"`
}

// AreaBounds is a named rectangle in integer-degree space
type AreaBounds struct {
	Name   string  `json:"name" yaml:"name"`
	MinLat float64 `json:"minLat" yaml:"minLat"`
	MaxLat float64 `json:"maxLat" yaml:"maxLat"`
	MinLon float64 `json:"minLon" yaml:"minLon"`
	MaxLon float64 `json:"maxLon" yaml:"maxLon"`
}

// TransportConfig defines how formatted notifications leave the process
type TransportConfig struct {
	// Provider type: "log" writes to the service log, "pubsub" publishes to the outbound queue
	Provider string `json:"provider" yaml:"provider"`

	// Token bucket in front of every send; zero disables limiting
	RatePerSecond float64 `json:"ratePerSecond" yaml:"ratePerSecond"`
	Burst         int     `json:"burst" yaml:"burst"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// DISPATCH_EXPIRYTHRESHOLD -> dispatch.expiryThreshold
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(searchPaths []string, name string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate fills defaults for optional sections and rejects inconsistent timing.
func (c *Config) Validate() error {
	if c.Dispatch == nil {
		c.Dispatch = &DispatchConfig{}
	}
	if c.Dispatch.Interval <= 0 {
		c.Dispatch.Interval = DefaultPollInterval
	}
	if c.Dispatch.ExpiryThreshold <= 0 {
		c.Dispatch.ExpiryThreshold = DefaultExpiryThreshold
	}
	if c.Dispatch.AreaWorkers <= 0 {
		c.Dispatch.AreaWorkers = DefaultAreaWorkers
	}
	if strings.TrimSpace(c.Dispatch.Timezone) == "" {
		c.Dispatch.Timezone = DefaultTimezone
	}
	if _, err := time.LoadLocation(c.Dispatch.Timezone); err != nil {
		return errors.Wrapf(err, "invalid dispatch timezone %q", c.Dispatch.Timezone)
	}

	if c.Feed == nil {
		c.Feed = &FeedConfig{}
	}
	if strings.TrimSpace(c.Feed.BaseURL) == "" {
		c.Feed.BaseURL = DefaultFeedBaseURL
	}
	if c.Feed.RequestTimeout <= 0 {
		c.Feed.RequestTimeout = DefaultFeedTimeout
	}
	if c.Feed.RequestTimeout >= c.Dispatch.Interval {
		return errors.Errorf("feed request timeout %s must be shorter than dispatch interval %s",
			c.Feed.RequestTimeout, c.Dispatch.Interval)
	}

	if c.Geo == nil {
		c.Geo = &GeoConfig{}
	}
	if c.Geo.Provider == "" {
		c.Geo.Provider = "sr"
	}
	if c.Geo.MaxFallbackKm <= 0 {
		c.Geo.MaxFallbackKm = DefaultMaxFallbackKm
	}
	for _, area := range c.Geo.Areas {
		if area.Name == "" || area.MinLat > area.MaxLat || area.MinLon > area.MaxLon {
			return errors.Errorf("invalid geo area bounds %+v", area)
		}
	}

	if c.Transport == nil {
		c.Transport = &TransportConfig{}
	}
	if c.Transport.Provider == "" {
		c.Transport.Provider = "log"
	}
	if c.Transport.RatePerSecond < 0 {
		return errors.Errorf("transport ratePerSecond must not be negative, got %v", c.Transport.RatePerSecond)
	}
	if c.Transport.RatePerSecond > 0 && c.Transport.Burst <= 0 {
		c.Transport.Burst = max(1, int(c.Transport.RatePerSecond))
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from POSTGRES_REPLICAS_{index}_{field} variables.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
