// Package constants holds provider names and other identifiers shared across layers.
package constants

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Notification transports
const (
	TransportProviderLog    = "log"
	TransportProviderPubSub = "pubsub"
)

// Geo classifier providers
const (
	GeoProviderSR    = "sr"
	GeoProviderLocal = "local"
)

// DispatchCursorName keys the persisted poll boundary.
const DispatchCursorName = "traffic-dispatch"
