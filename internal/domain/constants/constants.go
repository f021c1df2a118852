// Package constants holds identifiers shared between config, infra and delivery.
package constants

// Environments accepted by env.env.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers accepted by pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Context keys set by the HTTP middlewares.
const (
	ContextKeyUserID = "userID"
)

// Event attribute names.
const (
	AttributeEventType = "event_type"
	AttributeRouteID   = "route_id"
	AttributeRequestID = "request_id"

	EventTypeRouteOpened = "route.opened"
)
