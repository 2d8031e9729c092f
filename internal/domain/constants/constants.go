// Package constants holds values shared between configuration and infrastructure.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
	PubSubProviderNoop   = "noop"
)

// Notification providers
const (
	NotificationProviderFirebase = "firebase"
	NotificationProviderNoop     = "noop"
)

// Session value keys
const (
	SessionKeyAnonymousCart  = "cart"
	SessionKeyUserCartPrefix = "cart:user:"
)

// ReceiptKeyPrefix is the object key prefix receipts are stored under.
const ReceiptKeyPrefix = "receipts/"

// OrderTopicPrefix prefixes the per-kind staff notification topic.
const OrderTopicPrefix = "orders-"
