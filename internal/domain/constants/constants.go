// Package constants holds identifiers shared between configuration and infrastructure.
package constants

const (
	// EnvDevelop is the default local environment name.
	EnvDevelop = "development"
	// EnvProduction disables local defaults such as MinIO credentials.
	EnvProduction = "production"
)

// Conversion queue providers.
const (
	QueueProviderInProcess = "inprocess"
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
)

// Storage drivers.
const (
	StorageDriverS3   = "s3"
	StorageDriverFile = "file"
	StorageDriverMem  = "mem"
)

// Pub/Sub message attribute keys.
const (
	AttrRequestID = "request_id"
	AttrEventType = "event_type"
)

// EventTypeConvertOrder marks a conversion job message.
const EventTypeConvertOrder = "order.convert"
