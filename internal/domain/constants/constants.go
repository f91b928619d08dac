package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	EventsProviderNone   = "none"
	EventsProviderLocal  = "local"
	EventsProviderGoogle = "google"
	EventsProviderNats   = "nats"
)
