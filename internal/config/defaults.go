package config

const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 8000
	DefaultEnvironment = "development"
	DefaultLogLevel    = "info"

	DefaultRateLimitPerMinute = 60

	DefaultModel = "claude-sonnet-4-6"

	DefaultAgentTimeout = 120 // seconds

	DefaultMaxQueryLength = 2000
)

// Wildcard by default: the endpoint is meant to be embedded in arbitrary
// storefront pages.
var DefaultCORSOrigins = []string{"*"}

var DefaultPIIKeywords = []string{
	"password", "ssn", "social security", "credit card",
	"bank account", "pin", "private key", "access token",
}
