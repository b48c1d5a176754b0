package session

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Options is the concrete Config used by most embedders. Zero values fall
// back to sensible defaults at the point of use.
type Options struct {
	// BaseURL is the backend root, e.g. http://localhost:3000/api
	BaseURL string
	// RequestTimeoutSeconds bounds each backend exchange
	RequestTimeoutSeconds int
	// ExpiryBufferSeconds is the client-side staleness margin
	ExpiryBufferSeconds int
	// AuthScheme prefixes the Authorization header value
	AuthScheme string
	// LoginRoute is the login boundary the guardian redirects to
	LoginRoute string
	// LandingRoute is the public landing boundary
	LandingRoute string
	// StorePath is the credential database location
	StorePath string
}

var _ Config = (*Options)(nil)

func (o *Options) GetBaseURL() string { return o.BaseURL }
func (o *Options) GetRequestTimeout() int { return o.RequestTimeoutSeconds }
func (o *Options) GetExpiryBuffer() int { return o.ExpiryBufferSeconds }
func (o *Options) GetAuthScheme() string { return o.AuthScheme }
func (o *Options) GetLoginRoute() string { return o.LoginRoute }
func (o *Options) GetLandingRoute() string { return o.LandingRoute }
func (o *Options) GetStorePath() string { return o.StorePath }

// LoadConfigFromEnv reads Options from the environment, honoring a local
// .env file when present.
func LoadConfigFromEnv() *Options {
	_ = godotenv.Load()

	return &Options{
		BaseURL:               getEnv("SESSION_BASE_URL", "http://localhost:3000/api"),
		RequestTimeoutSeconds: getEnvInt("SESSION_REQUEST_TIMEOUT_SECONDS", 8),
		ExpiryBufferSeconds:   getEnvInt("SESSION_EXPIRY_BUFFER_SECONDS", 120),
		AuthScheme:            getEnv("SESSION_AUTH_SCHEME", "Bearer"),
		LoginRoute:            getEnv("SESSION_LOGIN_ROUTE", "/login"),
		LandingRoute:          getEnv("SESSION_LANDING_ROUTE", "/"),
		StorePath:             getEnv("SESSION_STORE_PATH", "portal-session.db"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
