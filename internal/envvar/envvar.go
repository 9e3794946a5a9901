// Package envvar centralizes configuration coming from environment
// variables, optionally backed by a secrets provider for values that should
// not live in the environment.
package envvar

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/avelinos/tasktrack-api/internal"
)

//go:generate counterfeiter -o envvartesting/provider.gen.go . Provider

// Provider provides access to secret values stored in external services.
type Provider interface {
	Get(key string) (string, error)
}

// Configuration provides access to environment variables, values prefixed
// with SECRET: are resolved through the Provider.
type Configuration struct {
	provider Provider
}

// New instantiates a new configuration.
func New(provider Provider) *Configuration {
	return &Configuration{
		provider: provider,
	}
}

// Load reads the env filename and loads it into ENV for the current process.
func Load(filename string) error {
	if filename == "" {
		return nil
	}

	if err := godotenv.Load(filename); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "loading env var file")
	}

	return nil
}

// Get returns the value for the requested key, resolving SECRET: references
// through the provider.
func (c *Configuration) Get(key string) (string, error) {
	res := os.Getenv(key)

	valSecret := os.Getenv(key + "_SECURE")
	if valSecret != "" {
		valSecretRes, err := c.provider.Get(valSecret)
		if err != nil {
			return "", internal.WrapErrorf(err, internal.ErrorCodeUnknown, "provider.Get")
		}

		res = valSecretRes
	}

	return res, nil
}

// GetOrDefault returns the value for the requested key, falling back to the
// provided default when the variable is unset or blank.
func (c *Configuration) GetOrDefault(key, def string) string {
	res, err := c.Get(key)
	if err != nil || strings.TrimSpace(res) == "" {
		return def
	}

	return res
}
