package envvar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelinos/tasktrack-api/internal/envvar"
	"github.com/avelinos/tasktrack-api/internal/envvar/envvartesting"
)

func TestConfiguration_Get(t *testing.T) {
	t.Run("plain environment value", func(t *testing.T) {
		t.Setenv("DATABASE_HOST", "localhost")

		conf := envvar.New(&envvartesting.FakeProvider{})

		got, err := conf.Get("DATABASE_HOST")
		require.NoError(t, err)
		assert.Equal(t, "localhost", got)
	})

	t.Run("secure value resolves through the provider", func(t *testing.T) {
		t.Setenv("DATABASE_PASSWORD", "fallback")
		t.Setenv("DATABASE_PASSWORD_SECURE", "/secrets/db/password")

		provider := &envvartesting.FakeProvider{}
		provider.GetReturns("s3cr3t", nil)

		conf := envvar.New(provider)

		got, err := conf.Get("DATABASE_PASSWORD")
		require.NoError(t, err)
		assert.Equal(t, "s3cr3t", got)

		require.Equal(t, 1, provider.GetCallCount())
		assert.Equal(t, "/secrets/db/password", provider.GetArgsForCall(0))
	})

	t.Run("provider failure surfaces", func(t *testing.T) {
		t.Setenv("DATABASE_PASSWORD_SECURE", "/secrets/db/password")

		provider := &envvartesting.FakeProvider{}
		provider.GetReturns("", assert.AnError)

		conf := envvar.New(provider)

		_, err := conf.Get("DATABASE_PASSWORD")
		assert.Error(t, err)
	})
}

func TestConfiguration_GetOrDefault(t *testing.T) {
	t.Run("unset variable falls back", func(t *testing.T) {
		conf := envvar.New(&envvartesting.FakeProvider{})

		assert.Equal(t, ":9234", conf.GetOrDefault("UNSET_TEST_KEY", ":9234"))
	})

	t.Run("set variable wins", func(t *testing.T) {
		t.Setenv("CACHE_BACKEND", "redis")

		conf := envvar.New(&envvartesting.FakeProvider{})

		assert.Equal(t, "redis", conf.GetOrDefault("CACHE_BACKEND", "memcached"))
	})
}
