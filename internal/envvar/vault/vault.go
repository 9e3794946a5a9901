// Package vault implements the envvar.Provider interface on top of
// HashiCorp Vault's KV v2 secrets engine.
package vault

import (
	"fmt"
	"sync"

	vaultapi "github.com/hashicorp/vault/api"

	"github.com/avelinos/tasktrack-api/internal"
)

// Provider reads secrets from a Vault KV v2 mount, caching the secret data
// after the first read.
type Provider struct {
	client *vaultapi.Client
	path   string

	mu   sync.Mutex
	data map[string]interface{}
}

// New instantiates a Vault provider.
func New(token, addr, path string) (*Provider, error) {
	config := vaultapi.DefaultConfig()
	config.Address = addr

	client, err := vaultapi.NewClient(config)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "vaultapi.NewClient")
	}

	client.SetToken(token)

	return &Provider{
		client: client,
		path:   path,
	}, nil
}

// Get reads one secret value from the configured path.
func (p *Provider) Get(key string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.data == nil {
		secret, err := p.client.Logical().Read(p.path)
		if err != nil {
			return "", internal.WrapErrorf(err, internal.ErrorCodeUnknown, "client.Logical.Read")
		}

		if secret == nil {
			return "", internal.NewErrorf(internal.ErrorCodeNotFound, "secret path not found: %s", p.path)
		}

		data, ok := secret.Data["data"].(map[string]interface{})
		if !ok {
			return "", internal.NewErrorf(internal.ErrorCodeUnknown, "unexpected secret payload at %s", p.path)
		}

		p.data = data
	}

	val, ok := p.data[key]
	if !ok {
		return "", internal.NewErrorf(internal.ErrorCodeNotFound, "key not found: %s", key)
	}

	return fmt.Sprintf("%v", val), nil
}
