// Package memcached implements a cache-aside decorator around the task
// store, caching read-by-id lookups and invalidating on mutation.
package memcached

import (
	"bytes"
	"context"
	"encoding/gob"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/avelinos/tasktrack-api/internal"
)

const otelName = "github.com/avelinos/tasktrack-api/internal/memcached"

func deleteValue(ctx context.Context, client *memcache.Client, key string) {
	defer newOTELSpan(ctx, "deleteValue").End()

	_ = client.Delete(key)
}

func getValue(ctx context.Context, client *memcache.Client, key string, target interface{}) error {
	defer newOTELSpan(ctx, "getValue").End()

	item, err := client.Get(key)
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "client.Get")
	}

	if err := gob.NewDecoder(bytes.NewReader(item.Value)).Decode(target); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "gob.NewDecoder")
	}

	return nil
}

func setValue(ctx context.Context, client *memcache.Client, key string, value interface{}, expiration time.Duration) {
	defer newOTELSpan(ctx, "setValue").End()

	var b bytes.Buffer

	if err := gob.NewEncoder(&b).Encode(value); err != nil {
		return
	}

	_ = client.Set(&memcache.Item{
		Key:        key,
		Value:      b.Bytes(),
		Expiration: int32(time.Now().Add(expiration).Unix()),
	})
}

func newOTELSpan(ctx context.Context, name string) trace.Span {
	_, span := otel.Tracer(otelName).Start(ctx, name)

	span.SetAttributes(semconv.DBSystemMemcached)

	return span
}
