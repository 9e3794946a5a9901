package internal

import (
	"context"
	"strconv"

	rv8 "github.com/go-redis/redis/v8"

	"github.com/avelinos/tasktrack-api/internal"
	"github.com/avelinos/tasktrack-api/internal/envvar"
)

// NewRedis instantiates the Redis client using configuration defined in
// environment variables.
func NewRedis(conf *envvar.Configuration) (*rv8.Client, error) {
	host, err := conf.Get("REDIS_HOST")
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "conf.Get REDIS_HOST")
	}

	db, err := conf.Get("REDIS_DB")
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "conf.Get REDIS_DB")
	}

	dbi, _ := strconv.Atoi(db)

	rdb := rv8.NewClient(&rv8.Options{
		Addr: host,
		DB:   dbi,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "rdb.Ping")
	}

	return rdb, nil
}
