package internal

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avelinos/tasktrack-api/internal"
	"github.com/avelinos/tasktrack-api/internal/envvar"
)

// NewPostgreSQL instantiates the PostgreSQL connection pool using
// configuration defined in environment variables.
func NewPostgreSQL(conf *envvar.Configuration) (*pgxpool.Pool, error) {
	get := func(v string) (string, error) {
		res, err := conf.Get(v)
		if err != nil {
			return "", internal.WrapErrorf(err, internal.ErrorCodeUnknown, "conf.Get %s", v)
		}

		return res, nil
	}

	host, err := get("DATABASE_HOST")
	if err != nil {
		return nil, err
	}

	port, err := get("DATABASE_PORT")
	if err != nil {
		return nil, err
	}

	username, err := get("DATABASE_USERNAME")
	if err != nil {
		return nil, err
	}

	password, err := get("DATABASE_PASSWORD")
	if err != nil {
		return nil, err
	}

	name, err := get("DATABASE_NAME")
	if err != nil {
		return nil, err
	}

	sslmode, err := get("DATABASE_SSLMODE")
	if err != nil {
		return nil, err
	}

	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(username, password),
		Host:   fmt.Sprintf("%s:%s", host, port),
		Path:   name,
	}

	q := dsn.Query()
	q.Add("sslmode", sslmode)

	dsn.RawQuery = q.Encode()

	pool, err := pgxpool.New(context.Background(), dsn.String())
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "pgxpool.New")
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "pool.Ping")
	}

	return pool, nil
}
