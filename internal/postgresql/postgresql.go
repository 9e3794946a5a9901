// Package postgresql implements the authoritative task and category stores
// on top of a pgx connection pool. Every read path applies the soft-delete
// predicate; derived fields are resolved by joining the categories table at
// read time.
package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
)

const otelName = "github.com/avelinos/tasktrack-api/internal/postgresql"

// uniqueViolation is the PostgreSQL error code raised when a unique index
// rejects a write.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func newOTELSpan(ctx context.Context, name string) trace.Span {
	_, span := otel.Tracer(otelName).Start(ctx, name)

	span.SetAttributes(semconv.DBSystemPostgreSQL)

	return span
}
