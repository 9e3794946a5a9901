// Package rest exposes the task and category services over HTTP+JSON.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"

	"github.com/avelinos/tasktrack-api/internal"
)

// ErrorResponse represents a response containing an error message and, for
// validation failures, the per-field reasons.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func renderErrorResponse(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	resp := ErrorResponse{Error: msg}
	status := http.StatusInternalServerError

	var ierr *internal.Error
	if !errors.As(err, &ierr) {
		resp.Error = "internal error"
	} else {
		switch ierr.Code() {
		case internal.ErrorCodeNotFound:
			status = http.StatusNotFound
		case internal.ErrorCodeInvalidArgument:
			status = http.StatusBadRequest
			resp.Details = ierr.Fields()
		case internal.ErrorCodeInvalidReference:
			status = http.StatusBadRequest
			resp.Error = ierr.Error()
		}
	}

	if err != nil {
		_, span := otel.Tracer("rest").Start(ctx, "rest.renderErrorResponse")
		defer span.End()

		span.RecordError(err)
	}

	renderResponse(w, resp, status)
}

func renderResponse(w http.ResponseWriter, res interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(content)
}

// pathID parses the {id} route parameter. The route pattern guarantees it is
// numeric.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "invalid id")
	}

	return id, nil
}
