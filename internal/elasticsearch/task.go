// Package elasticsearch implements the secondary free-text search index for
// tasks, maintained asynchronously by the indexer processes.
package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strconv"
	"time"

	esv7 "github.com/elastic/go-elasticsearch/v7"
	esv7api "github.com/elastic/go-elasticsearch/v7/esapi"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/avelinos/tasktrack-api/internal"
)

const otelName = "github.com/avelinos/tasktrack-api/internal/elasticsearch"

// Task represents the repository used for indexing and searching Task
// records.
type Task struct {
	client *esv7.Client
	index  string
}

type indexedTask struct {
	ID          int64             `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Priority    internal.Priority `json:"priority"`
	IsCompleted bool              `json:"is_completed"`
	CategoryID  *int64            `json:"category_id"`
	DueDate     *int64            `json:"due_date"`
	CreatedAt   int64             `json:"created_at"`
}

// NewTask instantiates the Task repository.
func NewTask(client *esv7.Client) *Task {
	return &Task{
		client: client,
		index:  "tasks",
	}
}

// Index creates or updates a task document.
func (t *Task) Index(ctx context.Context, task internal.Task) error {
	defer newOTELSpan(ctx, "Task.Index").End()

	body := indexedTask{
		ID:          task.ID,
		Title:       task.Title,
		Priority:    task.Priority,
		IsCompleted: task.IsCompleted,
		CategoryID:  task.CategoryID,
		CreatedAt:   task.CreatedAt.UnixNano(),
	}

	if task.Description != nil {
		body.Description = *task.Description
	}

	if task.DueDate != nil {
		due := task.DueDate.UnixNano()
		body.DueDate = &due
	}

	var buf bytes.Buffer

	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "json.NewEncoder.Encode")
	}

	req := esv7api.IndexRequest{
		Index:      t.index,
		Body:       &buf,
		DocumentID: strconv.FormatInt(task.ID, 10),
		Refresh:    "true",
	}

	resp, err := req.Do(ctx, t.client)
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "IndexRequest.Do")
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return internal.NewErrorf(internal.ErrorCodeUnknown, "IndexRequest.Do %d", resp.StatusCode)
	}

	io.Copy(io.Discard, resp.Body)

	return nil
}

// Delete removes a task document from the index.
func (t *Task) Delete(ctx context.Context, id int64) error {
	defer newOTELSpan(ctx, "Task.Delete").End()

	req := esv7api.DeleteRequest{
		Index:      t.index,
		DocumentID: strconv.FormatInt(id, 10),
	}

	resp, err := req.Do(ctx, t.client)
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "DeleteRequest.Do")
	}
	defer resp.Body.Close()

	// A missing document is fine, deletes are replayed by the indexers.
	if resp.IsError() && resp.StatusCode != 404 {
		return internal.NewErrorf(internal.ErrorCodeUnknown, "DeleteRequest.Do %d", resp.StatusCode)
	}

	io.Copy(io.Discard, resp.Body)

	return nil
}

// Search returns tasks matching the term by relevance against title and
// description.
func (t *Task) Search(ctx context.Context, term string, from, size int) ([]internal.Task, int64, error) {
	defer newOTELSpan(ctx, "Task.Search").End()

	if term == "" {
		return nil, 0, nil
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  term,
				"fields": []string{"title", "description"},
			},
		},
		"sort": []interface{}{
			"_score",
			map[string]interface{}{"id": "asc"},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, 0, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "json.NewEncoder.Encode")
	}

	req := esv7api.SearchRequest{
		Index: []string{t.index},
		Body:  &buf,
	}

	resp, err := req.Do(ctx, t.client)
	if err != nil {
		return nil, 0, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "SearchRequest.Do")
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, 0, internal.NewErrorf(internal.ErrorCodeUnknown, "SearchRequest.Do %d", resp.StatusCode)
	}

	var hits struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source indexedTask `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return nil, 0, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "json.NewDecoder.Decode")
	}

	res := make([]internal.Task, len(hits.Hits.Hits))

	for i, hit := range hits.Hits.Hits {
		res[i] = hit.Source.toTask()
	}

	return res, hits.Hits.Total.Value, nil
}

func (d indexedTask) toTask() internal.Task {
	task := internal.Task{
		ID:          d.ID,
		Title:       d.Title,
		Priority:    d.Priority,
		IsCompleted: d.IsCompleted,
		CategoryID:  d.CategoryID,
		CreatedAt:   time.Unix(0, d.CreatedAt).UTC(),
	}

	if d.Description != "" {
		desc := d.Description
		task.Description = &desc
	}

	if d.DueDate != nil {
		due := time.Unix(0, *d.DueDate).UTC()
		task.DueDate = &due
	}

	return task
}

func newOTELSpan(ctx context.Context, name string) trace.Span {
	_, span := otel.Tracer(otelName).Start(ctx, name)

	span.SetAttributes(semconv.DBSystemElasticsearch)

	return span
}
