package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/mercari/go-circuitbreaker"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type task struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description,omitempty"`
	IsCompleted  bool       `json:"isCompleted"`
	Priority     int8       `json:"priority"`
	PriorityText string     `json:"priorityText"`
	DueDate      *time.Time `json:"dueDate"`
	IsOverdue    bool       `json:"isOverdue"`
	DueStatus    string     `json:"dueStatus"`
}

type client struct {
	baseURL string
	http    *http.Client
	cb      *circuitbreaker.CircuitBreaker
}

func newClient(baseURL string) *client {
	return &client{
		baseURL: baseURL,
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   5 * time.Second,
		},
		cb: circuitbreaker.New(
			circuitbreaker.WithOpenTimeout(10*time.Second),
			circuitbreaker.WithTripFunc(circuitbreaker.NewTripFuncThreshold(3)),
		),
	}
}

func (c *client) do(ctx context.Context, method, path string, body, out interface{}) error {
	_, err := c.cb.Do(ctx, func() (interface{}, error) {
		var buf bytes.Buffer

		if body != nil {
			if err := json.NewEncoder(&buf).Encode(body); err != nil {
				return nil, fmt.Errorf("json.Encode: %w", err)
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
		if err != nil {
			return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("http.Do: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}

		if out != nil {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return nil, fmt.Errorf("json.Decode: %w", err)
			}
		}

		return nil, nil
	})

	return err
}

func main() {
	var baseURL string

	flag.StringVar(&baseURL, "url", "http://0.0.0.0:9234", "API base URL")
	flag.Parse()

	initTracer()

	api := newClient(baseURL)
	ctx := context.Background()

	newPtrStr := func(s string) *string {
		return &s
	}

	newPtrTime := func(t time.Time) *time.Time {
		return &t
	}

	var created task

	err := api.do(ctx, http.MethodPost, "/tasks", map[string]interface{}{
		"title":       "Sleep early",
		"description": newPtrStr("Lights out before midnight"),
		"priority":    1,
		"dueDate":     newPtrTime(time.Now().Add(24 * time.Hour)),
	}, &created)
	if err != nil {
		log.Fatalf("Couldn't create task: %s", err)
	}

	fmt.Printf("New Task\n\tID: %d\n", created.ID)
	fmt.Printf("\tTitle: %s\n", created.Title)
	fmt.Printf("\tPriority: %s\n", created.PriorityText)
	fmt.Printf("\tDueStatus: %s\n", created.DueStatus)

	var toggled task

	err = api.do(ctx, http.MethodPatch, fmt.Sprintf("/tasks/%d/toggle", created.ID), nil, &toggled)
	if err != nil {
		log.Fatalf("Couldn't toggle task: %s", err)
	}

	fmt.Printf("Toggled Task\n\tID: %d\n", toggled.ID)
	fmt.Printf("\tCompleted: %t\n", toggled.IsCompleted)

	var page struct {
		Tasks      []task `json:"tasks"`
		TotalCount int64  `json:"totalCount"`
		TotalPages int    `json:"totalPages"`
	}

	err = api.do(ctx, http.MethodPost, "/tasks/search", map[string]interface{}{
		"searchTerm": "sleep",
		"page":       1,
		"pageSize":   10,
	}, &page)
	if err != nil {
		log.Fatalf("Couldn't search tasks: %s", err)
	}

	fmt.Printf("Search\n\tTotal: %d\n\tPages: %d\n", page.TotalCount, page.TotalPages)

	for _, t := range page.Tasks {
		fmt.Printf("\t- %d %s (%s)\n", t.ID, t.Title, t.PriorityText)
	}

	// Let the batch span processor flush before exiting.
	time.Sleep(10 * time.Second)
}

// initTracer initializes tracing with Jaeger and stdout exporters.
func initTracer() {
	jaegerEndpoint := "http://localhost:14268/api/traces"

	jaegerExporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(jaegerEndpoint)))
	if err != nil {
		log.Fatalf("Couldn't initialize jaeger exporter: %s", err)
	}

	stdoutExporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
	if err != nil {
		log.Fatalf("Couldn't initialize stdout exporter: %s", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(stdoutExporter),
		sdktrace.WithBatcher(jaegerExporter),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
}
