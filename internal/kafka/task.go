// Package kafka publishes task lifecycle events consumed by the
// elasticsearch indexer.
package kafka

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/avelinos/tasktrack-api/internal"
)

// Task represents the repository used for publishing Task records.
type Task struct {
	producer  *kafka.Producer
	topicName string
}

// Event wraps a task snapshot with the mutation that produced it.
type Event struct {
	ID    string        `json:"id"`
	Type  string        `json:"type"`
	Value internal.Task `json:"value"`
}

// NewTask instantiates the Task repository.
func NewTask(producer *kafka.Producer, topicName string) *Task {
	return &Task{
		producer:  producer,
		topicName: topicName,
	}
}

// Created publishes a message indicating a task was created.
func (t *Task) Created(ctx context.Context, task internal.Task) error {
	return t.publish(ctx, "Task.Created", "tasks.event.created", task)
}

// Updated publishes a message indicating a task was updated, covering both
// generic updates and completion toggles.
func (t *Task) Updated(ctx context.Context, task internal.Task) error {
	return t.publish(ctx, "Task.Updated", "tasks.event.updated", task)
}

// Deleted publishes a message indicating a task was soft-deleted.
func (t *Task) Deleted(ctx context.Context, id int64) error {
	return t.publish(ctx, "Task.Deleted", "tasks.event.deleted", internal.Task{ID: id})
}

// Restored publishes a message indicating a soft-deleted task came back.
func (t *Task) Restored(ctx context.Context, task internal.Task) error {
	return t.publish(ctx, "Task.Restored", "tasks.event.restored", task)
}

func (t *Task) publish(ctx context.Context, spanName, msgType string, task internal.Task) error {
	_, span := trace.SpanFromContext(ctx).TracerProvider().Tracer(spanName).Start(ctx, spanName)
	defer span.End()

	span.SetAttributes(
		attribute.KeyValue{
			Key:   semconv.MessagingSystemKey,
			Value: attribute.StringValue("kafka"),
		},
	)

	evt := Event{
		ID:    uuid.NewString(),
		Type:  msgType,
		Value: task,
	}

	var b bytes.Buffer

	if err := json.NewEncoder(&b).Encode(evt); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "json.Encode")
	}

	if err := t.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &t.topicName,
			Partition: kafka.PartitionAny,
		},
		Key:   []byte(evt.ID),
		Value: b.Bytes(),
	}, nil); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "producer.Produce")
	}

	return nil
}
