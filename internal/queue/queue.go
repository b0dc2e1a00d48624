package queue

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/streadway/amqp"
)

// IngestJobsTopic is the queue ingestion jobs travel on
const IngestJobsTopic = "ingestion_runs"

// IngestJob asks a consumer to run one full sync against the source.
// A zero PageSize means the consumer's configured default.
type IngestJob struct {
	PageSize int `json:"page_size"`
}

// Queue interface
type Queue interface {
	Publish(topic string, payload any) error
	Subscribe(topic string, handler func(payload any) error) error
}

// InMemoryQueue dispatches published payloads to in-process subscribers
type InMemoryQueue struct {
	mu       sync.Mutex
	handlers map[string][]func(payload any) error
}

// NewInMemoryQueue creates a new queue
func NewInMemoryQueue() *InMemoryQueue {
	return &InMemoryQueue{
		handlers: make(map[string][]func(payload any) error),
	}
}

// Publish sends a payload to all subscribers of the topic
func (q *InMemoryQueue) Publish(topic string, payload any) error {
	q.mu.Lock()
	handlers := q.handlers[topic]
	q.mu.Unlock()

	if len(handlers) == 0 {
		return fmt.Errorf("no subscribers for topic %s", topic)
	}

	for _, handler := range handlers {
		go func(h func(payload any) error) {
			if err := h(payload); err != nil {
				log.Println("⚠️ queued job failed:", err)
			}
		}(handler)
	}

	return nil
}

// Subscribe adds a handler for a topic
func (q *InMemoryQueue) Subscribe(topic string, handler func(payload any) error) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.handlers[topic] = append(q.handlers[topic], handler)
	return nil
}

// AMQPQueue publishes jobs to RabbitMQ for an external worker to
// consume. It is publish-only: consumption lives in cmd/worker.
type AMQPQueue struct {
	URL string
}

func (q *AMQPQueue) Publish(topic string, payload any) error {
	conn, err := amqp.Dial(q.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to queue: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open queue channel: %w", err)
	}
	defer ch.Close()

	declared, err := ch.QueueDeclare(
		topic,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return ch.Publish(
		"",
		declared.Name,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (q *AMQPQueue) Subscribe(topic string, handler func(payload any) error) error {
	return fmt.Errorf("AMQP consumption is handled by the worker binary")
}

// StartIngestionSubscriber runs published ingestion jobs in-process.
// run executes one sync with the given page size and reports the
// record count.
func StartIngestionSubscriber(q Queue, run func(pageSize int) (int, error)) {
	err := q.Subscribe(IngestJobsTopic, func(payload any) error {
		job, ok := payload.(IngestJob)
		if !ok {
			log.Println("⚠️ invalid payload type, expected IngestJob")
			return nil
		}

		processed, err := run(job.PageSize)
		if err != nil {
			log.Println("⚠️ ingestion run failed:", err)
			return err
		}

		log.Println("✅ ingestion run processed", processed, "records")
		return nil
	})
	if err != nil {
		log.Println("⚠️ failed to start ingestion subscriber:", err)
	}
}
