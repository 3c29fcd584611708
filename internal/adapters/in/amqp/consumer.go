// Package amqp consumes jobs from the RabbitMQ job queue.
package amqp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"opsworker/internal/core/application/router"

	"github.com/cenkalti/backoff/v4"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/sync/errgroup"
)

const consumerTag = "opsworker"

// Dispatcher runs one decoded job.
type Dispatcher interface {
	Dispatch(ctx context.Context, job router.Job) error
}

// Config holds the broker settings.
type Config struct {
	URL   string
	Queue string

	// InitialBackoff is the first reconnect delay; it doubles on every
	// failed attempt up to MaxBackoff.
	InitialBackoff time.Duration
	MaxBackoff     time.Duration

	// Workers bounds how many jobs run at once. It is also the prefetch
	// count.
	Workers int
}

// Outcome is what happens to a delivery once its job has run.
type Outcome int

const (
	Ack Outcome = iota
	Requeue
)

func (o Outcome) String() string {
	if o == Requeue {
		return "requeue"
	}
	return "ack"
}

// Decide maps a job result onto an Outcome. Jobs that can never succeed as
// sent are acknowledged so they do not loop on the queue.
func Decide(err error) Outcome {
	switch {
	case err == nil:
		return Ack
	case errors.Is(err, router.ErrUnknownJob), errors.Is(err, router.ErrInvalidJob):
		return Ack
	default:
		return Requeue
	}
}

// Consumer reads the durable job queue with manual acknowledgement and
// reconnects with a doubling backoff when the broker goes away.
type Consumer struct {
	cfg        Config
	dispatcher Dispatcher
	logger     *slog.Logger
}

// NewConsumer creates a Consumer.
func NewConsumer(cfg Config, dispatcher Dispatcher, logger *slog.Logger) *Consumer {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = 16 * time.Millisecond
	}
	if cfg.MaxBackoff < cfg.InitialBackoff {
		cfg.MaxBackoff = time.Minute
	}
	return &Consumer{
		cfg:        cfg,
		dispatcher: dispatcher,
		logger:     logger.With("component", "AmqpConsumer", "queue", cfg.Queue),
	}
}

// Run consumes until ctx is cancelled. In-flight jobs are waited for before
// it returns.
func (c *Consumer) Run(ctx context.Context) error {
	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = c.cfg.InitialBackoff
	retry.Multiplier = 2
	retry.RandomizationFactor = 0
	retry.MaxInterval = c.cfg.MaxBackoff
	retry.MaxElapsedTime = 0
	retry.Reset()

	for {
		err := c.session(ctx, retry.Reset)
		if ctx.Err() != nil {
			return nil
		}

		wait := retry.NextBackOff()
		c.logger.Error("broker session ended, reconnecting", "error", err, "wait", wait.String())

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(wait):
		}
	}
}

// session runs one connection until it closes or ctx is cancelled.
// connected is called once the consumer is registered.
func (c *Consumer) session(ctx context.Context, connected func()) error {
	conn, err := amqp.Dial(c.cfg.URL)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.Qos(c.cfg.Workers, 0, false); err != nil {
		return fmt.Errorf("set prefetch: %w", err)
	}
	if _, err := ch.QueueDeclare(c.cfg.Queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	deliveries, err := ch.Consume(c.cfg.Queue, consumerTag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}
	closed := conn.NotifyClose(make(chan *amqp.Error, 1))

	connected()
	c.logger.Info("waiting for jobs")

	g := new(errgroup.Group)
	g.SetLimit(c.cfg.Workers)
	defer func() { _ = g.Wait() }()

	for {
		select {
		case <-ctx.Done():
			if err := ch.Cancel(consumerTag, false); err != nil {
				c.logger.Warn("cancel consumer failed", "error", err)
			}
			return ctx.Err()
		case amqpErr, ok := <-closed:
			if !ok {
				return errors.New("connection closed")
			}
			return amqpErr
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}
			g.Go(func() error {
				c.HandleDelivery(ctx, d)
				return nil
			})
		}
	}
}

// HandleDelivery runs the job in d and settles it according to Decide.
func (c *Consumer) HandleDelivery(ctx context.Context, d amqp.Delivery) Outcome {
	job, err := router.DecodeJob(d.Body)
	if err == nil {
		err = c.dispatcher.Dispatch(ctx, job)
	}

	outcome := Decide(err)
	logger := c.logger.With("delivery_tag", d.DeliveryTag, "outcome", outcome.String())

	switch outcome {
	case Requeue:
		logger.Error("job failed, requeueing", "job", job.Name, "error", err)
		if nackErr := d.Nack(false, true); nackErr != nil {
			logger.Error("nack failed", "error", nackErr)
		}
	default:
		if err != nil {
			logger.Warn("dropping job", "job", job.Name, "error", err)
		}
		if ackErr := d.Ack(false); ackErr != nil {
			logger.Error("ack failed", "error", ackErr)
		}
	}
	return outcome
}
