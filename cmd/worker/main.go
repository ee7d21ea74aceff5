package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airreservation/config"
	"github.com/Domenick1991/airreservation/internal/email"
	"github.com/Domenick1991/airreservation/internal/kafka"
	"github.com/Domenick1991/airreservation/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	kafkaGo "github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"
)

// Notifier is satisfied by *email.Sender.
type Notifier interface {
	Send(ctx context.Context, event kafka.BookingEvent) error
}

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Kafka.Enabled() {
		log.Fatalf("worker needs kafka.brokers")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var archive repository.EventRepository
	if cfg.Database.Enabled() {
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()

		archive = repository.NewEventRepository(pool)
		if err := archive.EnsureSchema(ctx); err != nil {
			log.Fatalf("prepare booking_events table: %v", err)
		}
	}

	// With a notifications topic configured, e-mail is sent from it by a
	// separate consumer group and the events topic only feeds the archive.
	var inlineNotifier Notifier = email.NewSender()
	g, gctx := errgroup.WithContext(ctx)
	if topic := cfg.Kafka.NotificationsTopic; topic != "" {
		inlineNotifier = nil
		groupID := cfg.Kafka.GroupID + "-notifications"
		g.Go(func() error {
			return run(gctx, kafka.NewConsumer(cfg.Kafka.Brokers, groupID, topic), groupID, newHandler(nil, email.NewSender()))
		})
	}
	if archive != nil || inlineNotifier != nil {
		topic, groupID := cfg.Kafka.BookingEventsTopic, cfg.Kafka.GroupID
		g.Go(func() error {
			return run(gctx, kafka.NewConsumer(cfg.Kafka.Brokers, groupID, topic), groupID, newHandler(archive, inlineNotifier))
		})
	}

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		log.Fatalf("consumer stopped: %v", err)
	}
	log.Printf("worker shut down")
}

func run(ctx context.Context, consumer *kafka.Consumer, groupID string, handle func(context.Context, kafkaGo.Message) error) error {
	defer consumer.Close()

	log.Printf("consumer group %s started", groupID)
	err := consumer.Consume(ctx, handle)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// newHandler archives each event, then notifies the passenger. Either step
// is skipped when nil. Undecodable messages are skipped; archive failures
// stop the consumer before the offset is committed, so the message is
// redelivered.
func newHandler(archive repository.EventRepository, notifier Notifier) func(context.Context, kafkaGo.Message) error {
	return func(ctx context.Context, msg kafkaGo.Message) error {
		event, err := kafka.DecodeEvent(msg)
		if err != nil {
			log.Printf("decode event error at offset %d: %v", msg.Offset, err)
			return nil
		}
		if archive != nil {
			if err := archive.Append(ctx, event); err != nil {
				return err
			}
		}
		if notifier != nil {
			if err := notifier.Send(ctx, event); err != nil {
				log.Printf("notify %s about %s: %v", event.PassengerID, event.Type, err)
			}
		}
		return nil
	}
}
