package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/designershaven/marketplace-api/config"
	"github.com/designershaven/marketplace-api/internal/application"
	"github.com/designershaven/marketplace-api/internal/domain/entity"
	pginfra "github.com/designershaven/marketplace-api/internal/infrastructure/postgres"
	"github.com/designershaven/marketplace-api/pkg/helpers"
	"github.com/designershaven/marketplace-api/pkg/mailer"
)

// The worker drains the notifications queue and writes inbox rows. Follow
// notifications optionally get an email copy when Mailgun is configured.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-notify-worker", cfg.Env)

	if cfg.RabbitMQURL == "" || cfg.RabbitMQNotifyQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	notifs := pginfra.NewNotificationRepository(pool)
	svc := application.NewNotificationService(notifs, logger)

	var mg *mailer.Mailgun
	if cfg.MailSendEnabled && cfg.MailgunDomain != "" && cfg.MailgunAPIKey != "" && cfg.MailgunSender != "" {
		mg = mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch across workers
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQNotifyQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQNotifyQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var ev entity.NotificationEvent
			if err := json.Unmarshal(msg.Body, &ev); err != nil {
				logger.WithError(err).Warn("bad message")
				_ = msg.Nack(false, false)
				continue
			}

			if err := svc.HandleEvent(ctx, ev); err != nil {
				logger.WithError(err).WithField("recipient", ev.RecipientID).Warn("persist failed")
				_ = msg.Nack(false, true)
				continue
			}

			if mg != nil && ev.Type == entity.NotificationFollow {
				sendFollowEmail(ctx, logger, mg, users, ev)
			}

			_ = msg.Ack(false)
		}
		close(done)
	}()

	logger.Infof("notify worker listening on queue=%s", cfg.RabbitMQNotifyQueue)
	<-stop
	logger.Info("shutting down...")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}

// sendFollowEmail is best-effort like the rest of fan-out: any failure is
// logged and the delivery is still acked.
func sendFollowEmail(ctx context.Context, logger *logrus.Logger, mg *mailer.Mailgun, users *pginfra.UserRepository, ev entity.NotificationEvent) {
	recipient, err := users.GetByID(ev.RecipientID)
	if err != nil || recipient == nil || recipient.Email == "" {
		return
	}
	senderName := ""
	if sender, err := users.GetByID(ev.SenderID); err == nil && sender != nil {
		senderName = sender.Name
	}
	subject, text := mailer.FollowEmail(senderName)
	c, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := mg.Send(c, recipient.Email, subject, text); err != nil {
		logger.WithError(err).Warn("follow email failed")
	}
}
