package main

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/crewcall-dev/crew-manager/backend/internal/config"
	"github.com/crewcall-dev/crew-manager/backend/internal/domain"
)

func main() {
	/**********************************************
	 * logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * configuration
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * mail client
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("failed to create mail client", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("failed to connect to mail server", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("failed to open channel", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"notification_queue",
		true,  // durable
		false, // keep the queue around while no consumer is attached
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("failed to declare queue", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("failed to consume messages", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("received notification", slog.String("message", string(msg.Body)))

				notification := domain.NotificationMessage{}
				if err := json.Unmarshal(msg.Body, &notification); err != nil {
					logger.Error("failed to deserialize notification", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				m := mail.NewMsg()
				if err := m.From(cfg.Email.SMTP.Username); err != nil {
					logger.Error("failed to set sender", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.To(notification.To); err != nil {
					logger.Error("failed to set recipient", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				switch notification.Type {
				case "up_for_grabs":
					tmpl, err := template.ParseFiles("./templates/up_for_grabs_email.html")
					if err != nil {
						logger.Error("failed to parse mail template", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(tmpl, notification.Data); err != nil {
						logger.Error("failed to set mail body", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("Crew Manager - Shift Up For Grabs")
				case "timesheet_ready":
					tmpl, err := template.ParseFiles("./templates/timesheet_ready_email.html")
					if err != nil {
						logger.Error("failed to parse mail template", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					if err := m.SetBodyHTMLTemplate(tmpl, notification.Data); err != nil {
						logger.Error("failed to set mail body", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("Crew Manager - Timesheet Ready For Approval")
				default:
					logger.Error("unsupported notification type", slog.String("type", notification.Type))
					_ = msg.Nack(false, false)
					continue
				}

				if err := client.DialAndSend(m); err != nil {
					logger.Error("failed to send mail", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // requeue for retry
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("waiting for notifications... (CTRL+C to exit)")
	<-sigChan

	slog.Info("shutting down notifier...")
	cancel()
	wg.Wait()
	slog.Info("notifier stopped")
}
