package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"voyago/config"
	invoiceRepo "voyago/database/repository/invoice"
	"voyago/models"
	"voyago/services/notification"
	"voyago/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitWorker runs the async worker in background. It drains the push queue
// and fires invoice due-date reminders.
func InitWorker(notifSvc notification.NotificationService, invoices invoiceRepo.InvoiceRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendPush, handlePushTask(notifSvc))
	mux.HandleFunc(tasks.TypeInvoiceDue, handleInvoiceDueTask(notifSvc, invoices))

	// Watch the queue's Redis connection in the background.
	go monitorRedisConnection()

	// Run the worker, retrying startup a few times before giving up.
	go func() {
		log.Println("[Worker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[Worker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[Worker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // backoff grows per attempt
			} else {
				break
			}
		}
	}()
}

func handlePushTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.PushPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[PushHandler] Invalid payload: %v", err)
			return err
		}

		if err := notifSvc.Send(ctx, p); err != nil {
			log.Printf("[PushHandler] Failed to send notification to %s %s: %v", p.Target, p.ID, err)
			return err
		}
		return nil
	}
}

// handleInvoiceDueTask fires when an invoice reaches its due date. Invoices
// settled or voided in the meantime are skipped silently.
func handleInvoiceDueTask(notifSvc notification.NotificationService, invoices invoiceRepo.InvoiceRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.InvoiceDuePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[InvoiceDueHandler] Invalid payload: %v", err)
			return err
		}

		inv, err := invoices.GetByID(p.InvoiceID)
		if err != nil {
			return err
		}
		if inv.Status != models.InvoiceStatusIssued {
			return nil
		}

		var target string
		switch inv.Type {
		case models.InvoiceTypeCustomer:
			target = models.NotifyTargetCustomer
		case models.InvoiceTypeFleet:
			target = models.NotifyTargetFleet
		case models.InvoiceTypeDriver:
			target = models.NotifyTargetDriver
		default:
			return nil
		}

		return notifSvc.Send(ctx, models.PushPayload{
			Target: target,
			ID:     inv.EntityID,
			Type:   models.NotifyInvoiceDue,
			Title:  "Invoice " + inv.Number + " is due",
			Body:   fmt.Sprintf("Payment of %s %.2f for invoice %s is now due.", inv.Currency, inv.Total, inv.Number),
			Data: map[string]string{
				"invoiceId": inv.ID,
				"number":    inv.Number,
			},
		})
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[Worker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
