package notification

import (
	"context"
	"fmt"

	customerRepo "voyago/database/repository/customer"
	fleetRepo "voyago/database/repository/fleet"
	notificationRepo "voyago/database/repository/notification"
	"voyago/models"
	"voyago/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PushSender sends one FCM message. *messaging.Client satisfies it.
type PushSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// NotificationService delivers pushes to customers and operators and keeps
// the stored feed each recipient sees in-app.
type NotificationService interface {
	Send(ctx context.Context, payload models.PushPayload) error
	ListFeed(target, targetID string, unreadOnly bool) ([]models.Notification, error)
	MarkRead(id string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Customers customerRepo.CustomerRepository
	Fleets    fleetRepo.FleetRepository
	Repo      notificationRepo.NotificationRepository

	// Sender falls back to the shared FCM client when nil.
	Sender PushSender
}

// Send pushes one notification to its recipient and records it in the feed.
// A recipient without a registered device still gets the feed entry. A
// failed push returns an error before anything is stored, so the queue can
// retry without duplicating feed entries.
func (svc *DefaultNotificationService) Send(ctx context.Context, payload models.PushPayload) error {
	token, err := svc.recipientToken(payload.Target, payload.ID)
	if err != nil {
		return err
	}

	if token != "" {
		if err := svc.push(ctx, token, payload); err != nil {
			return err
		}
	}

	record := &models.Notification{
		ID:       uuid.New().String(),
		Target:   payload.Target,
		TargetID: payload.ID,
		Type:     payload.Type,
		Title:    payload.Title,
		Body:     payload.Body,
	}
	if err := svc.Repo.Create(record); err != nil {
		utils.GetLogger().Error("failed to store notification",
			zap.String("target", payload.Target), zap.String("targetId", payload.ID), zap.Error(err))
	}
	return nil
}

// ListFeed retrieves a recipient's notifications, newest first.
func (svc *DefaultNotificationService) ListFeed(target, targetID string, unreadOnly bool) ([]models.Notification, error) {
	return svc.Repo.ListByRecipient(target, targetID, unreadOnly)
}

// MarkRead flags a notification as read.
func (svc *DefaultNotificationService) MarkRead(id string) error {
	return svc.Repo.MarkRead(id)
}

// recipientToken resolves the FCM token for a notification target. An empty
// token means the recipient has no registered device.
func (svc *DefaultNotificationService) recipientToken(target, id string) (string, error) {
	switch target {
	case models.NotifyTargetCustomer:
		customer, err := svc.Customers.GetByID(id)
		if err != nil {
			return "", fmt.Errorf("failed to resolve customer %s: %w", id, err)
		}
		return customer.FCMToken, nil
	case models.NotifyTargetFleet:
		fleet, err := svc.Fleets.GetFleetByID(id)
		if err != nil {
			return "", fmt.Errorf("failed to resolve fleet %s: %w", id, err)
		}
		return fleet.FCMToken, nil
	case models.NotifyTargetDriver:
		driver, err := svc.Fleets.GetDriverByID(id)
		if err != nil {
			return "", fmt.Errorf("failed to resolve driver %s: %w", id, err)
		}
		return driver.FCMToken, nil
	}
	return "", fmt.Errorf("unknown notification target %q", target)
}

func (svc *DefaultNotificationService) push(ctx context.Context, token string, payload models.PushPayload) error {
	sender := svc.Sender
	if sender == nil {
		if utils.FCMClient == nil {
			return fmt.Errorf("fcm client not initialised")
		}
		sender = utils.FCMClient
	}

	data := map[string]string{"type": payload.Type, "target": payload.Target}
	for key, value := range payload.Data {
		data[key] = value
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound: "default",
				},
			},
		},
	}

	if _, err := sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send push to %s %s: %w", payload.Target, payload.ID, err)
	}
	return nil
}
