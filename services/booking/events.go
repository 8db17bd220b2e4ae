// File: services/booking/events.go
package booking

import (
	"voyago/models"
	"voyago/services/tasks"
	"voyago/utils"

	"go.uber.org/zap"
)

// enqueuePush hands a notification to the worker queue. Dispatch is
// best-effort: an absent or unreachable queue never fails the booking
// operation that triggered it.
func (svc *DefaultBookingService) enqueuePush(payload models.PushPayload) {
	if svc.AsynqClient == nil {
		return
	}
	task, err := tasks.NewPushTask(payload)
	if err != nil {
		utils.GetLogger().Error("failed to build push task",
			zap.String("type", payload.Type), zap.Error(err))
		return
	}
	if _, err := svc.AsynqClient.Enqueue(task); err != nil {
		utils.GetLogger().Error("failed to enqueue push task",
			zap.String("type", payload.Type), zap.Error(err))
	}
}

func (svc *DefaultBookingService) notifyCustomer(bk *models.Booking, event, title, body string) {
	svc.enqueuePush(models.PushPayload{
		Target: models.NotifyTargetCustomer,
		ID:     bk.CustomerID,
		Type:   event,
		Title:  title,
		Body:   body,
		Data: map[string]string{
			"bookingId": bk.ID,
			"reference": bk.Reference,
		},
	})
}
