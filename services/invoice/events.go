package invoice

import (
	"time"

	"voyago/models"
	"voyago/services/tasks"
	"voyago/utils"

	"go.uber.org/zap"
)

// scheduleDueReminder queues a reminder that fires at the invoice's due
// date. Best-effort: a missing or unreachable queue never fails the issue.
func (svc *DefaultInvoiceService) scheduleDueReminder(inv *models.Invoice, dueAt time.Time) {
	if svc.AsynqClient == nil {
		return
	}
	task, opts, err := tasks.NewInvoiceDueTask(inv.ID, dueAt)
	if err != nil {
		utils.GetLogger().Error("failed to build invoice due task",
			zap.String("invoiceId", inv.ID), zap.Error(err))
		return
	}
	if _, err := svc.AsynqClient.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Error("failed to schedule invoice due reminder",
			zap.String("invoiceId", inv.ID), zap.Error(err))
	}
}

// notifyEntity pushes an invoice event to the billed party. Custom invoices
// may bill parties with no account, so those are skipped.
func (svc *DefaultInvoiceService) notifyEntity(inv *models.Invoice, event, title, body string) {
	if svc.AsynqClient == nil {
		return
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
		return
	}

	task, err := tasks.NewPushTask(models.PushPayload{
		Target: target,
		ID:     inv.EntityID,
		Type:   event,
		Title:  title,
		Body:   body,
		Data: map[string]string{
			"invoiceId": inv.ID,
			"number":    inv.Number,
		},
	})
	if err != nil {
		utils.GetLogger().Error("failed to build push task",
			zap.String("invoiceId", inv.ID), zap.Error(err))
		return
	}
	if _, err := svc.AsynqClient.Enqueue(task); err != nil {
		utils.GetLogger().Error("failed to enqueue push task",
			zap.String("invoiceId", inv.ID), zap.Error(err))
	}
}
