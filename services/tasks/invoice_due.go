package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeInvoiceDue = "invoice:due"

// InvoiceDuePayload identifies the invoice a due-date reminder refers to.
type InvoiceDuePayload struct {
	InvoiceID string `json:"invoiceId"`
}

// NewInvoiceDueTask schedules a payment reminder to fire when an issued
// invoice falls due.
func NewInvoiceDueTask(invoiceID string, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(InvoiceDuePayload{InvoiceID: invoiceID})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeInvoiceDue, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
