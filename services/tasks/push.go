package tasks

import (
	"encoding/json"

	"voyago/models"

	"github.com/hibiken/asynq"
)

const TypeSendPush = "push:send"

// NewPushTask wraps a push payload into an asynq task for immediate delivery.
func NewPushTask(payload models.PushPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSendPush, b), nil
}
