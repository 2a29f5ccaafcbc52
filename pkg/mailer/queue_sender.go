package mailer

import (
	"context"

	"github.com/resumehub/resume-ai/pkg/helpers"
)

// QueueSender enqueues OTP emails on RabbitMQ for the email worker.
// A publish failure still counts as a delivery failure, but a message
// accepted by the broker is reported as delivered even if the worker
// later fails to send it.
type QueueSender struct {
	Pub *helpers.RabbitPublisher
}

func NewQueueSender(pub *helpers.RabbitPublisher) *QueueSender {
	return &QueueSender{Pub: pub}
}

func (s *QueueSender) SendOTP(ctx context.Context, email, code string) error {
	return s.Pub.PublishJSON(ctx, EmailJob{To: email, Code: code})
}

var _ OTPSender = (*QueueSender)(nil)
