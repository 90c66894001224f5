package notify

import (
	"context"
	"time"
)

// AdmissionReceivedPayload captures the data emitted when a public admission
// application lands.
type AdmissionReceivedPayload struct {
	AdmissionID string
	Applicant   string
	Email       string
	Phone       string
	Course      string
	SubmittedAt time.Time
}

// Sink describes a destination capable of consuming admission notifications.
type Sink interface {
	SendAdmissionReceived(ctx context.Context, payload AdmissionReceivedPayload) error
}

// SinkFunc adapts a function to the Sink interface (useful for tests).
type SinkFunc func(ctx context.Context, payload AdmissionReceivedPayload) error

// SendAdmissionReceived implements the Sink interface.
func (f SinkFunc) SendAdmissionReceived(ctx context.Context, payload AdmissionReceivedPayload) error {
	if f == nil {
		return nil
	}
	return f(ctx, payload)
}
