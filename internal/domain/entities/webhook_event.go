package entities

import "strings"

// WebhookEventStatusSuccessful is the only gateway outcome that triggers a
// ledger transition; every other outcome is acknowledged and ignored.
const WebhookEventStatusSuccessful = "successful"

// WebhookEvent is the gateway's payment-outcome envelope after signature
// verification. It is transient: events are never persisted, only applied to
// the purchase ledger.
//
// The gateway delivers amounts in minor units; Data.Amount is the
// authoritative value for the completing purchase.

type WebhookEvent struct {
	Status string           `json:"status"`
	Data   WebhookEventData `json:"data"`
}

type WebhookEventData struct {
	Amount   int64                `json:"amount"`
	Metadata WebhookEventMetadata `json:"metadata"`
}

type WebhookEventMetadata struct {
	PaymentID string `json:"payment_id"`
	CourseID  string `json:"course_id"`
	UserID    string `json:"user_id"`
}

// Validate reports whether the event carries every field the reconciler
// depends on. Malformed envelopes are rejected before they reach the ledger.
func (e WebhookEvent) Validate() bool {
	if strings.TrimSpace(e.Status) == "" {
		return false
	}
	if strings.TrimSpace(e.Data.Metadata.PaymentID) == "" {
		return false
	}
	return e.Data.Amount >= 0
}
