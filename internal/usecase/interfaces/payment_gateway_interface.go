package interfaces

import (
	"context"
	"errors"
	"learnhub/internal/domain/entities"
)

var (
	// ErrGatewayUnavailable means the processor could not be reached or timed out.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	// ErrGatewayRejected means the processor answered but returned no usable link.
	ErrGatewayRejected = errors.New("payment gateway rejected the request")
	// ErrInvalidSignature means the webhook payload could not be authenticated.
	ErrInvalidSignature = errors.New("invalid webhook signature")
	// ErrMalformedEvent means an authenticated payload is missing required fields.
	ErrMalformedEvent = errors.New("malformed webhook event")
)

// PaymentLinkRequest describes one hosted-checkout link to create. Amount is in
// the processor's minor unit. Metadata is echoed back verbatim inside webhook
// events and carries the (course_id, user_id) correlation pair.
type PaymentLinkRequest struct {
	Amount      int64
	Currency    string
	Email       string
	Phone       string
	OrderRef    string
	Metadata    map[string]string
	CallbackURL string
	SuccessURL  string
	CancelURL   string
}

// PaymentLink is the processor's answer: an external reference plus the URL the
// buyer is redirected to.
type PaymentLink struct {
	ID  string
	URL string
}

// IPaymentGateway abstracts the external payment processor (Chapa). The
// processor keeps its own transaction ledger; this service retains no gateway
// state beyond the external reference stored on the purchase record.
type IPaymentGateway interface {
	CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (PaymentLink, error)

	// VerifyWebhook authenticates rawPayload against the shared webhook secret
	// and parses it into a validated event. It must be called before any field
	// of the payload is trusted; an unverified payload is never acted upon.
	VerifyWebhook(rawPayload []byte, signature string) (entities.WebhookEvent, error)
}
