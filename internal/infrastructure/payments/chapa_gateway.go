package payments

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"learnhub/internal/config"
	"learnhub/internal/domain/entities"
	"learnhub/internal/usecase/interfaces"
)

// ChapaGateway talks to the Chapa hosted-checkout API: it creates payment
// links and authenticates the webhook events Chapa delivers back. No gateway
// state is kept locally.
//
// All credentials come from the injected config; the gateway never reads the
// environment itself.

type ChapaGateway struct {
	cfg        config.Chapa
	httpClient *http.Client
	mockMode   bool
}

var _ interfaces.IPaymentGateway = (*ChapaGateway)(nil)

func NewChapaGateway(cfg config.Chapa) *ChapaGateway {
	if cfg.MockMode {
		log.Printf("[payment][gateway] mock mode enabled")
	} else {
		log.Printf("[payment][gateway] Chapa client initialized base_url=%s", cfg.BaseURL)
	}
	return &ChapaGateway{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		mockMode:   cfg.MockMode,
	}
}

type chapaLinkRequest struct {
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Email       string            `json:"email"`
	PhoneNumber string            `json:"phone_number,omitempty"`
	OrderID     string            `json:"order_id"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CallbackURL string            `json:"callback_url"`
	SuccessURL  string            `json:"success_url,omitempty"`
	CancelURL   string            `json:"cancel_url,omitempty"`
}

type chapaLinkResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		ID   string `json:"id"`
		Link string `json:"link"`
	} `json:"data"`
}

func (g *ChapaGateway) CreatePaymentLink(ctx context.Context, req interfaces.PaymentLinkRequest) (interfaces.PaymentLink, error) {
	if g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock create success link_id=%s order_ref=%s", id, req.OrderRef)
		return interfaces.PaymentLink{ID: id, URL: "https://checkout.chapa.test/" + id}, nil
	}

	log.Printf("[payment][gateway] create start order_ref=%s amount=%d currency=%s", req.OrderRef, req.Amount, req.Currency)

	body, err := json.Marshal(chapaLinkRequest{
		Amount:      req.Amount,
		Currency:    req.Currency,
		Email:       req.Email,
		PhoneNumber: req.Phone,
		OrderID:     req.OrderRef,
		Metadata:    req.Metadata,
		CallbackURL: req.CallbackURL,
		SuccessURL:  req.SuccessURL,
		CancelURL:   req.CancelURL,
	})
	if err != nil {
		return interfaces.PaymentLink{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(g.cfg.BaseURL, "/")+"/v1/payment-links", bytes.NewReader(body))
	if err != nil {
		return interfaces.PaymentLink{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.cfg.SecretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[payment][gateway] create transport failure order_ref=%s err=%v", req.OrderRef, err)
		return interfaces.PaymentLink{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		log.Printf("[payment][gateway] create upstream failure order_ref=%s status=%d", req.OrderRef, resp.StatusCode)
		return interfaces.PaymentLink{}, fmt.Errorf("%w: status %d", interfaces.ErrGatewayUnavailable, resp.StatusCode)
	}

	var parsed chapaLinkResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		log.Printf("[payment][gateway] create response decode failed order_ref=%s err=%v", req.OrderRef, err)
		return interfaces.PaymentLink{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayRejected, err)
	}
	if resp.StatusCode != http.StatusOK || parsed.Data.ID == "" || parsed.Data.Link == "" {
		log.Printf("[payment][gateway] create rejected order_ref=%s status=%d message=%q", req.OrderRef, resp.StatusCode, parsed.Message)
		return interfaces.PaymentLink{}, fmt.Errorf("%w: status %d", interfaces.ErrGatewayRejected, resp.StatusCode)
	}

	log.Printf("[payment][gateway] create success order_ref=%s link_id=%s", req.OrderRef, parsed.Data.ID)
	return interfaces.PaymentLink{ID: parsed.Data.ID, URL: parsed.Data.Link}, nil
}

// VerifyWebhook authenticates the payload with HMAC-SHA256 over the raw body
// (hex-encoded in the x-chapa-signature header) before parsing it. Signature
// comparison is constant time.
func (g *ChapaGateway) VerifyWebhook(rawPayload []byte, signature string) (entities.WebhookEvent, error) {
	mac := hmac.New(sha256.New, []byte(g.cfg.WebhookSecret))
	mac.Write(rawPayload)
	expected := hex.EncodeToString(mac.Sum(nil))

	if signature == "" || !hmac.Equal([]byte(expected), []byte(strings.ToLower(strings.TrimSpace(signature)))) {
		return entities.WebhookEvent{}, interfaces.ErrInvalidSignature
	}

	var event entities.WebhookEvent
	if err := json.Unmarshal(rawPayload, &event); err != nil {
		return entities.WebhookEvent{}, fmt.Errorf("%w: %v", interfaces.ErrMalformedEvent, err)
	}
	if !event.Validate() {
		return entities.WebhookEvent{}, interfaces.ErrMalformedEvent
	}
	return event, nil
}
