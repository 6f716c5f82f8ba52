package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"learnhub/internal/config"
	"learnhub/internal/usecase/interfaces"
)

const testWebhookSecret = "whsec-test"

func testConfig(baseURL string) config.Chapa {
	return config.Chapa{
		SecretKey:     "CHASECK_TEST-key",
		WebhookSecret: testWebhookSecret,
		BaseURL:       baseURL,
		Currency:      "NGN",
		Timeout:       2 * time.Second,
	}
}

func sign(payload []byte) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestChapaGateway_VerifyWebhook(t *testing.T) {
	g := NewChapaGateway(testConfig("https://api.chapa.test"))
	payload := []byte(`{"status":"successful","data":{"amount":500,"metadata":{"payment_id":"L1","course_id":"c1","user_id":"u1"}}}`)

	t.Run("valid signature", func(t *testing.T) {
		event, err := g.VerifyWebhook(payload, sign(payload))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if event.Status != "successful" || event.Data.Metadata.PaymentID != "L1" || event.Data.Amount != 500 {
			t.Fatalf("unexpected event: %+v", event)
		}
	})

	t.Run("missing signature", func(t *testing.T) {
		_, err := g.VerifyWebhook(payload, "")
		if !errors.Is(err, interfaces.ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("tampered payload", func(t *testing.T) {
		tampered := []byte(`{"status":"successful","data":{"amount":1,"metadata":{"payment_id":"L1"}}}`)
		_, err := g.VerifyWebhook(tampered, sign(payload))
		if !errors.Is(err, interfaces.ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("signed but not json", func(t *testing.T) {
		raw := []byte(`not-json`)
		_, err := g.VerifyWebhook(raw, sign(raw))
		if !errors.Is(err, interfaces.ErrMalformedEvent) {
			t.Fatalf("expected ErrMalformedEvent, got %v", err)
		}
	})

	t.Run("signed but missing payment id", func(t *testing.T) {
		raw := []byte(`{"status":"successful","data":{"amount":500,"metadata":{}}}`)
		_, err := g.VerifyWebhook(raw, sign(raw))
		if !errors.Is(err, interfaces.ErrMalformedEvent) {
			t.Fatalf("expected ErrMalformedEvent, got %v", err)
		}
	})
}

func TestChapaGateway_CreatePaymentLink(t *testing.T) {
	linkReq := interfaces.PaymentLinkRequest{
		Amount:      500,
		Currency:    "NGN",
		Email:       "b1@test.com",
		OrderRef:    "course_c1_u1",
		Metadata:    map[string]string{"course_id": "c1", "user_id": "u1"},
		CallbackURL: "http://localhost:8080/purchase/callback",
	}

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/payment-links" {
				t.Fatalf("unexpected path %q", r.URL.Path)
			}
			if r.Header.Get("Authorization") != "Bearer CHASECK_TEST-key" {
				t.Fatalf("missing bearer credentials")
			}
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("body decode: %v", err)
			}
			if body["amount"] != float64(500) || body["order_id"] != "course_c1_u1" {
				t.Fatalf("unexpected body: %v", body)
			}
			_ = json.NewEncoder(w).Encode(map[string]any{
				"status": "success",
				"data":   map[string]any{"id": "L1", "link": "https://checkout.chapa.co/L1"},
			})
		}))
		defer srv.Close()

		g := NewChapaGateway(testConfig(srv.URL))
		link, err := g.CreatePaymentLink(context.Background(), linkReq)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if link.ID != "L1" || link.URL != "https://checkout.chapa.co/L1" {
			t.Fatalf("unexpected link: %+v", link)
		}
	})

	t.Run("upstream 5xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		g := NewChapaGateway(testConfig(srv.URL))
		_, err := g.CreatePaymentLink(context.Background(), linkReq)
		if !errors.Is(err, interfaces.ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})

	t.Run("rejected without link", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"status": "failed", "message": "invalid currency"})
		}))
		defer srv.Close()

		g := NewChapaGateway(testConfig(srv.URL))
		_, err := g.CreatePaymentLink(context.Background(), linkReq)
		if !errors.Is(err, interfaces.ErrGatewayRejected) {
			t.Fatalf("expected ErrGatewayRejected, got %v", err)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		g := NewChapaGateway(testConfig(srv.URL))
		_, err := g.CreatePaymentLink(context.Background(), linkReq)
		if !errors.Is(err, interfaces.ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})

	t.Run("mock mode", func(t *testing.T) {
		cfg := testConfig("https://api.chapa.test")
		cfg.MockMode = true
		g := NewChapaGateway(cfg)

		link, err := g.CreatePaymentLink(context.Background(), linkReq)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if link.ID == "" || link.URL == "" {
			t.Fatalf("mock link should be populated: %+v", link)
		}
	})
}
