package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"learnhub/internal/adapter/http/handlers/mocks"
	"learnhub/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWebhookRouter(h *WebhookHandler) *gin.Engine {
	r := gin.New()
	r.POST("/purchase/callback", h.HandleCallback)
	return r
}

func TestWebhookHandler_HandleCallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	payload := []byte(`{"status":"successful","data":{"amount":500,"metadata":{"payment_id":"pay-1","course_id":"course-1","user_id":"user-1"}}}`)

	t.Run("forwards raw body and signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().ProcessEvent(gomock.Any(), payload, "deadbeef").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/purchase/callback", bytes.NewBuffer(payload))
		req.Header.Set(SignatureHeader, "deadbeef")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().ProcessEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.ErrInvalidSignature)

		req := httptest.NewRequest(http.MethodPost, "/purchase/callback", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("malformed event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().ProcessEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.ErrMalformedEvent)

		req := httptest.NewRequest(http.MethodPost, "/purchase/callback", bytes.NewBufferString(`not json`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("purchase not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().ProcessEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.ErrPurchaseNotFound)

		req := httptest.NewRequest(http.MethodPost, "/purchase/callback", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("ledger failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc))

		uc.EXPECT().ProcessEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("dynamo down"))

		req := httptest.NewRequest(http.MethodPost, "/purchase/callback", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
