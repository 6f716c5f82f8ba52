package handlers

import (
	"errors"
	"log"
	"net/http"

	"learnhub/internal/usecase"
	"learnhub/internal/usecase/interfaces"
	"learnhub/pkg"

	"github.com/gin-gonic/gin"
)

// SignatureHeader carries the gateway's HMAC over the raw request body.
const SignatureHeader = "x-chapa-signature"

// WebhookHandler receives asynchronous payment-outcome deliveries from the
// gateway. Acknowledgment policy: 400 when the payload cannot be authenticated,
// 404 when the event references no ledger record (gateways retry non-success
// acks, so the event is redelivered once the checkout flow lands), 200 for
// every other verified event — including redeliveries and side-effect failures
// after the ledger transition, which must not trigger another delivery.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleCallback processes one gateway webhook delivery.
//
// @Summary      Payment gateway callback
// @Tags         purchase
// @Accept       json
// @Success      200
// @Failure      400,404,500  {object}  pkg.HTTPError
// @Router       /purchase/callback [post]
func (h *WebhookHandler) HandleCallback(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] body read failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.ProcessEvent(c.Request.Context(), raw, c.GetHeader(SignatureHeader)); err != nil {
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusOK)
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrMalformedEvent):
		return pkg.NewDomainErrorSimple("MALFORMED_EVENT", "Webhook payload is malformed", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrPurchaseNotFound):
		return pkg.NewDomainErrorSimple("PURCHASE_NOT_FOUND", "Purchase not found", http.StatusNotFound)
	default:
		// The ledger transition did not land; a retry-worthy failure is safe
		// because no side effects have been applied.
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
