package handlers

import (
	"errors"
	"log"
	"net/http"

	"learnhub/internal/adapter/http/dto/request"
	response "learnhub/internal/adapter/http/dto/response"
	"learnhub/internal/adapter/http/middleware"
	"learnhub/internal/usecase"
	"learnhub/internal/usecase/interfaces"
	"learnhub/pkg"

	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles HTTP requests for course checkout and purchase reads.

type PurchaseHandler struct {
	usecase usecase.IPurchaseUseCase
}

func NewPurchaseHandler(uc usecase.IPurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{usecase: uc}
}

// CreateCheckoutSession creates a pending purchase and returns the gateway
// checkout URL.
//
// @Summary      Create a checkout session
// @Tags         purchase
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CheckoutRequest  true  "course to purchase"
// @Success      200      {object}  response.CheckoutSessionResponse
// @Failure      400,401,404,409,500  {object}  pkg.HTTPError
// @Router       /purchase/create-checkout-session [post]
func (h *PurchaseHandler) CreateCheckoutSession(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[purchase][handler] checkout start user_id=%s course_id=%s", userID, payload.CourseID)

	url, err := h.usecase.InitiateCheckout(c.Request.Context(), userID, payload.CourseID)
	if err != nil {
		log.Printf("[purchase][handler] checkout failed user_id=%s course_id=%s err=%v", userID, payload.CourseID, err)
		appErr := mapPurchaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[purchase][handler] checkout success user_id=%s course_id=%s", userID, payload.CourseID)

	c.JSON(http.StatusOK, response.CheckoutSessionResponse{Success: true, URL: url})
}

// GetCourseDetailWithStatus returns course detail plus the buyer's purchased flag.
//
// @Summary      Course detail with purchase status
// @Tags         purchase
// @Produce      json
// @Param        course_id  path      string  true  "course id"
// @Success      200        {object}  response.CourseDetailWithStatusResponse
// @Failure      401,404,500  {object}  pkg.HTTPError
// @Router       /purchase/course/{course_id}/detail-with-status [get]
func (h *PurchaseHandler) GetCourseDetailWithStatus(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	courseID := c.Param("course_id")

	detail, err := h.usecase.GetCourseDetailWithStatus(c.Request.Context(), userID, courseID)
	if err != nil {
		log.Printf("[purchase][handler] detail-with-status failed user_id=%s course_id=%s err=%v", userID, courseID, err)
		appErr := mapPurchaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCourseDetail(detail))
}

// ListCompletedPurchases returns every completed purchase record.
//
// @Summary      List completed purchases
// @Tags         purchase
// @Produce      json
// @Success      200  {object}  response.PurchaseListResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /purchase [get]
func (h *PurchaseHandler) ListCompletedPurchases(c *gin.Context) {
	purchases, err := h.usecase.ListCompletedPurchases(c.Request.Context())
	if err != nil {
		log.Printf("[purchase][handler] list-completed failed err=%v", err)
		appErr := mapPurchaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPurchases(purchases))
}

func mapPurchaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCourseID), errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCourseNotFound):
		return pkg.NewDomainErrorSimple("COURSE_NOT_FOUND", "Course not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrGatewayUnavailable), errors.Is(err, interfaces.ErrGatewayRejected):
		return pkg.NewDomainErrorSimple("PAYMENT_LINK_FAILED", "Error while creating payment link", http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrDuplicatePaymentRef):
		return pkg.NewDomainErrorSimple("DUPLICATE_PAYMENT_REF", "Payment reference already attached", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
