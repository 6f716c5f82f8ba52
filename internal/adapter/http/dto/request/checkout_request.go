package request

// CheckoutRequest is the payload for the create-checkout-session route. The
// buyer comes from the authenticated request context, not the body.

type CheckoutRequest struct {
	CourseID string `json:"course_id" binding:"required"`
}
