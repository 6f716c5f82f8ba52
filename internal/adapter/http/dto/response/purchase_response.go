package response

import (
	"time"

	"learnhub/internal/domain/entities"
)

// CheckoutSessionResponse carries the gateway checkout URL the buyer is
// redirected to.
type CheckoutSessionResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

// PurchaseResponse exposes one ledger record. Amount stays in minor units as
// stored; DisplayAmount is the major-unit value for presentation.
type PurchaseResponse struct {
	ID            string    `json:"id"`
	CourseID      string    `json:"course_id"`
	UserID        string    `json:"user_id"`
	Amount        int64     `json:"amount"`
	DisplayAmount float64   `json:"display_amount"`
	Status        string    `json:"status"`
	PaymentID     string    `json:"payment_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PurchaseListResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
}

func FromPurchase(p entities.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:            p.ID,
		CourseID:      p.CourseID,
		UserID:        p.UserID,
		Amount:        p.Amount,
		DisplayAmount: float64(p.Amount) / 100,
		Status:        string(p.Status),
		PaymentID:     p.PaymentID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromPurchases(purchases []entities.Purchase) PurchaseListResponse {
	out := PurchaseListResponse{Purchases: make([]PurchaseResponse, 0, len(purchases))}
	for _, p := range purchases {
		out.Purchases = append(out.Purchases, FromPurchase(p))
	}
	return out
}
