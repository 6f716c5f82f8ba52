package entities

import "time"

// PurchaseStatus represents the lifecycle state of a course purchase.
//
// Allowed transitions are pending -> completed and pending -> failed; a record
// never re-enters pending and is never deleted (audit trail).

type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusCompleted PurchaseStatus = "completed"
	PurchaseStatusFailed    PurchaseStatus = "failed"
)

// Purchase is the ledger entity tracking one buyer's attempt to pay for one course.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-course_id-index): user_id + course_id
//   - GSI2 (status-index): status
//
// PaymentID is the external reference assigned by the payment gateway when the
// checkout link is created. It is empty until the gateway responds, set exactly
// once, and unique across all purchase records; webhook events are correlated
// back to the ledger through it.
//
// Amount is kept in the processor's minor unit (e.g. kobo/cents). Once the
// completing webhook lands, Amount holds the authoritative value asserted by
// the gateway.

type Purchase struct {
	ID        string         `json:"id"`
	CourseID  string         `json:"course_id"`
	UserID    string         `json:"user_id"`
	Amount    int64          `json:"amount"`
	Status    PurchaseStatus `json:"status"`
	PaymentID string         `json:"payment_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
