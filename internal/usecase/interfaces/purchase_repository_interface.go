package interfaces

import (
	"context"
	"errors"
	"learnhub/internal/domain/entities"
)

// Repository-level sentinels shared by every IPurchaseRepository implementation
// so callers can classify outcomes without depending on the storage engine.
var (
	// ErrDuplicatePaymentRef means another purchase record already holds the
	// external payment reference (replayed link creation).
	ErrDuplicatePaymentRef = errors.New("payment reference already attached to another purchase")
	// ErrPurchaseNotFound means no purchase record matches the given lookup.
	ErrPurchaseNotFound = errors.New("purchase not found")
)

// IPurchaseRepository abstracts DynamoDB persistence for the purchase ledger.
//
// The ledger exclusively owns purchase mutation: status transitions happen only
// through AttachPaymentRef and CompleteByPaymentRef, never by writing fields
// directly, and both must be atomic under concurrent delivery.

type IPurchaseRepository interface {
	// CreatePending inserts a new record with status pending.
	CreatePending(ctx context.Context, p entities.Purchase) (entities.Purchase, error)

	// AttachPaymentRef sets the external payment reference exactly once.
	// Returns ErrDuplicatePaymentRef when another record holds the reference.
	AttachPaymentRef(ctx context.Context, purchaseID, paymentID string) error

	// CompleteByPaymentRef locates the record holding paymentID and flips it
	// pending -> completed in a single compare-and-swap, overwriting the amount
	// with the gateway's authoritative value. alreadyCompleted reports an
	// idempotent no-op hit (record was completed before this call); redelivered
	// events must not re-apply side effects. Returns ErrPurchaseNotFound when
	// no record holds the reference.
	CompleteByPaymentRef(ctx context.Context, paymentID string, amount int64) (p entities.Purchase, alreadyCompleted bool, err error)

	// FindByUserAndCourse returns the zero Purchase when no record exists.
	FindByUserAndCourse(ctx context.Context, userID, courseID string) (entities.Purchase, error)

	// ListCompleted returns every completed purchase record (reporting).
	ListCompleted(ctx context.Context) ([]entities.Purchase, error)
}
