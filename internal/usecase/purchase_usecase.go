package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"learnhub/internal/config"
	"learnhub/internal/domain/entities"
	"learnhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCourseID = errors.New("invalid course id")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrCourseNotFound  = errors.New("course not found")
	ErrUserNotFound    = errors.New("user not found")
)

// CourseDetail is the read model for the detail-with-status view: the course,
// its lectures, and whether the requesting buyer holds a completed purchase.
type CourseDetail struct {
	Course    entities.Course
	Lectures  []entities.Lecture
	Purchased bool
}

// IPurchaseUseCase encapsulates checkout orchestration and the purchase read
// paths. Webhook reconciliation lives in IWebhookUseCase.

type IPurchaseUseCase interface {
	InitiateCheckout(ctx context.Context, userID, courseID string) (checkoutURL string, err error)
	GetCourseDetailWithStatus(ctx context.Context, userID, courseID string) (CourseDetail, error)
	ListCompletedPurchases(ctx context.Context) ([]entities.Purchase, error)
}

type PurchaseUseCase struct {
	purchases interfaces.IPurchaseRepository
	courses   interfaces.ICourseRepository
	lectures  interfaces.ILectureRepository
	users     interfaces.IUserRepository
	gateway   interfaces.IPaymentGateway
	chapa     config.Chapa
}

var _ IPurchaseUseCase = (*PurchaseUseCase)(nil)

func NewPurchaseUseCase(
	purchases interfaces.IPurchaseRepository,
	courses interfaces.ICourseRepository,
	lectures interfaces.ILectureRepository,
	users interfaces.IUserRepository,
	gateway interfaces.IPaymentGateway,
	chapa config.Chapa,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		purchases: purchases,
		courses:   courses,
		lectures:  lectures,
		users:     users,
		gateway:   gateway,
		chapa:     chapa,
	}
}

// InitiateCheckout creates the pending ledger record, obtains a hosted-checkout
// link from the gateway and attaches the returned reference to the record. It
// never blocks on payment completion; the record stays pending until a verified
// webhook event arrives.
func (u *PurchaseUseCase) InitiateCheckout(ctx context.Context, userID, courseID string) (string, error) {
	userID = strings.TrimSpace(userID)
	courseID = strings.TrimSpace(courseID)
	log.Printf("[purchase][usecase] checkout start user_id=%s course_id=%s", userID, courseID)
	if courseID == "" {
		return "", ErrInvalidCourseID
	}
	if userID == "" {
		return "", ErrInvalidUserID
	}

	course, err := u.courses.GetByID(ctx, courseID)
	if err != nil {
		log.Printf("[purchase][usecase] failed loading course course_id=%s err=%v", courseID, err)
		return "", err
	}
	if course.ID == "" {
		log.Printf("[purchase][usecase] course not found course_id=%s", courseID)
		return "", ErrCourseNotFound
	}

	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		log.Printf("[purchase][usecase] failed loading user user_id=%s err=%v", userID, err)
		return "", err
	}
	if user.ID == "" {
		log.Printf("[purchase][usecase] user not found user_id=%s", userID)
		return "", ErrUserNotFound
	}

	now := time.Now().UTC()
	purchase, err := u.purchases.CreatePending(ctx, entities.Purchase{
		ID:        uuid.NewString(),
		CourseID:  courseID,
		UserID:    userID,
		Amount:    course.Price,
		Status:    entities.PurchaseStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		log.Printf("[purchase][usecase] ledger create failed user_id=%s course_id=%s err=%v", userID, courseID, err)
		return "", err
	}
	log.Printf("[purchase][usecase] pending record created purchase_id=%s amount=%d", purchase.ID, purchase.Amount)

	currency := course.Currency
	if currency == "" {
		currency = u.chapa.Currency
	}

	link, err := u.gateway.CreatePaymentLink(ctx, interfaces.PaymentLinkRequest{
		Amount:   course.Price,
		Currency: currency,
		Email:    user.Email,
		Phone:    user.Phone,
		OrderRef: fmt.Sprintf("course_%s_%s", courseID, userID),
		Metadata: map[string]string{
			"course_id": courseID,
			"user_id":   userID,
		},
		CallbackURL: u.chapa.CallbackURL,
		SuccessURL:  u.chapa.SuccessURL + courseID,
		CancelURL:   u.chapa.CancelURL + courseID,
	})
	if err != nil {
		// The pending record stays behind without an external reference. It
		// can never transition without a matching webhook, so it is inert.
		log.Printf("[purchase][usecase] payment link failed purchase_id=%s err=%v", purchase.ID, err)
		return "", err
	}

	if err := u.purchases.AttachPaymentRef(ctx, purchase.ID, link.ID); err != nil {
		log.Printf("[purchase][usecase] attach payment ref failed purchase_id=%s payment_id=%s err=%v", purchase.ID, link.ID, err)
		return "", err
	}

	log.Printf("[purchase][usecase] checkout success purchase_id=%s payment_id=%s", purchase.ID, link.ID)
	return link.URL, nil
}

func (u *PurchaseUseCase) GetCourseDetailWithStatus(ctx context.Context, userID, courseID string) (CourseDetail, error) {
	userID = strings.TrimSpace(userID)
	courseID = strings.TrimSpace(courseID)
	if courseID == "" {
		return CourseDetail{}, ErrInvalidCourseID
	}
	if userID == "" {
		return CourseDetail{}, ErrInvalidUserID
	}

	course, err := u.courses.GetByID(ctx, courseID)
	if err != nil {
		return CourseDetail{}, err
	}
	if course.ID == "" {
		return CourseDetail{}, ErrCourseNotFound
	}

	lectures, err := u.lectures.ListByIDs(ctx, course.LectureIDs)
	if err != nil {
		return CourseDetail{}, err
	}

	purchase, err := u.purchases.FindByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return CourseDetail{}, err
	}

	// A pending record must not unlock the purchased view; only a completed
	// purchase counts.
	return CourseDetail{
		Course:    course,
		Lectures:  lectures,
		Purchased: purchase.ID != "" && purchase.Status == entities.PurchaseStatusCompleted,
	}, nil
}

func (u *PurchaseUseCase) ListCompletedPurchases(ctx context.Context) ([]entities.Purchase, error) {
	return u.purchases.ListCompleted(ctx)
}
