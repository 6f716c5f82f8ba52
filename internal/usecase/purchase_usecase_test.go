package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"learnhub/internal/config"
	"learnhub/internal/domain/entities"
	"learnhub/internal/usecase/interfaces"
	mock_interfaces "learnhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var testChapa = config.Chapa{
	Currency:    "NGN",
	CallbackURL: "http://localhost:8080/purchase/callback",
	SuccessURL:  "http://localhost:5173/course-progress/",
	CancelURL:   "http://localhost:5173/course-detail/",
}

func TestPurchaseUseCase_InitiateCheckout_Validations(t *testing.T) {
	t.Run("empty course id", func(t *testing.T) {
		uc := NewPurchaseUseCase(nil, nil, nil, nil, nil, testChapa)
		_, err := uc.InitiateCheckout(context.Background(), "user-1", " ")
		if !errors.Is(err, ErrInvalidCourseID) {
			t.Fatalf("expected ErrInvalidCourseID, got %v", err)
		}
	})

	t.Run("empty user id", func(t *testing.T) {
		uc := NewPurchaseUseCase(nil, nil, nil, nil, nil, testChapa)
		_, err := uc.InitiateCheckout(context.Background(), "", "course-1")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("course not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		courses := mock_interfaces.NewMockICourseRepository(ctrl)
		uc := NewPurchaseUseCase(nil, courses, nil, nil, nil, testChapa)

		courses.EXPECT().GetByID(gomock.Any(), "course-1").Return(entities.Course{}, nil)

		_, err := uc.InitiateCheckout(context.Background(), "user-1", "course-1")
		if !errors.Is(err, ErrCourseNotFound) {
			t.Fatalf("expected ErrCourseNotFound, got %v", err)
		}
	})

	t.Run("user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		courses := mock_interfaces.NewMockICourseRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewPurchaseUseCase(nil, courses, nil, users, nil, testChapa)

		courses.EXPECT().GetByID(gomock.Any(), "course-1").Return(entities.Course{ID: "course-1", Price: 500}, nil)
		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{}, nil)

		_, err := uc.InitiateCheckout(context.Background(), "user-1", "course-1")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestPurchaseUseCase_InitiateCheckout_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	purchases := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	courses := mock_interfaces.NewMockICourseRepository(ctrl)
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPurchaseUseCase(purchases, courses, nil, users, gateway, testChapa)

	courseCall := courses.EXPECT().GetByID(gomock.Any(), "course-1").Return(entities.Course{ID: "course-1", Price: 500}, nil)
	userCall := users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", Email: "b1@test.com", Phone: "555"}, nil)

	var purchaseID string
	createCall := purchases.EXPECT().CreatePending(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Purchase) (entities.Purchase, error) {
			if p.ID == "" {
				t.Fatalf("purchase id should be assigned on creation")
			}
			if p.Status != entities.PurchaseStatusPending {
				t.Fatalf("expected pending status, got %s", p.Status)
			}
			if p.Amount != 500 {
				t.Fatalf("expected amount 500, got %d", p.Amount)
			}
			if p.CourseID != "course-1" || p.UserID != "user-1" {
				t.Fatalf("unexpected references: %+v", p)
			}
			purchaseID = p.ID
			return p, nil
		},
	)

	// The pending record must exist before the gateway is called.
	linkCall := gateway.EXPECT().CreatePaymentLink(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req interfaces.PaymentLinkRequest) (interfaces.PaymentLink, error) {
			if req.Amount != 500 || req.Currency != "NGN" {
				t.Fatalf("unexpected amount/currency: %+v", req)
			}
			if req.Email != "b1@test.com" {
				t.Fatalf("buyer contact not forwarded: %+v", req)
			}
			if req.OrderRef != "course_course-1_user-1" {
				t.Fatalf("unexpected order ref %q", req.OrderRef)
			}
			if req.Metadata["course_id"] != "course-1" || req.Metadata["user_id"] != "user-1" {
				t.Fatalf("correlation metadata not set: %+v", req.Metadata)
			}
			if !strings.HasSuffix(req.SuccessURL, "/course-progress/course-1") {
				t.Fatalf("unexpected success url %q", req.SuccessURL)
			}
			return interfaces.PaymentLink{ID: "L1", URL: "https://checkout.test/L1"}, nil
		},
	)

	attachCall := purchases.EXPECT().AttachPaymentRef(gomock.Any(), gomock.Any(), "L1").DoAndReturn(
		func(_ context.Context, id, _ string) error {
			if id != purchaseID {
				t.Fatalf("attach targeted %q, pending record is %q", id, purchaseID)
			}
			return nil
		},
	)

	gomock.InOrder(courseCall, userCall, createCall, linkCall, attachCall)

	url, err := uc.InitiateCheckout(context.Background(), "user-1", "course-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://checkout.test/L1" {
		t.Fatalf("unexpected checkout url %q", url)
	}
}

func TestPurchaseUseCase_InitiateCheckout_GatewayFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	purchases := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	courses := mock_interfaces.NewMockICourseRepository(ctrl)
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPurchaseUseCase(purchases, courses, nil, users, gateway, testChapa)

	courses.EXPECT().GetByID(gomock.Any(), "course-1").Return(entities.Course{ID: "course-1", Price: 500}, nil)
	users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", Email: "b1@test.com"}, nil)
	purchases.EXPECT().CreatePending(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Purchase) (entities.Purchase, error) { return p, nil },
	)
	gateway.EXPECT().CreatePaymentLink(gomock.Any(), gomock.Any()).Return(interfaces.PaymentLink{}, interfaces.ErrGatewayUnavailable)

	// No AttachPaymentRef expectation: the pending record is left orphaned.
	_, err := uc.InitiateCheckout(context.Background(), "user-1", "course-1")
	if !errors.Is(err, interfaces.ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
	}
}

func TestPurchaseUseCase_InitiateCheckout_DuplicateRef(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	purchases := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	courses := mock_interfaces.NewMockICourseRepository(ctrl)
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPurchaseUseCase(purchases, courses, nil, users, gateway, testChapa)

	courses.EXPECT().GetByID(gomock.Any(), "course-1").Return(entities.Course{ID: "course-1", Price: 500}, nil)
	users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)
	purchases.EXPECT().CreatePending(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Purchase) (entities.Purchase, error) { return p, nil },
	)
	gateway.EXPECT().CreatePaymentLink(gomock.Any(), gomock.Any()).Return(interfaces.PaymentLink{ID: "L1", URL: "https://checkout.test/L1"}, nil)
	purchases.EXPECT().AttachPaymentRef(gomock.Any(), gomock.Any(), "L1").Return(interfaces.ErrDuplicatePaymentRef)

	_, err := uc.InitiateCheckout(context.Background(), "user-1", "course-1")
	if !errors.Is(err, interfaces.ErrDuplicatePaymentRef) {
		t.Fatalf("expected ErrDuplicatePaymentRef, got %v", err)
	}
}

func TestPurchaseUseCase_GetCourseDetailWithStatus(t *testing.T) {
	cases := []struct {
		name     string
		purchase entities.Purchase
		want     bool
	}{
		{name: "no purchase", purchase: entities.Purchase{}, want: false},
		{name: "pending purchase", purchase: entities.Purchase{ID: "p1", Status: entities.PurchaseStatusPending}, want: false},
		{name: "completed purchase", purchase: entities.Purchase{ID: "p1", Status: entities.PurchaseStatusCompleted}, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			purchases := mock_interfaces.NewMockIPurchaseRepository(ctrl)
			courses := mock_interfaces.NewMockICourseRepository(ctrl)
			lectures := mock_interfaces.NewMockILectureRepository(ctrl)
			uc := NewPurchaseUseCase(purchases, courses, lectures, nil, nil, testChapa)

			courses.EXPECT().GetByID(gomock.Any(), "course-1").Return(entities.Course{ID: "course-1", Price: 500, LectureIDs: []string{"lec-1"}}, nil)
			lectures.EXPECT().ListByIDs(gomock.Any(), []string{"lec-1"}).Return([]entities.Lecture{{ID: "lec-1", Title: "Intro"}}, nil)
			purchases.EXPECT().FindByUserAndCourse(gomock.Any(), "user-1", "course-1").Return(tc.purchase, nil)

			detail, err := uc.GetCourseDetailWithStatus(context.Background(), "user-1", "course-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if detail.Purchased != tc.want {
				t.Fatalf("expected purchased=%v, got %v", tc.want, detail.Purchased)
			}
			if len(detail.Lectures) != 1 {
				t.Fatalf("expected 1 lecture, got %d", len(detail.Lectures))
			}
		})
	}

	t.Run("course not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		courses := mock_interfaces.NewMockICourseRepository(ctrl)
		uc := NewPurchaseUseCase(nil, courses, nil, nil, nil, testChapa)

		courses.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Course{}, nil)

		_, err := uc.GetCourseDetailWithStatus(context.Background(), "user-1", "ghost")
		if !errors.Is(err, ErrCourseNotFound) {
			t.Fatalf("expected ErrCourseNotFound, got %v", err)
		}
	})
}

func TestPurchaseUseCase_ListCompletedPurchases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	purchases := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	uc := NewPurchaseUseCase(purchases, nil, nil, nil, nil, testChapa)

	purchases.EXPECT().ListCompleted(gomock.Any()).Return([]entities.Purchase{
		{ID: "p1", Status: entities.PurchaseStatusCompleted},
	}, nil)

	out, err := uc.ListCompletedPurchases(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].ID != "p1" {
		t.Fatalf("unexpected result: %+v", out)
	}
}
