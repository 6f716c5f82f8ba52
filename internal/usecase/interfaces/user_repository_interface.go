package interfaces

import (
	"context"
	"learnhub/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for buyer profiles.

type IUserRepository interface {
	GetByID(ctx context.Context, id string) (entities.User, error)

	// AddEnrolledCourse adds courseID to the user's enrolled-course set.
	// Adding an already-present member is a no-op, not an error.
	AddEnrolledCourse(ctx context.Context, userID, courseID string) error
}
