package interfaces

import (
	"context"
	"learnhub/internal/domain/entities"
)

// ICourseRepository abstracts DynamoDB persistence for courses.
//
// Course content management lives in the course service; this service reads
// courses for pricing/detail and appends to the enrolled-student set.

type ICourseRepository interface {
	GetByID(ctx context.Context, id string) (entities.Course, error)

	// AddEnrolledStudent adds userID to the course's enrolled-student set.
	// Adding an already-present member is a no-op, not an error.
	AddEnrolledStudent(ctx context.Context, courseID, userID string) error
}

// ILectureRepository abstracts DynamoDB persistence for lectures.

type ILectureRepository interface {
	ListByIDs(ctx context.Context, ids []string) ([]entities.Lecture, error)

	// Unlock marks every given lecture previewable. Safe to re-run: unlocking
	// an already-unlocked lecture is a no-op.
	Unlock(ctx context.Context, ids []string) error
}
