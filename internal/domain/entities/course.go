package entities

import "time"

// Course is the catalog entity a purchase unlocks. Course/lecture content
// management itself lives in another service; this service only reads courses
// to price checkouts and appends to the enrolled-student set.
//
// Storage model (DynamoDB):
//   - PK: id
//   - enrolled_students: string set (idempotent ADD)
//   - lectures: ordered list of lecture ids

type Course struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Price            int64     `json:"price"` // minor units
	Currency         string    `json:"currency,omitempty"`
	CreatorID        string    `json:"creator_id,omitempty"`
	LectureIDs       []string  `json:"lectures,omitempty"`
	EnrolledStudents []string  `json:"enrolled_students,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// Lecture is one content unit of a course. IsPreviewFree doubles as the unlock
// flag: completing a purchase marks every lecture of the course previewable.

type Lecture struct {
	ID            string `json:"id"`
	CourseID      string `json:"course_id"`
	Title         string `json:"title"`
	VideoURL      string `json:"video_url,omitempty"`
	IsPreviewFree bool   `json:"is_preview_free"`
}
