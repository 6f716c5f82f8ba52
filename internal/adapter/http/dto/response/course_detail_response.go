package response

import (
	"learnhub/internal/domain/entities"
	"learnhub/internal/usecase"
)

type LectureResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	VideoURL      string `json:"video_url,omitempty"`
	IsPreviewFree bool   `json:"is_preview_free"`
}

type CourseResponse struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Price            int64             `json:"price"`
	DisplayPrice     float64           `json:"display_price"`
	Currency         string            `json:"currency,omitempty"`
	CreatorID        string            `json:"creator_id,omitempty"`
	EnrolledStudents []string          `json:"enrolled_students,omitempty"`
	Lectures         []LectureResponse `json:"lectures"`
}

// CourseDetailWithStatusResponse is the detail view plus the buyer's purchased
// flag.
type CourseDetailWithStatusResponse struct {
	Course    CourseResponse `json:"course"`
	Purchased bool           `json:"purchased"`
}

func FromCourseDetail(d usecase.CourseDetail) CourseDetailWithStatusResponse {
	lectures := make([]LectureResponse, 0, len(d.Lectures))
	for _, l := range d.Lectures {
		lectures = append(lectures, fromLecture(l))
	}
	return CourseDetailWithStatusResponse{
		Course: CourseResponse{
			ID:               d.Course.ID,
			Title:            d.Course.Title,
			Price:            d.Course.Price,
			DisplayPrice:     float64(d.Course.Price) / 100,
			Currency:         d.Course.Currency,
			CreatorID:        d.Course.CreatorID,
			EnrolledStudents: d.Course.EnrolledStudents,
			Lectures:         lectures,
		},
		Purchased: d.Purchased,
	}
}

func fromLecture(l entities.Lecture) LectureResponse {
	return LectureResponse{
		ID:            l.ID,
		Title:         l.Title,
		VideoURL:      l.VideoURL,
		IsPreviewFree: l.IsPreviewFree,
	}
}
