package entities

// User is the buyer profile as far as this service needs it: contact details
// for the payment link and the enrolled-course set. Authentication and profile
// management are owned by the user service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - enrolled_courses: string set (idempotent ADD)

type User struct {
	ID              string   `json:"id"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone,omitempty"`
	EnrolledCourses []string `json:"enrolled_courses,omitempty"`
}
