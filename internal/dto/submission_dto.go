package dto

import "time"

type SubmissionCreateRequest struct {
	AssignmentID uint   `json:"assignment_id" binding:"required"`
	DocLink      string `json:"doc_link" binding:"required"`
	Note         string `json:"note" binding:"required"`
}

// GradeRequest marks a pending submission as completed. ObtainedMarks is a
// pointer so that an explicit zero survives binding.
type GradeRequest struct {
	ObtainedMarks *int   `json:"obtained_marks" binding:"required"`
	Feedback      string `json:"feedback"`
}

type SubmissionResponse struct {
	ID              uint      `json:"id"`
	AssignmentID    uint      `json:"assignment_id"`
	UserEmail       string    `json:"user_email"`
	DocLink         string    `json:"doc_link"`
	Note            string    `json:"note"`
	Status          string    `json:"status"`
	ObtainedMarks   *int      `json:"obtained_marks,omitempty"`
	Feedback        *string   `json:"feedback,omitempty"`
	AssignmentTitle string    `json:"assignment_title"`
	AssignmentMarks int       `json:"assignment_marks"`
	CreatedAt       time.Time `json:"created_at"`
}
