package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	SubmissionPending   = "pending"
	SubmissionCompleted = "completed"
)

type Submission struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	AssignmentID uint   `json:"assignment_id" gorm:"not null;index"`
	UserEmail    string `json:"user_email" gorm:"not null;index"`
	DocLink      string `json:"doc_link" gorm:"not null"`
	Note         string `json:"note" gorm:"type:text;not null"`

	// "pending" until graded, then "completed". Never goes back.
	Status        string  `json:"status" gorm:"not null;default:'pending';index"`
	ObtainedMarks *int    `json:"obtained_marks,omitempty"`
	Feedback      *string `json:"feedback,omitempty"`

	// Snapshot of the assignment at submission time, so the row stays
	// displayable after the assignment is edited or deleted.
	AssignmentTitle string `json:"assignment_title" gorm:"not null"`
	AssignmentMarks int    `json:"assignment_marks" gorm:"not null"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
