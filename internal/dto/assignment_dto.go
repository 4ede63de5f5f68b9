package dto

import "time"

// AssignmentCreateRequest is used for both creating and updating assignments;
// updates re-validate the same constraints as creation.
type AssignmentCreateRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required,min=20"`
	Marks       int       `json:"marks" binding:"required,min=1"`
	Thumbnail   string    `json:"thumbnail" binding:"required"`
	Difficulty  string    `json:"difficulty" binding:"required,oneof=easy medium hard"`
	DueDate     time.Time `json:"due_date" binding:"required"`
}

type AssignmentResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Marks        int       `json:"marks"`
	Thumbnail    string    `json:"thumbnail"`
	Difficulty   string    `json:"difficulty"`
	DueDate      time.Time `json:"due_date"`
	CreatorEmail string    `json:"creator_email"`
	CreatorName  string    `json:"creator_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
