package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Assignment struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Title        string         `json:"title" gorm:"not null"`
	Description  string         `json:"description" gorm:"type:text;not null"`
	Marks        int            `json:"marks" gorm:"not null"`
	Thumbnail    string         `json:"thumbnail" gorm:"not null"`
	Difficulty   string         `json:"difficulty" gorm:"not null;index"` // "easy", "medium", "hard"
	DueDate      time.Time      `json:"due_date" gorm:"not null"`
	CreatorEmail string         `json:"creator_email" gorm:"not null;index"`
	CreatorName  string         `json:"creator_name"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// ValidDifficulty reports whether d is one of the three catalog difficulty levels.
func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
