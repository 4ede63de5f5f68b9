package repository

import (
	"github.com/lshigami/Marmoset/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	Create(submission *model.Submission) error
	FindByID(id uint) (*model.Submission, error)
	FindAllByUser(email string) ([]model.Submission, error)
	FindAllByStatus(status string) ([]model.Submission, error)
	// UpdateIfStatus applies fields only when the row still has the expected
	// status. Reports false when the row is absent or the status already
	// moved on, which makes the pending→completed transition race-safe.
	UpdateIfStatus(id uint, expectedStatus string, fields map[string]interface{}) (bool, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.Submission) error {
	return r.db.Create(submission).Error
}

func (r *submissionRepository) FindByID(id uint) (*model.Submission, error) {
	var submission model.Submission
	if err := r.db.First(&submission, id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindAllByUser(email string) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.Where("user_email = ?", email).Order("created_at desc").Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) FindAllByStatus(status string) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.Where("status = ?", status).Order("created_at desc").Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) UpdateIfStatus(id uint, expectedStatus string, fields map[string]interface{}) (bool, error) {
	res := r.db.Model(&model.Submission{}).
		Where("id = ? AND status = ?", id, expectedStatus).
		Updates(fields)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
