package repository

import (
	"github.com/lshigami/Marmoset/internal/model"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	Create(assignment *model.Assignment) error
	FindByID(id uint) (*model.Assignment, error)
	FindAll() ([]model.Assignment, error)
	Update(assignment *model.Assignment) error
	Delete(id uint) (bool, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) Create(assignment *model.Assignment) error {
	return r.db.Create(assignment).Error
}

func (r *assignmentRepository) FindByID(id uint) (*model.Assignment, error) {
	var assignment model.Assignment
	if err := r.db.First(&assignment, id).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepository) FindAll() ([]model.Assignment, error) {
	var assignments []model.Assignment
	if err := r.db.Order("created_at desc").Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepository) Update(assignment *model.Assignment) error {
	return r.db.Save(assignment).Error
}

// Delete reports false when no row matched, so the service can answer an
// already-deleted id with a not-found instead of a silent success.
func (r *assignmentRepository) Delete(id uint) (bool, error) {
	res := r.db.Delete(&model.Assignment{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
