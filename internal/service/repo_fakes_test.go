package service

import (
	"sort"
	"time"

	"github.com/lshigami/Marmoset/internal/model"
	"gorm.io/gorm"
)

// In-memory repository fakes so the lifecycle rules can be tested without a
// database. They mimic the gorm repositories' observable behavior, including
// gorm.ErrRecordNotFound and the conditional status update.

type fakeAssignmentRepo struct {
	nextID uint
	items  map[uint]model.Assignment
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{items: make(map[uint]model.Assignment)}
}

func (r *fakeAssignmentRepo) Create(a *model.Assignment) error {
	r.nextID++
	a.ID = r.nextID
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	r.items[a.ID] = *a
	return nil
}

func (r *fakeAssignmentRepo) FindByID(id uint) (*model.Assignment, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := a
	return &cp, nil
}

func (r *fakeAssignmentRepo) FindAll() ([]model.Assignment, error) {
	ids := make([]uint, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	// Latest first, like the gorm repository's created_at desc ordering.
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	out := make([]model.Assignment, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *fakeAssignmentRepo) Update(a *model.Assignment) error {
	if _, ok := r.items[a.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	a.UpdatedAt = time.Now()
	r.items[a.ID] = *a
	return nil
}

func (r *fakeAssignmentRepo) Delete(id uint) (bool, error) {
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

type fakeSubmissionRepo struct {
	nextID uint
	items  map[uint]model.Submission

	// beforeUpdateIfStatus lets a test interleave a competing write between
	// the service's read and its conditional update.
	beforeUpdateIfStatus func()
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{items: make(map[uint]model.Submission)}
}

func (r *fakeSubmissionRepo) Create(s *model.Submission) error {
	r.nextID++
	s.ID = r.nextID
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	r.items[s.ID] = *s
	return nil
}

func (r *fakeSubmissionRepo) FindByID(id uint) (*model.Submission, error) {
	s, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := s
	return &cp, nil
}

func (r *fakeSubmissionRepo) FindAllByUser(email string) ([]model.Submission, error) {
	return r.filter(func(s model.Submission) bool { return s.UserEmail == email }), nil
}

func (r *fakeSubmissionRepo) FindAllByStatus(status string) ([]model.Submission, error) {
	return r.filter(func(s model.Submission) bool { return s.Status == status }), nil
}

func (r *fakeSubmissionRepo) UpdateIfStatus(id uint, expectedStatus string, fields map[string]interface{}) (bool, error) {
	if r.beforeUpdateIfStatus != nil {
		r.beforeUpdateIfStatus()
	}

	s, ok := r.items[id]
	if !ok || s.Status != expectedStatus {
		return false, nil
	}

	if v, ok := fields["status"]; ok {
		s.Status = v.(string)
	}
	if v, ok := fields["obtained_marks"]; ok {
		marks := v.(int)
		s.ObtainedMarks = &marks
	}
	if v, ok := fields["feedback"]; ok {
		feedback := v.(string)
		s.Feedback = &feedback
	}
	s.UpdatedAt = time.Now()
	r.items[id] = s
	return true, nil
}

func (r *fakeSubmissionRepo) filter(keep func(model.Submission) bool) []model.Submission {
	ids := make([]uint, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })

	out := make([]model.Submission, 0, len(ids))
	for _, id := range ids {
		if keep(r.items[id]) {
			out = append(out, r.items[id])
		}
	}
	return out
}
