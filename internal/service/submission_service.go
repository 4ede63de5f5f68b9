package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Marmoset/internal/apperror"
	"github.com/lshigami/Marmoset/internal/dto"
	"github.com/lshigami/Marmoset/internal/identity"
	"github.com/lshigami/Marmoset/internal/model"
	"github.com/lshigami/Marmoset/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SubmissionService runs the submission state machine: pending on intake,
// completed once graded, no other states and no way back.
type SubmissionService interface {
	Submit(actor identity.User, req dto.SubmissionCreateRequest) (*dto.SubmissionResponse, error)
	ListForUser(email string) ([]dto.SubmissionResponse, error)
	ListPending() ([]dto.SubmissionResponse, error)
	Grade(reviewer identity.User, submissionID uint, req dto.GradeRequest) (*dto.SubmissionResponse, error)
}

type submissionService struct {
	submissionRepo repository.SubmissionRepository
	assignmentRepo repository.AssignmentRepository
}

func NewSubmissionService(submissionRepo repository.SubmissionRepository, assignmentRepo repository.AssignmentRepository) SubmissionService {
	return &submissionService{submissionRepo: submissionRepo, assignmentRepo: assignmentRepo}
}

func (s *submissionService) Submit(actor identity.User, req dto.SubmissionCreateRequest) (*dto.SubmissionResponse, error) {
	if !actor.Authenticated() {
		return nil, apperror.Authentication("sign in to submit an assignment")
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	assignment, err := s.assignmentRepo.FindByID(req.AssignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("assignment %d not found", req.AssignmentID)
		}
		log.Error().Err(err).Uint("assignmentID", req.AssignmentID).Msg("Failed to load assignment for submission")
		return nil, err
	}

	// Title and marks are snapshotted here so the submission row keeps
	// rendering correctly even if the assignment is edited or deleted later.
	submission := model.Submission{
		AssignmentID:    assignment.ID,
		UserEmail:       actor.Email,
		DocLink:         req.DocLink,
		Note:            req.Note,
		Status:          model.SubmissionPending,
		AssignmentTitle: assignment.Title,
		AssignmentMarks: assignment.Marks,
	}

	if err := s.submissionRepo.Create(&submission); err != nil {
		log.Error().Err(err).Msg("Failed to create submission")
		return nil, err
	}

	var resp dto.SubmissionResponse
	copier.Copy(&resp, &submission)
	return &resp, nil
}

func (s *submissionService) ListForUser(email string) ([]dto.SubmissionResponse, error) {
	submissions, err := s.submissionRepo.FindAllByUser(email)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("Failed to list submissions for user")
		return nil, err
	}
	return toSubmissionResponses(submissions), nil
}

func (s *submissionService) ListPending() ([]dto.SubmissionResponse, error) {
	submissions, err := s.submissionRepo.FindAllByStatus(model.SubmissionPending)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list pending submissions")
		return nil, err
	}
	return toSubmissionResponses(submissions), nil
}

// Grade completes a pending submission. Anyone authenticated may grade,
// including the submitter; the product has no reviewer role yet. The
// pending→completed write is conditional on the row still being pending, so
// concurrent graders cannot both win.
func (s *submissionService) Grade(reviewer identity.User, submissionID uint, req dto.GradeRequest) (*dto.SubmissionResponse, error) {
	if !reviewer.Authenticated() {
		return nil, apperror.Authentication("sign in to grade a submission")
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	submission, err := s.submissionRepo.FindByID(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("submission %d not found", submissionID)
		}
		log.Error().Err(err).Uint("submissionID", submissionID).Msg("Failed to load submission for grading")
		return nil, err
	}
	if submission.Status == model.SubmissionCompleted {
		return nil, apperror.Conflict("submission %d has already been graded", submissionID)
	}

	marks := *req.ObtainedMarks
	if marks < 0 {
		return nil, apperror.Validation("obtained_marks must not be negative")
	}
	if marks > submission.AssignmentMarks {
		return nil, apperror.Validation("obtained_marks must not exceed %d", submission.AssignmentMarks)
	}

	ok, err := s.submissionRepo.UpdateIfStatus(submissionID, model.SubmissionPending, map[string]interface{}{
		"status":         model.SubmissionCompleted,
		"obtained_marks": marks,
		"feedback":       req.Feedback,
	})
	if err != nil {
		log.Error().Err(err).Uint("submissionID", submissionID).Msg("Failed to grade submission")
		return nil, err
	}
	if !ok {
		// Another grader got there between our read and the conditional write.
		return nil, apperror.Conflict("submission %d has already been graded", submissionID)
	}

	graded, err := s.submissionRepo.FindByID(submissionID)
	if err != nil {
		log.Error().Err(err).Uint("submissionID", submissionID).Msg("Failed to reload graded submission")
		return nil, err
	}

	var resp dto.SubmissionResponse
	copier.Copy(&resp, graded)
	return &resp, nil
}

func toSubmissionResponses(submissions []model.Submission) []dto.SubmissionResponse {
	resp := make([]dto.SubmissionResponse, len(submissions))
	for i := range submissions {
		copier.Copy(&resp[i], &submissions[i])
	}
	return resp
}
