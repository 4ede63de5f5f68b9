package service

import (
	"errors"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Marmoset/internal/apperror"
	"github.com/lshigami/Marmoset/internal/catalog"
	"github.com/lshigami/Marmoset/internal/dto"
	"github.com/lshigami/Marmoset/internal/identity"
	"github.com/lshigami/Marmoset/internal/model"
	"github.com/lshigami/Marmoset/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AssignmentService interface {
	Create(actor identity.User, req dto.AssignmentCreateRequest) (*dto.AssignmentResponse, error)
	List(filter catalog.Filter) ([]dto.AssignmentResponse, error)
	Get(id uint) (*dto.AssignmentResponse, error)
	Update(actor identity.User, id uint, req dto.AssignmentCreateRequest) (*dto.AssignmentResponse, error)
	Delete(actor identity.User, id uint) error
}

type assignmentService struct {
	assignmentRepo repository.AssignmentRepository
}

func NewAssignmentService(assignmentRepo repository.AssignmentRepository) AssignmentService {
	return &assignmentService{assignmentRepo: assignmentRepo}
}

// isCreator is the single ownership rule for assignment mutation. Every
// update/delete path goes through it rather than comparing emails inline.
func isCreator(actor identity.User, assignment *model.Assignment) bool {
	return actor.Email == assignment.CreatorEmail
}

func (s *assignmentService) Create(actor identity.User, req dto.AssignmentCreateRequest) (*dto.AssignmentResponse, error) {
	if !actor.Authenticated() {
		return nil, apperror.Authentication("sign in to create an assignment")
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	assignment := model.Assignment{
		Title:        req.Title,
		Description:  req.Description,
		Marks:        req.Marks,
		Thumbnail:    req.Thumbnail,
		Difficulty:   req.Difficulty,
		DueDate:      req.DueDate,
		CreatorEmail: actor.Email,
		CreatorName:  actor.DisplayName,
	}

	if err := s.assignmentRepo.Create(&assignment); err != nil {
		log.Error().Err(err).Msg("Failed to create assignment")
		return nil, err
	}

	var resp dto.AssignmentResponse
	copier.Copy(&resp, &assignment)
	return &resp, nil
}

func (s *assignmentService) List(filter catalog.Filter) ([]dto.AssignmentResponse, error) {
	all, err := s.assignmentRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list assignments")
		return nil, err
	}

	matched := catalog.Query(all, filter)

	resp := make([]dto.AssignmentResponse, len(matched))
	for i := range matched {
		copier.Copy(&resp[i], &matched[i])
	}
	return resp, nil
}

func (s *assignmentService) Get(id uint) (*dto.AssignmentResponse, error) {
	assignment, err := s.loadAssignment(id)
	if err != nil {
		return nil, err
	}
	var resp dto.AssignmentResponse
	copier.Copy(&resp, assignment)
	return &resp, nil
}

// Update re-validates the full field set as on creation. The id and creator
// are not part of the request DTO, so they cannot change.
func (s *assignmentService) Update(actor identity.User, id uint, req dto.AssignmentCreateRequest) (*dto.AssignmentResponse, error) {
	if !actor.Authenticated() {
		return nil, apperror.Authentication("sign in to update an assignment")
	}

	assignment, err := s.loadAssignment(id)
	if err != nil {
		return nil, err
	}
	if !isCreator(actor, assignment) {
		return nil, apperror.Authorization("you are not the owner of this assignment")
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	assignment.Title = req.Title
	assignment.Description = req.Description
	assignment.Marks = req.Marks
	assignment.Thumbnail = req.Thumbnail
	assignment.Difficulty = req.Difficulty
	assignment.DueDate = req.DueDate

	if err := s.assignmentRepo.Update(assignment); err != nil {
		log.Error().Err(err).Uint("assignmentID", id).Msg("Failed to update assignment")
		return nil, err
	}

	var resp dto.AssignmentResponse
	copier.Copy(&resp, assignment)
	return &resp, nil
}

func (s *assignmentService) Delete(actor identity.User, id uint) error {
	if !actor.Authenticated() {
		return apperror.Authentication("sign in to delete an assignment")
	}

	assignment, err := s.loadAssignment(id)
	if err != nil {
		return err
	}
	if !isCreator(actor, assignment) {
		return apperror.Authorization("you are not the owner of this assignment")
	}

	deleted, err := s.assignmentRepo.Delete(id)
	if err != nil {
		log.Error().Err(err).Uint("assignmentID", id).Msg("Failed to delete assignment")
		return err
	}
	if !deleted {
		// Row vanished between the ownership check and the delete.
		return apperror.NotFound("assignment %d not found", id)
	}
	return nil
}

func (s *assignmentService) loadAssignment(id uint) (*model.Assignment, error) {
	assignment, err := s.assignmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("assignment %d not found", id)
		}
		log.Error().Err(err).Uint("assignmentID", id).Msg("Failed to load assignment")
		return nil, err
	}
	return assignment, nil
}
