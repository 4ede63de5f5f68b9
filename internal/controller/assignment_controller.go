package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Marmoset/internal/apperror"
	"github.com/lshigami/Marmoset/internal/catalog"
	"github.com/lshigami/Marmoset/internal/dto"
	"github.com/lshigami/Marmoset/internal/middleware"
	"github.com/lshigami/Marmoset/internal/model"
	"github.com/lshigami/Marmoset/internal/service"
	"github.com/rs/zerolog/log"
)

type AssignmentController struct {
	assignmentSvc service.AssignmentService
}

func NewAssignmentController(assignmentSvc service.AssignmentService) *AssignmentController {
	return &AssignmentController{assignmentSvc: assignmentSvc}
}

// CreateAssignment godoc
// @Summary Create a new assignment
// @Description Add a new assignment to the shared catalog. The authenticated user becomes its creator.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body dto.AssignmentCreateRequest true "Assignment data"
// @Success 201 {object} dto.AssignmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Router /assignments [post]
func (ctrl *AssignmentController) CreateAssignment(c *gin.Context) {
	var req dto.AssignmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind AssignmentCreateRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.assignmentSvc.Create(middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListAssignments godoc
// @Summary List assignments
// @Description Retrieve the assignment catalog, optionally filtered by difficulty and a case-insensitive title search.
// @Tags assignments
// @Produce json
// @Param difficulty query string false "Filter by difficulty (easy|medium|hard)"
// @Param search query string false "Case-insensitive substring match on title"
// @Success 200 {array} dto.AssignmentResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assignments [get]
func (ctrl *AssignmentController) ListAssignments(c *gin.Context) {
	filter := catalog.Filter{
		Difficulty: c.Query("difficulty"),
		Search:     c.Query("search"),
	}
	if filter.Difficulty != "" && !model.ValidDifficulty(filter.Difficulty) {
		respondError(c, apperror.Validation("difficulty must be one of: easy, medium, hard"))
		return
	}

	resp, err := ctrl.assignmentSvc.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAssignment godoc
// @Summary Get an assignment by ID
// @Tags assignments
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} dto.AssignmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /assignments/{id} [get]
func (ctrl *AssignmentController) GetAssignment(c *gin.Context) {
	id, ok := assignmentID(c)
	if !ok {
		return
	}

	resp, err := ctrl.assignmentSvc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateAssignment godoc
// @Summary Update an assignment
// @Description Update an assignment's fields. Only the creator may update; id and creator are immutable.
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Param assignment body dto.AssignmentCreateRequest true "Assignment data"
// @Success 200 {object} dto.AssignmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or ID"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Failure 403 {object} dto.ErrorResponse "Actor is not the creator"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /assignments/{id} [put]
func (ctrl *AssignmentController) UpdateAssignment(c *gin.Context) {
	id, ok := assignmentID(c)
	if !ok {
		return
	}

	var req dto.AssignmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.assignmentSvc.Update(middleware.CurrentUser(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteAssignment godoc
// @Summary Delete an assignment
// @Description Remove an assignment from the catalog. Only the creator may delete.
// @Tags assignments
// @Param id path int true "Assignment ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Failure 403 {object} dto.ErrorResponse "Actor is not the creator"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /assignments/{id} [delete]
func (ctrl *AssignmentController) DeleteAssignment(c *gin.Context) {
	id, ok := assignmentID(c)
	if !ok {
		return
	}

	if err := ctrl.assignmentSvc.Delete(middleware.CurrentUser(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func assignmentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid assignment ID format"})
		return 0, false
	}
	return uint(id), true
}
