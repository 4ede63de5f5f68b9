package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Marmoset/internal/apperror"
	"github.com/lshigami/Marmoset/internal/dto"
	"github.com/lshigami/Marmoset/internal/middleware"
	"github.com/lshigami/Marmoset/internal/service"
	"github.com/rs/zerolog/log"
)

type SubmissionController struct {
	submissionSvc service.SubmissionService
}

func NewSubmissionController(submissionSvc service.SubmissionService) *SubmissionController {
	return &SubmissionController{submissionSvc: submissionSvc}
}

// SubmitAssignment godoc
// @Summary Submit a solution for an assignment
// @Description Create a pending submission against an assignment. Title and total marks are snapshotted from the assignment.
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body dto.SubmissionCreateRequest true "Submission data"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Failure 404 {object} dto.ErrorResponse "Assignment not found"
// @Router /submissions [post]
func (ctrl *SubmissionController) SubmitAssignment(c *gin.Context) {
	var req dto.SubmissionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmissionCreateRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.submissionSvc.Submit(middleware.CurrentUser(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListMySubmissions godoc
// @Summary List a user's submissions
// @Description Retrieve all submissions for the given email, or for the signed-in user when no email is given.
// @Tags submissions
// @Produce json
// @Param email query string false "Submitter email (defaults to the signed-in user)"
// @Success 200 {array} dto.SubmissionResponse
// @Failure 401 {object} dto.ErrorResponse "No user to list for"
// @Router /submissions [get]
func (ctrl *SubmissionController) ListMySubmissions(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		email = middleware.CurrentUser(c).Email
	}
	if email == "" {
		respondError(c, apperror.Authentication("sign in or pass an email to list submissions"))
		return
	}

	resp, err := ctrl.submissionSvc.ListForUser(email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListPendingSubmissions godoc
// @Summary List all pending submissions
// @Description Retrieve every submission still awaiting grading, for reviewer consumption.
// @Tags submissions
// @Produce json
// @Success 200 {array} dto.SubmissionResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /submissions/pending [get]
func (ctrl *SubmissionController) ListPendingSubmissions(c *gin.Context) {
	resp, err := ctrl.submissionSvc.ListPending()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GradeSubmission godoc
// @Summary Grade a pending submission
// @Description Set obtained marks and feedback on a pending submission, completing it. Grading a completed submission fails with a conflict.
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param grade body dto.GradeRequest true "Marks and feedback"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or marks out of range"
// @Failure 401 {object} dto.ErrorResponse "Not signed in"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Failure 409 {object} dto.ErrorResponse "Submission already graded"
// @Router /submissions/{id}/grade [patch]
func (ctrl *SubmissionController) GradeSubmission(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid submission ID format"})
		return
	}

	var req dto.GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.submissionSvc.Grade(middleware.CurrentUser(c), uint(id), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
