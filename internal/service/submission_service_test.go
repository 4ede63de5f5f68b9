package service

import (
	"testing"

	"github.com/lshigami/Marmoset/internal/apperror"
	"github.com/lshigami/Marmoset/internal/dto"
	"github.com/lshigami/Marmoset/internal/identity"
	"github.com/lshigami/Marmoset/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userC    = identity.User{Email: "c@example.com", DisplayName: "User C"}
	reviewer = identity.User{Email: "reviewer@example.com", DisplayName: "Reviewer"}
)

func newSubmissionFixture(t *testing.T) (SubmissionService, *fakeSubmissionRepo, *dto.AssignmentResponse) {
	t.Helper()
	assignmentRepo := newFakeAssignmentRepo()
	submissionRepo := newFakeSubmissionRepo()

	assignmentSvc := NewAssignmentService(assignmentRepo)
	created, err := assignmentSvc.Create(userA, validAssignmentRequest())
	require.NoError(t, err)

	return NewSubmissionService(submissionRepo, assignmentRepo), submissionRepo, created
}

func submitRequest(assignmentID uint) dto.SubmissionCreateRequest {
	return dto.SubmissionCreateRequest{
		AssignmentID: assignmentID,
		DocLink:      "https://docs.example.com/x",
		Note:         "done",
	}
}

func intPtr(v int) *int { return &v }

func TestSubmitSnapshotsAssignment(t *testing.T) {
	svc, _, assignment := newSubmissionFixture(t)

	sub, err := svc.Submit(userC, submitRequest(assignment.ID))
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionPending, sub.Status)
	assert.Equal(t, userC.Email, sub.UserEmail)
	assert.Equal(t, assignment.Title, sub.AssignmentTitle)
	assert.Equal(t, assignment.Marks, sub.AssignmentMarks)
	assert.Nil(t, sub.ObtainedMarks)
	assert.Nil(t, sub.Feedback)
}

func TestSubmitRequiresExistingAssignment(t *testing.T) {
	svc, _, _ := newSubmissionFixture(t)
	_, err := svc.Submit(userC, submitRequest(999))
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestSubmitValidation(t *testing.T) {
	svc, _, assignment := newSubmissionFixture(t)

	req := submitRequest(assignment.ID)
	req.DocLink = ""
	_, err := svc.Submit(userC, req)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	req = submitRequest(assignment.ID)
	req.Note = ""
	_, err = svc.Submit(userC, req)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = svc.Submit(identity.User{}, submitRequest(assignment.ID))
	assert.True(t, apperror.IsKind(err, apperror.KindAuthentication))
}

func TestSubmitAllowsRepeatAttempts(t *testing.T) {
	svc, _, assignment := newSubmissionFixture(t)

	first, err := svc.Submit(userC, submitRequest(assignment.ID))
	require.NoError(t, err)
	second, err := svc.Submit(userC, submitRequest(assignment.ID))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestListForUser(t *testing.T) {
	svc, _, assignment := newSubmissionFixture(t)

	_, err := svc.Submit(userC, submitRequest(assignment.ID))
	require.NoError(t, err)
	_, err = svc.Submit(userB, submitRequest(assignment.ID))
	require.NoError(t, err)

	mine, err := svc.ListForUser(userC.Email)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, userC.Email, mine[0].UserEmail)

	none, err := svc.ListForUser("nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListPendingExcludesGraded(t *testing.T) {
	svc, _, assignment := newSubmissionFixture(t)

	first, err := svc.Submit(userC, submitRequest(assignment.ID))
	require.NoError(t, err)
	second, err := svc.Submit(userB, submitRequest(assignment.ID))
	require.NoError(t, err)

	_, err = svc.Grade(reviewer, first.ID, dto.GradeRequest{ObtainedMarks: intPtr(80), Feedback: "ok"})
	require.NoError(t, err)

	pending, err := svc.ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
}

func TestGradeCompletesSubmission(t *testing.T) {
	svc, _, assignment := newSubmissionFixture(t)

	sub, err := svc.Submit(userC, submitRequest(assignment.ID))
	require.NoError(t, err)

	graded, err := svc.Grade(reviewer, sub.ID, dto.GradeRequest{ObtainedMarks: intPtr(90), Feedback: "good"})
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionCompleted, graded.Status)
	require.NotNil(t, graded.ObtainedMarks)
	assert.Equal(t, 90, *graded.ObtainedMarks)
	require.NotNil(t, graded.Feedback)
	assert.Equal(t, "good", *graded.Feedback)

	// Status is monotonic: a second grade always conflicts, whatever its input.
	_, err = svc.Grade(reviewer, sub.ID, dto.GradeRequest{ObtainedMarks: intPtr(10), Feedback: "again"})
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestGradeValidatesMarks(t *testing.T) {
	svc, _, assignment := newSubmissionFixture(t)

	sub, err := svc.Submit(userC, submitRequest(assignment.ID))
	require.NoError(t, err)

	_, err = svc.Grade(reviewer, sub.ID, dto.GradeRequest{ObtainedMarks: intPtr(-1)})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = svc.Grade(reviewer, sub.ID, dto.GradeRequest{ObtainedMarks: intPtr(assignment.Marks + 1)})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	// Full marks and zero marks are both within range.
	_, err = svc.Grade(reviewer, sub.ID, dto.GradeRequest{ObtainedMarks: intPtr(assignment.Marks)})
	assert.NoError(t, err)
}

func TestGradeZeroMarksAllowed(t *testing.T) {
	svc, _, assignment := newSubmissionFixture(t)

	sub, err := svc.Submit(userC, submitRequest(assignment.ID))
	require.NoError(t, err)

	graded, err := svc.Grade(reviewer, sub.ID, dto.GradeRequest{ObtainedMarks: intPtr(0), Feedback: "missed the point"})
	require.NoError(t, err)
	require.NotNil(t, graded.ObtainedMarks)
	assert.Equal(t, 0, *graded.ObtainedMarks)
}

func TestGradeNotFound(t *testing.T) {
	svc, _, _ := newSubmissionFixture(t)
	_, err := svc.Grade(reviewer, 404, dto.GradeRequest{ObtainedMarks: intPtr(1)})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestGradeRequiresActor(t *testing.T) {
	svc, _, assignment := newSubmissionFixture(t)
	sub, err := svc.Submit(userC, submitRequest(assignment.ID))
	require.NoError(t, err)

	_, err = svc.Grade(identity.User{}, sub.ID, dto.GradeRequest{ObtainedMarks: intPtr(1)})
	assert.True(t, apperror.IsKind(err, apperror.KindAuthentication))
}

func TestGradeLosesRaceToConcurrentGrader(t *testing.T) {
	svc, repo, assignment := newSubmissionFixture(t)

	sub, err := svc.Submit(userC, submitRequest(assignment.ID))
	require.NoError(t, err)

	// A competing grader completes the submission between our read and the
	// conditional write; the loser must see a conflict, not a second grade.
	repo.beforeUpdateIfStatus = func() {
		repo.beforeUpdateIfStatus = nil
		stored := repo.items[sub.ID]
		stored.Status = model.SubmissionCompleted
		stored.ObtainedMarks = intPtr(50)
		repo.items[sub.ID] = stored
	}

	_, err = svc.Grade(reviewer, sub.ID, dto.GradeRequest{ObtainedMarks: intPtr(90)})
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))

	stored := repo.items[sub.ID]
	require.NotNil(t, stored.ObtainedMarks)
	assert.Equal(t, 50, *stored.ObtainedMarks)
}

func TestSubmissionSurvivesAssignmentDeletion(t *testing.T) {
	assignmentRepo := newFakeAssignmentRepo()
	submissionRepo := newFakeSubmissionRepo()
	assignmentSvc := NewAssignmentService(assignmentRepo)
	submissionSvc := NewSubmissionService(submissionRepo, assignmentRepo)

	created, err := assignmentSvc.Create(userA, validAssignmentRequest())
	require.NoError(t, err)
	sub, err := submissionSvc.Submit(userC, submitRequest(created.ID))
	require.NoError(t, err)

	require.NoError(t, assignmentSvc.Delete(userA, created.ID))

	mine, err := submissionSvc.ListForUser(userC.Email)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, created.Title, mine[0].AssignmentTitle)
	assert.Equal(t, created.Marks, mine[0].AssignmentMarks)

	// The snapshot also still bounds grading.
	graded, err := submissionSvc.Grade(reviewer, sub.ID, dto.GradeRequest{ObtainedMarks: intPtr(created.Marks)})
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionCompleted, graded.Status)
}
