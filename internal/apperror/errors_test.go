package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := NotFound("assignment %d not found", 7)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "assignment 7 not found", err.Error())

	wrapped := fmt.Errorf("loading: %w", Conflict("already graded"))
	assert.Equal(t, KindConflict, KindOf(wrapped))
	assert.True(t, IsKind(wrapped, KindConflict))

	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
	assert.False(t, IsKind(errors.New("plain"), KindValidation))
}
