package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Marmoset/internal/apperror"
	"github.com/lshigami/Marmoset/internal/dto"
)

// respondError maps the business error kinds onto HTTP statuses. Anything
// without a kind is a store or infrastructure failure and becomes a 500.
func respondError(c *gin.Context, err error) {
	kind := apperror.KindOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case apperror.KindValidation:
		status = http.StatusBadRequest
	case apperror.KindAuthentication:
		status = http.StatusUnauthorized
	case apperror.KindAuthorization:
		status = http.StatusForbidden
	case apperror.KindNotFound:
		status = http.StatusNotFound
	case apperror.KindConflict:
		status = http.StatusConflict
	}

	c.JSON(status, dto.ErrorResponse{Error: err.Error(), Kind: string(kind)})
}
