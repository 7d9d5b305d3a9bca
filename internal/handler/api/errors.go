package api

import (
	"errors"
	"net/http"

	"flat-reservation/internal/handler/httperr"
	"flat-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// abortWithDomainError maps the error taxonomy onto HTTP statuses.
func abortWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errors.Is(err, errs.ErrAuthorization):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	case errors.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func abortWithBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		detail := make([]fieldError, len(verrs))
		for i, fe := range verrs {
			detail[i] = fieldError{Field: fe.Field(), Rule: fe.Tag()}
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", detail)
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
}

func abortWithBadID(c *gin.Context, err error, what string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+what+" ID format", nil)
}
