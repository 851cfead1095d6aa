package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/academiahq/academia/internal/app/models/dto"
)

// HandleBindingError turns a gin binding failure into the standard 400 body,
// with a readable message when the failure came from a validation tag.
func HandleBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(formatValidationError(validationErrs[0])))
		return
	}
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body"))
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
