package handler

import (
	"VCS_SMS_Fleet/internal/fleet/api/dto/response"
	apperrors "VCS_SMS_Fleet/internal/fleet/errors"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "email":
		return fmt.Sprintf("The %s field is not a valid email", err.Field())
	case "datetime":
		return fmt.Sprintf("The %s field is not a valid datetime, use YYYY-MM-DD format", err.Field())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("The %s field must be less than or equal to %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s", err.Field(), err.Param())
	case "uuid":
		return fmt.Sprintf("The %s field is not a valid uuid", err.Field())
	case "hostname_rfc1123|ip":
		return fmt.Sprintf("The %s field is not a valid hostname or ip", err.Field())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

// bindJSON binds the body and writes a 400 on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var validatorError validator.ValidationErrors
		if errors.As(err, &validatorError) {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: formatValidationError(validatorError[0]),
			})
		} else {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
		}
		return false
	}
	return true
}

// writeKnownError answers errors that map to a client status and reports whether it did.
func writeKnownError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, apperrors.ErrServerNotFound):
		c.JSON(http.StatusNotFound, response.Response{Message: "Server not found"})
	case errors.Is(err, apperrors.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, response.Response{Message: "Service not found"})
	case errors.Is(err, apperrors.ErrRenewalNotFound):
		c.JSON(http.StatusNotFound, response.Response{Message: "Renewal not found"})
	case errors.Is(err, apperrors.ErrServerAlreadyExists):
		c.JSON(http.StatusConflict, response.Response{Message: "Server with this hostname and port already exists"})
	case errors.Is(err, apperrors.ErrServiceAlreadyExists):
		c.JSON(http.StatusConflict, response.Response{Message: "Service already exists on this server"})
	case errors.Is(err, apperrors.ErrEntityBusy):
		c.JSON(http.StatusConflict, response.Response{Message: "Another operation is in progress"})
	case errors.Is(err, apperrors.ErrUnsupportedServiceType):
		c.JSON(http.StatusBadRequest, response.Response{Message: "Unsupported service type"})
	case errors.Is(err, apperrors.ErrInvalidRenewalType):
		c.JSON(http.StatusBadRequest, response.Response{Message: "Invalid renewal type"})
	case errors.Is(err, apperrors.ErrScriptRequired):
		c.JSON(http.StatusBadRequest, response.Response{Message: "Renewal script is required"})
	default:
		return false
	}
	return true
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, response.Response{
		Message: "Internal server error",
	})
}
