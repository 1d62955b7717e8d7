package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salonkit/booking-api/pkg/errors"
)

// Response wraps all API responses
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error represents API error
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RespondWithSuccess sends a success response
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// RespondWithCreated sends a creation success response
func RespondWithCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"
	code := int(errors.ErrInternal)

	if appErr, ok := err.(*errors.AppError); ok {
		statusCode = appErr.StatusCode()
		message = appErr.Message
		code = int(appErr.Code)
	}

	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

// RespondWithBadRequest sends a 400 with the given message
func RespondWithBadRequest(c *gin.Context, message string, err error) {
	RespondWithError(c, errors.BadRequest(message, err))
}
