// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the failure envelope; successes return the entity JSON directly.
type ErrorBody struct {
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func BadRequestResponse(c *gin.Context, message string, errors interface{}) {
	c.JSON(http.StatusBadRequest, ErrorBody{Message: message, Errors: errors})
}

func NotFoundResponse(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorBody{Message: message})
}

func InternalErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{Message: message})
}
