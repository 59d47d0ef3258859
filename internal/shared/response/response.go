package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	ResultSuccess = "SUCCESS"
	ResultError   = "ERROR"
)

// Envelope is the uniform response body for every REST endpoint. Data is
// always present in the JSON, null on errors.
type Envelope struct {
	Result  string      `json:"result"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Envelope{
		Result:  ResultSuccess,
		Message: message,
		Data:    data,
	})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{
		Result:  ResultError,
		Message: message,
		Data:    nil,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

// Internal deliberately hides the underlying failure from clients.
func Internal(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "an unexpected error occurred")
}
