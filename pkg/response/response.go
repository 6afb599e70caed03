package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// successEnvelope and errorEnvelope are the two uniform reply shapes.
// data and errors are always present on their side, null when there is
// nothing to carry; neither shape ever has the other's key.
type successEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type errorEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

// Success writes a success envelope. A zero status defaults to 200.
func Success(c *gin.Context, status int, message string, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, successEnvelope{Success: true, Message: message, Data: data})
}

// Error writes an error envelope. A zero status defaults to 400.
func Error(c *gin.Context, status int, message string, errs interface{}) {
	c.JSON(statusOrBadRequest(status), errorEnvelope{Success: false, Message: message, Errors: errs})
}

// AbortError writes an error envelope and stops the handler chain; used by
// middleware.
func AbortError(c *gin.Context, status int, message string, errs interface{}) {
	c.AbortWithStatusJSON(statusOrBadRequest(status), errorEnvelope{Success: false, Message: message, Errors: errs})
}

func statusOrBadRequest(status int) int {
	if status == 0 {
		return http.StatusBadRequest
	}
	return status
}
