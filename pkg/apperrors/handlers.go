package apperrors

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope every failed request is serialized into.
// The shape is stable: clients key off statusCode and error.code.
type ErrorResponse struct {
	StatusCode int       `json:"statusCode"`
	Timestamp  time.Time `json:"timestamp"`
	Path       string    `json:"path"`
	Error      *AppError `json:"error"`
}

// HandleError maps any error to the envelope. Non-AppErrors become a
// generic 500; their message never reaches the client.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
		appErr.Details = nil
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{
		StatusCode: appErr.HTTPCode,
		Timestamp:  time.Now().UTC(),
		Path:       c.Request.URL.Path,
		Error:      appErr,
	})
}

// AsAppError unwraps err into *AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
