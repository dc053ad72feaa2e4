// Package httperrors maps errors to HTTP responses.
package httperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/centime-app/backend/internal/budget"
	"github.com/centime-app/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// New writes an HTTPError response with the status and message given.
func New(c *gin.Context, status int, msgAndArgs ...any) {
	msg := ""
	if len(msgAndArgs) == 1 {
		if msgAsStr, ok := msgAndArgs[0].(string); ok {
			msg = msgAsStr
		} else {
			msg = fmt.Sprintf("%+v", msgAndArgs[0])
		}
	}

	if len(msgAndArgs) > 1 {
		msg = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	c.JSON(status, HTTPError{
		Error: msg,
	})
}

func InvalidUUID(c *gin.Context) {
	New(c, http.StatusBadRequest, "the specified resource ID is not a valid UUID")
}

func InvalidQueryString(c *gin.Context) {
	New(c, http.StatusBadRequest, "the query string contains unparseable data, please check the values")
}

// Status returns the appropriate HTTP status for an error.
//
// Database and snapshot inconsistencies are server errors, missing resources
// are 404 and everything else is treated as a bad request since the model
// layer rewrites driver errors into validation errors before they get here.
func Status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, budget.ErrDataIntegrity) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Handler writes the error response for an error.
//
// Server errors are logged with the request id and replaced with a generic
// message so that internals do not leak to clients.
func Handler(c *gin.Context, err error) {
	status := Status(err)

	if status == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		New(c, status, "an error occurred on the server during your request, please contact your server administrator. The request id is '%v', send this to your server administrator to help them finding the problem", requestid.Get(c))
		return
	}

	New(c, status, err.Error())
}
