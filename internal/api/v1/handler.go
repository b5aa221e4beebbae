package v1

import (
	"github.com/gin-gonic/gin"

	ierr "github.com/stayloop/stayloop/internal/errors"
)

// bindJSON decodes the request body, attaching a validation error to the
// context on malformed payloads.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request payload").
			Mark(ierr.ErrValidation))
		return false
	}
	return true
}

// bindQuery decodes query parameters the same way.
func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid query parameters").
			Mark(ierr.ErrValidation))
		return false
	}
	return true
}
