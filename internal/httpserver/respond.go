package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"orderdesk/internal/domain"
	usersvc "orderdesk/internal/service/user"
	"orderdesk/internal/sqlgen"
	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP status codes. Unclassified
// storage errors surface as 500 without masking.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyUpdate),
		errors.Is(err, domain.ErrImmutableField),
		errors.Is(err, domain.ErrMalformedRequest):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, usersvc.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// idParam parses the :id path segment.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// filterFromQuery builds a filter from the allowed query parameters, in the
// order given. Unknown parameters are ignored so only real columns ever reach
// the query builder.
func filterFromQuery(c *gin.Context, allowed ...string) sqlgen.Fields {
	var f sqlgen.Fields
	for _, key := range allowed {
		if v, ok := c.GetQuery(key); ok {
			f = f.Set(key, v)
		}
	}
	return f
}

// fieldsFromBody picks the allowed keys out of a decoded JSON object, in a
// fixed order. JSON objects carry no ordering, so the allowed list supplies
// the explicit parameter order the query builder requires.
func fieldsFromBody(body map[string]any, allowed ...string) sqlgen.Fields {
	var f sqlgen.Fields
	for _, key := range allowed {
		if v, ok := body[key]; ok {
			f = f.Set(key, v)
		}
	}
	return f
}
