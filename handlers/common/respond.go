// Package common holds the response helpers shared by the admin API handlers.
package common

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bloggermandolin/catalog/services/apperr"
)

// AbortWithError maps a classified error to its HTTP status and writes the
// structured failure payload.
func AbortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(StatusOf(err), gin.H{
		"success": false,
		"message": err.Error(),
	})
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.Precondition, apperr.Template:
		return http.StatusBadRequest
	case apperr.RemoteService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ParseID reads a positive integer id from the named path param.
func ParseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid id",
		})
		return 0, false
	}
	return id, true
}

// ParsePage reads limit/offset query params with sane defaults.
func ParsePage(c *gin.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 || limit > 500 {
		limit = 50
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
