package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// idParam parses the :id path segment as an unsigned integer id.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// pagination reads skip/limit query params, leaving defaults to the service.
func pagination(c *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "0"))
	return skip, limit
}
