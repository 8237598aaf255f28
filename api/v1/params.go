package v1

import (
	"strconv"

	"blogapi/api/v1/response"
	"blogapi/internal/errcode"

	"github.com/gin-gonic/gin"
)

// pathID parses the :id path segment; on failure it writes the 400 shape
// and reports false.
func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, errcode.Newf(errcode.BadRequest, "invalid id"))
		return 0, false
	}
	return id, true
}

// pageParams reads the shared pagination query parameters: page is
// 0-indexed and defaults to 0, size defaults to 10.
func pageParams(c *gin.Context) (page, size int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size <= 0 {
		size = 10
	}
	return page, size
}

func queryUint64(c *gin.Context, name string) *uint64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}

func queryInt(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
