package v1

import (
	"blogapi/api/v1/response"
	"blogapi/internal/errcode"
	"blogapi/internal/metrics"
	"blogapi/middleware"
	"blogapi/service"

	"github.com/gin-gonic/gin"
)

type MediaAPI struct {
	service *service.MediaService
}

func NewMediaAPI(s *service.MediaService) *MediaAPI {
	return &MediaAPI{service: s}
}

// Upload accepts a multipart form with a single "file" part.
func (a *MediaAPI) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		metrics.IncUpload("bad_request")
		response.BadRequest(c, errcode.Newf(errcode.FileUploadFailed, "missing file"))
		return
	}
	uploaderID := c.GetUint64(middleware.ContextUserIDKey)
	media, err := a.service.Upload(file, uploaderID)
	if err != nil {
		metrics.IncUpload("failed")
		response.Fail(c, err)
		return
	}
	metrics.IncUpload("success")
	response.OK(c, media)
}

func (a *MediaAPI) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	media, err := a.service.GetByID(id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, media)
}

func (a *MediaAPI) GetPage(c *gin.Context) {
	page, size := pageParams(c)
	result, err := a.service.GetPage(page, size, queryUint64(c, "uploaderId"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, result)
}

func (a *MediaAPI) GetRecent(c *gin.Context) {
	limit := 10
	if v := queryInt(c, "limit"); v != nil && *v > 0 {
		limit = *v
	}
	media, err := a.service.GetRecent(limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, media)
}

func (a *MediaAPI) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := a.service.Delete(id); err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, nil)
}
