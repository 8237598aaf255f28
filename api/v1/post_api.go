package v1

import (
	"blogapi/api/v1/request"
	"blogapi/api/v1/response"
	"blogapi/internal/metrics"
	"blogapi/middleware"
	"blogapi/model"
	"blogapi/service"

	"github.com/gin-gonic/gin"
)

// PostAPI carries both the admin post handlers and the public read-side.
// The public handlers pin status to published so drafts and archived
// posts never leak through query parameters.
type PostAPI struct {
	service *service.PostService
}

func NewPostAPI(s *service.PostService) *PostAPI {
	return &PostAPI{service: s}
}

func (a *PostAPI) Create(c *gin.Context) {
	var req request.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	author := c.GetString(middleware.ContextUsernameKey)
	post, err := a.service.Create(&req, author)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, post)
}

func (a *PostAPI) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, err := a.service.GetByID(id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, post)
}

// GetPage serves the admin list; status and categoryId filters are
// optional and unconstrained.
func (a *PostAPI) GetPage(c *gin.Context) {
	page, size := pageParams(c)
	result, err := a.service.GetPage(page, size, queryInt(c, "status"), queryUint64(c, "categoryId"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, result)
}

func (a *PostAPI) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	post, err := a.service.Update(id, &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, post)
}

func (a *PostAPI) Delete(c *gin.Context) {
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

// PublicGetPage lists published posts only, optionally narrowed to a
// category.
func (a *PostAPI) PublicGetPage(c *gin.Context) {
	page, size := pageParams(c)
	published := model.PostStatusPublished
	result, err := a.service.GetPage(page, size, &published, queryUint64(c, "categoryId"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, result)
}

// PublicGetPageByTag lists published posts carrying the given tag.
func (a *PostAPI) PublicGetPageByTag(c *gin.Context) {
	tagID, ok := pathID(c)
	if !ok {
		return
	}
	page, size := pageParams(c)
	result, err := a.service.GetPageByTagID(page, size, tagID)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, result)
}

func (a *PostAPI) GetBySlug(c *gin.Context) {
	post, err := a.service.GetBySlug(c.Param("slug"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, post)
}

// IncrementView bumps the post view counter. Fire-and-forget from the
// reader's perspective, so the response carries no body.
func (a *PostAPI) IncrementView(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := a.service.IncrementViewCount(id); err != nil {
		response.Fail(c, err)
		return
	}
	metrics.IncPostView()
	response.OK(c, nil)
}
