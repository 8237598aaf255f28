package v1

import (
	"blogapi/api/v1/request"
	"blogapi/api/v1/response"
	"blogapi/service"

	"github.com/gin-gonic/gin"
)

type TagAPI struct {
	service *service.TagService
}

func NewTagAPI(s *service.TagService) *TagAPI {
	return &TagAPI{service: s}
}

func (a *TagAPI) Create(c *gin.Context) {
	var req request.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	tag, err := a.service.Create(&req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, tag)
}

func (a *TagAPI) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	tag, err := a.service.GetByID(id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, tag)
}

func (a *TagAPI) GetBySlug(c *gin.Context) {
	tag, err := a.service.GetBySlug(c.Param("slug"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, tag)
}

func (a *TagAPI) GetAll(c *gin.Context) {
	tags, err := a.service.GetAll()
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, tags)
}

func (a *TagAPI) GetPage(c *gin.Context) {
	page, size := pageParams(c)
	result, err := a.service.GetPage(page, size)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, result)
}

func (a *TagAPI) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request.TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	tag, err := a.service.Update(id, &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, tag)
}

func (a *TagAPI) Delete(c *gin.Context) {
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
