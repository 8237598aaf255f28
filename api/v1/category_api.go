package v1

import (
	"blogapi/api/v1/request"
	"blogapi/api/v1/response"
	"blogapi/service"

	"github.com/gin-gonic/gin"
)

type CategoryAPI struct {
	service *service.CategoryService
}

func NewCategoryAPI(s *service.CategoryService) *CategoryAPI {
	return &CategoryAPI{service: s}
}

func (a *CategoryAPI) Create(c *gin.Context) {
	var req request.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	category, err := a.service.Create(&req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, category)
}

func (a *CategoryAPI) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	category, err := a.service.GetByID(id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, category)
}

func (a *CategoryAPI) GetBySlug(c *gin.Context) {
	category, err := a.service.GetBySlug(c.Param("slug"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, category)
}

func (a *CategoryAPI) GetAll(c *gin.Context) {
	categories, err := a.service.GetAll()
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, categories)
}

func (a *CategoryAPI) GetPage(c *gin.Context) {
	page, size := pageParams(c)
	result, err := a.service.GetPage(page, size)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, result)
}

func (a *CategoryAPI) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	category, err := a.service.Update(id, &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, category)
}

func (a *CategoryAPI) Delete(c *gin.Context) {
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
