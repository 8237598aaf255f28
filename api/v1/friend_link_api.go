package v1

import (
	"blogapi/api/v1/request"
	"blogapi/api/v1/response"
	"blogapi/service"

	"github.com/gin-gonic/gin"
)

type FriendLinkAPI struct {
	service *service.FriendLinkService
}

func NewFriendLinkAPI(s *service.FriendLinkService) *FriendLinkAPI {
	return &FriendLinkAPI{service: s}
}

func (a *FriendLinkAPI) Create(c *gin.Context) {
	var req request.FriendLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	link, err := a.service.Create(&req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, link)
}

func (a *FriendLinkAPI) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	link, err := a.service.GetByID(id)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, link)
}

// GetAll returns every link regardless of visibility, for the admin list.
func (a *FriendLinkAPI) GetAll(c *gin.Context) {
	links, err := a.service.GetAll()
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, links)
}

// GetVisible returns only links with visible status, for the public page.
func (a *FriendLinkAPI) GetVisible(c *gin.Context) {
	links, err := a.service.GetVisible()
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, links)
}

func (a *FriendLinkAPI) GetPage(c *gin.Context) {
	page, size := pageParams(c)
	result, err := a.service.GetPage(page, size)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, result)
}

func (a *FriendLinkAPI) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req request.FriendLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	link, err := a.service.Update(id, &req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, link)
}

func (a *FriendLinkAPI) Delete(c *gin.Context) {
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
