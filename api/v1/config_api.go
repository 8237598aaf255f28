package v1

import (
	"blogapi/api/v1/request"
	"blogapi/api/v1/response"
	"blogapi/service"

	"github.com/gin-gonic/gin"
)

type ConfigAPI struct {
	service *service.ConfigService
}

func NewConfigAPI(s *service.ConfigService) *ConfigAPI {
	return &ConfigAPI{service: s}
}

// Get dispatches on the optional key query parameter: with a key it
// returns that single entry, without one it returns every row.
func (a *ConfigAPI) Get(c *gin.Context) {
	if key := c.Query("key"); key != "" {
		entry, err := a.service.GetByKey(key)
		if err != nil {
			response.Fail(c, err)
			return
		}
		response.OK(c, entry)
		return
	}
	entries, err := a.service.GetAll()
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, entries)
}

func (a *ConfigAPI) Save(c *gin.Context) {
	var req request.ConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	entry, err := a.service.Save(req.Key, req.Value)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, entry)
}

// GetSite returns the aggregate of every typed site section. Sections
// never stored come back as empty objects rather than being omitted.
func (a *ConfigAPI) GetSite(c *gin.Context) {
	aggregate, err := a.service.GetAllConfigs()
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, aggregate)
}

// SaveSite persists only the sections present in the request body.
func (a *ConfigAPI) SaveSite(c *gin.Context) {
	var aggregate response.SiteConfigAggregate
	if err := c.ShouldBindJSON(&aggregate); err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := a.service.SaveAllConfigs(&aggregate); err != nil {
		response.Fail(c, err)
		return
	}
	response.OKMessage(c, "config saved")
}
