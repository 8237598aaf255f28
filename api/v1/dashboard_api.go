package v1

import (
	"blogapi/api/v1/response"
	"blogapi/service"

	"github.com/gin-gonic/gin"
)

type DashboardAPI struct {
	service *service.DashboardService
}

func NewDashboardAPI(s *service.DashboardService) *DashboardAPI {
	return &DashboardAPI{service: s}
}

func (a *DashboardAPI) GetStats(c *gin.Context) {
	stats, err := a.service.GetStats()
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.OK(c, stats)
}
