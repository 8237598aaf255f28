package service

import (
	"blogapi/api/v1/response"
	"blogapi/dao"
)

const dashboardDateFormat = "2006-01-02"

// DashboardService is pure read aggregation, recomputed on every call.
type DashboardService struct {
	postDAO     *dao.PostDAO
	categoryDAO *dao.CategoryDAO
	tagDAO      *dao.TagDAO
	linkDAO     *dao.FriendLinkDAO
}

func NewDashboardService(postDAO *dao.PostDAO, categoryDAO *dao.CategoryDAO,
	tagDAO *dao.TagDAO, linkDAO *dao.FriendLinkDAO) *DashboardService {
	return &DashboardService{
		postDAO:     postDAO,
		categoryDAO: categoryDAO,
		tagDAO:      tagDAO,
		linkDAO:     linkDAO,
	}
}

func (s *DashboardService) GetStats() (*response.DashboardStats, error) {
	postCount, err := s.postDAO.Count()
	if err != nil {
		return nil, err
	}
	categoryCount, err := s.categoryDAO.Count()
	if err != nil {
		return nil, err
	}
	tagCount, err := s.tagDAO.Count()
	if err != nil {
		return nil, err
	}
	linkCount, err := s.linkDAO.Count()
	if err != nil {
		return nil, err
	}
	totalViews, err := s.postDAO.SumViewCount()
	if err != nil {
		return nil, err
	}

	recent, err := s.postDAO.ListRecent(5)
	if err != nil {
		return nil, err
	}
	recentPosts := make([]response.RecentPost, 0, len(recent))
	for _, post := range recent {
		rp := response.RecentPost{
			ID:        post.ID,
			Title:     post.Title,
			Status:    post.Status,
			ViewCount: post.ViewCount,
			CreatedAt: post.CreatedAt.Format(dashboardDateFormat),
		}
		if post.PublishedAt != nil {
			rp.PublishedAt = post.PublishedAt.Format(dashboardDateFormat)
		}
		recentPosts = append(recentPosts, rp)
	}

	return &response.DashboardStats{
		PostCount:       postCount,
		CategoryCount:   categoryCount,
		TagCount:        tagCount,
		FriendLinkCount: linkCount,
		TotalViewCount:  totalViews,
		RecentPosts:     recentPosts,
	}, nil
}
