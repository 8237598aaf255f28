package service

import (
	"testing"

	"blogapi/api/v1/request"
	"blogapi/dao"
	"blogapi/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	postDAO := dao.NewPostDAO(db)
	categoryDAO := dao.NewCategoryDAO(db)
	tagDAO := dao.NewTagDAO(db)
	linkDAO := dao.NewFriendLinkDAO(db)
	userDAO := dao.NewUserDAO(db)

	author := &model.User{Username: "author", Password: "x", Email: "a@b.c", Status: model.UserStatusActive}
	require.NoError(t, userDAO.Create(author))

	posts := NewPostService(postDAO, dao.NewPostTagDAO(db), categoryDAO, tagDAO, userDAO)
	tags := NewTagService(tagDAO)
	links := NewFriendLinkService(linkDAO)
	svc := NewDashboardService(postDAO, categoryDAO, tagDAO, linkDAO)

	for _, title := range []string{"One", "Two", "Three"} {
		post, err := posts.Create(&request.PostRequest{
			Title:  title,
			Status: intPtr(model.PostStatusPublished),
		}, "author")
		require.NoError(t, err)
		require.NoError(t, posts.IncrementViewCount(post.ID))
	}
	_, err := tags.Create(&request.TagRequest{Name: "Go"})
	require.NoError(t, err)
	_, err = links.Create(&request.FriendLinkRequest{Name: "L", URL: "https://l.example"})
	require.NoError(t, err)

	stats, err := svc.GetStats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.PostCount)
	assert.Equal(t, int64(0), stats.CategoryCount)
	assert.Equal(t, int64(1), stats.TagCount)
	assert.Equal(t, int64(1), stats.FriendLinkCount)
	assert.Equal(t, int64(3), stats.TotalViewCount)
	require.Len(t, stats.RecentPosts, 3)
	// yyyy-MM-dd, no time component
	assert.Len(t, stats.RecentPosts[0].PublishedAt, 10)
}

func TestDashboardStatsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(
		dao.NewPostDAO(db),
		dao.NewCategoryDAO(db),
		dao.NewTagDAO(db),
		dao.NewFriendLinkDAO(db),
	)

	stats, err := svc.GetStats()
	require.NoError(t, err)
	assert.Zero(t, stats.PostCount)
	assert.Zero(t, stats.TotalViewCount)
	assert.Empty(t, stats.RecentPosts)
}
