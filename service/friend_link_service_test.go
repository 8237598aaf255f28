package service

import (
	"testing"

	"blogapi/api/v1/request"
	"blogapi/dao"
	"blogapi/internal/errcode"
	"blogapi/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFriendLinkService(t *testing.T) *FriendLinkService {
	return NewFriendLinkService(dao.NewFriendLinkDAO(newTestDB(t)))
}

func TestFriendLinkCreateDefaultsVisible(t *testing.T) {
	svc := newFriendLinkService(t)

	link, err := svc.Create(&request.FriendLinkRequest{
		Name:   "Example",
		URL:    "https://example.com",
		Status: intPtr(model.FriendLinkHidden), // ignored on create
	})
	require.NoError(t, err)
	assert.Equal(t, model.FriendLinkVisible, link.Status)
}

func TestFriendLinkCreateDuplicateURL(t *testing.T) {
	svc := newFriendLinkService(t)

	_, err := svc.Create(&request.FriendLinkRequest{Name: "A", URL: "https://example.com"})
	require.NoError(t, err)

	_, err = svc.Create(&request.FriendLinkRequest{Name: "B", URL: "https://example.com"})
	assertCode(t, err, errcode.FriendLinkExists)
}

func TestFriendLinkVisibleFiltering(t *testing.T) {
	svc := newFriendLinkService(t)

	shown, err := svc.Create(&request.FriendLinkRequest{Name: "Shown", URL: "https://a.com"})
	require.NoError(t, err)
	hidden, err := svc.Create(&request.FriendLinkRequest{Name: "Hidden", URL: "https://b.com"})
	require.NoError(t, err)

	_, err = svc.Update(hidden.ID, &request.FriendLinkRequest{
		Name:   hidden.Name,
		URL:    hidden.URL,
		Status: intPtr(model.FriendLinkHidden),
	})
	require.NoError(t, err)

	visible, err := svc.GetVisible()
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, shown.ID, visible[0].ID)

	all, err := svc.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFriendLinkOrdering(t *testing.T) {
	svc := newFriendLinkService(t)

	_, err := svc.Create(&request.FriendLinkRequest{Name: "Later", URL: "https://z.com", SortOrder: intPtr(5)})
	require.NoError(t, err)
	_, err = svc.Create(&request.FriendLinkRequest{Name: "First", URL: "https://a.com", SortOrder: intPtr(1)})
	require.NoError(t, err)

	links, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "First", links[0].Name)
	assert.Equal(t, "Later", links[1].Name)
}

func TestFriendLinkUpdateURLConflict(t *testing.T) {
	svc := newFriendLinkService(t)

	_, err := svc.Create(&request.FriendLinkRequest{Name: "A", URL: "https://a.com"})
	require.NoError(t, err)
	b, err := svc.Create(&request.FriendLinkRequest{Name: "B", URL: "https://b.com"})
	require.NoError(t, err)

	_, err = svc.Update(b.ID, &request.FriendLinkRequest{Name: "B", URL: "https://a.com"})
	assertCode(t, err, errcode.FriendLinkExists)
}

func TestFriendLinkDelete(t *testing.T) {
	svc := newFriendLinkService(t)

	link, err := svc.Create(&request.FriendLinkRequest{Name: "Gone", URL: "https://gone.com"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(link.ID))

	_, err = svc.GetByID(link.ID)
	assertCode(t, err, errcode.FriendLinkNotFound)

	assertCode(t, svc.Delete(link.ID), errcode.FriendLinkNotFound)
}
