package service

import (
	"errors"
	"testing"

	"blogapi/api/v1/request"
	"blogapi/dao"
	"blogapi/internal/errcode"
	"blogapi/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryService(t *testing.T) (*CategoryService, *dao.PostDAO) {
	db := newTestDB(t)
	postDAO := dao.NewPostDAO(db)
	return NewCategoryService(dao.NewCategoryDAO(db), postDAO), postDAO
}

func assertCode(t *testing.T, err error, want errcode.Code) {
	t.Helper()
	var appErr *errcode.Error
	require.True(t, errors.As(err, &appErr), "expected app error, got %v", err)
	assert.Equal(t, want.Code, appErr.Code.Code)
}

func TestCategoryCreateGeneratesSlug(t *testing.T) {
	svc, _ := newCategoryService(t)

	category, err := svc.Create(&request.CategoryRequest{Name: "Tech Notes"})
	require.NoError(t, err)
	assert.Equal(t, "tech-notes", category.Slug)
	assert.NotZero(t, category.ID)
}

func TestCategoryCreateKeepsExplicitSlug(t *testing.T) {
	svc, _ := newCategoryService(t)

	category, err := svc.Create(&request.CategoryRequest{Name: "Tech", Slug: "custom-slug"})
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", category.Slug)
}

func TestCategoryCreateDuplicateName(t *testing.T) {
	svc, _ := newCategoryService(t)

	_, err := svc.Create(&request.CategoryRequest{Name: "Tech"})
	require.NoError(t, err)

	_, err = svc.Create(&request.CategoryRequest{Name: "Tech"})
	assertCode(t, err, errcode.CategoryNameExists)
}

func TestCategoryCreateSlugCollisionGetsSuffix(t *testing.T) {
	svc, _ := newCategoryService(t)

	first, err := svc.Create(&request.CategoryRequest{Name: "Tech"})
	require.NoError(t, err)

	// different name, same generated slug candidate
	second, err := svc.Create(&request.CategoryRequest{Name: "tech"})
	if err != nil {
		// "tech" and "Tech" collide on name for case-insensitive collations
		assertCode(t, err, errcode.CategoryNameExists)
		return
	}
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.Contains(t, second.Slug, "tech-")
}

func TestCategoryUpdate(t *testing.T) {
	svc, _ := newCategoryService(t)

	category, err := svc.Create(&request.CategoryRequest{Name: "Old"})
	require.NoError(t, err)

	updated, err := svc.Update(category.ID, &request.CategoryRequest{
		Name:        "New Name",
		Description: "renamed",
		SortOrder:   intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "renamed", updated.Description)
	assert.Equal(t, 3, updated.SortOrder)
}

func TestCategoryUpdateNameConflict(t *testing.T) {
	svc, _ := newCategoryService(t)

	_, err := svc.Create(&request.CategoryRequest{Name: "First"})
	require.NoError(t, err)
	second, err := svc.Create(&request.CategoryRequest{Name: "Second"})
	require.NoError(t, err)

	_, err = svc.Update(second.ID, &request.CategoryRequest{Name: "First"})
	assertCode(t, err, errcode.CategoryNameExists)
}

func TestCategoryUpdateNotFound(t *testing.T) {
	svc, _ := newCategoryService(t)

	_, err := svc.Update(999, &request.CategoryRequest{Name: "X"})
	assertCode(t, err, errcode.CategoryNotFound)
}

func TestCategoryDeleteWithPostsRefused(t *testing.T) {
	svc, postDAO := newCategoryService(t)

	category, err := svc.Create(&request.CategoryRequest{Name: "Busy"})
	require.NoError(t, err)

	require.NoError(t, postDAO.Create(&model.Post{
		Title:      "In the way",
		Slug:       "in-the-way",
		CategoryID: &category.ID,
	}))

	err = svc.Delete(category.ID)
	assertCode(t, err, errcode.CategoryHasPosts)

	// still there
	_, err = svc.GetByID(category.ID)
	assert.NoError(t, err)
}

func TestCategoryDelete(t *testing.T) {
	svc, _ := newCategoryService(t)

	category, err := svc.Create(&request.CategoryRequest{Name: "Ephemeral"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(category.ID))

	_, err = svc.GetByID(category.ID)
	assertCode(t, err, errcode.CategoryNotFound)
}

func TestCategoryGetPageEmpty(t *testing.T) {
	svc, _ := newCategoryService(t)

	page, err := svc.GetPage(0, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Content)
	assert.Equal(t, int64(0), page.TotalElements)
	assert.Equal(t, 0, page.TotalPages)
	assert.True(t, page.First)
	assert.True(t, page.Last)
}

func TestCategoryGetPage(t *testing.T) {
	svc, _ := newCategoryService(t)

	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.Create(&request.CategoryRequest{Name: name})
		require.NoError(t, err)
	}

	page, err := svc.GetPage(0, 2)
	require.NoError(t, err)
	assert.Len(t, page.Content, 2)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.First)
	assert.False(t, page.Last)

	page, err = svc.GetPage(1, 2)
	require.NoError(t, err)
	assert.Len(t, page.Content, 1)
	assert.False(t, page.First)
	assert.True(t, page.Last)
}
