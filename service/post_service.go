package service

import (
	"errors"
	"time"

	"blogapi/api/v1/request"
	"blogapi/api/v1/response"
	"blogapi/dao"
	"blogapi/internal/errcode"
	"blogapi/internal/slug"
	"blogapi/model"

	"gorm.io/gorm"
)

// PostService owns the post↔category↔tag relationship logic. The public /
// admin visibility split is NOT enforced here: public callers must pass
// status=1 themselves.
type PostService struct {
	postDAO     *dao.PostDAO
	postTagDAO  *dao.PostTagDAO
	categoryDAO *dao.CategoryDAO
	tagDAO      *dao.TagDAO
	userDAO     *dao.UserDAO
}

func NewPostService(postDAO *dao.PostDAO, postTagDAO *dao.PostTagDAO,
	categoryDAO *dao.CategoryDAO, tagDAO *dao.TagDAO, userDAO *dao.UserDAO) *PostService {
	return &PostService{
		postDAO:     postDAO,
		postTagDAO:  postTagDAO,
		categoryDAO: categoryDAO,
		tagDAO:      tagDAO,
		userDAO:     userDAO,
	}
}

// Create resolves the author by username, uniquifies the slug, defaults
// status to draft, and inserts one join row per requested tag id. Tag ids
// are trusted boundary input, no existence check.
func (s *PostService) Create(req *request.PostRequest, authorUsername string) (*response.PostResponse, error) {
	author, err := s.userDAO.GetByUsername(authorUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.New(errcode.UserNotFound)
		}
		return nil, err
	}

	candidate := req.Slug
	if candidate == "" {
		candidate = slug.Generate(req.Title)
	}
	candidate = slug.MakeUnique(candidate, func(c string) bool {
		n, err := s.postDAO.CountBySlug(c, 0)
		return err == nil && n > 0
	})

	post := &model.Post{
		Title:      req.Title,
		Slug:       candidate,
		Summary:    req.Summary,
		Content:    req.Content,
		Cover:      req.Cover,
		AuthorID:   author.ID,
		CategoryID: req.CategoryID,
		Status:     model.PostStatusDraft,
	}
	if req.Status != nil {
		post.Status = *req.Status
	}
	if post.Status == model.PostStatusPublished {
		if req.PublishedAt != nil {
			post.PublishedAt = req.PublishedAt
		} else {
			now := time.Now()
			post.PublishedAt = &now
		}
	}

	if err := s.postDAO.Create(post); err != nil {
		return nil, err
	}
	if req.TagIDs != nil {
		if err := s.postTagDAO.Insert(post.ID, *req.TagIDs); err != nil {
			return nil, err
		}
	}
	return s.toResponse(post)
}

func (s *PostService) GetByID(id uint64) (*response.PostResponse, error) {
	post, err := s.postDAO.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.New(errcode.PostNotFound)
		}
		return nil, err
	}
	return s.toResponse(post)
}

func (s *PostService) GetBySlug(sl string) (*response.PostResponse, error) {
	post, err := s.postDAO.GetBySlug(sl)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.New(errcode.PostNotFound)
		}
		return nil, err
	}
	return s.toResponse(post)
}

// GetPage lists posts newest-first with optional equality filters. Nil
// status means all statuses, which is the admin view.
func (s *PostService) GetPage(page, size int, status *int, categoryID *uint64) (response.Page[response.PostResponse], error) {
	posts, total, err := s.postDAO.GetPage(page*size, size, dao.PostFilter{
		Status:     status,
		CategoryID: categoryID,
	})
	if err != nil {
		return response.Page[response.PostResponse]{}, err
	}
	content, err := s.toResponseList(posts)
	if err != nil {
		return response.Page[response.PostResponse]{}, err
	}
	return response.NewPage(content, page, size, total), nil
}

// GetPageByTagID resolves the tag's post ids via the join table first and
// short-circuits to an empty page when there are none, so the posts table
// is never queried with an empty IN list.
func (s *PostService) GetPageByTagID(page, size int, tagID uint64) (response.Page[response.PostResponse], error) {
	postIDs, err := s.postTagDAO.ListPostIDsByTagID(tagID)
	if err != nil {
		return response.Page[response.PostResponse]{}, err
	}
	if len(postIDs) == 0 {
		return response.NewPage([]response.PostResponse{}, page, size, 0), nil
	}

	posts, total, err := s.postDAO.GetPageByIDs(postIDs, page*size, size)
	if err != nil {
		return response.Page[response.PostResponse]{}, err
	}
	content, err := s.toResponseList(posts)
	if err != nil {
		return response.Page[response.PostResponse]{}, err
	}
	return response.NewPage(content, page, size, total), nil
}

// Update replaces the mutable fields. PublishedAt is set once on the first
// transition into published and never cleared afterwards. A non-nil tag
// list is a full replace: all join rows are deleted and the new set
// inserted, so an explicit empty list clears every tag.
func (s *PostService) Update(id uint64, req *request.PostRequest) (*response.PostResponse, error) {
	post, err := s.postDAO.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.New(errcode.PostNotFound)
		}
		return nil, err
	}

	if req.Slug != "" && req.Slug != post.Slug {
		count, err := s.postDAO.CountBySlug(req.Slug, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errcode.New(errcode.PostSlugExists)
		}
		post.Slug = req.Slug
	}

	post.Title = req.Title
	post.Summary = req.Summary
	post.Content = req.Content
	post.Cover = req.Cover
	post.CategoryID = req.CategoryID
	if req.Status != nil {
		post.Status = *req.Status
	}
	if post.Status == model.PostStatusPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.postDAO.Update(post); err != nil {
		return nil, err
	}

	if req.TagIDs != nil {
		if err := s.postTagDAO.DeleteByPostID(post.ID); err != nil {
			return nil, err
		}
		if err := s.postTagDAO.Insert(post.ID, *req.TagIDs); err != nil {
			return nil, err
		}
	}
	return s.toResponse(post)
}

// Delete removes the join rows before the post row; the store is not
// assumed to cascade.
func (s *PostService) Delete(id uint64) error {
	if _, err := s.postDAO.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errcode.New(errcode.PostNotFound)
		}
		return err
	}
	if err := s.postTagDAO.DeleteByPostID(id); err != nil {
		return err
	}
	return s.postDAO.Delete(id)
}

// IncrementViewCount bumps the counter with a single atomic UPDATE.
func (s *PostService) IncrementViewCount(id uint64) error {
	return s.postDAO.IncrementViewCount(id)
}

// toResponseList assembles N post DTOs with exactly two extra queries
// (one batch category lookup, one batch tag join) instead of two per
// post.
func (s *PostService) toResponseList(posts []model.Post) ([]response.PostResponse, error) {
	if len(posts) == 0 {
		return []response.PostResponse{}, nil
	}

	categoryIDSet := make(map[uint64]struct{})
	postIDs := make([]uint64, 0, len(posts))
	for i := range posts {
		postIDs = append(postIDs, posts[i].ID)
		if posts[i].CategoryID != nil {
			categoryIDSet[*posts[i].CategoryID] = struct{}{}
		}
	}

	categoryByID := make(map[uint64]model.Category)
	if len(categoryIDSet) > 0 {
		categoryIDs := make([]uint64, 0, len(categoryIDSet))
		for id := range categoryIDSet {
			categoryIDs = append(categoryIDs, id)
		}
		categories, err := s.categoryDAO.ListByIDs(categoryIDs)
		if err != nil {
			return nil, err
		}
		for _, c := range categories {
			categoryByID[c.ID] = c
		}
	}

	tagsByPostID := make(map[uint64][]response.TagInfo)
	rows, err := s.postTagDAO.ListTagsByPostIDs(postIDs)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		tagsByPostID[row.PostID] = append(tagsByPostID[row.PostID], response.TagInfo{
			ID:   row.ID,
			Name: row.Name,
			Slug: row.Slug,
		})
	}

	content := make([]response.PostResponse, 0, len(posts))
	for i := range posts {
		resp := response.NewPostResponse(&posts[i])
		if posts[i].CategoryID != nil {
			if c, ok := categoryByID[*posts[i].CategoryID]; ok {
				resp.CategoryName = c.Name
				resp.CategorySlug = c.Slug
			}
		}
		resp.Tags = tagsByPostID[posts[i].ID]
		content = append(content, resp)
	}
	return content, nil
}

// toResponse is the single-post variant; with N=1 the per-relation lookups
// are fine.
func (s *PostService) toResponse(post *model.Post) (*response.PostResponse, error) {
	resp := response.NewPostResponse(post)

	if post.CategoryID != nil {
		category, err := s.categoryDAO.GetByID(*post.CategoryID)
		if err == nil {
			resp.CategoryName = category.Name
			resp.CategorySlug = category.Slug
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	tagIDs, err := s.postTagDAO.ListTagIDsByPostID(post.ID)
	if err != nil {
		return nil, err
	}
	for _, tagID := range tagIDs {
		tag, err := s.tagDAO.GetByID(tagID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue // dangling join row, tag ids are not verified on write
			}
			return nil, err
		}
		resp.Tags = append(resp.Tags, response.TagInfo{ID: tag.ID, Name: tag.Name, Slug: tag.Slug})
	}
	return &resp, nil
}
