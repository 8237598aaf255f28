package service

import (
	"errors"

	"blogapi/api/v1/request"
	"blogapi/api/v1/response"
	"blogapi/dao"
	"blogapi/internal/errcode"
	"blogapi/internal/slug"
	"blogapi/model"

	"gorm.io/gorm"
)

type CategoryService struct {
	categoryDAO *dao.CategoryDAO
	postDAO     *dao.PostDAO
}

func NewCategoryService(categoryDAO *dao.CategoryDAO, postDAO *dao.PostDAO) *CategoryService {
	return &CategoryService{categoryDAO: categoryDAO, postDAO: postDAO}
}

func (s *CategoryService) Create(req *request.CategoryRequest) (*model.Category, error) {
	count, err := s.categoryDAO.CountByName(req.Name, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errcode.New(errcode.CategoryNameExists)
	}

	candidate := req.Slug
	if candidate == "" {
		candidate = slug.Generate(req.Name)
	}
	candidate = slug.MakeUnique(candidate, s.slugExists(0))

	category := &model.Category{
		Name:        req.Name,
		Slug:        candidate,
		Description: req.Description,
		ParentID:    req.ParentID,
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if err := s.categoryDAO.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetByID(id uint64) (*model.Category, error) {
	category, err := s.categoryDAO.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.New(errcode.CategoryNotFound)
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetBySlug(sl string) (*model.Category, error) {
	category, err := s.categoryDAO.GetBySlug(sl)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.New(errcode.CategoryNotFound)
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetAll() ([]model.Category, error) {
	return s.categoryDAO.GetAll()
}

func (s *CategoryService) GetPage(page, size int) (response.Page[model.Category], error) {
	categories, total, err := s.categoryDAO.GetPage(page*size, size)
	if err != nil {
		return response.Page[model.Category]{}, err
	}
	return response.NewPage(categories, page, size, total), nil
}

func (s *CategoryService) Update(id uint64, req *request.CategoryRequest) (*model.Category, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if category.Name != req.Name {
		count, err := s.categoryDAO.CountByName(req.Name, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errcode.New(errcode.CategoryNameExists)
		}
	}

	if req.Slug != "" && req.Slug != category.Slug {
		count, err := s.categoryDAO.CountBySlug(req.Slug, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errcode.Newf(errcode.CategoryNameExists, "Slug already exists")
		}
		category.Slug = req.Slug
	}

	category.Name = req.Name
	category.Description = req.Description
	category.ParentID = req.ParentID
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if err := s.categoryDAO.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete refuses to remove a category that still owns posts: there is no
// cascade and no orphan reassignment.
func (s *CategoryService) Delete(id uint64) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	count, err := s.postDAO.CountByCategoryID(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return errcode.New(errcode.CategoryHasPosts)
	}
	return s.categoryDAO.Delete(id)
}

func (s *CategoryService) slugExists(excludeID uint64) func(string) bool {
	return func(candidate string) bool {
		count, err := s.categoryDAO.CountBySlug(candidate, excludeID)
		return err == nil && count > 0
	}
}
