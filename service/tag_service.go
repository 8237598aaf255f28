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

type TagService struct {
	tagDAO *dao.TagDAO
}

func NewTagService(tagDAO *dao.TagDAO) *TagService {
	return &TagService{tagDAO: tagDAO}
}

func (s *TagService) Create(req *request.TagRequest) (*model.Tag, error) {
	count, err := s.tagDAO.CountByName(req.Name, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errcode.New(errcode.TagNameExists)
	}

	candidate := req.Slug
	if candidate == "" {
		candidate = slug.Generate(req.Name)
	}
	candidate = slug.MakeUnique(candidate, func(c string) bool {
		n, err := s.tagDAO.CountBySlug(c, 0)
		return err == nil && n > 0
	})

	tag := &model.Tag{Name: req.Name, Slug: candidate}
	if err := s.tagDAO.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) GetByID(id uint64) (*model.Tag, error) {
	tag, err := s.tagDAO.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.New(errcode.TagNotFound)
		}
		return nil, err
	}
	return tag, nil
}

func (s *TagService) GetBySlug(sl string) (*model.Tag, error) {
	tag, err := s.tagDAO.GetBySlug(sl)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.New(errcode.TagNotFound)
		}
		return nil, err
	}
	return tag, nil
}

func (s *TagService) GetAll() ([]model.Tag, error) {
	return s.tagDAO.GetAll()
}

func (s *TagService) GetPage(page, size int) (response.Page[model.Tag], error) {
	tags, total, err := s.tagDAO.GetPage(page*size, size)
	if err != nil {
		return response.Page[model.Tag]{}, err
	}
	return response.NewPage(tags, page, size, total), nil
}

func (s *TagService) Update(id uint64, req *request.TagRequest) (*model.Tag, error) {
	tag, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if tag.Name != req.Name {
		count, err := s.tagDAO.CountByName(req.Name, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errcode.New(errcode.TagNameExists)
		}
	}

	if req.Slug != "" && req.Slug != tag.Slug {
		count, err := s.tagDAO.CountBySlug(req.Slug, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errcode.Newf(errcode.TagNameExists, "Slug already exists")
		}
		tag.Slug = req.Slug
	}

	tag.Name = req.Name
	if err := s.tagDAO.Update(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *TagService) Delete(id uint64) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.tagDAO.Delete(id)
}
