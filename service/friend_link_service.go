package service

import (
	"errors"

	"blogapi/api/v1/request"
	"blogapi/api/v1/response"
	"blogapi/dao"
	"blogapi/internal/errcode"
	"blogapi/model"

	"gorm.io/gorm"
)

type FriendLinkService struct {
	linkDAO *dao.FriendLinkDAO
}

func NewFriendLinkService(linkDAO *dao.FriendLinkDAO) *FriendLinkService {
	return &FriendLinkService{linkDAO: linkDAO}
}

func (s *FriendLinkService) Create(req *request.FriendLinkRequest) (*model.FriendLink, error) {
	count, err := s.linkDAO.CountByURL(req.URL, 0)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errcode.New(errcode.FriendLinkExists)
	}

	link := &model.FriendLink{
		Name:        req.Name,
		URL:         req.URL,
		Avatar:      req.Avatar,
		Description: req.Description,
		Status:      model.FriendLinkVisible,
	}
	if req.SortOrder != nil {
		link.SortOrder = *req.SortOrder
	}
	if err := s.linkDAO.Create(link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *FriendLinkService) GetByID(id uint64) (*model.FriendLink, error) {
	link, err := s.linkDAO.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.New(errcode.FriendLinkNotFound)
		}
		return nil, err
	}
	return link, nil
}

// GetAll returns every link ordered by sort_order, then newest first.
func (s *FriendLinkService) GetAll() ([]model.FriendLink, error) {
	return s.linkDAO.GetAll()
}

// GetVisible is the public view: enabled links only, same ordering.
func (s *FriendLinkService) GetVisible() ([]model.FriendLink, error) {
	return s.linkDAO.ListVisible()
}

func (s *FriendLinkService) GetPage(page, size int) (response.Page[model.FriendLink], error) {
	links, total, err := s.linkDAO.GetPage(page*size, size)
	if err != nil {
		return response.Page[model.FriendLink]{}, err
	}
	return response.NewPage(links, page, size, total), nil
}

func (s *FriendLinkService) Update(id uint64, req *request.FriendLinkRequest) (*model.FriendLink, error) {
	link, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if link.URL != req.URL {
		count, err := s.linkDAO.CountByURL(req.URL, id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errcode.New(errcode.FriendLinkExists)
		}
	}

	link.Name = req.Name
	link.URL = req.URL
	link.Avatar = req.Avatar
	link.Description = req.Description
	if req.SortOrder != nil {
		link.SortOrder = *req.SortOrder
	}
	if req.Status != nil {
		link.Status = *req.Status
	}
	if err := s.linkDAO.Update(link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *FriendLinkService) Delete(id uint64) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.linkDAO.Delete(id)
}
