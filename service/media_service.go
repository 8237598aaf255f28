package service

import (
	"errors"
	"mime/multipart"
	"path"

	"blogapi/api/v1/response"
	"blogapi/dao"
	"blogapi/internal/errcode"
	"blogapi/internal/storage"
	"blogapi/model"

	"gorm.io/gorm"
)

// MediaService persists upload metadata; the bytes live with the file
// storage collaborator.
type MediaService struct {
	mediaDAO *dao.MediaDAO
	storage  *storage.FileStorage
}

func NewMediaService(mediaDAO *dao.MediaDAO, fs *storage.FileStorage) *MediaService {
	return &MediaService{mediaDAO: mediaDAO, storage: fs}
}

// MediaView is a media row with its public URL under /uploads.
type MediaView struct {
	model.Media
	URL string `json:"url"`
}

func (s *MediaService) Upload(file *multipart.FileHeader, uploaderID uint64) (*MediaView, error) {
	relPath, err := s.storage.Store(file)
	if err != nil {
		return nil, err
	}

	media := &model.Media{
		Filename:         path.Base(relPath),
		OriginalFilename: file.Filename,
		Filepath:         relPath,
		MimeType:         file.Header.Get("Content-Type"),
		Size:             file.Size,
		UploaderID:       uploaderID,
	}
	if err := s.mediaDAO.Create(media); err != nil {
		return nil, err
	}
	return s.toView(media), nil
}

func (s *MediaService) GetByID(id uint64) (*MediaView, error) {
	media, err := s.mediaDAO.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.New(errcode.MediaNotFound)
		}
		return nil, err
	}
	return s.toView(media), nil
}

func (s *MediaService) GetPage(page, size int, uploaderID *uint64) (response.Page[*MediaView], error) {
	media, total, err := s.mediaDAO.GetPage(page*size, size, uploaderID)
	if err != nil {
		return response.Page[*MediaView]{}, err
	}
	views := make([]*MediaView, 0, len(media))
	for i := range media {
		views = append(views, s.toView(&media[i]))
	}
	return response.NewPage(views, page, size, total), nil
}

func (s *MediaService) GetRecent(limit int) ([]*MediaView, error) {
	media, err := s.mediaDAO.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	views := make([]*MediaView, 0, len(media))
	for i := range media {
		views = append(views, s.toView(&media[i]))
	}
	return views, nil
}

// Delete removes the stored file first, then the metadata row. Storage
// deletion is best effort and never blocks the row removal.
func (s *MediaService) Delete(id uint64) error {
	media, err := s.mediaDAO.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errcode.New(errcode.MediaNotFound)
		}
		return err
	}
	s.storage.Delete(media.Filepath)
	return s.mediaDAO.Delete(id)
}

func (s *MediaService) toView(media *model.Media) *MediaView {
	return &MediaView{Media: *media, URL: "/uploads/" + media.Filepath}
}
