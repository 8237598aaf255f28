package service

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"blogapi/dao"
	"blogapi/internal/errcode"
	"blogapi/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMediaService(t *testing.T) (*MediaService, *storage.FileStorage) {
	fs := storage.NewFileStorage(t.TempDir(), 1<<20)
	return NewMediaService(dao.NewMediaDAO(newTestDB(t)), fs), fs
}

func uploadFileHeader(t *testing.T, name, contentType string, body []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, name))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func TestMediaUpload(t *testing.T) {
	svc, fs := newMediaService(t)

	view, err := svc.Upload(uploadFileHeader(t, "cover.jpg", "image/jpeg", []byte("jpeg")), 7)
	require.NoError(t, err)
	assert.NotZero(t, view.ID)
	assert.Equal(t, "cover.jpg", view.OriginalFilename)
	assert.Equal(t, uint64(7), view.UploaderID)
	assert.Equal(t, "/uploads/"+view.Filepath, view.URL)

	_, err = os.Stat(fs.Path(view.Filepath))
	assert.NoError(t, err)
}

func TestMediaUploadRejectedFileLeavesNoRow(t *testing.T) {
	svc, _ := newMediaService(t)

	_, err := svc.Upload(uploadFileHeader(t, "evil.exe", "application/x-msdownload", []byte("MZ")), 7)
	assertCode(t, err, errcode.FileTypeNotAllowed)

	page, err := svc.GetPage(0, 10, nil)
	require.NoError(t, err)
	assert.Empty(t, page.Content)
}

func TestMediaGetPageFilterByUploader(t *testing.T) {
	svc, _ := newMediaService(t)

	_, err := svc.Upload(uploadFileHeader(t, "a.png", "image/png", []byte("a")), 1)
	require.NoError(t, err)
	_, err = svc.Upload(uploadFileHeader(t, "b.png", "image/png", []byte("b")), 2)
	require.NoError(t, err)

	page, err := svc.GetPage(0, 10, uintPtr(1))
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "a.png", page.Content[0].OriginalFilename)

	all, err := svc.GetPage(0, 10, nil)
	require.NoError(t, err)
	assert.Len(t, all.Content, 2)
}

func TestMediaDeleteRemovesFileAndRow(t *testing.T) {
	svc, fs := newMediaService(t)

	view, err := svc.Upload(uploadFileHeader(t, "gone.png", "image/png", []byte("x")), 1)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(view.ID))

	_, err = os.Stat(fs.Path(view.Filepath))
	assert.True(t, os.IsNotExist(err))

	_, err = svc.GetByID(view.ID)
	assertCode(t, err, errcode.MediaNotFound)
}

func TestMediaDeleteSurvivesMissingFile(t *testing.T) {
	svc, fs := newMediaService(t)

	view, err := svc.Upload(uploadFileHeader(t, "lost.png", "image/png", []byte("x")), 1)
	require.NoError(t, err)

	// file vanished out of band; metadata cleanup must still succeed
	require.NoError(t, os.Remove(fs.Path(view.Filepath)))
	require.NoError(t, svc.Delete(view.ID))
}
