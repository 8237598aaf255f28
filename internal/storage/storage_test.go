package storage

import (
	"bytes"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"
	"time"

	"blogapi/internal/errcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeader(t *testing.T, name, contentType string, body []byte) *multipart.FileHeader {
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

func assertStorageCode(t *testing.T, err error, want errcode.Code) {
	t.Helper()
	var appErr *errcode.Error
	require.True(t, errors.As(err, &appErr), "expected app error, got %v", err)
	assert.Equal(t, want.Code, appErr.Code.Code)
}

func TestStoreAndDelete(t *testing.T) {
	fs := NewFileStorage(t.TempDir(), 1<<20)

	relPath, err := fs.Store(fileHeader(t, "photo.png", "image/png", []byte("png-bytes")))
	require.NoError(t, err)

	// stored under yyyy/MM with a generated name, original extension kept
	assert.Equal(t, time.Now().Format("2006/01"), filepath.ToSlash(filepath.Dir(relPath)))
	assert.Equal(t, ".png", filepath.Ext(relPath))
	assert.NotContains(t, relPath, "photo")

	data, err := os.ReadFile(fs.Path(relPath))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	assert.True(t, fs.Delete(relPath))
	assert.False(t, fs.Delete(relPath), "second delete finds nothing")
}

func TestStoreRejectsEmptyFile(t *testing.T) {
	fs := NewFileStorage(t.TempDir(), 1<<20)
	_, err := fs.Store(fileHeader(t, "empty.png", "image/png", nil))
	assertStorageCode(t, err, errcode.FileUploadFailed)
}

func TestStoreRejectsOversizedFile(t *testing.T) {
	fs := NewFileStorage(t.TempDir(), 4)
	_, err := fs.Store(fileHeader(t, "big.png", "image/png", []byte("12345")))
	assertStorageCode(t, err, errcode.FileSizeExceeded)
}

func TestStoreRejectsDisallowedMime(t *testing.T) {
	fs := NewFileStorage(t.TempDir(), 1<<20)
	_, err := fs.Store(fileHeader(t, "app.exe", "application/x-msdownload", []byte("MZ")))
	assertStorageCode(t, err, errcode.FileTypeNotAllowed)
}

func TestStoreRejectsDisallowedExtension(t *testing.T) {
	fs := NewFileStorage(t.TempDir(), 1<<20)
	// allowed MIME but mismatched extension still fails
	_, err := fs.Store(fileHeader(t, "script.sh", "image/png", []byte("#!/bin/sh")))
	assertStorageCode(t, err, errcode.FileTypeNotAllowed)
}
