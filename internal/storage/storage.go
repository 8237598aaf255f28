// Package storage writes uploaded files to local disk under the configured
// upload root, organized into yyyy/MM directories.
package storage

import (
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"blogapi/internal/errcode"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var allowedMimeTypes = map[string]bool{
	// images
	"image/jpeg": true, "image/png": true, "image/gif": true,
	"image/webp": true, "image/svg+xml": true,
	// video
	"video/mp4": true, "video/mpeg": true, "video/quicktime": true,
	"video/x-msvideo": true, "video/webm": true,
	// audio
	"audio/mpeg": true, "audio/wav": true, "audio/ogg": true,
	"audio/aac": true, "audio/x-m4a": true,
	// documents
	"application/pdf": true, "text/plain": true, "text/markdown": true,
}

var allowedExtensions = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "gif": true, "webp": true, "svg": true,
	"mp4": true, "mpeg": true, "mpg": true, "mov": true, "avi": true, "webm": true,
	"mp3": true, "wav": true, "ogg": true, "aac": true, "m4a": true,
	"pdf": true, "txt": true, "md": true,
}

// FileStorage stores uploads below Root, rejecting files over MaxSize or
// outside the MIME/extension allow-lists.
type FileStorage struct {
	Root    string
	MaxSize int64
}

func NewFileStorage(root string, maxSize int64) *FileStorage {
	return &FileStorage{Root: root, MaxSize: maxSize}
}

// Store validates and persists an uploaded file, returning its path
// relative to the storage root. The stored filename is a fresh UUID with
// the original extension.
func (fs *FileStorage) Store(file *multipart.FileHeader) (string, error) {
	if file.Size == 0 {
		return "", errcode.Newf(errcode.FileUploadFailed, "file is empty")
	}
	if file.Size > fs.MaxSize {
		return "", errcode.New(errcode.FileSizeExceeded)
	}

	mimeType := strings.ToLower(file.Header.Get("Content-Type"))
	if !allowedMimeTypes[mimeType] {
		return "", errcode.New(errcode.FileTypeNotAllowed)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if ext == "" || !allowedExtensions[ext] {
		return "", errcode.New(errcode.FileTypeNotAllowed)
	}

	dateDir := time.Now().Format("2006/01")
	dir := filepath.Join(fs.Root, dateDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error("create upload directory failed", "dir", dir, "err", err)
		return "", errcode.Newf(errcode.FileUploadFailed, "failed to create upload directory")
	}

	filename := uuid.NewString() + "." + ext
	dst := filepath.Join(dir, filename)

	src, err := file.Open()
	if err != nil {
		return "", errcode.Newf(errcode.FileUploadFailed, "failed to read upload")
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		log.Error("create upload file failed", "path", dst, "err", err)
		return "", errcode.Newf(errcode.FileUploadFailed, "failed to store file")
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		log.Error("write upload file failed", "path", dst, "err", err)
		return "", errcode.Newf(errcode.FileUploadFailed, "failed to store file")
	}

	return path.Join(dateDir, filename), nil
}

// Delete removes a stored file. Best effort: a missing file is not an
// error, and failures are reported but never block metadata cleanup.
func (fs *FileStorage) Delete(relPath string) bool {
	p := filepath.Join(fs.Root, filepath.FromSlash(relPath))
	if err := os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return false
		}
		log.Warn("delete stored file failed", "path", p, "err", err)
		return false
	}
	return true
}

// Path resolves a stored file's absolute location.
func (fs *FileStorage) Path(relPath string) string {
	return filepath.Join(fs.Root, filepath.FromSlash(relPath))
}
