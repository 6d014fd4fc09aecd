package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mertcan/placeport/internal/pkg/logger"
)

// LocalStorage saves files on the local filesystem under a base path.
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating
// the directory if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// SaveFile stores the uploaded file under subPath with a generated name.
// The original filename contributes only its extension.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	if fileHeader == nil {
		return "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	dir := ls.basePath
	if subPath != "" {
		dir = filepath.Join(ls.basePath, subPath)
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create subdirectory: %w", err)
		}
	}

	storedName := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	if subPath != "" {
		storedName = filepath.Join(subPath, storedName)
	}

	dst, err := os.Create(filepath.Join(ls.basePath, storedName))
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(filepath.Join(ls.basePath, storedName))
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	logger.Info().Str("filename", fileHeader.Filename).Str("storedName", storedName).Msg("File saved")
	return storedName, nil
}

// DeleteFile removes a stored file. A missing file is not an error.
func (ls *LocalStorage) DeleteFile(storedName string) error {
	if storedName == "" {
		return nil
	}

	err := os.Remove(ls.FullPath(storedName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", storedName, err)
	}
	return nil
}

// FullPath returns the filesystem path for a stored name.
func (ls *LocalStorage) FullPath(storedName string) string {
	return filepath.Join(ls.basePath, storedName)
}
