package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"lms/config"

	"github.com/google/uuid"
)

// SaveUploadedFile stores an uploaded file under the configured upload dir
// with a uuid filename and returns the stored filename
func SaveUploadedFile(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	destDir := config.AppConfig.UploadDir
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	newFilename := uuid.NewString() + ext
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return newFilename, nil
}

// FileURL maps a stored filename to its public path
func FileURL(filename string) string {
	if filename == "" {
		return ""
	}
	return "/uploads/" + filename
}
