package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/bagdasarian/position-helper/internal/domain"
	"github.com/bagdasarian/position-helper/internal/service"
)

const (
	maxUploadSize   = 10 << 20
	uploadFieldName = "file"
)

// readUpload читает файл из multipart-поля file
func readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return "", nil, domain.NewBadRequestError("multipart form with a 'file' field is required")
	}

	file, header, err := r.FormFile(uploadFieldName)
	if err != nil {
		return "", nil, domain.NewBadRequestError("file is required")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read upload: %w", err)
	}
	return header.Filename, data, nil
}

func writeDownload(w http.ResponseWriter, d *service.Download) {
	w.Header().Set("Content-Type", d.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", d.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(d.Body)
}
