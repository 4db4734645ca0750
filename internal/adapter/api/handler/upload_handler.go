package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"familymarket/internal/infrastructure/media"
	"familymarket/pkg/errors"
	"familymarket/pkg/response"
)

// Images larger than this are rejected before hitting the CDN.
const maxUploadBytes = 10 << 20

// CVs are accepted as PDF only.
const cvContentType = "application/pdf"

type UploadHandler struct {
	media *media.CloudinaryClient
}

var uploadHandler *UploadHandler

func SetupUploadHandler(client *media.CloudinaryClient) {
	uploadHandler = &UploadHandler{media: client}
}

func GetUploadHandler() *UploadHandler {
	return uploadHandler
}

// UploadImage pushes a multipart image to the CDN and returns its URL.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("file field is required", err))
	}
	if fileHeader.Size > maxUploadBytes {
		return response.Error(c, errors.BadRequest("File exceeds the 10MB limit", nil))
	}
	if ct := fileHeader.Header.Get("Content-Type"); !strings.HasPrefix(ct, "image/") {
		return response.Error(c, errors.BadRequest("Only image files are accepted", nil))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read upload", err))
	}
	defer src.Close()

	url, err := h.media.UploadImage(c.Request().Context(), src, fileHeader.Filename)
	if err != nil {
		return response.Error(c, errors.Internal("Upload failed", err))
	}

	return response.Created(c, map[string]string{
		"url": url,
	})
}

// UploadRaw handles non-image files, in practice CV PDFs for job-seeker
// postings.
func (h *UploadHandler) UploadRaw(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("file field is required", err))
	}
	if fileHeader.Size > maxUploadBytes {
		return response.Error(c, errors.BadRequest("File exceeds the 10MB limit", nil))
	}
	if ct := fileHeader.Header.Get("Content-Type"); ct != cvContentType {
		return response.Error(c, errors.BadRequest("Only PDF files are accepted", nil))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read upload", err))
	}
	defer src.Close()

	url, err := h.media.UploadRaw(c.Request().Context(), src, fileHeader.Filename)
	if err != nil {
		return response.Error(c, errors.Internal("Upload failed", err))
	}

	return response.Created(c, map[string]string{
		"url": url,
	})
}
