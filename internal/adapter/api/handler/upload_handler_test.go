package handler

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartUpload builds a request carrying one "file" part with an explicit
// part Content-Type.
func multipartUpload(t *testing.T, target, filename, contentType string, payload []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	return req
}

func TestUploadImageRejectsNonImageContentType(t *testing.T) {
	e := echo.New()
	req := multipartUpload(t, "/v1/uploads/image", "cv.pdf", "application/pdf", []byte("%PDF-1.4"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := &UploadHandler{}
	require.NoError(t, h.UploadImage(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Only image files are accepted")
}

func TestUploadRawRejectsNonPDFContentType(t *testing.T) {
	e := echo.New()
	req := multipartUpload(t, "/v1/uploads/cv", "foto.png", "image/png", []byte{0x89, 0x50, 0x4e, 0x47})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := &UploadHandler{}
	require.NoError(t, h.UploadRaw(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Only PDF files are accepted")
}

func TestUploadRequiresFilePart(t *testing.T) {
	e := echo.New()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("otro", "valor"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/uploads/image", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := &UploadHandler{}
	require.NoError(t, h.UploadImage(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
