package media

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// CloudinaryClient proxies unsigned uploads to Cloudinary. The frontend used
// to hit these endpoints directly with preset names baked into the bundle;
// routing them through the backend keeps the presets out of client code and
// lets us enforce size and MIME checks first.
type CloudinaryClient struct {
	cloudName   string
	imagePreset string
	rawPreset   string
	http        *http.Client
}

func NewCloudinaryClient(cloudName, imagePreset, rawPreset string) *CloudinaryClient {
	return &CloudinaryClient{
		cloudName:   cloudName,
		imagePreset: imagePreset,
		rawPreset:   rawPreset,
		http:        &http.Client{Timeout: 60 * time.Second},
	}
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// UploadImage sends an image file to the unsigned image/upload endpoint and
// returns its secure URL.
func (c *CloudinaryClient) UploadImage(ctx context.Context, file io.Reader, filename string) (string, error) {
	return c.upload(ctx, file, filename, "image", c.imagePreset)
}

// UploadRaw sends a non-image file (CV PDFs) to the raw/upload endpoint.
func (c *CloudinaryClient) UploadRaw(ctx context.Context, file io.Reader, filename string) (string, error) {
	return c.upload(ctx, file, filename, "raw", c.rawPreset)
}

func (c *CloudinaryClient) upload(ctx context.Context, file io.Reader, filename, resourceType, preset string) (string, error) {
	if c.cloudName == "" || preset == "" {
		return "", fmt.Errorf("cloudinary is not configured")
	}

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		defer pw.Close()

		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		if err := writer.WriteField("upload_preset", preset); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/%s/upload", c.cloudName, resourceType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, pr)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("status %d", resp.StatusCode)
		if result.Error != nil {
			msg = result.Error.Message
		}
		return "", fmt.Errorf("cloudinary upload failed: %s", msg)
	}

	return result.SecureURL, nil
}
