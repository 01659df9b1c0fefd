package lib

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// ImgbbClient uploads images to the imgbb hosting API. The API is a single
// multipart POST endpoint, so this is a plain HTTP client rather than an SDK.
type ImgbbClient struct {
	apiKey    string
	uploadURL string
	client    *http.Client
}

func NewImgbbClient(apiKey, uploadURL string) *ImgbbClient {
	return &ImgbbClient{
		apiKey:    apiKey,
		uploadURL: uploadURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type imgbbResponse struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Data    struct {
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
	} `json:"data"`
}

// Upload sends base64-encoded image data and returns the hosted URL.
func (c *ImgbbClient) Upload(ctx context.Context, fileName, base64Data string) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("key", c.apiKey); err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	if err := writer.WriteField("name", fileName); err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	if err := writer.WriteField("image", base64Data); err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("image upload failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	var parsed imgbbResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse upload response: %w", err)
	}
	if !parsed.Success || parsed.Data.URL == "" {
		return "", fmt.Errorf("image host rejected the upload (status %d)", parsed.Status)
	}

	return parsed.Data.URL, nil
}
