package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// UploadResult carries the outcome of an image-host upload. Callers that treat
// upload failure as non-fatal check Err and proceed without the URL.
type UploadResult struct {
	URL string
	Err error
}

type ImageClient struct {
	uploadURL string
	apiKey    string
	client    *http.Client
}

func NewImageClient(uploadURL, apiKey string) *ImageClient {
	return &ImageClient{
		uploadURL: uploadURL,
		apiKey:    apiKey,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Upload sends the raw image payload (a data URI or remote URL) to the image
// host and returns the hosted content URL.
func (c *ImageClient) Upload(image string) UploadResult {
	if c.uploadURL == "" {
		return UploadResult{Err: errors.New("image host not configured")}
	}

	payload := map[string]string{
		"image": image,
		"tags":  "article_header",
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return UploadResult{Err: err}
	}

	req, err := http.NewRequest(http.MethodPost, c.uploadURL, bytes.NewReader(b))
	if err != nil {
		return UploadResult{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return UploadResult{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return UploadResult{Err: err}
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return UploadResult{Err: fmt.Errorf("image host returned %d: %s", resp.StatusCode, string(body))}
	}

	var r struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &r); err != nil {
		return UploadResult{Err: err}
	}
	if r.URL == "" {
		return UploadResult{Err: errors.New("image host response missing url")}
	}
	return UploadResult{URL: r.URL}
}
