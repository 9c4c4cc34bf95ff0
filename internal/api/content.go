package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"lectura-cli/internal/flow"
	"lectura-cli/internal/models"
)

func (c *Client) ListContent(ctx context.Context) ([]models.Content, error) {
	var out struct {
		Content []models.Content `json:"content"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/content", nil, &out); err != nil {
		return nil, err
	}
	return out.Content, nil
}

func (c *Client) GetContent(ctx context.Context, id uuid.UUID) (*models.Content, error) {
	var out models.Content
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/content/"+id.String(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteContent(ctx context.Context, id uuid.UUID) ([]flow.Collection, error) {
	if err := c.doJSON(ctx, http.MethodDelete, "/api/v1/content/"+id.String(), nil, nil); err != nil {
		return nil, err
	}
	return []flow.Collection{flow.Documents}, nil
}

// ValidateYouTube submits a YouTube link for ingestion. The backend
// records the content and queues transcript extraction.
func (c *Client) ValidateYouTube(ctx context.Context, url string) (*models.ValidateYouTubeResponse, []flow.Collection, error) {
	var out models.ValidateYouTubeResponse
	req := models.ValidateYouTubeRequest{URL: url}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/content/validate-youtube", req, &out); err != nil {
		return nil, nil, err
	}
	return &out, []flow.Collection{flow.Documents}, nil
}

// Upload sends a local file as a multipart form with its title. One
// attempt; a failed upload leaves nothing behind on the client.
func (c *Client) Upload(ctx context.Context, path, title string) (*models.UploadResponse, []flow.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, nil, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, nil, err
	}
	if err := writer.WriteField("title", title); err != nil {
		return nil, nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/content/upload", &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, decodeError(resp)
	}

	var out models.UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, nil, err
	}
	return &out, []flow.Collection{flow.Documents}, nil
}
