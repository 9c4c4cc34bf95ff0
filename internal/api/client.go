// Package api is the typed client for the Lectura backend's /api/v1
// endpoint families. Every call is a single attempt with no automatic
// retry; failures decode the backend's error envelope into *APIError.
// The client keeps no local cache, so it is safe to share across
// views.
//
// Mutating operations return the list of collections they invalidate;
// the caller feeds that into the refresh registry instead of
// remembering which lists to refetch.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"lectura-cli/internal/models"
)

// TokenSource supplies the bearer token attached to every
// authenticated request. The session satisfies it.
type TokenSource interface {
	AccessToken() string
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func NewClient(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// doJSON issues one request and decodes the response into out (when
// out is non-nil). Non-2xx responses become *models.APIError.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) authorize(req *http.Request) {
	if c.tokens == nil {
		return
	}
	if tok := c.tokens.AccessToken(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
}

func decodeError(resp *http.Response) error {
	var envelope models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error.Code == "" {
		return &models.APIError{
			Code:    "HTTP_ERROR",
			Message: fmt.Sprintf("request failed with status %d", resp.StatusCode),
		}
	}
	return &envelope.Error
}
