package api

import (
	"context"
	"net/http"

	"lectura-cli/internal/models"
)

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*models.AuthTokens, error) {
	var out models.AuthTokens
	req := models.RefreshRequest{RefreshToken: refreshToken}
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/refresh", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil)
}

func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/user/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
