// Package client talks to the user registration HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/atinyakov/userkeeper/internal/models"
)

const usersPath = "/api/users"

// Client is an HTTP client for the user API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for baseURL. A nil httpClient gets a 10s timeout client.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// Register creates a new user. Server responses are translated back into
// *models.LoginExistsError and *models.ConstraintViolationError.
func (c *Client) Register(ctx context.Context, newUser models.NewUser) (models.User, error) {
	b, err := json.Marshal(newUser)
	if err != nil {
		return models.User{}, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+usersPath, bytes.NewReader(b))
	if err != nil {
		return models.User{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return models.User{}, fmt.Errorf("register failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		return decodeUser(resp.Body)
	case http.StatusConflict:
		return models.User{}, &models.LoginExistsError{Login: newUser.Login}
	case http.StatusUnprocessableEntity:
		return models.User{}, &models.ConstraintViolationError{}
	default:
		return models.User{}, serverError(resp)
	}
}

// GetUser fetches a registered user. A 404 becomes *models.UserNotFoundError.
func (c *Client) GetUser(ctx context.Context, login string) (models.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+usersPath+"/"+url.PathEscape(login), nil)
	if err != nil {
		return models.User{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return models.User{}, fmt.Errorf("get user failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeUser(resp.Body)
	case http.StatusNotFound:
		return models.User{}, &models.UserNotFoundError{Login: login}
	default:
		return models.User{}, serverError(resp)
	}
}

func decodeUser(r io.Reader) (models.User, error) {
	var user models.User
	if err := json.NewDecoder(r).Decode(&user); err != nil {
		return models.User{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return user, nil
}

func serverError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("server error %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
}
