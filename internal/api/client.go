// Package api talks to the JSONPlaceholder-style REST endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/idilsaglam/todofeed/internal/model"
)

const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// ErrNoData means the server answered but sent nothing usable (empty body or JSON null).
var ErrNoData = errors.New("no data")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.Path, e.Code, http.StatusText(e.Code))
}

// Client issues plain GETs; there is no retry layer on top of net/http.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client. A zero timeout means requests never time out.
func New(baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

// Todos fetches the full todo collection.
func (c *Client) Todos(ctx context.Context) ([]model.Todo, error) {
	return getList[model.Todo](ctx, c, "/todos")
}

// Users fetches the full user collection, keeping only id and username.
func (c *Client) Users(ctx context.Context) ([]model.UserSummary, error) {
	return getList[model.UserSummary](ctx, c, "/users")
}

func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Path: path, Code: resp.StatusCode}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, fmt.Errorf("GET %s: %w", path, ErrNoData)
	}

	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	// "[]" decodes to an empty non-nil slice; only null leaves it nil.
	if items == nil {
		return nil, fmt.Errorf("GET %s: %w", path, ErrNoData)
	}
	return items, nil
}
