// Package taskapi implements the service.Service interface against the
// task REST API.
package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"

	"golang.org/x/oauth2"

	"tdo/internal/config"
	"tdo/internal/service"
)

// Client implements service.Service using the task REST API.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   *oauth2.Token
	log     *slog.Logger
}

// New creates a client from stored credentials.
// Fails with service.ErrNotAuthenticated if no token is stored.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	if !cfg.HasToken() {
		return nil, service.ErrNotAuthenticated
	}
	token, err := cfg.LoadToken()
	if err != nil {
		return nil, fmt.Errorf("failed to load token: %w", err)
	}
	return NewWithToken(ctx, cfg, token), nil
}

// NewWithToken creates a client with an explicit token (for login flows
// and tests). The token is attached as a bearer credential on every
// request.
func NewWithToken(ctx context.Context, cfg *config.Config, token *oauth2.Token) *Client {
	httpc := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	httpc.Timeout = cfg.Timeout
	return &Client{
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		httpc:   httpc,
		token:   token,
		log:     newLogger(cfg.Debug),
	}
}

func newLogger(debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// do issues one authenticated request and returns the status and body.
// A missing credential short-circuits before any network dispatch.
// Transport failures come back as *service.NetworkError; HTTP error
// statuses are the caller's to classify.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) (int, []byte, error) {
	if c.token == nil || c.token.AccessToken == "" {
		return 0, nil, service.ErrNotAuthenticated
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		body = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return 0, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("api request", "method", method, "url", u)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, nil, &service.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &service.NetworkError{Err: err}
	}

	c.log.Debug("api response", "method", method, "url", u, "status", resp.StatusCode, "bytes", len(data))

	return resp.StatusCode, data, nil
}

// apiError builds an APIError from a non-success response, extracting a
// server message when one is present.
func apiError(status int, body []byte, fallback string) error {
	return &service.APIError{
		StatusCode: status,
		Message:    extractMessage(body, fallback),
	}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
