package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"tdo/internal/config"
)

// AuthResult is the structured outcome of a login or register call.
// Expected failures (bad credentials, validation, transport) are results,
// not errors: callers branch on OK instead of unwrapping. A transport
// failure sets the status sentinel 0.
type AuthResult struct {
	OK      bool
	Status  int
	Token   string
	Message string
}

// Login posts credentials and extracts the bearer token from whichever
// field spelling the server used.
func Login(ctx context.Context, cfg *config.Config, email, password string) AuthResult {
	return authPost(ctx, cfg, "/auth/login", email, password)
}

// Register creates an account. The response shape matches login.
func Register(ctx context.Context, cfg *config.Config, email, password string) AuthResult {
	return authPost(ctx, cfg, "/auth/register", email, password)
}

func authPost(ctx context.Context, cfg *config.Config, path, email, password string) AuthResult {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return AuthResult{Message: err.Error()}
	}

	u := strings.TrimRight(cfg.APIURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return AuthResult{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	httpc := &http.Client{Timeout: cfg.Timeout}
	resp, err := httpc.Do(req)
	if err != nil {
		return AuthResult{Status: 0, Message: "network error, please try again"}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return AuthResult{Status: 0, Message: "network error, please try again"}
	}

	res := AuthResult{Status: resp.StatusCode}
	if isSuccess(resp.StatusCode) {
		token := extractToken(body)
		if token == "" {
			res.Message = "invalid server response"
			return res
		}
		res.OK = true
		res.Token = token
		return res
	}

	res.Message = extractMessage(body, "authentication failed")
	return res
}
