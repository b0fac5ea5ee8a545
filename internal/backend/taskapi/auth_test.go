package taskapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tdo/internal/config"
)

func authConfig(url string) *config.Config {
	return &config.Config{APIURL: url, Timeout: 2 * time.Second}
}

func TestLogin_TokenSpellings(t *testing.T) {
	bodies := []string{
		`{"token":"abc123"}`,
		`{"access_token":"abc123"}`,
		`{"accessToken":"abc123"}`,
		`{"AccessToken":"abc123"}`,
		`{"data":{"token":"abc123"}}`,
	}

	for _, body := range bodies {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/auth/login" {
				t.Errorf("expected /auth/login, got %s", r.URL.Path)
			}
			w.Write([]byte(body))
		}))

		res := Login(context.Background(), authConfig(server.URL), "a@b.c", "pw")
		server.Close()

		if !res.OK || res.Token != "abc123" {
			t.Errorf("body %s: expected token abc123, got %+v", body, res)
		}
	}
}

func TestLogin_SendsCredentials(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		w.Write([]byte(`{"token":"abc123"}`))
	}))
	defer server.Close()

	Login(context.Background(), authConfig(server.URL), "a@b.c", "secret")

	if got["email"] != "a@b.c" || got["password"] != "secret" {
		t.Errorf("unexpected credentials payload: %v", got)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid email or password"}`))
	}))
	defer server.Close()

	res := Login(context.Background(), authConfig(server.URL), "a@b.c", "wrong")
	if res.OK {
		t.Fatal("expected failure")
	}
	if res.Status != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", res.Status)
	}
	if res.Message != "invalid email or password" {
		t.Errorf("expected server message, got %q", res.Message)
	}
}

func TestLogin_MessageFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	res := Login(context.Background(), authConfig(server.URL), "a@b.c", "wrong")
	if res.OK || res.Message != "authentication failed" {
		t.Errorf("expected fallback message, got %+v", res)
	}
}

func TestLogin_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	res := Login(context.Background(), authConfig(url), "a@b.c", "pw")
	if res.OK {
		t.Fatal("expected failure")
	}
	if res.Status != 0 {
		t.Errorf("expected status sentinel 0, got %d", res.Status)
	}
	if res.Message != "network error, please try again" {
		t.Errorf("unexpected message: %q", res.Message)
	}
}

func TestLogin_SuccessWithoutToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"user":{"id":"u1"}}`))
	}))
	defer server.Close()

	res := Login(context.Background(), authConfig(server.URL), "a@b.c", "pw")
	if res.OK {
		t.Fatal("a 2xx without a token must not count as success")
	}
	if res.Message != "invalid server response" {
		t.Errorf("unexpected message: %q", res.Message)
	}
}

func TestRegister_Paths(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"token":"abc123"}`))
	}))
	defer server.Close()

	res := Register(context.Background(), authConfig(server.URL), "a@b.c", "pw")
	if gotPath != "/auth/register" {
		t.Errorf("expected /auth/register, got %s", gotPath)
	}
	if !res.OK || res.Status != http.StatusCreated {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestRegister_TokenlessSuccess(t *testing.T) {
	// Some deployments create the account but require a separate login.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"user":{"id":"u1"}}`))
	}))
	defer server.Close()

	res := Register(context.Background(), authConfig(server.URL), "a@b.c", "pw")
	if res.OK {
		t.Fatal("expected OK=false without a token")
	}
	if res.Status != http.StatusCreated || res.Token != "" {
		t.Errorf("unexpected result: %+v", res)
	}
}
