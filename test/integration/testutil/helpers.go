//go:build integration

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/focusquest/platform/internal/auth"
	"github.com/google/uuid"
)

// RegisterPlayer creates a new player and returns the auth token and player ID.
func (env *TestEnv) RegisterPlayer(email, password string) (token string, playerID uuid.UUID) {
	env.t.Helper()

	resp := env.POST("/auth/register", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		env.t.Fatalf("RegisterPlayer: expected 201, got %d", resp.StatusCode)
	}

	var result struct {
		Token    string    `json:"token"`
		PlayerID uuid.UUID `json:"player_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		env.t.Fatalf("RegisterPlayer: decode: %v", err)
	}
	return result.Token, result.PlayerID
}

// LoginPlayer authenticates an existing player and returns the auth token.
func (env *TestEnv) LoginPlayer(email, password string) string {
	env.t.Helper()

	resp := env.POST("/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		env.t.Fatalf("LoginPlayer: expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		env.t.Fatalf("LoginPlayer: decode: %v", err)
	}
	return result.Token
}

// AdminToken mints a signed admin-realm token with the given role.
func (env *TestEnv) AdminToken(role string) string {
	env.t.Helper()

	token, err := env.JWTMgr.GenerateToken(auth.RealmAdmin, uuid.New(), "admin@test.com", role)
	if err != nil {
		env.t.Fatalf("AdminToken: %v", err)
	}
	return token
}

// GET issues an unauthenticated GET request.
func (env *TestEnv) GET(path string) *http.Response {
	env.t.Helper()
	resp, err := http.Get(env.Server.URL + path)
	if err != nil {
		env.t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

// POST issues a POST request with a JSON body and optional bearer token.
func (env *TestEnv) POST(path string, body interface{}, token string) *http.Response {
	env.t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		env.t.Fatalf("POST %s: marshal: %v", path, err)
	}

	req, err := http.NewRequest(http.MethodPost, env.Server.URL+path, bytes.NewReader(data))
	if err != nil {
		env.t.Fatalf("POST %s: %v", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		env.t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

// AuthGET issues a GET request with a bearer token.
func (env *TestEnv) AuthGET(path, token string) *http.Response {
	env.t.Helper()

	req, err := http.NewRequest(http.MethodGet, env.Server.URL+path, nil)
	if err != nil {
		env.t.Fatalf("GET %s: %v", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		env.t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

// PostEvent sends one game event for the authenticated player and decodes
// the outcome. A fresh idempotency key is used per call.
func (env *TestEnv) PostEvent(token string, body map[string]interface{}) map[string]interface{} {
	env.t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		env.t.Fatalf("PostEvent: marshal: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, env.Server.URL+"/game/events", bytes.NewReader(data))
	if err != nil {
		env.t.Fatalf("PostEvent: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Idempotency-Key", uuid.New().String())

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		env.t.Fatalf("PostEvent: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		env.t.Fatalf("PostEvent: expected 200, got %d", resp.StatusCode)
	}

	var outcome map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&outcome); err != nil {
		env.t.Fatalf("PostEvent: decode: %v", err)
	}
	return outcome
}
