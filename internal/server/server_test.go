package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fieldstonehq/fieldstone/internal/config"
	"github.com/fieldstonehq/fieldstone/internal/server"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type client struct {
	t     *testing.T
	base  string
	token string
}

func (c *client) do(method, path string, body any) (*http.Response, map[string]any) {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, c.base+path, &buf)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

func newTestServer(t *testing.T) *client {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, server.AutoMigrate(db))

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiryPeriod = time.Hour

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ts := httptest.NewServer(server.NewRouter(db, cfg, logger))
	t.Cleanup(ts.Close)

	return &client{t: t, base: ts.URL}
}

func TestAPIWorkflow(t *testing.T) {
	c := newTestServer(t)

	resp, _ := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = c.do(http.MethodGet, "/api/owners", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := c.do(http.MethodPost, "/api/auth/signup", map[string]any{
		"email":    "alice@example.com",
		"name":     "Alice",
		"password": "correct horse battery",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	c.token = body["token"].(string)
	require.NotEmpty(t, c.token)

	resp, body = c.do(http.MethodPost, "/api/owners", map[string]any{"name": "Alice Holdings"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	ownerID := body["id"].(string)

	resp, body = c.do(http.MethodPost, "/api/owners/"+ownerID+"/offices", map[string]any{
		"name":     "Main Street",
		"number":   7,
		"address":  "1 Main St",
		"city":     "Springfield",
		"state":    "IL",
		"zip_code": "62701",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	officeID := body["id"].(string)
	assert.Equal(t, ownerID, body["primary_owner_id"].(string))

	resp, body = c.do(http.MethodPost, "/api/offices/"+officeID+"/reports", map[string]any{
		"content":  "walked the property",
		"vibe":     8,
		"calltype": "fov",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "fov", body["calltype"].(string))

	resp, body = c.do(http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	today := body["today"].(map[string]any)
	assert.EqualValues(t, 1, today["total"])
	assert.EqualValues(t, 1, today["field_visits"])

	t.Run("activity matrix needs a bound to show the table", func(t *testing.T) {
		resp, body := c.do(http.MethodGet, "/api/activity", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, false, body["show_table"])

		resp, body = c.do(http.MethodGet, "/api/activity?start_date=2000-01-01", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["show_table"])
		assert.EqualValues(t, 1, body["grand_total"])

		resp, _ = c.do(http.MethodGet, "/api/activity?start_date=bogus", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("validation errors map to 400 with fields", func(t *testing.T) {
		resp, body := c.do(http.MethodPost, "/api/owners", map[string]any{"email": "not-an-email"})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		fields := body["fields"].(map[string]any)
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "email")
	})

	t.Run("another user sees nothing", func(t *testing.T) {
		other := &client{t: t, base: c.base}
		resp, body := other.do(http.MethodPost, "/api/auth/signup", map[string]any{
			"email":    "bob@example.com",
			"name":     "Bob",
			"password": "another password",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		other.token = body["token"].(string)

		resp, _ = other.do(http.MethodGet, "/api/owners/"+ownerID, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
