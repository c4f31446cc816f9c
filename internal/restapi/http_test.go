package restapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ferreteria.lasu.pe/internal/app"
	"ferreteria.lasu.pe/internal/auth"
	"ferreteria.lasu.pe/internal/dataset"
	"ferreteria.lasu.pe/internal/logging"
	"ferreteria.lasu.pe/internal/models"
)

// createTestApp creates an Application with the dataset manager loaded
// from the shared fixtures, for use in handler tests.
func createTestApp(t *testing.T) *app.Application {
	t.Helper()

	logger := logging.NewStructuredLogger(io.Discard, slog.LevelError)
	manager, err := dataset.InitManager(filepath.Join("..", "..", "testdata"), filepath.Join("..", "..", "testdata", "catalog.yaml"), logger)
	require.NoError(t, err)

	return &app.Application{
		Config:   app.Config{Env: "test"},
		Logger:   logger,
		Manager:  manager,
		Sessions: auth.NewRegistry(),
	}
}

// serveTestAPI starts a test server for a fresh application and logs in as
// the fixture admin user, returning the server and the session token.
func serveTestAPI(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	application := createTestApp(t)
	server := httptest.NewServer(NewRestAPI(application).Routes())
	t.Cleanup(server.Close)

	resp := postJSON(t, server, "/api/ferreteria/login", "", map[string]any{
		"nombreUsu":     "admin",
		"contrasenaUsu": "123",
	})
	defer resp.Body.Close() // nolint:errcheck
	require.Equal(t, http.StatusOK, resp.StatusCode)

	model := decodeModel(t, resp)
	entry := entryOf(t, model)
	token, ok := entry["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	return server, token
}

func doJSON(t *testing.T, server *httptest.Server, method, endpoint, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, server.URL+endpoint, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, server *httptest.Server, endpoint, token string) *http.Response {
	return doJSON(t, server, http.MethodGet, endpoint, token, nil)
}

func postJSON(t *testing.T, server *httptest.Server, endpoint, token string, body any) *http.Response {
	return doJSON(t, server, http.MethodPost, endpoint, token, body)
}

func putJSON(t *testing.T, server *httptest.Server, endpoint, token string, body any) *http.Response {
	return doJSON(t, server, http.MethodPut, endpoint, token, body)
}

func decodeModel(t *testing.T, resp *http.Response) models.ResponseModel {
	t.Helper()
	var model models.ResponseModel
	err := json.NewDecoder(resp.Body).Decode(&model)
	require.NoError(t, err)
	return model
}

func entryOf(t *testing.T, model models.ResponseModel) map[string]any {
	t.Helper()
	data, ok := model.Data.(map[string]any)
	require.True(t, ok)
	entry, ok := data["entry"].(map[string]any)
	require.True(t, ok)
	return entry
}

func listOf(t *testing.T, model models.ResponseModel) (map[string]any, []any) {
	t.Helper()
	data, ok := model.Data.(map[string]any)
	require.True(t, ok)
	list, ok := data["list"].([]any)
	require.True(t, ok)
	return data, list
}
