package internal

import (
	"agentcrm/internal/controllers"
	"agentcrm/internal/models"
	"agentcrm/internal/providers"
	"agentcrm/internal/services"
	"agentcrm/internal/storage"
	"agentcrm/internal/structures"
	"agentcrm/internal/testutil"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	*httptest.Server
	path string
}

func newTestServer(t *testing.T, conf *structures.Config) *testServer {
	t.Helper()
	if conf.Persistence.FilePath == "" {
		conf.Persistence.FilePath = filepath.Join(t.TempDir(), "data", "agent-crm.json")
	}
	logger := &testutil.MockLogger{}
	metrics := &testutil.MockMetrics{}

	comp, err := storage.NewCompressor(conf)
	require.NoError(t, err)
	fm := storage.NewFileManager(conf, comp, logger, metrics)
	t.Cleanup(fm.Close)

	svc := services.NewCrmService(fm, services.NewSystemClock())
	cache := providers.NewInstrumentedCacheProvider(conf, logger, metrics)
	api := controllers.NewApiController(logger, svc, cache, metrics)
	router := InitRoutes(api, controllers.NewHealthController())
	handler := NewHandler(router, conf, logger, metrics)

	app, err := NewApp(svc, handler, conf, logger, metrics)
	require.NoError(t, err)
	assert.Equal(t, 3, metrics.Records["contacts"])

	srv := httptest.NewServer(app.WebServer.Handler)
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, path: conf.Persistence.FilePath}
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestApp_EndToEnd(t *testing.T) {
	srv := newTestServer(t, &structures.Config{
		AppName: "test",
		Cache:   structures.CacheConfig{Enabled: true, Size: 1},
	})

	var health map[string]string
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/health", &health))
	assert.Equal(t, "ok", health["status"])

	var clients []models.Contact
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/clients", &clients))
	assert.Len(t, clients, 3)

	var summary models.DashboardSummary
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/summary", &summary))
	assert.Equal(t, 3, summary.TotalContacts)
	assert.Equal(t, 2, summary.OpenDeals)

	resp, err := http.Post(srv.URL+"/api/clients", "application/json", bytes.NewBufferString(`{"name":"Jane","email":"jane@x.io"}`))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created struct {
		Client models.Contact `json:"client"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "Discovery", created.Client.Stage)

	clients = nil
	getJSON(t, srv.URL+"/api/clients", &clients)
	require.Len(t, clients, 4)
	assert.Equal(t, created.Client.ID, clients[0].ID)

	summary = models.DashboardSummary{}
	getJSON(t, srv.URL+"/api/summary", &summary)
	assert.Equal(t, 4, summary.TotalContacts)

	var pipeline []models.PipelineStage
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/pipeline", &pipeline))
	require.Len(t, pipeline, 4)

	var deals []models.Deal
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/deals", &deals))
	assert.Len(t, deals, 3)

	data, err := os.ReadFile(srv.path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "jane@x.io")
}

func TestApp_RejectsInvalidClient(t *testing.T) {
	srv := newTestServer(t, &structures.Config{})

	resp, err := http.Post(srv.URL+"/api/clients", "application/json", bytes.NewBufferString(`{"name":"Jane"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Name and email are required", body["error"])
}

func TestApp_UnknownApiPathIs404(t *testing.T) {
	srv := newTestServer(t, &structures.Config{})

	var body map[string]string
	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/api/nope", &body))
	assert.Equal(t, "Not Found", body["error"])
}

func TestApp_ResetFlagRestoresSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"clients":[],"deals":[]}`), 0644))

	srv := newTestServer(t, &structures.Config{
		Reset:       true,
		Persistence: structures.Persistence{FilePath: path},
	})

	var clients []models.Contact
	getJSON(t, srv.URL+"/api/clients", &clients)
	assert.Len(t, clients, 3)
}

func TestApp_ServesStaticUI(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>dashboard</html>"), 0644))

	srv := newTestServer(t, &structures.Config{
		WebServer: structures.Server{StaticDir: dir},
	})

	resp, err := http.Get(srv.URL + "/pipeline")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "dashboard")
}
