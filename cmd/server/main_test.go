package main

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/dataincloud/resource-api/internal/config"
	"github.com/dataincloud/resource-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Server: config.ServerConfig{
			Port:            8080,
			LogLevel:        "debug",
			ShutdownTimeout: 5 * time.Second,
		},
		Database: config.DatabaseConfig{
			Driver:       config.DriverSQLite,
			URL:          filepath.Join(dir, "resources.db"),
			MaxOpenConns: 1,
		},
		Documents: config.DocumentsConfig{
			Path:        filepath.Join(dir, "profiles.db"),
			OpenTimeout: time.Second,
		},
	}
}

func newTestApplication(t *testing.T) *application {
	t.Helper()
	logger, _ := testutils.NewTestLogger()
	app, err := newApplication(context.Background(), sqliteConfig(t), logger)
	require.NoError(t, err)
	t.Cleanup(app.cleanup)
	return app
}

func TestRootCommand(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "migrate"}, names)

	migrate, _, err := root.Find([]string{"migrate"})
	require.NoError(t, err)
	subs := make([]string, 0)
	for _, c := range migrate.Commands() {
		subs = append(subs, c.Name())
	}
	assert.ElementsMatch(t, []string{"up", "down", "status", "version"}, subs)
}

func TestMigrateCommand_SQLite(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATAINCLOUD_DATABASE_DRIVER", "sqlite")
	t.Setenv("DATAINCLOUD_DATABASE_URL", filepath.Join(dir, "resources.db"))
	t.Setenv("DATAINCLOUD_DOCUMENTS_PATH", filepath.Join(dir, "profiles.db"))

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"migrate", "up"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "nothing to do")
}

func TestMigrateCommand_InvalidConfig(t *testing.T) {
	t.Setenv("DATAINCLOUD_DATABASE_DRIVER", "mysql")
	t.Setenv("DATAINCLOUD_DATABASE_URL", "whatever")

	root := newRootCmd()
	root.SetArgs([]string{"migrate", "status"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestNewApplication_UnsupportedDriver(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Database.Driver = "mysql"

	logger, _ := testutils.NewTestLogger()
	_, err := newApplication(context.Background(), cfg, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestApplicationRouter(t *testing.T) {
	app := newTestApplication(t)
	server := testutils.CreateTestServer(t, app.router())

	resp := testutils.DoJSON(t, server, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = testutils.DoJSON(t, server, http.MethodPost, "/users", testutils.CreateUserRequest())
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = testutils.DoJSON(t, server, http.MethodPut, "/profiles", `{"userId":1,"tags":["SHOP"]}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestServe_GracefulShutdown(t *testing.T) {
	app := newTestApplication(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, ln) }()

	url := fmt.Sprintf("http://%s/health", ln.Addr().String())
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer func() { _ = resp.Body.Close() }()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestCleanupIsIdempotent(t *testing.T) {
	app := newTestApplication(t)
	app.cleanup()
	app.cleanup()
	assert.Empty(t, app.closers)
}
