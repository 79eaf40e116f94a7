package ui

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmicmystery/cosmicsite/internal/site"
	"github.com/cosmicmystery/cosmicsite/internal/starfield"
	"github.com/cosmicmystery/cosmicsite/internal/testutil"
)

func newTestServer(t *testing.T, cfg Config) *Server {
	t.Helper()
	s, err := site.New(site.Options{ContactForm: true})
	require.NoError(t, err)
	cfg.Site = s
	cfg.SessionSecret = "test-secret-key-32-bytes-long!!"
	cfg.Logger = testutil.NewTestLogger(t)
	cfg.Stars = starfield.NewSeededGenerator(1, 2)
	return NewServer(cfg)
}

func TestServer_Handler(t *testing.T) {
	srv := newTestServer(t, Config{})
	h, err := srv.Handler()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}

func TestServer_HandlerDevRoutes(t *testing.T) {
	prod := newTestServer(t, Config{})
	dev := newTestServer(t, Config{Dev: true})
	assert.False(t, prod.IsDev())
	assert.True(t, dev.IsDev())

	for _, tt := range []struct {
		srv  *Server
		want int
	}{
		{prod, http.StatusNotFound},
		{dev, http.StatusOK},
	} {
		h, err := tt.srv.Handler()
		require.NoError(t, err)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/hotreload", nil))
		assert.Equal(t, tt.want, rec.Code)
	}
}

func TestServer_ServeAndShutdown(t *testing.T) {
	srv := newTestServer(t, Config{Host: "127.0.0.1", Port: 0})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ctx) }()

	require.Eventually(t, func() bool { return srv.Addr() != nil }, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + srv.Addr().String() + "/healthz")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_ServeListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	srv := newTestServer(t, Config{Host: "127.0.0.1", Port: busy.Addr().(*net.TCPAddr).Port})
	err = srv.Serve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func TestServer_WatchBroadcastsOnAssetChange(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o750))
	srv := newTestServer(t, Config{Watch: true, WatchDir: dir})

	updates, unsubscribe := srv.Notifier().Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.watchFiles(ctx) }()

	target := filepath.Join(dir, "css", "site.css")
	require.Eventually(t, func() bool {
		_ = os.WriteFile(target, []byte("body{}"), 0o600)
		select {
		case <-updates:
			return true
		default:
			return false
		}
	}, 5*time.Second, 200*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestServer_WatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	srv := newTestServer(t, Config{Watch: true, WatchDir: dir})

	updates, unsubscribe := srv.Notifier().Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.watchFiles(ctx) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	select {
	case <-updates:
		t.Error("unexpected reload for a non-asset file")
	case <-time.After(300 * time.Millisecond):
	}

	cancel()
	assert.NoError(t, <-done)
}
