package bootstrap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestServerApp_ServesAndStopsOnCancel(t *testing.T) {
	addr := freeAddr(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})

	var cleaned bool
	app := NewServerApp("test", addr, handler, logger).OnShutdown(func(context.Context) error {
		cleaned = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body) == "ok"
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, cleaned)
}

func TestServerApp_ReportsCleanupError(t *testing.T) {
	addr := freeAddr(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	boom := errors.New("flush failed")
	app := NewServerApp("test", addr, http.NotFoundHandler(), logger).
		OnShutdown(func(context.Context) error { return boom })

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := app.Run(ctx)
	require.ErrorIs(t, err, boom)
}

func TestServerApp_CloseRunsCleanupsOnce(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	var order []string
	app := NewServerApp("test", freeAddr(t), http.NotFoundHandler(), logger).
		OnShutdown(func(context.Context) error { order = append(order, "telemetry"); return nil }).
		OnShutdown(func(context.Context) error { order = append(order, "store"); return nil })

	require.NoError(t, app.Close())
	require.NoError(t, app.Close())

	assert.Equal(t, []string{"telemetry", "store"}, order)
}

func TestServerApp_CloseAfterRunIsNoop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	calls := 0
	app := NewServerApp("test", freeAddr(t), http.NotFoundHandler(), logger).
		OnShutdown(func(context.Context) error { calls++; return nil })

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.NoError(t, app.Run(ctx))
	require.NoError(t, app.Close())

	assert.Equal(t, 1, calls)
}
