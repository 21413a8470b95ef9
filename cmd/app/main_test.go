package main

import (
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWebServer_ReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	done := make(chan error, 1)
	go func() {
		done <- runWebServer(context.Background(), e, busy.Addr().String(), slog.Default())
	}()

	select {
	case err = <-done:
		require.Error(t, err)
		assert.ErrorContains(t, err, "web server failed")
	case <-time.After(5 * time.Second):
		t.Fatal("runWebServer did not return after the listener failed")
	}
}

func TestRunWebServer_StopsOnCancel(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runWebServer(ctx, e, "127.0.0.1:0", slog.Default())
	}()

	require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 5*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("runWebServer did not return after cancellation")
	}
}
