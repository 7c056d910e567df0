package wss_test

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-wallet-mockapi/pkg/wss"
)

func TestServer_Broadcast(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := wss.NewServer(ctx, &wss.Config{}, slog.Default())
	ts := httptest.NewServer(server)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return server.Count() == 1 }, time.Second, 10*time.Millisecond)

	server.Broadcast([]byte(`{"type":"coupon.used"}`))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"coupon.used"}`, string(msg))

	conn.Close()
	assert.Eventually(t, func() bool { return server.Count() == 0 }, time.Second, 10*time.Millisecond)
}

func TestServer_RejectsForeignOrigin(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := wss.NewServer(ctx, &wss.Config{AllowedOrigins: []string{"http://localhost:8080"}}, slog.Default())
	ts := httptest.NewServer(server)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	header := map[string][]string{"Origin": {"http://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	assert.Error(t, err)
	if resp != nil {
		assert.Equal(t, 403, resp.StatusCode)
	}
}

func TestServer_UpgradeAfterShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	server := wss.NewServer(ctx, &wss.Config{}, slog.Default())
	ts := httptest.NewServer(server)
	defer ts.Close()
	cancel()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// 伺服器應直接關閉連線，而不是讓 handler 卡住
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	require.Error(t, err)
	var netErr net.Error
	assert.False(t, errors.As(err, &netErr) && netErr.Timeout(), "connection was left open: %v", err)
	assert.Eventually(t, func() bool { return server.Count() == 0 }, time.Second, 10*time.Millisecond)
}
