package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-wallet-mockapi/internal/core/domain"
	wssEvents "github.com/JoeShih716/go-wallet-mockapi/internal/infrastructure/events/wss"
	"github.com/JoeShih716/go-wallet-mockapi/internal/infrastructure/store/memory"
	"github.com/JoeShih716/go-wallet-mockapi/internal/mockapi"
	"github.com/JoeShih716/go-wallet-mockapi/pkg/wss"
)

type fixture struct {
	srv    *httptest.Server
	events *wss.Server
}

func newFixture(t *testing.T, origins []string) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	events := wss.NewServer(ctx, &wss.Config{}, logger)
	store := memory.NewStore(memory.DefaultSeed(time.Now()),
		memory.WithPublisher(wssEvents.NewPublisher(events)),
		memory.WithLogger(logger),
	)
	reg := prometheus.NewRegistry()
	adapter := mockapi.NewAdapter(store, mockapi.NewMetrics(reg), logger)

	s := New(Config{Prefix: "/api/", EventsPath: "/events", AllowedOrigins: origins}, adapter, events, reg, logger)
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return &fixture{srv: srv, events: events}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func TestServer_Healthz(t *testing.T) {
	f := newFixture(t, nil)

	resp, err := http.Get(f.srv.URL + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, readBody(t, resp))
}

func TestServer_MockAPI(t *testing.T) {
	f := newFixture(t, nil)

	t.Run("Wallet balance", func(t *testing.T) {
		resp, err := http.Get(f.srv.URL + "/api/wallet/balance/1")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var wallet domain.Wallet
		require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &wallet))
		assert.Equal(t, int64(1), wallet.UserID)
		assert.Equal(t, "50000", wallet.Balance.String())
	})

	t.Run("Invest returns 201", func(t *testing.T) {
		resp, err := http.Post(f.srv.URL+"/api/investments", "application/json",
			strings.NewReader(`{"userId":1,"projectId":1,"amount":"1000"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("Unknown endpoint", func(t *testing.T) {
		resp, err := http.Get(f.srv.URL + "/api/unknown")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `{"error":"Endpoint not found"}`, readBody(t, resp))
	})

	t.Run("Outside prefix", func(t *testing.T) {
		resp, err := http.Get(f.srv.URL + "/wallet/balance/1")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestServer_Metrics(t *testing.T) {
	f := newFixture(t, nil)

	resp, err := http.Get(f.srv.URL + "/api/projects")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(f.srv.URL + "/metrics")
	require.NoError(t, err)
	body := readBody(t, resp)
	assert.Contains(t, body, `mockapi_requests_total{route="projects",status="200"} 1`)
}

func TestServer_CORS(t *testing.T) {
	f := newFixture(t, []string{"http://localhost:3000"})

	req, err := http.NewRequest(http.MethodGet, f.srv.URL+"/api/projects", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "http://evil.example")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_EventFeed(t *testing.T) {
	f := newFixture(t, nil)

	wsURL := "ws" + strings.TrimPrefix(f.srv.URL, "http") + "/events"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	assert.Eventually(t, func() bool { return f.events.Count() == 1 }, time.Second, 10*time.Millisecond)

	resp, err := http.Post(f.srv.URL+"/api/transactions/deposit", "application/json",
		strings.NewReader(`{"userId":2,"amount":"500","method":"card"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var event domain.Event
	require.NoError(t, json.Unmarshal(msg, &event))
	assert.Equal(t, domain.EventDeposited, event.Type)
	assert.Equal(t, int64(2), event.UserID)
}
