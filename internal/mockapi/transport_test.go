package mockapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-wallet-mockapi/internal/core/domain"
	"github.com/JoeShih716/go-wallet-mockapi/internal/mockapi"
)

func TestTransport_InterceptsPrefix(t *testing.T) {
	var upstreamHits atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamHits.Add(1)
		w.WriteHeader(http.StatusTeapot)
		_, _ = io.WriteString(w, "upstream:"+r.URL.Path)
	}))
	defer upstream.Close()

	client := mockapi.NewClient(newSeededAdapter(), "/api", nil)

	t.Run("Prefixed GET served by adapter", func(t *testing.T) {
		resp, err := client.Get(upstream.URL + "/api/projects")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		var projects []domain.Project
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&projects))
		assert.Len(t, projects, 4)
	})

	t.Run("Prefixed POST body reaches the store", func(t *testing.T) {
		body, _ := json.Marshal(map[string]int{"couponId": 2, "userId": 1})
		resp, err := client.Post(upstream.URL+"/api/coupons/use", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Unknown prefixed path is 404 from adapter", func(t *testing.T) {
		resp, err := client.Get(upstream.URL + "/api/nonexistent")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		data, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"error":"Endpoint not found"}`, string(data))
	})

	assert.Equal(t, int32(0), upstreamHits.Load())

	t.Run("Other paths fall through", func(t *testing.T) {
		for _, path := range []string{"/index.html", "/apix/projects"} {
			resp, err := client.Get(upstream.URL + path)
			require.NoError(t, err)
			data, _ := io.ReadAll(resp.Body)
			resp.Body.Close()

			assert.Equal(t, http.StatusTeapot, resp.StatusCode)
			assert.Equal(t, "upstream:"+path, string(data))
		}
		assert.Equal(t, int32(2), upstreamHits.Load())
	})
}

func TestTransport_DefaultPrefix(t *testing.T) {
	transport := &mockapi.Transport{Adapter: newSeededAdapter()}
	req := httptest.NewRequest(http.MethodGet, "http://localhost/api/wallet/balance/1", nil)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.Contains(string(data), `"userId":1`))
}
