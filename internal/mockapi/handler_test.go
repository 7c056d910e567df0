package mockapi_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdapter_ServeHTTP(t *testing.T) {
	adapter := newSeededAdapter()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/coupons/use", strings.NewReader(`{"couponId":1,"userId":1}`))
	adapter.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"success":true`)

	rec = httptest.NewRecorder()
	adapter.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
