package mockapi

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// DefaultPrefix 是被攔截的 API 路徑前綴
const DefaultPrefix = "/api"

// Transport 是 http.RoundTripper: 路徑以 Prefix 開頭的請求交給 Adapter，
// 其他請求原封不動交給 Base。用來注入到 http.Client，取代覆寫全域 fetch 的做法。
type Transport struct {
	Adapter *Adapter
	Prefix  string
	Base    http.RoundTripper
}

var _ http.RoundTripper = (*Transport)(nil)

// NewClient 回傳使用 Transport 的 http.Client
//
// 參數:
//
//	adapter: *Adapter - 處理被攔截請求的 Adapter
//	prefix: string - API 路徑前綴，空字串代表 DefaultPrefix
//	base: http.RoundTripper - 其他請求的傳輸層，nil 代表 http.DefaultTransport
func NewClient(adapter *Adapter, prefix string, base http.RoundTripper) *http.Client {
	return &http.Client{Transport: &Transport{Adapter: adapter, Prefix: prefix, Base: base}}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	prefix := t.prefix()
	path := req.URL.Path
	if !hasPathPrefix(path, prefix) {
		return t.base().RoundTrip(req)
	}

	var body string
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("mockapi: read request body: %w", err)
		}
		body = string(data)
	}

	endpoint := strings.TrimPrefix(path, prefix)
	if req.URL.RawQuery != "" {
		endpoint += "?" + req.URL.RawQuery
	}

	resp := t.Adapter.Request(req.Context(), endpoint, Options{
		Method:  req.Method,
		Body:    body,
		Headers: req.Header.Clone(),
	})
	return toHTTPResponse(req, resp), nil
}

func (t *Transport) prefix() string {
	if t.Prefix == "" {
		return DefaultPrefix
	}
	return strings.TrimSuffix(t.Prefix, "/")
}

func (t *Transport) base() http.RoundTripper {
	if t.Base == nil {
		return http.DefaultTransport
	}
	return t.Base
}

// hasPathPrefix 只在完整路徑段相符時成立 ("/api" 不會攔截 "/apix")
func hasPathPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	return len(path) == len(prefix) || path[len(prefix)] == '/'
}

func toHTTPResponse(req *http.Request, resp *Response) *http.Response {
	body := resp.Bytes()
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("Content-Length", strconv.Itoa(len(body)))

	return &http.Response{
		Status:        fmt.Sprintf("%d %s", resp.Status(), http.StatusText(resp.Status())),
		StatusCode:    resp.Status(),
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(body)),
		ContentLength: int64(len(body)),
		Request:       req,
	}
}
