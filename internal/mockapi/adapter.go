package mockapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/JoeShih716/go-wallet-mockapi/internal/core/ports"
)

// NotFoundMessage 是找不到端點時的錯誤訊息
const NotFoundMessage = "Endpoint not found"

// Adapter 以 fetch 的請求/回應形式包裝 BackingStore，
// 讓呼叫端可以當作在呼叫真正的後端。
// Adapter 不會把錯誤或 panic 往外拋: 一律轉成 Response。
type Adapter struct {
	handlers [routeCount]handlerFunc
	metrics  *Metrics
	logger   *slog.Logger
}

// NewAdapter 建立 Adapter 並一次解析所有端點的綁定
//
// 參數:
//
//	store: ports.BackingStore - 資料來源
//	metrics: *Metrics - 可為 nil
//	logger: *slog.Logger - 日誌
//
// 回傳值:
//
//	*Adapter: 初始化後的 Adapter
func NewAdapter(store ports.BackingStore, metrics *Metrics, logger *slog.Logger) *Adapter {
	a := &Adapter{
		metrics: metrics,
		logger:  logger.With("component", "mockapi"),
	}
	for _, r := range Routes() {
		h := bind(store, r)
		if h == nil {
			panic(fmt.Sprintf("mockapi: route %d (%s) has no store binding", r, r))
		}
		a.handlers[r] = h
	}
	return a
}

// Request 執行一次請求。
// 1. 若有 Body 先解析 JSON，失敗回 500
// 2. 找不到端點回 404 {error: "Endpoint not found"}
// 3. store 操作回傳錯誤或 panic 回 500 {error: message}
// 4. 其餘以 store 操作宣告的狀態碼與資料回應
func (a *Adapter) Request(ctx context.Context, endpoint string, opts Options) (resp *Response) {
	start := time.Now()
	method := strings.ToUpper(opts.Method)
	if method == "" {
		method = http.MethodGet
	}
	label := "unmatched"

	defer func() {
		if rec := recover(); rec != nil {
			a.logger.Error("Store operation panicked", "endpoint", endpoint, "panic", rec)
			resp = errorResponse(http.StatusInternalServerError, fmt.Sprint(rec))
		}
		a.metrics.observe(label, resp.Status(), time.Since(start))
		a.logger.Debug("Mock API request", "method", method, "endpoint", endpoint, "status", resp.Status())
	}()

	var body json.RawMessage
	if opts.Body != "" {
		var probe any
		if err := json.Unmarshal([]byte(opts.Body), &probe); err != nil {
			a.logger.Warn("Malformed request body", "endpoint", endpoint, "error", err)
			return errorResponse(http.StatusInternalServerError, err.Error())
		}
		body = json.RawMessage(opts.Body)
	}

	route, id, ok := Match(method, endpoint)
	if !ok {
		return errorResponse(http.StatusNotFound, NotFoundMessage)
	}
	label = route.String()

	result, err := a.handlers[route](ctx, call{id: id, body: body})
	if err != nil {
		a.logger.Warn("Store operation failed", "route", label, "endpoint", endpoint, "error", err)
		return errorResponse(http.StatusInternalServerError, err.Error())
	}
	return newResponse(result.Status, result.Data)
}

// Get 發送 GET 請求
func (a *Adapter) Get(ctx context.Context, endpoint string) *Response {
	return a.Request(ctx, endpoint, Options{Method: http.MethodGet})
}

// Post 將 data 序列化後發送 POST 請求
func (a *Adapter) Post(ctx context.Context, endpoint string, data any) *Response {
	return a.withBody(ctx, http.MethodPost, endpoint, data)
}

// Put 將 data 序列化後發送 PUT 請求
func (a *Adapter) Put(ctx context.Context, endpoint string, data any) *Response {
	return a.withBody(ctx, http.MethodPut, endpoint, data)
}

// Delete 發送 DELETE 請求
func (a *Adapter) Delete(ctx context.Context, endpoint string) *Response {
	return a.Request(ctx, endpoint, Options{Method: http.MethodDelete})
}

func (a *Adapter) withBody(ctx context.Context, method, endpoint string, data any) *Response {
	body, err := json.Marshal(data)
	if err != nil {
		return errorResponse(http.StatusInternalServerError, err.Error())
	}
	return a.Request(ctx, endpoint, Options{
		Method:  method,
		Body:    string(body),
		Headers: http.Header{"Content-Type": []string{"application/json"}},
	})
}
