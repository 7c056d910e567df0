package mockapi

import (
	"encoding/json"
	"net/http"
)

// Options 是一次請求的內容，對應 fetch 的 init 參數。
// Adapter 只會讀取 Options，不會修改它。
type Options struct {
	Method  string      // 預設 GET
	Body    string      // 序列化後的 JSON
	Headers http.Header // 目前不影響路由，保留給呼叫端
}

// Result 是 store 操作宣告的狀態碼與資料
type Result struct {
	Status int
	Data   any
}

// ErrorPayload 是所有錯誤回應的資料格式
type ErrorPayload struct {
	Error string `json:"error"`
}

// Response 是與 fetch Response 相容的回應封裝，建立後即不可變
type Response struct {
	status int
	body   []byte
}

func newResponse(status int, data any) *Response {
	body, err := json.Marshal(data)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorPayload{Error: err.Error()})
	}
	return &Response{status: status, body: body}
}

func errorResponse(status int, msg string) *Response {
	return newResponse(status, ErrorPayload{Error: msg})
}

// OK 當狀態碼介於 [200, 300) 時為 true
func (r *Response) OK() bool {
	return r.status >= 200 && r.status < 300
}

// Status 回傳狀態碼
func (r *Response) Status() int {
	return r.status
}

// JSON 將資料反序列化到 v
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.body, v)
}

// Payload 將資料反序列化為通用結構 (map / slice / 純量)
func (r *Response) Payload() (any, error) {
	var v any
	if err := r.JSON(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Text 回傳序列化後的資料
func (r *Response) Text() string {
	return string(r.body)
}

// Bytes 回傳序列化後資料的拷貝
func (r *Response) Bytes() []byte {
	return append([]byte(nil), r.body...)
}
