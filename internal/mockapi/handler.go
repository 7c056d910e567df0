package mockapi

import (
	"io"
	"net/http"
)

// ServeHTTP 讓 Adapter 可以直接掛在 HTTP router 上。
// 呼叫端需先去除 API 前綴 (例如 http.StripPrefix)。
func (a *Adapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	endpoint := r.URL.Path
	if r.URL.RawQuery != "" {
		endpoint += "?" + r.URL.RawQuery
	}

	resp := a.Request(r.Context(), endpoint, Options{
		Method:  r.Method,
		Body:    string(data),
		Headers: r.Header,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status())
	_, _ = w.Write(resp.Bytes())
}
