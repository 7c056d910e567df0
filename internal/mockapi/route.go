package mockapi

import (
	"net/http"
	"strconv"
	"strings"
)

// Route 是 mock API 的端點列舉。
// 每一個值在 NewAdapter 時都必須綁定到一個 store 操作。
type Route int

const (
	RouteWalletBalance Route = iota
	RouteActiveCoupons
	RouteCouponHistory
	RouteUseCoupon
	RouteDeposit
	RouteTransactions
	RouteInvestments
	RouteInvest
	RouteProjects
	RouteProject

	routeCount
)

// Routes 回傳所有端點 (依宣告順序)
func Routes() []Route {
	out := make([]Route, 0, routeCount)
	for r := Route(0); r < routeCount; r++ {
		out = append(out, r)
	}
	return out
}

// routeSpec 描述端點的 method 與路徑樣板，"{id}" 代表一段十進位整數
type routeSpec struct {
	name    string
	method  string
	pattern []string
}

var routeSpecs = [routeCount]routeSpec{
	RouteWalletBalance: {"wallet_balance", http.MethodGet, split("/wallet/balance/{id}")},
	RouteActiveCoupons: {"active_coupons", http.MethodGet, split("/coupons/active/{id}")},
	RouteCouponHistory: {"coupon_history", http.MethodGet, split("/coupons/history/{id}")},
	RouteUseCoupon:     {"use_coupon", http.MethodPost, split("/coupons/use")},
	RouteDeposit:       {"deposit", http.MethodPost, split("/transactions/deposit")},
	RouteTransactions:  {"transactions", http.MethodGet, split("/transactions/{id}")},
	RouteInvestments:   {"investments", http.MethodGet, split("/investments/{id}")},
	RouteInvest:        {"invest", http.MethodPost, split("/investments")},
	RouteProjects:      {"projects", http.MethodGet, split("/projects")},
	RouteProject:       {"project", http.MethodGet, split("/projects/{id}")},
}

// String 回傳端點名稱 (同時作為 metrics label)
func (r Route) String() string {
	if r < 0 || r >= routeCount {
		return "unknown"
	}
	return routeSpecs[r].name
}

// Method 回傳端點接受的 HTTP method
func (r Route) Method() string {
	return routeSpecs[r].method
}

// Pattern 回傳端點的路徑樣板
func (r Route) Pattern() string {
	return "/" + strings.Join(routeSpecs[r].pattern, "/")
}

// Match 依 method 與路徑找出端點，並取出路徑中的 id。
// 路徑相符但 method 不符時同樣視為找不到。
//
// 參數:
//
//	method: string - HTTP method
//	path: string - 端點路徑 (可帶 query string，會被忽略)
//
// 回傳值:
//
//	Route: 找到的端點
//	int64: 路徑中的 id (無 id 的端點為 0)
//	bool: 是否找到
func Match(method, path string) (Route, int64, bool) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	segments := split(path)

	for r := Route(0); r < routeCount; r++ {
		spec := routeSpecs[r]
		if spec.method != method {
			continue
		}
		if id, ok := matchSegments(spec.pattern, segments); ok {
			return r, id, true
		}
	}
	return 0, 0, false
}

func matchSegments(pattern, segments []string) (int64, bool) {
	if len(pattern) != len(segments) {
		return 0, false
	}
	var id int64
	for i, p := range pattern {
		if p == "{id}" {
			v, err := strconv.ParseInt(segments[i], 10, 64)
			if err != nil {
				return 0, false
			}
			id = v
			continue
		}
		if p != segments[i] {
			return 0, false
		}
	}
	return id, true
}

func split(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
