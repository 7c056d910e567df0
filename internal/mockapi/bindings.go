package mockapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/JoeShih716/go-wallet-mockapi/internal/core/domain"
	"github.com/JoeShih716/go-wallet-mockapi/internal/core/ports"
)

// call 是單次請求交給 store 操作的參數
type call struct {
	id   int64           // 路徑中的 id
	body json.RawMessage // 已驗證過的 JSON (可能為空)
}

// handlerFunc 是綁定到端點的 store 操作
type handlerFunc func(ctx context.Context, c call) (Result, error)

// bind 回傳端點對應的 store 操作。
// 新增 Route 時若忘記在這裡綁定，NewAdapter 會 panic。
func bind(store ports.BackingStore, r Route) handlerFunc {
	switch r {
	case RouteWalletBalance:
		return func(ctx context.Context, c call) (Result, error) {
			return lookup(store.Wallet(ctx, c.id))
		}
	case RouteActiveCoupons:
		return func(ctx context.Context, c call) (Result, error) {
			return list(store.ActiveCoupons(ctx, c.id))
		}
	case RouteCouponHistory:
		return func(ctx context.Context, c call) (Result, error) {
			return list(store.CouponHistory(ctx, c.id))
		}
	case RouteUseCoupon:
		return func(ctx context.Context, c call) (Result, error) {
			var req domain.UseCouponRequest
			if err := decode(c.body, &req); err != nil {
				return Result{}, err
			}
			coupon, err := store.UseCoupon(ctx, req.CouponID, req.UserID)
			if err != nil {
				return Result{}, err
			}
			return Result{Status: http.StatusOK, Data: map[string]any{"success": true, "coupon": coupon}}, nil
		}
	case RouteDeposit:
		return func(ctx context.Context, c call) (Result, error) {
			var req domain.DepositRequest
			if err := decode(c.body, &req); err != nil {
				return Result{}, err
			}
			receipt, err := store.Deposit(ctx, req)
			if err != nil {
				return Result{}, err
			}
			return Result{Status: http.StatusOK, Data: receipt}, nil
		}
	case RouteTransactions:
		return func(ctx context.Context, c call) (Result, error) {
			return list(store.Transactions(ctx, c.id))
		}
	case RouteInvestments:
		return func(ctx context.Context, c call) (Result, error) {
			return list(store.Investments(ctx, c.id))
		}
	case RouteInvest:
		return func(ctx context.Context, c call) (Result, error) {
			var req domain.InvestRequest
			if err := decode(c.body, &req); err != nil {
				return Result{}, err
			}
			inv, err := store.Invest(ctx, req)
			if err != nil {
				return Result{}, err
			}
			return Result{Status: http.StatusCreated, Data: inv}, nil
		}
	case RouteProjects:
		return func(ctx context.Context, _ call) (Result, error) {
			return list(store.Projects(ctx))
		}
	case RouteProject:
		return func(ctx context.Context, c call) (Result, error) {
			return lookup(store.Project(ctx, c.id))
		}
	}
	return nil
}

// lookup 將單筆查詢轉為 Result；查無資料時宣告 404 而不是拋出錯誤
func lookup[T any](v *T, err error) (Result, error) {
	if errors.Is(err, domain.ErrNotFound) {
		return Result{Status: http.StatusNotFound, Data: ErrorPayload{Error: err.Error()}}, nil
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Status: http.StatusOK, Data: v}, nil
}

func list[T any](v []T, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	if v == nil {
		v = []T{}
	}
	return Result{Status: http.StatusOK, Data: v}, nil
}

func decode(body json.RawMessage, dest any) error {
	if len(body) == 0 {
		return errors.New("request body is required")
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
