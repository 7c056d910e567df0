package ports

import (
	"context"

	"github.com/JoeShih716/go-wallet-mockapi/internal/core/domain"
)

// WalletStore 定義錢包與交易紀錄的存取介面
type WalletStore interface {
	// Wallet 取得使用者錢包，不存在時回傳 domain.ErrWalletNotFound
	Wallet(ctx context.Context, userID int64) (*domain.Wallet, error)

	// Deposit 儲值 (可選擇一併使用優惠券)
	Deposit(ctx context.Context, req domain.DepositRequest) (*domain.DepositReceipt, error)

	// Transactions 取得使用者交易紀錄 (新到舊)
	Transactions(ctx context.Context, userID int64) ([]domain.Transaction, error)
}

// CouponStore 定義優惠券的存取介面
type CouponStore interface {
	// ActiveCoupons 取得未使用且未過期的優惠券
	ActiveCoupons(ctx context.Context, userID int64) ([]domain.Coupon, error)

	// CouponHistory 取得已使用或已過期的優惠券
	CouponHistory(ctx context.Context, userID int64) ([]domain.Coupon, error)

	// UseCoupon 將優惠券標記為已使用
	UseCoupon(ctx context.Context, couponID, userID int64) (*domain.Coupon, error)
}

// InvestmentStore 定義投資紀錄的存取介面
type InvestmentStore interface {
	Investments(ctx context.Context, userID int64) ([]domain.Investment, error)
	Invest(ctx context.Context, req domain.InvestRequest) (*domain.Investment, error)
}

// ProjectStore 定義投資專案的存取介面
type ProjectStore interface {
	Projects(ctx context.Context) ([]domain.Project, error)
	Project(ctx context.Context, projectID int64) (*domain.Project, error)
}

// BackingStore 是 mock API 所需的完整資料操作集合
//
//go:generate mockgen -destination=../../../test/mocks/core/ports/mock_store.go -package=mock_ports github.com/JoeShih716/go-wallet-mockapi/internal/core/ports BackingStore
type BackingStore interface {
	WalletStore
	CouponStore
	InvestmentStore
	ProjectStore
}
