package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency 錢包預設幣別
const DefaultCurrency = "TWD"

// Wallet 代表一個使用者的錢包餘額快照。
// 餘額一律以 decimal 表示，避免浮點誤差。
type Wallet struct {
	UserID    int64           `json:"userId"`    // 使用者 ID
	Balance   decimal.Decimal `json:"balance"`   // 可用餘額
	Currency  string          `json:"currency"`  // 幣別
	UpdatedAt time.Time       `json:"updatedAt"` // 最後異動時間
}

// NewWallet 建立一個新的錢包實例
//
// 參數:
//
//	userID: int64 - 使用者 ID
//	balance: decimal.Decimal - 初始餘額
//	now: time.Time - 建立時間
//
// 回傳值:
//
//	*Wallet: 初始化後的錢包物件
func NewWallet(userID int64, balance decimal.Decimal, now time.Time) *Wallet {
	return &Wallet{
		UserID:    userID,
		Balance:   balance,
		Currency:  DefaultCurrency,
		UpdatedAt: now,
	}
}

// DepositRequest 是 /transactions/deposit 的請求內容
type DepositRequest struct {
	UserID   int64           `json:"userId"`
	Amount   decimal.Decimal `json:"amount"`
	Method   string          `json:"method,omitempty"`   // 付款方式 (card, bank, ...)
	CouponID *int64          `json:"couponId,omitempty"` // 選填: 儲值時一併使用的優惠券
}

// DepositReceipt 是儲值成功後回傳給前端的收據
type DepositReceipt struct {
	Transaction Transaction     `json:"transaction"`
	Bonus       *Transaction    `json:"bonus,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
}
