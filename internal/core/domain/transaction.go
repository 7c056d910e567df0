package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType 交易類型
type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionBonus      TransactionType = "bonus"
	TransactionCoupon     TransactionType = "coupon"
	TransactionInvestment TransactionType = "investment"
)

// TransactionStatusCompleted 是目前唯一會出現的交易狀態 (mock 後端不做非同步清算)
const TransactionStatusCompleted = "completed"

// Transaction 代表一筆錢包異動紀錄
type Transaction struct {
	ID        string          `json:"id"` // UUID
	UserID    int64           `json:"userId"`
	Type      TransactionType `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method,omitempty"`
	CouponID  *int64          `json:"couponId,omitempty"`
	ProjectID *int64          `json:"projectId,omitempty"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}
