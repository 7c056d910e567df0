package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment 代表使用者對某個專案的一筆投資
type Investment struct {
	ID        string          `json:"id"` // UUID
	UserID    int64           `json:"userId"`
	ProjectID int64           `json:"projectId"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}

// InvestRequest 是 POST /investments 的請求內容
type InvestRequest struct {
	UserID    int64           `json:"userId"`
	ProjectID int64           `json:"projectId"`
	Amount    decimal.Decimal `json:"amount"`
}
