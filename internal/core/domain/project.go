package domain

import "github.com/shopspring/decimal"

// ProjectStatus 投資專案狀態
type ProjectStatus string

const (
	ProjectOpen   ProjectStatus = "open"
	ProjectFunded ProjectStatus = "funded"
	ProjectClosed ProjectStatus = "closed"
)

// Project 代表一個可供投資的專案
type Project struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	TargetAmount   decimal.Decimal `json:"targetAmount"`
	RaisedAmount   decimal.Decimal `json:"raisedAmount"`
	ExpectedReturn decimal.Decimal `json:"expectedReturn"` // 年化報酬率 (%)
	DurationMonths int             `json:"durationMonths"`
	MinInvestment  decimal.Decimal `json:"minInvestment"`
	Status         ProjectStatus   `json:"status"`
}
