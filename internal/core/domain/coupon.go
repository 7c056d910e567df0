package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType 優惠券折扣類型
type DiscountType string

const (
	DiscountPercent DiscountType = "percent" // 按金額百分比回饋
	DiscountFixed   DiscountType = "fixed"   // 固定金額回饋
)

// Coupon 代表發放給單一使用者的優惠券
type Coupon struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"userId"`
	Code          string          `json:"code"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	DiscountType  DiscountType    `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	MinAmount     decimal.Decimal `json:"minAmount"`
	ExpiresAt     time.Time       `json:"expiresAt"`
	Used          bool            `json:"used"`
	UsedAt        *time.Time      `json:"usedAt,omitempty"`
}

// IsActive 判斷優惠券在 now 時是否仍可使用 (未使用且未過期)
func (c *Coupon) IsActive(now time.Time) bool {
	return !c.Used && now.Before(c.ExpiresAt)
}

// Bonus 計算以 amount 儲值時此優惠券可回饋的金額。
// 未達最低門檻時回傳 0。
func (c *Coupon) Bonus(amount decimal.Decimal) decimal.Decimal {
	if amount.LessThan(c.MinAmount) {
		return decimal.Zero
	}
	switch c.DiscountType {
	case DiscountPercent:
		return amount.Mul(c.DiscountValue).Div(decimal.NewFromInt(100)).Round(2)
	case DiscountFixed:
		return c.DiscountValue
	default:
		return decimal.Zero
	}
}

// UseCouponRequest 是 /coupons/use 的請求內容
type UseCouponRequest struct {
	CouponID int64 `json:"couponId"`
	UserID   int64 `json:"userId"`
}
