package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-wallet-mockapi/internal/core/domain"
)

// DefaultSeed 產生 demo 用的初始資料。
// 使用者 1 有兩張可用優惠券、一張已使用、一張已過期；使用者 2 有一張可用優惠券。
func DefaultSeed(now time.Time) *domain.Snapshot {
	day := 24 * time.Hour
	usedAt := now.Add(-3 * day)

	return &domain.Snapshot{
		Wallets: []domain.Wallet{
			*domain.NewWallet(1, decimal.NewFromInt(50000), now),
			*domain.NewWallet(2, decimal.NewFromInt(12000), now),
		},
		Coupons: []domain.Coupon{
			{
				ID: 1, UserID: 1, Code: "WELCOME10", Title: "新戶儲值回饋 10%",
				Description:  "首次儲值滿 1,000 即享 10% 回饋",
				DiscountType: domain.DiscountPercent, DiscountValue: decimal.NewFromInt(10),
				MinAmount: decimal.NewFromInt(1000), ExpiresAt: now.Add(30 * day),
			},
			{
				ID: 2, UserID: 1, Code: "BONUS500", Title: "儲值送 500",
				DiscountType: domain.DiscountFixed, DiscountValue: decimal.NewFromInt(500),
				MinAmount: decimal.NewFromInt(5000), ExpiresAt: now.Add(14 * day),
			},
			{
				ID: 3, UserID: 1, Code: "SPRING5", Title: "春季回饋 5%",
				DiscountType: domain.DiscountPercent, DiscountValue: decimal.NewFromInt(5),
				MinAmount: decimal.Zero, ExpiresAt: now.Add(10 * day),
				Used: true, UsedAt: &usedAt,
			},
			{
				ID: 4, UserID: 1, Code: "EXPIRED200", Title: "限時送 200",
				DiscountType: domain.DiscountFixed, DiscountValue: decimal.NewFromInt(200),
				MinAmount: decimal.NewFromInt(1000), ExpiresAt: now.Add(-2 * day),
			},
			{
				ID: 5, UserID: 2, Code: "WELCOME10", Title: "新戶儲值回饋 10%",
				DiscountType: domain.DiscountPercent, DiscountValue: decimal.NewFromInt(10),
				MinAmount: decimal.NewFromInt(1000), ExpiresAt: now.Add(30 * day),
			},
		},
		Transactions: []domain.Transaction{},
		Investments:  []domain.Investment{},
		Projects: []domain.Project{
			{
				ID: 1, Name: "太陽能電廠二期", Category: "energy",
				Description:  "屋頂型太陽能案場，售電收益按季配息",
				TargetAmount: decimal.NewFromInt(5000000), RaisedAmount: decimal.NewFromInt(3200000),
				ExpectedReturn: decimal.RequireFromString("6.5"), DurationMonths: 24,
				MinInvestment: decimal.NewFromInt(1000), Status: domain.ProjectOpen,
			},
			{
				ID: 2, Name: "城市共享倉儲", Category: "real_estate",
				Description:  "都會區小坪數倉儲租賃",
				TargetAmount: decimal.NewFromInt(2000000), RaisedAmount: decimal.NewFromInt(450000),
				ExpectedReturn: decimal.RequireFromString("5.2"), DurationMonths: 12,
				MinInvestment: decimal.NewFromInt(5000), Status: domain.ProjectOpen,
			},
			{
				ID: 3, Name: "在地農產冷鏈", Category: "agriculture",
				Description:  "產地直送冷鏈物流設備",
				TargetAmount: decimal.NewFromInt(800000), RaisedAmount: decimal.NewFromInt(800000),
				ExpectedReturn: decimal.RequireFromString("7.8"), DurationMonths: 18,
				MinInvestment: decimal.NewFromInt(1000), Status: domain.ProjectFunded,
			},
			{
				ID: 4, Name: "社區長照中心", Category: "healthcare",
				Description:  "已結案專案",
				TargetAmount: decimal.NewFromInt(3000000), RaisedAmount: decimal.NewFromInt(3000000),
				ExpectedReturn: decimal.RequireFromString("4.5"), DurationMonths: 36,
				MinInvestment: decimal.NewFromInt(10000), Status: domain.ProjectClosed,
			},
		},
	}
}

// ReadSeedFile 從 JSON 檔讀取初始資料 (格式同 domain.Snapshot)
func ReadSeedFile(path string) (*domain.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file at %s: %w", path, err)
	}
	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse seed file at %s: %w", path, err)
	}
	return &snapshot, nil
}
