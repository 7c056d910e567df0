package domain

// Snapshot 是整個 mock 後端的資料集。
// 它是持久化 (SnapshotStore) 的最小單位，相當於瀏覽器 local storage 中的一份 JSON。
type Snapshot struct {
	Wallets      []Wallet      `json:"wallets" msgpack:"wallets"`
	Coupons      []Coupon      `json:"coupons" msgpack:"coupons"`
	Transactions []Transaction `json:"transactions" msgpack:"transactions"`
	Investments  []Investment  `json:"investments" msgpack:"investments"`
	Projects     []Project     `json:"projects" msgpack:"projects"`
}

// Clone 回傳一份深拷貝，讓持久化與事件發送不會讀到正在被修改的資料
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Wallets:      append([]Wallet(nil), s.Wallets...),
		Coupons:      make([]Coupon, len(s.Coupons)),
		Transactions: append([]Transaction(nil), s.Transactions...),
		Investments:  append([]Investment(nil), s.Investments...),
		Projects:     append([]Project(nil), s.Projects...),
	}
	for i, c := range s.Coupons {
		if c.UsedAt != nil {
			t := *c.UsedAt
			c.UsedAt = &t
		}
		out.Coupons[i] = c
	}
	return out
}
