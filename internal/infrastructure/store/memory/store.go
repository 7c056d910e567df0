package memory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-wallet-mockapi/internal/core/domain"
	"github.com/JoeShih716/go-wallet-mockapi/internal/core/ports"
)

// ensure interface compliance
var _ ports.BackingStore = (*Store)(nil)

// Store 是 mock 後端的記憶體資料集。
// 整個程序共用同一份資料，所有異動都以互斥鎖保護 (後寫者勝出，不做 CAS)。
type Store struct {
	mu   sync.RWMutex
	data *domain.Snapshot

	// persistMu 讓 snapshot 依異動順序寫入
	persistMu sync.Mutex

	snapshots ports.SnapshotStore
	publisher ports.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
}

// NewStore 以指定資料集建立 Store
//
// 參數:
//
//	data: *domain.Snapshot - 初始資料 (nil 代表空資料集)
//	opts: ...Option - 選填依賴
//
// 回傳值:
//
//	*Store: 初始化後的 Store
func NewStore(data *domain.Snapshot, opts ...Option) *Store {
	if data == nil {
		data = &domain.Snapshot{}
	}
	s := &Store{
		data:   data,
		logger: slog.Default(),
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "memory_store")
	return s
}

// Load 從 SnapshotStore 讀取資料集建立 Store。
// 若尚無資料，使用 seed 產生初始資料並立即寫回。
//
// 參數:
//
//	ctx: context.Context - 上下文
//	snapshots: ports.SnapshotStore - 持久化目標 (nil 代表純記憶體)
//	seed: func() *domain.Snapshot - 初始資料產生器
//	opts: ...Option - 其餘選填依賴
//
// 回傳值:
//
//	*Store: 初始化後的 Store
//	error: 讀取或寫回失敗時回傳錯誤
func Load(ctx context.Context, snapshots ports.SnapshotStore, seed func() *domain.Snapshot, opts ...Option) (*Store, error) {
	if snapshots == nil {
		return NewStore(seed(), opts...), nil
	}

	data, err := snapshots.Load(ctx)
	switch {
	case errors.Is(err, ports.ErrSnapshotNotFound):
		data = seed()
		if err := snapshots.Save(ctx, data); err != nil {
			return nil, fmt.Errorf("failed to save seed snapshot: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	return NewStore(data, append(opts, WithSnapshotStore(snapshots))...), nil
}

// Snapshot 回傳目前資料集的拷貝
func (s *Store) Snapshot() *domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// ---------------------------------------------------------
// Wallet
// ---------------------------------------------------------

// Wallet implements ports.WalletStore.
func (s *Store) Wallet(ctx context.Context, userID int64) (*domain.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w := s.wallet(userID)
	if w == nil {
		return nil, domain.ErrWalletNotFound
	}
	out := *w
	return &out, nil
}

// Deposit implements ports.WalletStore.
// 若帶有 CouponID，會一併使用該優惠券並另外記一筆回饋 (bonus) 交易。
func (s *Store) Deposit(ctx context.Context, req domain.DepositRequest) (*domain.DepositReceipt, error) {
	if !req.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	method := req.Method
	if method == "" {
		method = "card"
	}

	s.mu.Lock()
	now := s.now()

	var coupon *domain.Coupon
	if req.CouponID != nil {
		c, err := s.activeCoupon(*req.CouponID, req.UserID, now)
		if err != nil {
			s.mu.Unlock()
			return nil, err
		}
		if req.Amount.LessThan(c.MinAmount) {
			s.mu.Unlock()
			return nil, domain.ErrCouponBelowMinAmount
		}
		coupon = c
	}

	w := s.wallet(req.UserID)
	if w == nil {
		s.data.Wallets = append(s.data.Wallets, *domain.NewWallet(req.UserID, decimal.Zero, now))
		w = &s.data.Wallets[len(s.data.Wallets)-1]
	}

	deposit := s.appendTransaction(domain.Transaction{
		UserID: req.UserID,
		Type:   domain.TransactionDeposit,
		Amount: req.Amount,
		Method: method,
	}, now)
	w.Balance = w.Balance.Add(req.Amount)

	receipt := &domain.DepositReceipt{Transaction: deposit}
	if coupon != nil {
		markUsed(coupon, now)
		bonus := coupon.Bonus(req.Amount)
		couponID := coupon.ID
		tx := s.appendTransaction(domain.Transaction{
			UserID:   req.UserID,
			Type:     domain.TransactionBonus,
			Amount:   bonus,
			Method:   "coupon",
			CouponID: &couponID,
		}, now)
		w.Balance = w.Balance.Add(bonus)
		receipt.Bonus = &tx
	}
	w.UpdatedAt = now
	receipt.Balance = w.Balance

	if err := s.commit(ctx, domain.Event{
		Type:   domain.EventDeposited,
		UserID: req.UserID,
		Data:   receipt,
		At:     now,
	}); err != nil {
		return nil, err
	}
	return receipt, nil
}

// Transactions implements ports.WalletStore.
func (s *Store) Transactions(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Transaction, 0)
	for _, tx := range s.data.Transactions {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// ---------------------------------------------------------
// Coupons
// ---------------------------------------------------------

// ActiveCoupons implements ports.CouponStore.
func (s *Store) ActiveCoupons(ctx context.Context, userID int64) ([]domain.Coupon, error) {
	return s.filterCoupons(userID, func(c *domain.Coupon, now time.Time) bool {
		return c.IsActive(now)
	}), nil
}

// CouponHistory implements ports.CouponStore.
func (s *Store) CouponHistory(ctx context.Context, userID int64) ([]domain.Coupon, error) {
	return s.filterCoupons(userID, func(c *domain.Coupon, now time.Time) bool {
		return !c.IsActive(now)
	}), nil
}

// UseCoupon implements ports.CouponStore.
func (s *Store) UseCoupon(ctx context.Context, couponID, userID int64) (*domain.Coupon, error) {
	s.mu.Lock()
	now := s.now()

	c, err := s.activeCoupon(couponID, userID, now)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	markUsed(c, now)
	id := c.ID
	s.appendTransaction(domain.Transaction{
		UserID:   userID,
		Type:     domain.TransactionCoupon,
		Amount:   decimal.Zero,
		Method:   "coupon",
		CouponID: &id,
	}, now)
	out := *c

	if err := s.commit(ctx, domain.Event{
		Type:   domain.EventCouponUsed,
		UserID: userID,
		Data:   out,
		At:     now,
	}); err != nil {
		return nil, err
	}
	return &out, nil
}

// ---------------------------------------------------------
// Investments & Projects
// ---------------------------------------------------------

// Investments implements ports.InvestmentStore.
func (s *Store) Investments(ctx context.Context, userID int64) ([]domain.Investment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Investment, 0)
	for _, inv := range s.data.Investments {
		if inv.UserID == userID {
			out = append(out, inv)
		}
	}
	return out, nil
}

// Invest implements ports.InvestmentStore.
// 從錢包扣款並累加專案募資金額，達標時專案轉為 funded。
func (s *Store) Invest(ctx context.Context, req domain.InvestRequest) (*domain.Investment, error) {
	if !req.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	s.mu.Lock()
	now := s.now()

	p := s.project(req.ProjectID)
	if p == nil {
		s.mu.Unlock()
		return nil, domain.ErrProjectNotFound
	}
	if p.Status != domain.ProjectOpen {
		s.mu.Unlock()
		return nil, domain.ErrProjectNotOpen
	}
	if req.Amount.LessThan(p.MinInvestment) {
		s.mu.Unlock()
		return nil, domain.ErrBelowMinInvestment
	}
	w := s.wallet(req.UserID)
	if w == nil {
		s.mu.Unlock()
		return nil, domain.ErrWalletNotFound
	}
	if w.Balance.LessThan(req.Amount) {
		s.mu.Unlock()
		return nil, domain.ErrInsufficientBalance
	}

	w.Balance = w.Balance.Sub(req.Amount)
	w.UpdatedAt = now
	p.RaisedAmount = p.RaisedAmount.Add(req.Amount)
	if p.RaisedAmount.GreaterThanOrEqual(p.TargetAmount) {
		p.Status = domain.ProjectFunded
	}

	inv := domain.Investment{
		ID:        s.newID(),
		UserID:    req.UserID,
		ProjectID: req.ProjectID,
		Amount:    req.Amount,
		Status:    "active",
		CreatedAt: now,
	}
	s.data.Investments = append(s.data.Investments, inv)
	projectID := req.ProjectID
	s.appendTransaction(domain.Transaction{
		UserID:    req.UserID,
		Type:      domain.TransactionInvestment,
		Amount:    req.Amount.Neg(),
		Method:    "wallet",
		ProjectID: &projectID,
	}, now)

	if err := s.commit(ctx, domain.Event{
		Type:   domain.EventInvestmentCreated,
		UserID: req.UserID,
		Data:   inv,
		At:     now,
	}); err != nil {
		return nil, err
	}
	return &inv, nil
}

// Projects implements ports.ProjectStore.
func (s *Store) Projects(ctx context.Context) ([]domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append(make([]domain.Project, 0, len(s.data.Projects)), s.data.Projects...), nil
}

// Project implements ports.ProjectStore.
func (s *Store) Project(ctx context.Context, projectID int64) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.project(projectID)
	if p == nil {
		return nil, domain.ErrProjectNotFound
	}
	out := *p
	return &out, nil
}

// ---------------------------------------------------------
// helpers (呼叫者需持有鎖)
// ---------------------------------------------------------

func (s *Store) wallet(userID int64) *domain.Wallet {
	for i := range s.data.Wallets {
		if s.data.Wallets[i].UserID == userID {
			return &s.data.Wallets[i]
		}
	}
	return nil
}

func (s *Store) project(projectID int64) *domain.Project {
	for i := range s.data.Projects {
		if s.data.Projects[i].ID == projectID {
			return &s.data.Projects[i]
		}
	}
	return nil
}

func (s *Store) activeCoupon(couponID, userID int64, now time.Time) (*domain.Coupon, error) {
	for i := range s.data.Coupons {
		c := &s.data.Coupons[i]
		if c.ID != couponID {
			continue
		}
		switch {
		case c.UserID != userID:
			return nil, domain.ErrCouponNotOwned
		case c.Used:
			return nil, domain.ErrCouponUsed
		case !now.Before(c.ExpiresAt):
			return nil, domain.ErrCouponExpired
		}
		return c, nil
	}
	return nil, domain.ErrCouponNotFound
}

func (s *Store) filterCoupons(userID int64, keep func(*domain.Coupon, time.Time) bool) []domain.Coupon {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	out := make([]domain.Coupon, 0)
	for i := range s.data.Coupons {
		c := &s.data.Coupons[i]
		if c.UserID == userID && keep(c, now) {
			out = append(out, *c)
		}
	}
	return out
}

func (s *Store) appendTransaction(tx domain.Transaction, now time.Time) domain.Transaction {
	tx.ID = s.newID()
	tx.Status = domain.TransactionStatusCompleted
	tx.CreatedAt = now
	s.data.Transactions = append(s.data.Transactions, tx)
	return tx
}

func markUsed(c *domain.Coupon, now time.Time) {
	usedAt := now
	c.Used = true
	c.UsedAt = &usedAt
}

// commit 在持有寫入鎖時被呼叫: 拷貝資料後釋放鎖，再進行持久化與事件發送。
// persistMu 在釋放 mu 之前取得，後一次異動的 Save 必定排在前一次之後。
// 持久化失敗會回傳給呼叫者 (記憶體中的異動不回滾)；事件發送失敗只記錄 log。
func (s *Store) commit(ctx context.Context, event domain.Event) error {
	if s.snapshots != nil {
		snapshot := s.data.Clone()
		s.persistMu.Lock()
		s.mu.Unlock()

		err := s.snapshots.Save(ctx, snapshot)
		s.persistMu.Unlock()
		if err != nil {
			return fmt.Errorf("failed to persist snapshot: %w", err)
		}
	} else {
		s.mu.Unlock()
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("Failed to publish event", "type", event.Type, "user_id", event.UserID, "error", err)
		}
	}
	return nil
}
