package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/JoeShih716/go-wallet-mockapi/internal/core/domain"
	"github.com/JoeShih716/go-wallet-mockapi/internal/core/ports"
	"github.com/JoeShih716/go-wallet-mockapi/internal/infrastructure/store/memory"
	mock_ports "github.com/JoeShih716/go-wallet-mockapi/test/mocks/core/ports"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newSeededStore(opts ...memory.Option) *memory.Store {
	opts = append([]memory.Option{memory.WithClock(func() time.Time { return fixedNow })}, opts...)
	return memory.NewStore(memory.DefaultSeed(fixedNow), opts...)
}

func couponIDs(coupons []domain.Coupon) []int64 {
	ids := make([]int64, 0, len(coupons))
	for _, c := range coupons {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestStore_Coupons(t *testing.T) {
	ctx := context.Background()
	store := newSeededStore()

	active, err := store.ActiveCoupons(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, couponIDs(active))

	history, err := store.CouponHistory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4}, couponIDs(history))

	none, err := store.ActiveCoupons(ctx, 99)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestStore_UseCoupon(t *testing.T) {
	ctx := context.Background()

	t.Run("Marks coupon used", func(t *testing.T) {
		store := newSeededStore()

		c, err := store.UseCoupon(ctx, 1, 1)
		require.NoError(t, err)
		assert.True(t, c.Used)
		require.NotNil(t, c.UsedAt)
		assert.Equal(t, fixedNow, *c.UsedAt)

		active, _ := store.ActiveCoupons(ctx, 1)
		assert.Equal(t, []int64{2}, couponIDs(active))

		txs, _ := store.Transactions(ctx, 1)
		require.Len(t, txs, 1)
		assert.Equal(t, domain.TransactionCoupon, txs[0].Type)
	})

	t.Run("Rejections", func(t *testing.T) {
		store := newSeededStore()

		cases := []struct {
			name     string
			couponID int64
			userID   int64
			want     error
		}{
			{"Unknown coupon", 42, 1, domain.ErrCouponNotFound},
			{"Other user's coupon", 5, 1, domain.ErrCouponNotOwned},
			{"Already used", 3, 1, domain.ErrCouponUsed},
			{"Expired", 4, 1, domain.ErrCouponExpired},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := store.UseCoupon(ctx, tc.couponID, tc.userID)
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})
}

func TestStore_Deposit(t *testing.T) {
	ctx := context.Background()

	t.Run("Plain deposit", func(t *testing.T) {
		store := newSeededStore()

		receipt, err := store.Deposit(ctx, domain.DepositRequest{UserID: 1, Amount: decimal.NewFromInt(2500)})
		require.NoError(t, err)
		assert.Equal(t, "card", receipt.Transaction.Method)
		assert.Nil(t, receipt.Bonus)
		assert.True(t, receipt.Balance.Equal(decimal.NewFromInt(52500)))

		w, err := store.Wallet(ctx, 1)
		require.NoError(t, err)
		assert.True(t, w.Balance.Equal(decimal.NewFromInt(52500)))
	})

	t.Run("Deposit with percent coupon", func(t *testing.T) {
		store := newSeededStore()
		couponID := int64(1)

		receipt, err := store.Deposit(ctx, domain.DepositRequest{
			UserID: 1, Amount: decimal.NewFromInt(2000), Method: "bank", CouponID: &couponID,
		})
		require.NoError(t, err)
		require.NotNil(t, receipt.Bonus)
		assert.True(t, receipt.Bonus.Amount.Equal(decimal.NewFromInt(200)))
		assert.True(t, receipt.Balance.Equal(decimal.NewFromInt(52200)))

		_, err = store.UseCoupon(ctx, 1, 1)
		assert.ErrorIs(t, err, domain.ErrCouponUsed)
	})

	t.Run("Coupon below minimum amount", func(t *testing.T) {
		store := newSeededStore()
		couponID := int64(2)

		_, err := store.Deposit(ctx, domain.DepositRequest{UserID: 1, Amount: decimal.NewFromInt(100), CouponID: &couponID})
		assert.ErrorIs(t, err, domain.ErrCouponBelowMinAmount)

		active, _ := store.ActiveCoupons(ctx, 1)
		assert.Contains(t, couponIDs(active), int64(2))
	})

	t.Run("Creates wallet for new user", func(t *testing.T) {
		store := newSeededStore()

		_, err := store.Wallet(ctx, 7)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		_, err = store.Deposit(ctx, domain.DepositRequest{UserID: 7, Amount: decimal.NewFromInt(10)})
		require.NoError(t, err)

		w, err := store.Wallet(ctx, 7)
		require.NoError(t, err)
		assert.True(t, w.Balance.Equal(decimal.NewFromInt(10)))
		assert.Equal(t, domain.DefaultCurrency, w.Currency)
	})

	t.Run("Invalid amount", func(t *testing.T) {
		store := newSeededStore()
		_, err := store.Deposit(ctx, domain.DepositRequest{UserID: 1, Amount: decimal.NewFromInt(-5)})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

func TestStore_Invest(t *testing.T) {
	ctx := context.Background()

	t.Run("Deducts balance and raises project", func(t *testing.T) {
		store := newSeededStore(memory.WithIDGenerator(func() string { return "inv-1" }))

		inv, err := store.Invest(ctx, domain.InvestRequest{UserID: 1, ProjectID: 1, Amount: decimal.NewFromInt(10000)})
		require.NoError(t, err)
		assert.Equal(t, "inv-1", inv.ID)

		w, _ := store.Wallet(ctx, 1)
		assert.True(t, w.Balance.Equal(decimal.NewFromInt(40000)))

		p, _ := store.Project(ctx, 1)
		assert.True(t, p.RaisedAmount.Equal(decimal.NewFromInt(3210000)))
		assert.Equal(t, domain.ProjectOpen, p.Status)

		invs, _ := store.Investments(ctx, 1)
		assert.Len(t, invs, 1)
	})

	t.Run("Reaching the target funds the project", func(t *testing.T) {
		snapshot := memory.DefaultSeed(fixedNow)
		snapshot.Wallets[0].Balance = decimal.NewFromInt(5000000)
		store := memory.NewStore(snapshot)

		_, err := store.Invest(ctx, domain.InvestRequest{UserID: 1, ProjectID: 2, Amount: decimal.NewFromInt(1550000)})
		require.NoError(t, err)

		p, _ := store.Project(ctx, 2)
		assert.Equal(t, domain.ProjectFunded, p.Status)
	})

	t.Run("Rejections", func(t *testing.T) {
		store := newSeededStore()

		cases := []struct {
			name string
			req  domain.InvestRequest
			want error
		}{
			{"Unknown project", domain.InvestRequest{UserID: 1, ProjectID: 9, Amount: decimal.NewFromInt(1000)}, domain.ErrProjectNotFound},
			{"Project funded", domain.InvestRequest{UserID: 1, ProjectID: 3, Amount: decimal.NewFromInt(1000)}, domain.ErrProjectNotOpen},
			{"Below minimum", domain.InvestRequest{UserID: 1, ProjectID: 2, Amount: decimal.NewFromInt(100)}, domain.ErrBelowMinInvestment},
			{"Insufficient balance", domain.InvestRequest{UserID: 2, ProjectID: 1, Amount: decimal.NewFromInt(20000)}, domain.ErrInsufficientBalance},
			{"No wallet", domain.InvestRequest{UserID: 8, ProjectID: 1, Amount: decimal.NewFromInt(1000)}, domain.ErrWalletNotFound},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := store.Invest(ctx, tc.req)
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})
}

func TestStore_PersistsAndPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockSnapshots := mock_ports.NewMockSnapshotStore(ctrl)
	mockPublisher := mock_ports.NewMockEventPublisher(ctrl)

	store := newSeededStore(memory.WithSnapshotStore(mockSnapshots), memory.WithPublisher(mockPublisher))

	t.Run("Mutation saves snapshot and publishes event", func(t *testing.T) {
		mockSnapshots.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s *domain.Snapshot) error {
				assert.True(t, s.Coupons[0].Used)
				return nil
			})
		mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e domain.Event) error {
				assert.Equal(t, domain.EventCouponUsed, e.Type)
				assert.Equal(t, int64(1), e.UserID)
				return nil
			})

		_, err := store.UseCoupon(ctx, 1, 1)
		require.NoError(t, err)
	})

	t.Run("Save failure is returned", func(t *testing.T) {
		mockSnapshots.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		_, err := store.UseCoupon(ctx, 2, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("Publish failure is only logged", func(t *testing.T) {
		mockSnapshots.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("no subscribers"))

		_, err := store.Deposit(ctx, domain.DepositRequest{UserID: 2, Amount: decimal.NewFromInt(1)})
		assert.NoError(t, err)
	})

	t.Run("Reads do not persist", func(t *testing.T) {
		_, err := store.Projects(ctx)
		assert.NoError(t, err)
	})
}

// gatedSnapshots 讓第一次 Save 停住，直到 release 被關閉或逾時
type gatedSnapshots struct {
	mu      sync.Mutex
	saves   int
	entered chan struct{}
	release chan struct{}
	last    *domain.Snapshot
}

func (g *gatedSnapshots) Load(context.Context) (*domain.Snapshot, error) {
	return nil, ports.ErrSnapshotNotFound
}

func (g *gatedSnapshots) Save(_ context.Context, snapshot *domain.Snapshot) error {
	g.mu.Lock()
	g.saves++
	first := g.saves == 1
	g.mu.Unlock()

	if first {
		close(g.entered)
		select {
		case <-g.release:
		case <-time.After(200 * time.Millisecond):
		}
	}

	g.mu.Lock()
	g.last = snapshot
	g.mu.Unlock()
	return nil
}

func TestStore_SavesInMutationOrder(t *testing.T) {
	ctx := context.Background()
	snapshots := &gatedSnapshots{entered: make(chan struct{}), release: make(chan struct{})}
	store := newSeededStore(memory.WithSnapshotStore(snapshots))

	firstDone := make(chan error, 1)
	go func() {
		_, err := store.Deposit(ctx, domain.DepositRequest{UserID: 1, Amount: decimal.NewFromInt(100), Method: "card"})
		firstDone <- err
	}()
	<-snapshots.entered

	// 第二筆在第一筆寫入期間發生；若不等待第一筆 Save，它會先完成並放行第一筆
	secondDone := make(chan error, 1)
	go func() {
		_, err := store.Deposit(ctx, domain.DepositRequest{UserID: 1, Amount: decimal.NewFromInt(7), Method: "card"})
		secondDone <- err
	}()
	select {
	case err := <-secondDone:
		require.NoError(t, err)
		close(snapshots.release)
		require.NoError(t, <-firstDone)
	case err := <-firstDone:
		require.NoError(t, err)
		require.NoError(t, <-secondDone)
	}

	wallet, err := store.Wallet(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "50107", wallet.Balance.String())

	snapshots.mu.Lock()
	defer snapshots.mu.Unlock()
	require.NotNil(t, snapshots.last)
	var persisted *domain.Wallet
	for i := range snapshots.last.Wallets {
		if snapshots.last.Wallets[i].UserID == 1 {
			persisted = &snapshots.last.Wallets[i]
		}
	}
	require.NotNil(t, persisted)
	assert.True(t, wallet.Balance.Equal(persisted.Balance), "persisted %s, in memory %s", persisted.Balance, wallet.Balance)
}

func TestLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()
	seed := func() *domain.Snapshot { return memory.DefaultSeed(fixedNow) }

	t.Run("Seeds when snapshot is missing", func(t *testing.T) {
		mockSnapshots := mock_ports.NewMockSnapshotStore(ctrl)
		mockSnapshots.EXPECT().Load(gomock.Any()).Return(nil, ports.ErrSnapshotNotFound)
		mockSnapshots.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		store, err := memory.Load(ctx, mockSnapshots, seed)
		require.NoError(t, err)
		projects, _ := store.Projects(ctx)
		assert.Len(t, projects, 4)
	})

	t.Run("Uses stored snapshot", func(t *testing.T) {
		mockSnapshots := mock_ports.NewMockSnapshotStore(ctrl)
		stored := &domain.Snapshot{Projects: []domain.Project{{ID: 9, Name: "stored"}}}
		mockSnapshots.EXPECT().Load(gomock.Any()).Return(stored, nil)

		store, err := memory.Load(ctx, mockSnapshots, seed)
		require.NoError(t, err)
		p, err := store.Project(ctx, 9)
		require.NoError(t, err)
		assert.Equal(t, "stored", p.Name)
	})

	t.Run("Load failure", func(t *testing.T) {
		mockSnapshots := mock_ports.NewMockSnapshotStore(ctrl)
		mockSnapshots.EXPECT().Load(gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := memory.Load(ctx, mockSnapshots, seed)
		assert.Error(t, err)
	})

	t.Run("Without persister", func(t *testing.T) {
		store, err := memory.Load(ctx, nil, seed)
		require.NoError(t, err)
		assert.NotNil(t, store.Snapshot())
	})
}
