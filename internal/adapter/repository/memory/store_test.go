package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ruival/obracap/internal/domain"
)

func mov(id, accountID string, kind domain.Kind, date domain.Date, amount string) *domain.Movement {
	return &domain.Movement{
		ID:        id,
		AccountID: accountID,
		Kind:      kind,
		Source:    domain.SourceManual,
		Date:      date,
		Amount:    decimal.RequireFromString(amount),
	}
}

func TestStoreInsertAndGet(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	m := mov("01A", "acc-1", domain.KindIncome, domain.MustDate("2025-03-01"), "1000")
	if err := store.Insert(ctx, m); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	got, err := store.GetByID(ctx, "01A")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.AccountID != "acc-1" || !got.Amount.Equal(m.Amount) {
		t.Fatalf("unexpected movement: %+v", got)
	}

	// Mutating the returned copy must not affect the stored movement.
	got.Amount = decimal.NewFromInt(5)
	again, _ := store.GetByID(ctx, "01A")
	if !again.Amount.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("stored movement mutated: %s", again.Amount)
	}
}

func TestStoreGetByIDNotFound(t *testing.T) {
	store := NewStore()

	_, err := store.GetByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrMovementNotFound) {
		t.Fatalf("expected ErrMovementNotFound, got %v", err)
	}
}

func TestStoreQueryFiltersAndOrder(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	day1 := domain.MustDate("2025-03-01")
	day2 := domain.MustDate("2025-03-02")

	_ = store.Insert(ctx, mov("01A", "acc-1", domain.KindIncome, day1, "1000"))
	_ = store.Insert(ctx, mov("01B", "acc-1", domain.KindExpense, day2, "200"))
	_ = store.Insert(ctx, mov("01C", "acc-2", domain.KindExpense, day2, "50"))

	t.Run("by account", func(t *testing.T) {
		got, err := store.Query(ctx, domain.Filter{AccountID: "acc-1"})
		if err != nil {
			t.Fatalf("query failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 movements, got %d", len(got))
		}
		// Newest first.
		if got[0].ID != "01B" || got[1].ID != "01A" {
			t.Fatalf("wrong order: %s, %s", got[0].ID, got[1].ID)
		}
	})

	t.Run("by kind and date", func(t *testing.T) {
		got, err := store.Query(ctx, domain.Filter{Kind: domain.KindExpense, DateFrom: day2})
		if err != nil {
			t.Fatalf("query failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 movements, got %d", len(got))
		}
	})

	t.Run("count", func(t *testing.T) {
		count, err := store.Count(ctx, domain.Filter{AccountID: "acc-2"})
		if err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != 1 {
			t.Fatalf("expected 1, got %d", count)
		}
	})
}

func TestStoreLockAccountSerializesWriters(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	date := domain.MustDate("2025-03-01")

	// Each goroutine reads the account history, folds a balance and writes
	// a movement carrying it, all under the account lock. Lost updates
	// would show as duplicate balance_after values.
	const writers = 20

	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(n int) {
			defer wg.Done()

			tx, err := store.Begin(ctx)
			if err != nil {
				t.Errorf("begin failed: %v", err)
				return
			}
			defer tx.Rollback(ctx)

			if err := store.LockAccount(ctx, tx, "acc-1"); err != nil {
				t.Errorf("lock failed: %v", err)
				return
			}

			history, err := store.QueryTx(ctx, tx, domain.Filter{AccountID: "acc-1"})
			if err != nil {
				t.Errorf("query failed: %v", err)
				return
			}

			balance := decimal.Zero
			for _, h := range history {
				balance = balance.Add(h.SignedAmount())
			}

			m := mov(ulidLike(n), "acc-1", domain.KindIncome, date, "10")
			m.BalanceAfter = balance.Add(m.Amount)
			if err := store.InsertTx(ctx, tx, m); err != nil {
				t.Errorf("insert failed: %v", err)
				return
			}

			if err := tx.Commit(ctx); err != nil {
				t.Errorf("commit failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	got, err := store.Query(ctx, domain.Filter{AccountID: "acc-1"})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(got) != writers {
		t.Fatalf("expected %d movements, got %d", writers, len(got))
	}

	seen := make(map[string]bool, writers)
	for _, m := range got {
		key := m.BalanceAfter.String()
		if seen[key] {
			t.Fatalf("duplicate balance_after %s, writers were not serialized", key)
		}
		seen[key] = true
	}
	if !seen[decimal.NewFromInt(int64(writers*10)).String()] {
		t.Fatalf("final balance %d missing", writers*10)
	}
}

func ulidLike(n int) string {
	const digits = "0123456789"
	return "01TEST" + string(digits[n/10]) + string(digits[n%10])
}
