package cart

import (
	"context"
	"testing"
	"time"

	"github.com/neski321/E-Store-revamp/internal/domain"
)

func TestCoalescer_OnlyLastWriteLands(t *testing.T) {
	repo := newStubRepo(domain.CartItem{
		ID: "line-1", UserID: "user-1", Quantity: 1, Stock: 10,
	})
	svc := New(repo, &stubProducts{}, testLogger())
	co := NewCoalescer(svc, 30*time.Millisecond)

	for _, qty := range []int{2, 3, 4} {
		item, err := co.SetQuantity(context.Background(), userSession(), "line-1", qty)
		if err != nil {
			t.Fatalf("set quantity %d: %v", qty, err)
		}
		if item.Quantity != qty {
			t.Fatalf("returned quantity = %d, want %d immediately", item.Quantity, qty)
		}
	}
	if calls, _ := repo.updateState(); calls != 0 {
		t.Fatalf("update calls = %d before window elapsed, want 0", calls)
	}

	deadline := time.Now().Add(time.Second)
	calls, qty := repo.updateState()
	for calls == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
		calls, qty = repo.updateState()
	}
	if calls != 1 {
		t.Fatalf("update calls = %d, want exactly 1 coalesced write", calls)
	}
	if qty != 4 {
		t.Fatalf("stored quantity = %d, want latest value 4", qty)
	}
}

func TestCoalescer_FlushWritesPending(t *testing.T) {
	repo := newStubRepo(domain.CartItem{
		ID: "line-1", UserID: "user-1", Quantity: 1, Stock: 10,
	})
	svc := New(repo, &stubProducts{}, testLogger())
	co := NewCoalescer(svc, time.Hour)

	if _, err := co.SetQuantity(context.Background(), userSession(), "line-1", 6); err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	co.Flush()

	if calls, qty := repo.updateState(); calls != 1 || qty != 6 {
		t.Fatalf("flush wrote calls=%d qty=%d, want 1 write of 6", calls, qty)
	}
}

func TestCoalescer_ClampIsImmediate(t *testing.T) {
	repo := newStubRepo(domain.CartItem{
		ID: "line-1", UserID: "user-1", Quantity: 1, Stock: 3,
	})
	svc := New(repo, &stubProducts{}, testLogger())
	co := NewCoalescer(svc, time.Hour)
	defer co.Flush()

	item, err := co.SetQuantity(context.Background(), userSession(), "line-1", 9)
	if err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if item.Quantity != 3 {
		t.Fatalf("returned quantity = %d, want clamp to 3 before the write lands", item.Quantity)
	}
}
