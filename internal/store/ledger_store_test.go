package store

import (
	"errors"
	"math"
	"testing"
)

func TestAccountBalanceFoldsEntries(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	id := mustCreateAccount(t, st, ctx, "Alice", 0)

	bal, err := st.AccountBalance(ctx, id)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if bal != 0 {
		t.Fatalf("empty account balance = %d, want 0", bal)
	}

	if _, err := st.RecordEntry(ctx, id, EntryKindDeposit, 1000); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := st.RecordEntry(ctx, id, EntryKindBetDebit, 300); err != nil {
		t.Fatalf("debit: %v", err)
	}
	if _, err := st.RecordEntry(ctx, id, EntryKindBetCredit, 150); err != nil {
		t.Fatalf("credit: %v", err)
	}

	bal, err = st.AccountBalance(ctx, id)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if bal != 850 {
		t.Fatalf("balance = %d, want 850 (1000 - 300 + 150)", bal)
	}
}

func TestAccountBalanceUnknownAccount(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	if _, err := st.AccountBalance(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAccountBalanceFoldOverflow(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	// Two max-size deposits push the fold past bigint range; the cast
	// in the fold raises a numeric range error instead of wrapping.
	id := mustCreateAccount(t, st, ctx, "Whale", math.MaxInt64)
	if _, err := st.RecordEntry(ctx, id, EntryKindDeposit, math.MaxInt64); err != nil {
		t.Fatalf("second deposit: %v", err)
	}
	if _, err := st.AccountBalance(ctx, id); !errors.Is(err, ErrIntegrityViolation) {
		t.Fatalf("expected ErrIntegrityViolation, got %v", err)
	}
}

func TestDepositRoundTrip(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	id := mustCreateAccount(t, st, ctx, "Bob", 250)
	for _, n := range []int64{1, 7, 500} {
		before, err := st.AccountBalance(ctx, id)
		if err != nil {
			t.Fatalf("balance: %v", err)
		}
		if _, err := st.RecordEntry(ctx, id, EntryKindDeposit, n); err != nil {
			t.Fatalf("deposit %d: %v", n, err)
		}
		after, err := st.AccountBalance(ctx, id)
		if err != nil {
			t.Fatalf("balance: %v", err)
		}
		if after != before+n {
			t.Fatalf("after deposit %d: balance = %d, want %d", n, after, before+n)
		}
	}
}

func TestRecordEntryGuards(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	id := mustCreateAccount(t, st, ctx, "Carol", 0)

	// FK guard: unknown account.
	if _, err := st.RecordEntry(ctx, "missing", EntryKindDeposit, 10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown account, got %v", err)
	}
	// Check constraints back the validation layer.
	if _, err := st.RecordEntry(ctx, id, EntryKindDeposit, 0); !errors.Is(err, ErrIntegrityViolation) {
		t.Fatalf("expected ErrIntegrityViolation for amount 0, got %v", err)
	}
	if _, err := st.RecordEntry(ctx, id, "bogus_kind", 10); !errors.Is(err, ErrIntegrityViolation) {
		t.Fatalf("expected ErrIntegrityViolation for bogus kind, got %v", err)
	}
}

func TestListLedgerEntries(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	a := mustCreateAccount(t, st, ctx, "Dan", 0)
	b := mustCreateAccount(t, st, ctx, "Eve", 0)
	for i := 0; i < 3; i++ {
		if _, err := st.RecordEntry(ctx, a, EntryKindDeposit, int64(100+i)); err != nil {
			t.Fatalf("deposit: %v", err)
		}
	}
	if _, err := st.RecordEntry(ctx, b, EntryKindDeposit, 999); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	items, err := st.ListLedgerEntries(ctx, LedgerFilter{AccountID: a}, 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 entries for account, got %d", len(items))
	}
	for _, e := range items {
		if e.AccountID != a {
			t.Fatalf("entry for wrong account: %+v", e)
		}
	}
	// Newest first, ULID-tiebroken.
	if items[0].Amount != 102 || items[2].Amount != 100 {
		t.Fatalf("unexpected ordering: %+v", items)
	}

	kinds, err := st.ListLedgerEntries(ctx, LedgerFilter{Kind: EntryKindDeposit}, 10, 0)
	if err != nil {
		t.Fatalf("list by kind: %v", err)
	}
	if len(kinds) != 4 {
		t.Fatalf("expected 4 deposits, got %d", len(kinds))
	}
}
