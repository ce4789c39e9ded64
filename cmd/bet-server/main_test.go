package main

import (
	"context"
	"testing"

	"github.com/xiaocao-xixi/betting-system/internal/config"
	"github.com/xiaocao-xixi/betting-system/internal/store"
	"github.com/xiaocao-xixi/betting-system/internal/testutil"
)

func TestSeedDemoAccountsIdempotent(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	cfg := config.SeedConfig{DemoAccounts: 3, DepositAmount: 1000}
	for run := 1; run <= 2; run++ {
		if err := seedDemoAccounts(ctx, st, cfg); err != nil {
			t.Fatalf("seed run %d: %v", run, err)
		}
	}

	accounts, err := st.ListAccountBalances(ctx)
	if err != nil {
		t.Fatalf("list accounts: %v", err)
	}
	if len(accounts) != 3 {
		t.Fatalf("accounts after two seed runs = %d, want 3", len(accounts))
	}
	for _, a := range accounts {
		if a.Balance != 1000 {
			t.Fatalf("%s balance = %d, want 1000", a.DisplayName, a.Balance)
		}
	}

	entries, err := st.ListLedgerEntries(ctx, store.LedgerFilter{Kind: store.EntryKindDeposit}, 50, 0)
	if err != nil {
		t.Fatalf("list deposits: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("deposit entries after two seed runs = %d, want 3", len(entries))
	}
}

func TestSeedDemoAccountsDisabled(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	if err := seedDemoAccounts(ctx, st, config.SeedConfig{}); err != nil {
		t.Fatalf("seed with zero accounts: %v", err)
	}
	accounts, err := st.ListAccountBalances(ctx)
	if err != nil {
		t.Fatalf("list accounts: %v", err)
	}
	if len(accounts) != 0 {
		t.Fatalf("accounts = %d, want 0", len(accounts))
	}
}
