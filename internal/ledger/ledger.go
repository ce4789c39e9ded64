// Package ledger owns entry-kind semantics: which kinds exist, how they
// fold into a balance, and the validation applied before anything is
// appended to the entry log.
package ledger

import (
	"context"
	"errors"

	"github.com/xiaocao-xixi/betting-system/internal/store"
)

var (
	ErrInvalidAmount   = errors.New("invalid_amount")
	ErrInvalidKind     = errors.New("invalid_kind")
	ErrAccountNotFound = errors.New("account_not_found")
)

type Ledger struct {
	Store *store.Store
}

func New(s *store.Store) *Ledger {
	return &Ledger{Store: s}
}

// Balance is always derived fresh from the entry log; there is no cached
// balance anywhere to go stale.
func (l *Ledger) Balance(ctx context.Context, accountID string) (int64, error) {
	bal, err := l.Store.AccountBalance(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, ErrAccountNotFound
		}
		return 0, err
	}
	return bal, nil
}

func (l *Ledger) Record(ctx context.Context, accountID, kind string, amount int64) (*store.LedgerEntry, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	switch kind {
	case store.EntryKindDeposit, store.EntryKindBetDebit, store.EntryKindBetCredit:
	default:
		return nil, ErrInvalidKind
	}
	e, err := l.Store.RecordEntry(ctx, accountID, kind, amount)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return e, nil
}

func (l *Ledger) Deposit(ctx context.Context, accountID string, amount int64) (*store.LedgerEntry, error) {
	return l.Record(ctx, accountID, store.EntryKindDeposit, amount)
}
