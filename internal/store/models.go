package store

import "time"

const (
	EntryKindDeposit   = "deposit"
	EntryKindBetDebit  = "bet_debit"
	EntryKindBetCredit = "bet_credit"
)

const (
	BetStatusPlaced  = "placed"
	BetStatusSettled = "settled"
)

const (
	BetResultWin  = "win"
	BetResultLose = "lose"
	BetResultVoid = "void"
)

type Account struct {
	ID          string
	DisplayName string
	CreatedAt   time.Time
}

// AccountBalance pairs an account with its balance derived from the
// entry log at query time.
type AccountBalance struct {
	AccountID   string
	DisplayName string
	Balance     int64
}

type LedgerEntry struct {
	ID        string
	AccountID string
	Kind      string
	Amount    int64
	CreatedAt time.Time
}

type Bet struct {
	ID           string
	AccountID    string
	Amount       int64
	Status       string
	Result       string
	PayoutAmount int64
	CreatedAt    time.Time
	SettledAt    *time.Time
}
