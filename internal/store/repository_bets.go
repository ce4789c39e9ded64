package store

import (
	"context"
	"math"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const winMultiplier = 2

// settlePayout is the payout law: win pays the stake times the fixed
// multiplier, lose pays nothing, void refunds the stake.
func settlePayout(result string, amount int64) (int64, error) {
	switch result {
	case BetResultWin:
		if amount > math.MaxInt64/winMultiplier {
			return 0, ErrIntegrityViolation
		}
		return amount * winMultiplier, nil
	case BetResultLose:
		return 0, nil
	case BetResultVoid:
		return amount, nil
	default:
		return 0, ErrIntegrityViolation
	}
}

// PlaceBet runs the balance check, the debit entry, and the bet row as
// one transaction. The account row lock serializes concurrent
// placements on the same account so both cannot pass the check against
// the same balance.
func (s *Store) PlaceBet(ctx context.Context, accountID string, amount int64) (*Bet, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var lockedID string
	row := tx.QueryRow(ctx, `SELECT id FROM accounts WHERE id = $1 FOR UPDATE`, accountID)
	if err := row.Scan(&lockedID); err != nil {
		return nil, mapNotFound(err)
	}
	bal, err := s.accountBalanceTx(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}
	if amount > bal {
		return nil, ErrInsufficientBalance
	}
	if err := s.insertEntryTx(ctx, tx, accountID, EntryKindBetDebit, amount); err != nil {
		return nil, err
	}
	b := Bet{ID: NewID(), AccountID: accountID, Amount: amount, Status: BetStatusPlaced}
	row = tx.QueryRow(ctx, `
		INSERT INTO bets (id, account_id, amount, status)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at
	`, b.ID, b.AccountID, b.Amount, b.Status)
	if err := row.Scan(&b.CreatedAt); err != nil {
		return nil, mapPgError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &b, nil
}

// SettleBet transitions a bet to settled exactly once. The bet row lock
// serializes concurrent settlements; the loser of the race sees the
// settled status and gets ErrAlreadySettled, never a second credit.
func (s *Store) SettleBet(ctx context.Context, betID, result string) (*Bet, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	b := Bet{ID: betID}
	row := tx.QueryRow(ctx, `SELECT account_id, amount, status FROM bets WHERE id = $1 FOR UPDATE`, betID)
	if err := row.Scan(&b.AccountID, &b.Amount, &b.Status); err != nil {
		return nil, mapNotFound(err)
	}
	if b.Status == BetStatusSettled {
		return nil, ErrAlreadySettled
	}
	payout, err := settlePayout(result, b.Amount)
	if err != nil {
		return nil, err
	}
	if payout > 0 {
		if err := s.insertEntryTx(ctx, tx, b.AccountID, EntryKindBetCredit, payout); err != nil {
			return nil, err
		}
	}
	row = tx.QueryRow(ctx, `
		UPDATE bets
		SET status = $1, result = $2, payout_amount = $3, settled_at = now()
		WHERE id = $4
		RETURNING created_at, settled_at
	`, BetStatusSettled, result, payout, betID)
	var settledAt pgtype.Timestamptz
	if err := row.Scan(&b.CreatedAt, &settledAt); err != nil {
		return nil, mapPgError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	b.Status = BetStatusSettled
	b.Result = result
	b.PayoutAmount = payout
	b.SettledAt = timePtrVal(settledAt)
	return &b, nil
}

func (s *Store) GetBet(ctx context.Context, id string) (*Bet, error) {
	row := s.Pool.QueryRow(ctx, `
		SELECT id, account_id, amount, status, result, payout_amount, created_at, settled_at
		FROM bets WHERE id = $1
	`, id)
	return scanBet(row)
}

func (s *Store) ListBetsByAccount(ctx context.Context, accountID string) ([]Bet, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT id, account_id, amount, status, result, payout_amount, created_at, settled_at
		FROM bets
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
	`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Bet{}
	for rows.Next() {
		b, err := scanBet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func scanBet(row pgx.Row) (*Bet, error) {
	var b Bet
	var result pgtype.Text
	var settledAt pgtype.Timestamptz
	if err := row.Scan(&b.ID, &b.AccountID, &b.Amount, &b.Status, &result, &b.PayoutAmount, &b.CreatedAt, &settledAt); err != nil {
		return nil, mapNotFound(err)
	}
	b.Result = textVal(result)
	b.SettledAt = timePtrVal(settledAt)
	return &b, nil
}
