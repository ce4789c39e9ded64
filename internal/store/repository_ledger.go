package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

type LedgerFilter struct {
	AccountID string
	Kind      string
	From      *time.Time
	To        *time.Time
}

const balanceFold = `COALESCE(SUM(CASE WHEN e.kind = 'bet_debit' THEN -e.amount ELSE e.amount END), 0)::bigint`

// AccountBalance folds the account's full entry log. No row means the
// account is not in the directory.
func (s *Store) AccountBalance(ctx context.Context, accountID string) (int64, error) {
	row := s.Pool.QueryRow(ctx, `
		SELECT `+balanceFold+`
		FROM accounts a
		LEFT JOIN ledger_entries e ON e.account_id = a.id
		WHERE a.id = $1
		GROUP BY a.id
	`, accountID)
	var bal int64
	if err := row.Scan(&bal); err != nil {
		return 0, mapPgError(mapNotFound(err))
	}
	return bal, nil
}

func (s *Store) accountBalanceTx(ctx context.Context, tx pgx.Tx, accountID string) (int64, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+balanceFold+`
		FROM ledger_entries e
		WHERE e.account_id = $1
	`, accountID)
	var bal int64
	if err := row.Scan(&bal); err != nil {
		return 0, mapPgError(err)
	}
	return bal, nil
}

// RecordEntry appends one immutable entry. Entries are never updated or
// deleted; a missing account surfaces as ErrNotFound via the FK.
func (s *Store) RecordEntry(ctx context.Context, accountID, kind string, amount int64) (*LedgerEntry, error) {
	e := LedgerEntry{ID: NewID(), AccountID: accountID, Kind: kind, Amount: amount}
	row := s.Pool.QueryRow(ctx, `
		INSERT INTO ledger_entries (id, account_id, kind, amount)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at
	`, e.ID, e.AccountID, e.Kind, e.Amount)
	if err := row.Scan(&e.CreatedAt); err != nil {
		return nil, mapPgError(err)
	}
	return &e, nil
}

func (s *Store) insertEntryTx(ctx context.Context, tx pgx.Tx, accountID, kind string, amount int64) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO ledger_entries (id, account_id, kind, amount)
		VALUES ($1,$2,$3,$4)
	`, NewID(), accountID, kind, amount)
	return mapPgError(err)
}

func (s *Store) ListLedgerEntries(ctx context.Context, f LedgerFilter, limit, offset int) ([]LedgerEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	where := "WHERE 1=1"
	args := []any{}
	if f.AccountID != "" {
		args = append(args, f.AccountID)
		where += fmt.Sprintf(" AND account_id = $%d", len(args))
	}
	if f.Kind != "" {
		args = append(args, f.Kind)
		where += fmt.Sprintf(" AND kind = $%d", len(args))
	}
	if f.From != nil {
		args = append(args, *f.From)
		where += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if f.To != nil {
		args = append(args, *f.To)
		where += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	args = append(args, limit, offset)
	q := `SELECT id, account_id, kind, amount, created_at FROM ledger_entries ` + where +
		fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	rows, err := s.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []LedgerEntry{}
	for rows.Next() {
		var e LedgerEntry
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Kind, &e.Amount, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
