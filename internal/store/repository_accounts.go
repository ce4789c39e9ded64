package store

import (
	"context"
)

func (s *Store) CreateAccount(ctx context.Context, displayName string) (string, error) {
	id := NewID()
	_, err := s.Pool.Exec(ctx, `INSERT INTO accounts (id, display_name) VALUES ($1,$2)`, id, displayName)
	if err != nil {
		return "", mapPgError(err)
	}
	return id, nil
}

func (s *Store) GetAccount(ctx context.Context, id string) (*Account, error) {
	row := s.Pool.QueryRow(ctx, `SELECT id, display_name, created_at FROM accounts WHERE id = $1`, id)
	var a Account
	if err := row.Scan(&a.ID, &a.DisplayName, &a.CreatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &a, nil
}

func (s *Store) FindAccountByDisplayName(ctx context.Context, displayName string) (*Account, error) {
	row := s.Pool.QueryRow(ctx, `SELECT id, display_name, created_at FROM accounts WHERE display_name = $1 ORDER BY created_at ASC LIMIT 1`, displayName)
	var a Account
	if err := row.Scan(&a.ID, &a.DisplayName, &a.CreatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &a, nil
}

// ListAccountBalances folds every account's entries in one statement so
// the listing is a consistent snapshot.
func (s *Store) ListAccountBalances(ctx context.Context) ([]AccountBalance, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT a.id, a.display_name,
		       COALESCE(SUM(CASE WHEN e.kind = 'bet_debit' THEN -e.amount ELSE e.amount END), 0)::bigint AS balance
		FROM accounts a
		LEFT JOIN ledger_entries e ON e.account_id = a.id
		GROUP BY a.id, a.display_name
		ORDER BY a.display_name ASC
	`)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()
	out := []AccountBalance{}
	for rows.Next() {
		var b AccountBalance
		if err := rows.Scan(&b.AccountID, &b.DisplayName, &b.Balance); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
