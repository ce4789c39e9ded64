// Package bets drives the bet lifecycle: a bet is placed against the
// current balance and later settled exactly once. Both state changes are
// single store transactions; this service validates inputs and maps
// store errors onto the caller-facing taxonomy.
package bets

import (
	"context"
	"errors"

	"github.com/xiaocao-xixi/betting-system/internal/store"
)

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) Place(ctx context.Context, accountID string, amount int64) (*PlaceResponse, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	b, err := s.store.PlaceBet(ctx, accountID, amount)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, ErrAccountNotFound
		case errors.Is(err, store.ErrInsufficientBalance):
			return nil, ErrInsufficientBalance
		}
		return nil, err
	}
	return &PlaceResponse{
		BetID:     b.ID,
		AccountID: b.AccountID,
		Amount:    b.Amount,
		Status:    b.Status,
	}, nil
}

func (s *Service) Settle(ctx context.Context, betID, result string) (*SettleResponse, error) {
	switch result {
	case store.BetResultWin, store.BetResultLose, store.BetResultVoid:
	default:
		return nil, ErrInvalidResult
	}
	b, err := s.store.SettleBet(ctx, betID, result)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, ErrBetNotFound
		case errors.Is(err, store.ErrAlreadySettled):
			return nil, ErrAlreadySettled
		}
		return nil, err
	}
	return &SettleResponse{
		BetID:        b.ID,
		Result:       b.Result,
		PayoutAmount: b.PayoutAmount,
		Status:       b.Status,
	}, nil
}

// History lists the account's bets, most recent first.
func (s *Service) History(ctx context.Context, accountID string) (*HistoryResponse, error) {
	if accountID == "" {
		return nil, ErrAccountNotFound
	}
	if _, err := s.store.GetAccount(ctx, accountID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	items, err := s.store.ListBetsByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	out := make([]BetItem, 0, len(items))
	for _, b := range items {
		out = append(out, toBetItem(b))
	}
	return &HistoryResponse{Items: out}, nil
}

func toBetItem(b store.Bet) BetItem {
	item := BetItem{
		BetID:        b.ID,
		AccountID:    b.AccountID,
		Amount:       b.Amount,
		Status:       b.Status,
		PayoutAmount: b.PayoutAmount,
		CreatedAt:    b.CreatedAt,
		SettledAt:    b.SettledAt,
	}
	if b.Result != "" {
		result := b.Result
		item.Result = &result
	}
	return item
}
