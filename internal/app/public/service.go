package public

import (
	"context"
	"errors"
	"regexp"
	"sort"
	"strconv"

	"github.com/xiaocao-xixi/betting-system/internal/ledger"
	"github.com/xiaocao-xixi/betting-system/internal/store"
)

type Service struct {
	store  *store.Store
	ledger *ledger.Ledger
}

func NewService(st *store.Store, led *ledger.Ledger) *Service {
	return &Service{store: st, ledger: led}
}

func (s *Service) Accounts(ctx context.Context) (*AccountsResponse, error) {
	items, err := s.store.ListAccountBalances(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AccountItem, 0, len(items))
	for _, it := range items {
		out = append(out, AccountItem{
			AccountID:   it.AccountID,
			DisplayName: it.DisplayName,
			Balance:     it.Balance,
		})
	}
	sortAccounts(out)
	return &AccountsResponse{Items: out}, nil
}

func (s *Service) Balance(ctx context.Context, accountID string) (*BalanceResponse, error) {
	if accountID == "" {
		return nil, ErrInvalidRequest
	}
	bal, err := s.ledger.Balance(ctx, accountID)
	if err != nil {
		if errors.Is(err, ledger.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &BalanceResponse{AccountID: accountID, Balance: bal}, nil
}

func (s *Service) Ledger(ctx context.Context, accountID string, limit, offset int) (*LedgerResponse, error) {
	items, err := s.store.ListLedgerEntries(ctx, store.LedgerFilter{AccountID: accountID}, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]LedgerItem, 0, len(items))
	for _, it := range items {
		out = append(out, LedgerItem{
			EntryID:   it.ID,
			AccountID: it.AccountID,
			Kind:      it.Kind,
			Amount:    it.Amount,
			CreatedAt: it.CreatedAt,
		})
	}
	return &LedgerResponse{Items: out, Limit: limit, Offset: offset}, nil
}

var displayNameNumber = regexp.MustCompile(`\d+`)

// sortAccounts orders by the numeric suffix of the display name when one
// exists ("Demo User 10" after "Demo User 9"), with a name compare as
// tiebreak and names without a number last.
func sortAccounts(items []AccountItem) {
	num := func(name string) (int, bool) {
		m := displayNameNumber.FindString(name)
		if m == "" {
			return 0, false
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	sort.SliceStable(items, func(i, j int) bool {
		ni, oki := num(items[i].DisplayName)
		nj, okj := num(items[j].DisplayName)
		if oki && okj && ni != nj {
			return ni < nj
		}
		if oki != okj {
			return oki
		}
		return items[i].DisplayName < items[j].DisplayName
	})
}
