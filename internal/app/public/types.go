package public

import "time"

type AccountsResponse struct {
	Items []AccountItem `json:"items"`
}

type AccountItem struct {
	AccountID   string `json:"account_id"`
	DisplayName string `json:"display_name"`
	Balance     int64  `json:"balance"`
}

type BalanceResponse struct {
	AccountID string `json:"account_id"`
	Balance   int64  `json:"balance"`
}

type LedgerResponse struct {
	Items  []LedgerItem `json:"items"`
	Limit  int          `json:"limit"`
	Offset int          `json:"offset"`
}

type LedgerItem struct {
	EntryID   string    `json:"entry_id"`
	AccountID string    `json:"account_id"`
	Kind      string    `json:"kind"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
