package bets

import "time"

type PlaceResponse struct {
	BetID     string `json:"bet_id"`
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
}

type SettleResponse struct {
	BetID        string `json:"bet_id"`
	Result       string `json:"result"`
	PayoutAmount int64  `json:"payout_amount"`
	Status       string `json:"status"`
}

type HistoryResponse struct {
	Items []BetItem `json:"items"`
}

type BetItem struct {
	BetID        string     `json:"bet_id"`
	AccountID    string     `json:"account_id"`
	Amount       int64      `json:"amount"`
	Status       string     `json:"status"`
	Result       *string    `json:"result"`
	PayoutAmount int64      `json:"payout_amount"`
	CreatedAt    time.Time  `json:"created_at"`
	SettledAt    *time.Time `json:"settled_at"`
}
