package bets

import "errors"

var (
	ErrInvalidAmount       = errors.New("invalid_amount")
	ErrInvalidResult       = errors.New("invalid_result")
	ErrAccountNotFound     = errors.New("account_not_found")
	ErrInsufficientBalance = errors.New("insufficient_balance")
	ErrBetNotFound         = errors.New("bet_not_found")
	ErrAlreadySettled      = errors.New("already_settled")
)
