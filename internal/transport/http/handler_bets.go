package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	appbets "github.com/xiaocao-xixi/betting-system/internal/app/bets"
	"github.com/xiaocao-xixi/betting-system/internal/store"
)

type BetsHandlers struct {
	betsSvc *appbets.Service
}

func NewBetsHandlers(betsSvc *appbets.Service) *BetsHandlers {
	return &BetsHandlers{betsSvc: betsSvc}
}

func (h *BetsHandlers) Place() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			AccountID string `json:"account_id"`
			Amount    int64  `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		if body.AccountID == "" {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		resp, err := h.betsSvc.Place(r.Context(), body.AccountID, body.Amount)
		if err != nil {
			switch {
			case errors.Is(err, appbets.ErrInvalidAmount):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_amount")
			case errors.Is(err, appbets.ErrInsufficientBalance):
				WriteHTTPError(w, http.StatusBadRequest, "insufficient_balance")
			case errors.Is(err, appbets.ErrAccountNotFound):
				WriteHTTPError(w, http.StatusNotFound, "account_not_found")
			case errors.Is(err, store.ErrIntegrityViolation):
				WriteHTTPError(w, http.StatusInternalServerError, "integrity_violation")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *BetsHandlers) Settle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		betID := chi.URLParam(r, "bet_id")
		var body struct {
			Result string `json:"result"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		resp, err := h.betsSvc.Settle(r.Context(), betID, body.Result)
		if err != nil {
			switch {
			case errors.Is(err, appbets.ErrInvalidResult):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_result")
			case errors.Is(err, appbets.ErrAlreadySettled):
				WriteHTTPError(w, http.StatusBadRequest, "already_settled")
			case errors.Is(err, appbets.ErrBetNotFound):
				WriteHTTPError(w, http.StatusNotFound, "bet_not_found")
			case errors.Is(err, store.ErrIntegrityViolation):
				WriteHTTPError(w, http.StatusInternalServerError, "integrity_violation")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
