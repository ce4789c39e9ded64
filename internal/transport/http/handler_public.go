package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	appbets "github.com/xiaocao-xixi/betting-system/internal/app/bets"
	apppublic "github.com/xiaocao-xixi/betting-system/internal/app/public"
)

type PublicHandlers struct {
	publicSvc *apppublic.Service
	betsSvc   *appbets.Service
}

func NewPublicHandlers(publicSvc *apppublic.Service, betsSvc *appbets.Service) *PublicHandlers {
	return &PublicHandlers{publicSvc: publicSvc, betsSvc: betsSvc}
}

func (h *PublicHandlers) Accounts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.publicSvc.Accounts(r.Context())
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *PublicHandlers) Balance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := chi.URLParam(r, "account_id")
		resp, err := h.publicSvc.Balance(r.Context(), accountID)
		if err != nil {
			switch {
			case errors.Is(err, apppublic.ErrInvalidRequest):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			case errors.Is(err, apppublic.ErrAccountNotFound):
				WriteHTTPError(w, http.StatusNotFound, "account_not_found")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func (h *PublicHandlers) Bets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := chi.URLParam(r, "account_id")
		resp, err := h.betsSvc.History(r.Context(), accountID)
		if err != nil {
			if errors.Is(err, appbets.ErrAccountNotFound) {
				WriteHTTPError(w, http.StatusNotFound, "account_not_found")
				return
			}
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
