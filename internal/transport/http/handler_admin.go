package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	apppublic "github.com/xiaocao-xixi/betting-system/internal/app/public"
	"github.com/xiaocao-xixi/betting-system/internal/ledger"
	"github.com/xiaocao-xixi/betting-system/internal/store"
)

type AdminHandlers struct {
	store     *store.Store
	ledger    *ledger.Ledger
	publicSvc *apppublic.Service
}

func NewAdminHandlers(st *store.Store, led *ledger.Ledger, publicSvc *apppublic.Service) *AdminHandlers {
	return &AdminHandlers{store: st, ledger: led, publicSvc: publicSvc}
}

func (h *AdminHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.store.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "db": "down"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "db": "up"})
	}
}

func (h *AdminHandlers) CreateAccount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			DisplayName string `json:"display_name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_json")
			return
		}
		if strings.TrimSpace(body.DisplayName) == "" {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		id, err := h.store.CreateAccount(r.Context(), body.DisplayName)
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"account_id": id})
	}
}

func (h *AdminHandlers) Deposit() http.HandlerFunc {
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
		entry, err := h.ledger.Deposit(r.Context(), body.AccountID, body.Amount)
		if err != nil {
			switch {
			case errors.Is(err, ledger.ErrInvalidAmount):
				WriteHTTPError(w, http.StatusBadRequest, "invalid_amount")
			case errors.Is(err, ledger.ErrAccountNotFound):
				WriteHTTPError(w, http.StatusNotFound, "account_not_found")
			default:
				WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			}
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"entry_id": entry.ID})
	}
}

func (h *AdminHandlers) Ledger() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := ParsePagination(r)
		resp, err := h.publicSvc.Ledger(r.Context(), r.URL.Query().Get("account_id"), limit, offset)
		if err != nil {
			WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
