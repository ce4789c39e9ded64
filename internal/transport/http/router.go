package httptransport

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	appbets "github.com/xiaocao-xixi/betting-system/internal/app/bets"
	apppublic "github.com/xiaocao-xixi/betting-system/internal/app/public"
	"github.com/xiaocao-xixi/betting-system/internal/config"
	"github.com/xiaocao-xixi/betting-system/internal/ledger"
	"github.com/xiaocao-xixi/betting-system/internal/store"
)

func NewRouter(st *store.Store, cfg config.ServerConfig) *chi.Mux {
	led := ledger.New(st)
	betsSvc := appbets.NewService(st)
	publicSvc := apppublic.NewService(st, led)

	publicHandlers := NewPublicHandlers(publicSvc, betsSvc)
	betsHandlers := NewBetsHandlers(betsSvc)
	adminHandlers := NewAdminHandlers(st, led, publicSvc)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", adminHandlers.Health())

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())
		r.Get("/public/accounts", publicHandlers.Accounts())
		r.Get("/public/accounts/{account_id}/balance", publicHandlers.Balance())
		r.Get("/public/accounts/{account_id}/bets", publicHandlers.Bets())

		r.Post("/bets", betsHandlers.Place())
		r.Post("/bets/{bet_id}/settle", betsHandlers.Settle())

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.AdminAPIKey))
			r.Post("/accounts", adminHandlers.CreateAccount())
			r.Post("/deposit", adminHandlers.Deposit())
			r.Get("/ledger", adminHandlers.Ledger())
		})
	})

	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 16)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
