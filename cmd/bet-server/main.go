package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xiaocao-xixi/betting-system/internal/config"
	"github.com/xiaocao-xixi/betting-system/internal/ledger"
	"github.com/xiaocao-xixi/betting-system/internal/logging"
	"github.com/xiaocao-xixi/betting-system/internal/store"
	httptransport "github.com/xiaocao-xixi/betting-system/internal/transport/http"
)

func main() {
	logCfg, err := config.LoadLog()
	if err != nil {
		panic(err)
	}
	logging.Init(logCfg)
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal().Err(err).Msg("load server config failed")
	}
	seedCfg, err := config.LoadSeed()
	if err != nil {
		log.Fatal().Err(err).Msg("load seed config failed")
	}

	st, err := store.New(cfg.PostgresDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("store init failed")
	}
	defer st.Close()
	if err := st.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}

	if err := seedDemoAccounts(context.Background(), st, seedCfg); err != nil {
		log.Fatal().Err(err).Msg("seed demo accounts failed")
	}

	r := httptransport.NewRouter(st, cfg)
	httptransport.LogRoutes(r)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.HTTPAddr).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}

// seedDemoAccounts creates "Demo User 1..n" each funded with an initial
// deposit. Idempotent by display name so restarts don't double-fund.
func seedDemoAccounts(ctx context.Context, st *store.Store, cfg config.SeedConfig) error {
	if cfg.DemoAccounts <= 0 {
		return nil
	}
	led := ledger.New(st)
	for i := 1; i <= cfg.DemoAccounts; i++ {
		name := fmt.Sprintf("Demo User %d", i)
		if _, err := st.FindAccountByDisplayName(ctx, name); err == nil {
			continue
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		id, err := st.CreateAccount(ctx, name)
		if err != nil {
			return err
		}
		if _, err := led.Deposit(ctx, id, cfg.DepositAmount); err != nil {
			return err
		}
		log.Info().Str("account_id", id).Str("name", name).Int64("deposit", cfg.DepositAmount).Msg("seeded demo account")
	}
	return nil
}
