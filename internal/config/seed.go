package config

import "github.com/caarlos0/env/v11"

// SeedConfig controls demo-account seeding at startup. Zero accounts
// means no seeding.
type SeedConfig struct {
	DemoAccounts  int   `env:"SEED_DEMO_ACCOUNTS" envDefault:"0"`
	DepositAmount int64 `env:"SEED_DEPOSIT" envDefault:"1000"`
}

func LoadSeed() (SeedConfig, error) {
	var cfg SeedConfig
	err := env.Parse(&cfg)
	return cfg, err
}
