package config

type AppConfig struct {
	Server ServerConfig
	Log    LogConfig
	Seed   SeedConfig
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	serverCfg, err := LoadServer()
	if err != nil {
		return AppConfig{}, err
	}
	seedCfg, err := LoadSeed()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Server: serverCfg,
		Log:    logCfg,
		Seed:   seedCfg,
	}, nil
}
