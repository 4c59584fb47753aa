package config

import "github.com/kelseyhightower/envconfig"

// CLIConfig configures the terminal trainer from VP_* environment variables.
type CLIConfig struct {
	GameID   string `envconfig:"GAME_ID" default:"jacks-or-better"`
	Credits  int64  `envconfig:"CREDITS" default:"200"`
	Bet      int    `envconfig:"BET" default:"5"`
	Seed     int64  `envconfig:"SEED" default:"0"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// DatabaseURL enables persistent accuracy tracking when set.
	DatabaseURL string `envconfig:"DATABASE_URL" default:""`
}

// LoadCLIConfig reads the trainer configuration from the environment.
func LoadCLIConfig() (CLIConfig, error) {
	var c CLIConfig
	err := envconfig.Process("vp", &c)
	return c, err
}
