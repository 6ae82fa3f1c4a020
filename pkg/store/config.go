package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config controls how a session store is assembled.
type Config struct {
	// Seed populates a fresh session with the sample events so one-shot
	// commands have something to operate on.
	Seed bool `json:"seed"`

	// Priority is the default priority filter for list views. "all"
	// disables filtering.
	Priority string `json:"priority"`
}

// LoadConfig reads .agenda.yaml from the working directory or home,
// honoring AGENDA_* environment overrides.
func LoadConfig() (*Config, error) {
	viper.SetDefault("seed", true)
	viper.SetDefault("priority", "all")
	viper.SetConfigName(".agenda") // .yaml is implicit
	viper.SetEnvPrefix("AGENDA")
	viper.AutomaticEnv()

	if override := os.Getenv("AGENDA_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(home)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	return &Config{
		Seed:     viper.GetBool("seed"),
		Priority: viper.GetString("priority"),
	}, nil
}
