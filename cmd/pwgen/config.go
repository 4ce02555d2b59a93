package main

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// config carries environment-provided defaults for the positional arguments.
// Explicit positionals always win; PWGEN_COUNT of 0 means "pick per layout"
// (a screenful in column mode, one password with -1).
type config struct {
	Length int `env:"PWGEN_LENGTH" envDefault:"8"`
	Count  int `env:"PWGEN_COUNT" envDefault:"0"`
}

// loadConfig reads defaults from the environment. A missing .env file is not
// an error; a malformed PWGEN_* value is.
func loadConfig() (config, error) {
	_ = godotenv.Load()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}
