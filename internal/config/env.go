package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys read by ApplyEnv.
const (
	EnvCategory = "TUIPREP_CATEGORY"
	EnvBank     = "TUIPREP_BANK"
	EnvPlain    = "TUIPREP_PLAIN"
)

// LoadDotEnv loads variables from a .env file without overriding ones already set.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays environment values on top of file values.
func ApplyEnv(cfg PracticeConfig) (PracticeConfig, error) {
	if v := os.Getenv(EnvCategory); v != "" {
		cfg.Category = &v
	}
	if v := os.Getenv(EnvBank); v != "" {
		cfg.Bank = &v
	}
	if v := os.Getenv(EnvPlain); v != "" {
		plain, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s value %q: %w", EnvPlain, v, err)
		}
		cfg.Plain = &plain
	}
	return cfg, nil
}
