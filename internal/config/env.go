package config

import (
	"os"
	"strconv"
)

// FromEnv applies environment variable overrides on top of cfg.
func FromEnv(cfg Config) Config {
	if val := os.Getenv("TODO_DATA_DIR"); val != "" {
		cfg.DataDir = val
	}
	if val := getEnvInt("TODO_REMINDER_MINUTES"); val > 0 {
		cfg.ReminderMinutes = val
	}
	if val := os.Getenv("TODO_NO_COLOR"); val != "" {
		cfg.NoColor = val == "1" || val == "true"
	}
	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
