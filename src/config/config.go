package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultHotkey triggers a capture of the selected test case.
	DefaultHotkey = "F12"
	// DefaultSettleDelay is the pause between minimize and grab.
	DefaultSettleDelay = 1500 * time.Millisecond
	// EnvPathVar points at an alternate .env file when none sits next to
	// the executable.
	EnvPathVar = "HYPERGRAB_ENV"
)

type Config struct {
	Hotkey            string
	SettleDelay       time.Duration
	EnableFileLogging bool
	OutputDir         string
	JournalPath       string
}

func Load() (*Config, error) {
	// Load configuration from sources in priority order:
	// 1) .env in the application (executable) directory
	// 2) If not found, use HYPERGRAB_ENV as a path to a config file
	if envPath := resolveEnvPath(); envPath != "" {
		_ = godotenv.Load(envPath)
	}

	settle := DefaultSettleDelay
	if v := os.Getenv("SETTLE_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			settle = time.Duration(n) * time.Millisecond
		}
	}

	cfg := &Config{
		Hotkey:            getEnvWithDefault("HOTKEY", DefaultHotkey),
		SettleDelay:       settle,
		EnableFileLogging: strings.ToLower(os.Getenv("ENABLE_FILE_LOGGING")) == "true",
		OutputDir:         os.Getenv("OUTPUT_DIR"),
		JournalPath:       os.Getenv("JOURNAL_PATH"),
	}

	return cfg, nil
}

func resolveEnvPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return ""
	}

	exeEnv := filepath.Join(filepath.Dir(execPath), ".env")
	if _, err := os.Stat(exeEnv); err == nil {
		return exeEnv
	}

	if alt := os.Getenv(EnvPathVar); alt != "" {
		if _, err := os.Stat(alt); err == nil {
			return alt
		}
	}

	return ""
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
