package run

import (
	"log/slog"
	"strconv"
	"strings"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLog          = "ARGSTER_LOG"             // debug, info, warn or error; unset disables logging
	EnvLogFile      = "ARGSTER_LOG_FILE"        // log to a rotated file instead of stderr
	EnvLogMaxSizeMB = "ARGSTER_LOG_MAX_SIZE_MB" // rotate the log file at this size
	EnvNoColor      = "NO_COLOR"                // any value disables styled help
)

const (
	defaultLogMaxSizeMB = 10
	logMaxBackups       = 3
	logMaxAgeDays       = 28
)

// Config controls logging and styling.
type Config struct {
	Log          bool
	LogLevel     slog.Level
	LogFile      string
	LogMaxSizeMB int
	NoColor      bool
}

// ConfigFromEnv reads a Config from env.
func ConfigFromEnv(env Environ) (Config, error) {
	env.fillDefaults()
	cfg := Config{LogMaxSizeMB: defaultLogMaxSizeMB}

	if level, ok := env.LookupEnv(EnvLog); ok && strings.TrimSpace(level) != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
			return Config{}, ConfigError{EnvLog, level, err}
		}
		cfg.Log = true
	}
	cfg.LogFile = env.Getenv(EnvLogFile)
	if size := env.Getenv(EnvLogMaxSizeMB); size != "" {
		n, err := strconv.Atoi(size)
		if err == nil && n <= 0 {
			err = strconv.ErrRange
		}
		if err != nil {
			return Config{}, ConfigError{EnvLogMaxSizeMB, size, err}
		}
		cfg.LogMaxSizeMB = n
	}
	cfg.NoColor = env.Getenv(EnvNoColor) != ""
	return cfg, nil
}

// ConfigError reports an environment variable that could not be used.
type ConfigError struct {
	Var   string
	Value string
	Err   error
}

func (e ConfigError) Error() string {
	return e.Var + "=" + strconv.Quote(e.Value) + ": " + e.Err.Error()
}

func (e ConfigError) Unwrap() error { return e.Err }

// ExitCode is EX_CONFIG.
func (ConfigError) ExitCode() int { return 78 }
