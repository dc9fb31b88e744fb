package config

import (
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors the optional TOML config file. Every field has an
// environment-variable counterpart; environment values win.
type FileConfig struct {
	Listen        string `toml:"listen"`
	Port          int    `toml:"port"`
	DBFolder      string `toml:"db_folder"`
	LogFolder     string `toml:"log_folder"`
	LogLevel      string `toml:"log_level"`
	SessionSecret string `toml:"session_secret"`
	TicketSecret  string `toml:"ticket_secret"`
}

// LoadFile reads the TOML config file, if present, and applies its values
// to the corresponding environment variables that are still unset. A
// missing file is not an error.
func LoadFile() error {
	data, err := os.ReadFile(GetConfigFilePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var fc FileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return err
	}

	setIfEmpty("STREAMD_LISTEN", fc.Listen)
	if fc.Port > 0 {
		setIfEmpty("STREAMD_PORT", strconv.Itoa(fc.Port))
	}
	setIfEmpty("STREAMD_DB_FOLDER", fc.DBFolder)
	setIfEmpty("STREAMD_LOG_FOLDER", fc.LogFolder)
	setIfEmpty("STREAMD_LOG_LEVEL", fc.LogLevel)
	setIfEmpty("STREAMD_SESSION_SECRET", fc.SessionSecret)
	setIfEmpty("STREAMD_TICKET_SECRET", fc.TicketSecret)
	return nil
}

func setIfEmpty(key, value string) {
	if value == "" {
		return
	}
	if os.Getenv(key) == "" {
		os.Setenv(key, value)
	}
}
