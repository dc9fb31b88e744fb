package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("STREAMD_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("STREAMD_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("STREAMD_LISTEN")
}

func GetPort() int {
	port := os.Getenv("STREAMD_PORT")
	if port == "" {
		return 8080
	}
	p, err := strconv.Atoi(port)
	if err != nil {
		return 8080
	}
	return p
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("STREAMD_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/streamd"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("STREAMD_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

// GetSessionSecret returns the cookie session signing secret. The default
// is only meant for local development.
func GetSessionSecret() string {
	secret := os.Getenv("STREAMD_SESSION_SECRET")
	if secret == "" {
		secret = "streamd-dev-secret"
	}
	return secret
}

// GetTicketSecret returns the HMAC secret used to sign playback tickets.
// Falls back to the session secret when unset.
func GetTicketSecret() string {
	secret := os.Getenv("STREAMD_TICKET_SECRET")
	if secret == "" {
		secret = GetSessionSecret()
	}
	return secret
}

func GetConfigFilePath() string {
	path := os.Getenv("STREAMD_CONFIG")
	if path == "" {
		path = "streamd.toml"
	}
	return path
}
