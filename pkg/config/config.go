package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenAddr    string
	PoWDifficulty uint32
	PoWTTL        time.Duration
	LogLevel      string
	ShutdownWait  time.Duration
	MetricsAddr   string
	QuotesFile    string
	LogFile       string
	LogMaxSizeMB  int
}

const DefaultDifficulty = 1000

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string, def int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

func atou32(s string, def uint32) uint32 {
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		return uint32(n)
	}
	return def
}

func Parse() Config {
	ttl, _ := time.ParseDuration(getenv("POW_TTL", "60s"))
	wait, _ := time.ParseDuration(getenv("SHUTDOWN_WAIT", "5s"))
	return Config{
		ListenAddr:    getenv("LISTEN_ADDR", ":8080"),
		PoWDifficulty: atou32(getenv("POW_DIFFICULTY", "1000"), DefaultDifficulty),
		PoWTTL:        ttl,
		LogLevel:      getenv("LOG_LEVEL", "info"),
		ShutdownWait:  wait,
		MetricsAddr:   os.Getenv("METRICS_ADDR"),
		QuotesFile:    os.Getenv("QUOTES_FILE"),
		LogFile:       os.Getenv("LOG_FILE"),
		LogMaxSizeMB:  atoi(getenv("LOG_MAX_SIZE_MB", "100"), 100),
	}
}
