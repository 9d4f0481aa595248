package config

import (
	"os"
	"strconv"
)

type Config struct {
	APIAddr            string
	Providers          string
	MinTextChars       int
	MaxUploadBytes     int64
	AnalyzeTimeoutSecs int
}

func Load() Config {
	return Config{
		APIAddr:            getenv("REDGUARD_API_ADDR", ":8080"),
		Providers:          getenv("REDGUARD_PROVIDERS", "mock"),
		MinTextChars:       getenvInt("REDGUARD_MIN_TEXT_CHARS", 50),
		MaxUploadBytes:     int64(getenvInt("REDGUARD_MAX_UPLOAD_MB", 128)) << 20,
		AnalyzeTimeoutSecs: getenvInt("REDGUARD_ANALYZE_TIMEOUT_SECONDS", 60),
	}
}

func getenv(k, fallback string) string {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	return v
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
