package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type APIConfig struct {
	Addr            string
	UserID          string
	Username        string
	RoundDuration   time.Duration
	EventEvery      time.Duration
	CatalogPath     string
	NotificationCap int
}

type CLIConfig struct {
	APIBaseURL string
	PlayerID   string
}

func LoadAPIFromEnv() APIConfig {
	addr := os.Getenv("PORT")
	if addr != "" {
		if !strings.HasPrefix(addr, ":") {
			addr = ":" + addr
		}
	} else {
		addr = envDefault("VENTURE_API_ADDR", ":8080")
	}

	return APIConfig{
		Addr:            addr,
		UserID:          envDefault("VENTURE_USER_ID", "demo_user"),
		Username:        envDefault("VENTURE_USERNAME", "You"),
		RoundDuration:   envDurationDefault("VENTURE_ROUND_DURATION", 15*time.Minute),
		EventEvery:      envDurationDefault("VENTURE_EVENT_EVERY", 10*time.Second),
		CatalogPath:     strings.TrimSpace(os.Getenv("VENTURE_CATALOG_PATH")),
		NotificationCap: envIntDefault("VENTURE_NOTIFICATION_CAP", 50),
	}
}

func LoadCLIFromEnv() CLIConfig {
	return CLIConfig{
		APIBaseURL: strings.TrimRight(envDefault("VNT_API_BASE_URL", "http://localhost:8080"), "/"),
		PlayerID:   envDefault("VNT_PLAYER_ID", ""),
	}
}

func envDefault(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func envDurationDefault(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func envIntDefault(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
