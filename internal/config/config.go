package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gameinfo/internal/common"

	"github.com/joho/godotenv"
)

const (
	DefaultRegion         = "euw1"
	DefaultPrefix         = "!"
	DefaultApiKeyFile     = "api_key"
	DefaultCommandTimeout = 30 * time.Second
	DefaultRateLimits     = "20:1s,100:2m"
)

// Config holds every value read at startup. It is never modified afterwards
type Config struct {
	// Discord
	DiscordToken  string
	CommandPrefix string

	// Riot API
	RiotApiKey   string
	RiotRegion   string
	RiotBaseUrl  string
	Restrictions []common.Restriction

	CommandTimeout time.Duration

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment, after loading a .env file if present
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration out of a lookup function
func FromEnv(getenv func(string) string) (Config, error) {

	get := func(key, defaultValue string) string {
		if value := strings.TrimSpace(getenv(key)); value != "" {
			return value
		}
		return defaultValue
	}

	cfg := Config{
		DiscordToken:  get("DISCORD_BOT_TOKEN", ""),
		CommandPrefix: get("COMMAND_PREFIX", DefaultPrefix),
		RiotApiKey:    get("RIOT_API_KEY", ""),
		RiotRegion:    get("RIOT_REGION", DefaultRegion),
		RiotBaseUrl:   get("RIOT_BASE_URL", ""),
		LogLevel:      get("LOG_LEVEL", "info"),
		LogFormat:     get("LOG_FORMAT", "console"),
	}

	if cfg.DiscordToken == "" {
		return Config{}, fmt.Errorf("DISCORD_BOT_TOKEN is required")
	}

	// The key can live in a file next to the binary
	if cfg.RiotApiKey == "" {
		filename := get("RIOT_API_KEY_FILE", DefaultApiKeyFile)
		key, err := ReadApiKey(filename)
		if err != nil {
			return Config{}, fmt.Errorf("RIOT_API_KEY is not set and the key file could not be read: %w", err)
		}
		cfg.RiotApiKey = key
	}

	timeout, err := strconv.Atoi(get("COMMAND_TIMEOUT_SECONDS", strconv.Itoa(int(DefaultCommandTimeout.Seconds()))))
	if err != nil || timeout <= 0 {
		return Config{}, fmt.Errorf("invalid COMMAND_TIMEOUT_SECONDS: %q", getenv("COMMAND_TIMEOUT_SECONDS"))
	}
	cfg.CommandTimeout = time.Duration(timeout) * time.Second

	restrictions, err := ParseRestrictions(get("RIOT_RATE_LIMITS", DefaultRateLimits))
	if err != nil {
		return Config{}, fmt.Errorf("invalid RIOT_RATE_LIMITS: %w", err)
	}
	cfg.Restrictions = restrictions

	switch cfg.LogFormat {
	case "console", "json":
	default:
		return Config{}, fmt.Errorf("invalid LOG_FORMAT: %q", cfg.LogFormat)
	}

	return cfg, nil
}

func ReadApiKey(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("file %s is empty", filename)
	}
	return key, nil
}

// Parse restrictions written as "requests:duration" separated by commas, e.g. "20:1s,100:2m"
func ParseRestrictions(value string) ([]common.Restriction, error) {
	var restrictions []common.Restriction
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		requestsString, durationString, found := strings.Cut(item, ":")
		if !found {
			return nil, fmt.Errorf("restriction %q is not of the form requests:duration", item)
		}
		requests, err := strconv.Atoi(requestsString)
		if err != nil || requests <= 0 {
			return nil, fmt.Errorf("restriction %q has an invalid number of requests", item)
		}
		duration, err := time.ParseDuration(durationString)
		if err != nil || duration <= 0 {
			return nil, fmt.Errorf("restriction %q has an invalid duration", item)
		}
		restrictions = append(restrictions, common.Restriction{Requests: requests, Duration: duration})
	}
	return restrictions, nil
}
