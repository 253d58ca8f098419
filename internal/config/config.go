package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Port               string
	AllowedOrigins     []string
	FrontendURL        string
	LogLevel           string
	LogPretty          bool
	BoardSizes         []int
	DefaultBoardSize   int
	Engine             EngineConfig
	RedisURL           string
	RedisPassword      string
	MoveCacheTTL       time.Duration
	SessionIdleTimeout time.Duration
}

// EngineConfig is the engine tuning surface as read from the environment.
type EngineConfig struct {
	NearRadius           int
	MoveCap              int
	CriticalShortcut     bool
	ThreatsForSideToMove bool
	MaxNodes             int
	Timeout              time.Duration
	Seed                 uint64
	EasyDepth            int
	MediumDepth          int
	HardDepth            int
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOrigins := []string{frontendURL}
	for _, origin := range strings.Split(GetEnv("ALLOWED_ORIGINS", ""), ",") {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			allowedOrigins = append(allowedOrigins, trimmed)
		}
	}

	boardSizes := GetEnvAsIntList("BOARD_SIZES", []int{12, 15})
	defaultBoardSize := GetEnvAsInt("DEFAULT_BOARD_SIZE", boardSizes[0])
	if !containsInt(boardSizes, defaultBoardSize) {
		log.Warn().Int("value", defaultBoardSize).Ints("board_sizes", boardSizes).Int("default", boardSizes[0]).
			Msg("DEFAULT_BOARD_SIZE not in BOARD_SIZES, using default")
		defaultBoardSize = boardSizes[0]
	}

	engine := EngineConfig{
		NearRadius:           GetEnvAsInt("NEAR_RADIUS", 2),
		MoveCap:              GetEnvAsInt("MOVE_CAP", 20),
		CriticalShortcut:     GetEnvAsBool("CRITICAL_SHORTCUT", true),
		ThreatsForSideToMove: GetEnvAsBool("THREATS_FOR_SIDE_TO_MOVE", false),
		MaxNodes:             GetEnvAsInt("SEARCH_MAX_NODES", 0),
		Timeout:              GetEnvAsDuration("SEARCH_TIMEOUT", 5*time.Second),
		Seed:                 uint64(GetEnvAsInt("ENGINE_SEED", 0)),
		EasyDepth:            GetEnvAsInt("EASY_DEPTH", 1),
		MediumDepth:          GetEnvAsInt("MEDIUM_DEPTH", 2),
		HardDepth:            GetEnvAsInt("HARD_DEPTH", 3),
	}

	AppConfig = &Config{
		Port:               port,
		AllowedOrigins:     allowedOrigins,
		FrontendURL:        frontendURL,
		LogLevel:           GetEnv("LOG_LEVEL", "info"),
		LogPretty:          GetEnvAsBool("LOG_PRETTY", false),
		BoardSizes:         boardSizes,
		DefaultBoardSize:   defaultBoardSize,
		Engine:             engine,
		RedisURL:           GetEnv("REDIS_URL", ""),
		RedisPassword:      GetEnv("REDIS_PASSWORD", ""),
		MoveCacheTTL:       GetEnvAsDuration("MOVE_CACHE_TTL", 30*time.Second),
		SessionIdleTimeout: GetEnvAsDuration("SESSION_IDLE_TIMEOUT", 10*time.Minute),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid integer, using default")
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Bool("default", defaultValue).Msg("invalid boolean, using default")
		return defaultValue
	}
	return value
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Dur("default", defaultValue).Msg("invalid duration, using default")
		return defaultValue
	}
	return value
}

// GetEnvAsIntList reads a comma separated list; any bad entry discards the whole value.
func GetEnvAsIntList(key string, defaultValue []int) []int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	values := []int{}
	for _, part := range strings.Split(valueStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			log.Warn().Str("key", key).Str("value", valueStr).Msg("invalid integer list, using default")
			return defaultValue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
