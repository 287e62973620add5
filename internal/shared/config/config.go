package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Risk data sources.
const (
	SourceFile     = "file"
	SourceObject   = "object"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	LogLevel        string
	CORSAllowOrigin []string

	RiskSource    string
	RiskDataPath  string
	RiskObjectKey string
	RiskTable     string

	ObjectStoreType string
	LocalStoreDir   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string

	DatabaseURL string
	SQLitePath  string

	DefaultTopK int
	MaxTopK     int

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		RiskSource:      normalizeSource(getEnv("RISK_SOURCE", SourceFile)),
		RiskDataPath:    getEnv("RISK_DATA_PATH", "data/customer_risk_explanations.csv"),
		RiskObjectKey:   getEnv("RISK_OBJECT_KEY", "customer_risk_explanations.csv"),
		RiskTable:       getEnv("RISK_TABLE", "customer_risk"),
		ObjectStoreType: normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", "./data"),
		AWSRegion:       getEnv("AWS_REGION", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", ""),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SQLitePath:      getEnv("SQLITE_PATH", "data/risk.db"),
		DefaultTopK:     getEnvInt("AGENT_DEFAULT_TOP_K", 10),
		MaxTopK:         getEnvInt("AGENT_MAX_TOP_K", 100),
		RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 20),
	}
}

// loadEnvFiles loads KEY=VALUE pairs from the given files if they exist.
// Variables already present in the environment are not overridden.
func loadEnvFiles(paths ...string) {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		_ = godotenv.Load(path)
	}
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return def
	}
	return val
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || val < 0 {
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

// normalizeSource maps aliases onto the known sources. Unknown values are
// passed through so startup can reject them.
func normalizeSource(raw string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "", SourceFile, "csv":
		return SourceFile
	case SourceObject, "s3":
		return SourceObject
	case SourcePostgres, "pg":
		return SourcePostgres
	case SourceSQLite:
		return SourceSQLite
	default:
		return v
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
