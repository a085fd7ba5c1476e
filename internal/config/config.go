package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// ───── Infrastructure ─────
	MongoURI  string
	MongoDB   string
	RedisAddr string

	// ───── Runtime ─────
	HTTPAddr    string
	ObsHTTPAddr string
	ServiceName string
	LogLevel    string

	// ───── Uploads ─────
	UploadDir string

	// ───── Security ─────
	BcryptCost int

	// ───── Observability ─────
	TracingEnabled bool
	OTLPEndpoint   string
}

func Load() Config {
	return Config{
		// Infra
		MongoURI:  getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   getEnv("MONGO_DB", "login-tut"),
		RedisAddr: getEnv("REDIS_ADDR", ""),

		// Runtime
		HTTPAddr:    fixPort(getEnv("PORT", "3000")),
		ObsHTTPAddr: fixPort(getEnv("OBS_HTTP_ADDR", "9091")),
		ServiceName: getEnv("SERVICE_NAME", "accounts"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// Uploads
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		// Security
		BcryptCost: getEnvInt("BCRYPT_COST", 10),

		// Observability
		TracingEnabled: getEnvBool("TRACING_ENABLED", false),
		OTLPEndpoint:   getEnv("OTLP_ENDPOINT", "otel-collector:4317"),
	}
}

func fixPort(port string) string {
	if port != "" && !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}

func getEnv(k, d string) string {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	return v
}

func getEnvInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int env %s: %v", k, err)
	}
	return i
}

func getEnvBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	return strings.ToLower(v) == "true"
}
