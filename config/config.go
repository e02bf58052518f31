package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string

	MongoDBURI      string
	MongoDBDatabase string

	// Alert detection thresholds. Defaults mirror the documented support
	// SLA; every value is tunable per deployment.
	SLABreachHours        float64
	AgingQueryHours       float64
	OverdueHours          float64
	ToneScoreCutoff       float64
	FactualAccuracyCutoff float64
	ResponseRateWarnPct   float64
	TopIssuesLimit        int
	SensitiveTopics       []string

	// Daily report schedule, wall-clock IST.
	ScheduleHour   int
	ScheduleMinute int

	// Maximum [start_date, end_date] span accepted by the list endpoint.
	MaxRangeDays int
}

func Load() *Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		MongoDBURI:      getEnv("MONGODB_URI", ""),
		MongoDBDatabase: getEnv("MONGODB_DATABASE", "supportpulse"),

		SLABreachHours:        getEnvFloat("SLA_BREACH_HOURS", 4),
		AgingQueryHours:       getEnvFloat("AGING_QUERY_HOURS", 48),
		OverdueHours:          getEnvFloat("OVERDUE_HOURS", 24),
		ToneScoreCutoff:       getEnvFloat("TONE_SCORE_CUTOFF", 5.0),
		FactualAccuracyCutoff: getEnvFloat("FACTUAL_ACCURACY_CUTOFF", 80),
		ResponseRateWarnPct:   getEnvFloat("RESPONSE_RATE_WARN_PCT", 60),
		TopIssuesLimit:        getEnvInt("TOP_ISSUES_LIMIT", 3),
		SensitiveTopics:       getEnvList("SENSITIVE_TOPICS", "refund,payment,billing,cancellation"),

		ScheduleHour:   getEnvInt("REPORT_SCHEDULE_HOUR", 20),
		ScheduleMinute: getEnvInt("REPORT_SCHEDULE_MINUTE", 0),

		MaxRangeDays: getEnvInt("MAX_RANGE_DAYS", 92),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
