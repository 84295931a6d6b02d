package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// LLMProvider is the engine used when a request does not name one: "gemini" | "gpt".
	LLMProvider  string
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	AnalyzeTimeout    time.Duration
	AnalyzeTimeoutMax time.Duration
	CORSAllowOrigin   string

	// bot only
	ProxyURL         string
	TelegramBotToken string
	WebhookURL       string
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getSeconds(k string, def int) time.Duration {
	v, err := strconv.Atoi(getEnv(k, strconv.Itoa(def)))
	if err != nil || v <= 0 {
		log.Printf("config: bad %s, using %ds", k, def)
		v = def
	}
	return time.Duration(v) * time.Second
}

// Load reads .env (if present) and the process environment.
// Provider keys are optional here: a missing key is reported per request.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: .env not loaded: %v", err)
	}

	return &Config{
		Port: getEnv("PORT", "8000"),

		LLMProvider:  strings.ToLower(getEnv("LLM_PROVIDER", "gemini")),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		AnalyzeTimeout:    getSeconds("ANALYZE_TIMEOUT_SEC", 30),
		AnalyzeTimeoutMax: getSeconds("ANALYZE_TIMEOUT_MAX_SEC", 120),
		CORSAllowOrigin:   getEnv("CORS_ALLOW_ORIGIN", "*"),

		ProxyURL:         getEnv("PROXY_URL", "http://localhost:8000"),
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		WebhookURL:       getEnv("WEBHOOK_URL", ""),
	}
}
