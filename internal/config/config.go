package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBDSN    string
	LogFile  string
	MediaDir string

	// Production switches the order flow from "fall back to the Telegram
	// deep link" to "surface relay failures to the customer".
	Production bool

	AdminPassword string

	TelegramBotToken string
	TelegramChatID   string
	// Bot handle used for the t.me fallback deep link and the chat widget.
	TelegramBotUsername string

	// RelayURL is where checkout posts orders. Empty means the app's own
	// /api/order endpoint on localhost.
	RelayURL string

	GeminiAPIKey string
	GeminiModel  string
}

func Load() Config {
	// .env is optional; real env always wins.
	_ = godotenv.Load()

	cfg := Config{
		Port:                getenv("PORT", "8080"),
		DBDSN:               getenv("DB_DSN", "sudsshop.db"),
		LogFile:             getenv("LOG_FILE", "./sudsshop.log"),
		MediaDir:            getenv("MEDIA_DIR", "./web/media"),
		Production:          os.Getenv("APP_ENV") == "production",
		AdminPassword:       getenv("ADMIN_PASSWORD", "123"),
		TelegramBotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:      os.Getenv("TELEGRAM_CHAT_ID"),
		TelegramBotUsername: getenv("TELEGRAM_BOT_USERNAME", "LoukNisLoukNosBot"),
		RelayURL:            os.Getenv("ORDER_RELAY_URL"),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		GeminiModel:         getenv("GEMINI_MODEL", "gemini-1.5-flash"),
	}
	if cfg.RelayURL == "" {
		cfg.RelayURL = "http://127.0.0.1:" + cfg.Port + "/api/order"
	}

	log.Printf("[config] PORT=%s DB_DSN=%s APP_ENV_PROD=%v RELAY=%s BOT=@%s",
		cfg.Port, cfg.DBDSN, cfg.Production, cfg.RelayURL, cfg.TelegramBotUsername)
	return cfg
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
