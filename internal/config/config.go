package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string // Postgres DSN
	RedisAddr     string // Адрес Redis для настроек посетителей
	Port          string // Порт HTTP сервера
	Environment   string
	TelegramToken string // Токен бота для уведомлений персонала (опционально)
	AdminChatID   int64  // Чат персонала площадки (опционально)
	SeedDemo      bool   // Засеивать ли демо-бронирования при пустой базе
	SiteOrigin    string // Origin сайта для CORS
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		Port:          os.Getenv("PORT"),
		Environment:   os.Getenv("ENV"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		SiteOrigin:    os.Getenv("SITE_ORIGIN"),
	}

	// Устанавливаем дефолтные значения
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	if cfg.SiteOrigin == "" {
		cfg.SiteOrigin = "*"
	}

	// Демо-засев включён по умолчанию: календарь не должен выглядеть пустым
	cfg.SeedDemo = true
	if v := os.Getenv("SEED_DEMO"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("SEED_DEMO must be a boolean, got %q", v)
		}
		cfg.SeedDemo = parsed
	}

	if v := os.Getenv("ADMIN_CHAT_ID"); v != "" {
		chatID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_CHAT_ID must be an integer, got %q", v)
		}
		cfg.AdminChatID = chatID
	}

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	log.Printf("Config loaded\n")

	return cfg, nil
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}
