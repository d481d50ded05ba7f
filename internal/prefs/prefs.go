package prefs

import (
	"context"
	"time"

	"github.com/malwis/venue_backend/internal/i18n"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Ключи хранилища настроек посетителя
const (
	langKeyPrefix  = "malwis:lang:"
	introKeyPrefix = "malwis:intro_seen:"
)

// sessionTTL время жизни сессионного флага "интро показано"
// (аналог sessionStorage на клиенте)
const sessionTTL = 12 * time.Hour

// Store настройки посетителей поверх Redis. Любая ошибка чтения,
// включая повреждённое значение, трактуется как отсутствие данных —
// наружу возвращаются дефолты, без ошибок.
type Store struct {
	client *redis.Client
	logger *zap.Logger
}

func NewStore(client *redis.Client, logger *zap.Logger) *Store {
	return &Store{
		client: client,
		logger: logger,
	}
}

// Lang возвращает сохранённый язык посетителя или язык по умолчанию
func (s *Store) Lang(ctx context.Context, visitorID string) i18n.Lang {
	val, err := s.client.Get(ctx, langKeyPrefix+visitorID).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("Failed to read language preference", zap.Error(err))
		}
		return i18n.DefaultLang
	}

	lang, ok := i18n.ParseLang(val)
	if !ok {
		// Повреждённое значение — считаем что настройки нет
		return i18n.DefaultLang
	}

	return lang
}

// SetLang сохраняет выбранный язык посетителя
func (s *Store) SetLang(ctx context.Context, visitorID string, lang i18n.Lang) error {
	return s.client.Set(ctx, langKeyPrefix+visitorID, string(lang), 0).Err()
}

// IntroSeen проверяет показывали ли посетителю интро в этой сессии
func (s *Store) IntroSeen(ctx context.Context, visitorID string) bool {
	val, err := s.client.Get(ctx, introKeyPrefix+visitorID).Result()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("Failed to read intro flag", zap.Error(err))
		}
		return false
	}

	return val == "true"
}

// MarkIntroSeen помечает интро показанным на время сессии
func (s *Store) MarkIntroSeen(ctx context.Context, visitorID string) error {
	return s.client.Set(ctx, introKeyPrefix+visitorID, "true", sessionTTL).Err()
}
