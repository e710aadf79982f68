// TRYV/internal/services/settings_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Ключи настроек в Redis. Хранятся отдельно от таблицы событий.
const (
	WebhookURLKey  = "DISCORD_WEBHOOK_URL"
	PostMessageKey = "DISCORD_POST_MESSAGE"
)

// DefaultPostMessage - текст сообщения по умолчанию при публикации картинки.
const DefaultPostMessage = "今週の予定をお知らせします！"

// ErrSettingsUnavailable - хранилище настроек (Redis) не сконфигурировано.
var ErrSettingsUnavailable = errors.New("хранилище настроек недоступно")

// Settings - настройки публикации в Discord.
// Пустой WebhookURL означает, что публикация выключена.
type Settings struct {
	WebhookURL  string `json:"webhookUrl"`
	PostMessage string `json:"postMessage"`
}

// SettingsInput - частичное обновление настроек: перезаписываются только
// непустые поля, остальные значения остаются нетронутыми.
// Сбросить значение в пустое через эту операцию нельзя.
type SettingsInput struct {
	WebhookURL  string `json:"webhookUrl"`
	PostMessage string `json:"postMessage"`
}

// GetSettings возвращает настройки с примененными значениями по умолчанию.
// Если Redis не подключен, возвращаются значения по умолчанию.
func GetSettings(ctx context.Context, rdb *redis.Client) (Settings, error) {
	settings := Settings{
		WebhookURL:  "",
		PostMessage: DefaultPostMessage,
	}
	if rdb == nil {
		return settings, nil
	}

	url, err := rdb.Get(ctx, WebhookURLKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return settings, fmt.Errorf("не удалось прочитать настройки: %w", err)
	}
	if url != "" {
		settings.WebhookURL = url
	}

	msg, err := rdb.Get(ctx, PostMessageKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return settings, fmt.Errorf("не удалось прочитать настройки: %w", err)
	}
	if msg != "" {
		settings.PostMessage = msg
	}

	return settings, nil
}

// SaveSettings сохраняет переданные непустые поля настроек.
func SaveSettings(ctx context.Context, rdb *redis.Client, input SettingsInput) error {
	if rdb == nil {
		return ErrSettingsUnavailable
	}

	if input.WebhookURL != "" {
		if err := rdb.Set(ctx, WebhookURLKey, input.WebhookURL, 0).Err(); err != nil {
			return fmt.Errorf("не удалось сохранить настройки: %w", err)
		}
	}
	if input.PostMessage != "" {
		if err := rdb.Set(ctx, PostMessageKey, input.PostMessage, 0).Err(); err != nil {
			return fmt.Errorf("не удалось сохранить настройки: %w", err)
		}
	}
	return nil
}
