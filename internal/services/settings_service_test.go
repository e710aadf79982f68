package services

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestGetSettingsDefaults(t *testing.T) {
	rdb := newTestRedis(t)

	settings, err := GetSettings(context.Background(), rdb)
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.WebhookURL != "" {
		t.Errorf("expected empty webhook url, got %q", settings.WebhookURL)
	}
	if settings.PostMessage != DefaultPostMessage {
		t.Errorf("expected default post message, got %q", settings.PostMessage)
	}
}

func TestSaveSettingsPartialUpdate(t *testing.T) {
	rdb := newTestRedis(t)
	ctx := context.Background()

	if err := SaveSettings(ctx, rdb, SettingsInput{WebhookURL: "https://discord.example/webhook"}); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	settings, err := GetSettings(ctx, rdb)
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.WebhookURL != "https://discord.example/webhook" {
		t.Errorf("webhook url not saved: %q", settings.WebhookURL)
	}
	// Несохраненное поле остается значением по умолчанию.
	if settings.PostMessage != DefaultPostMessage {
		t.Errorf("post message should stay default, got %q", settings.PostMessage)
	}

	// Пустое поле не затирает уже сохраненное значение.
	if err := SaveSettings(ctx, rdb, SettingsInput{PostMessage: "новое сообщение"}); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	settings, err = GetSettings(ctx, rdb)
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.WebhookURL != "https://discord.example/webhook" {
		t.Errorf("webhook url was clobbered by partial save: %q", settings.WebhookURL)
	}
	if settings.PostMessage != "новое сообщение" {
		t.Errorf("post message not saved: %q", settings.PostMessage)
	}
}

func TestGetSettingsWithoutRedis(t *testing.T) {
	settings, err := GetSettings(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetSettings with nil client should not fail: %v", err)
	}
	if settings.WebhookURL != "" || settings.PostMessage != DefaultPostMessage {
		t.Errorf("expected defaults, got %+v", settings)
	}
}

func TestSaveSettingsWithoutRedis(t *testing.T) {
	err := SaveSettings(context.Background(), nil, SettingsInput{WebhookURL: "x"})
	if !errors.Is(err, ErrSettingsUnavailable) {
		t.Errorf("expected ErrSettingsUnavailable, got %v", err)
	}
}
