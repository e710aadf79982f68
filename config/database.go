// file: config/database.go

package config

import (
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/motchii709/TRYV/models"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		// Используем логгер для критической ошибки
		slog.Error("Критическая ошибка: переменная окружения DB_URL не установлена.")
		os.Exit(1) // Завершаем работу приложения
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		// Логируем ошибку с деталями
		slog.Error("Ошибка подключения к БД", "error", err)
		os.Exit(1)
	}

	// Идемпотентно создаем таблицу событий с типизированной схемой.
	// Безопасно вызывается при каждом старте (аналог initialize у исходной таблицы).
	if err := db.AutoMigrate(&models.Event{}); err != nil {
		slog.Error("Ошибка миграции таблицы событий", "error", err)
		os.Exit(1)
	}

	DB = db
	slog.Info("Успешное подключение к базе данных!")
}
