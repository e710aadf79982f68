// TRYV - недельное расписание команды с публикацией в Discord.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/motchii709/TRYV/config"
	"github.com/motchii709/TRYV/internal/routes"
	"github.com/motchii709/TRYV/internal/services"
)

func main() {
	config.ConnectDB()
	config.ConnectRedis()

	// Еженедельная публикация расписания по cron-выражению.
	// По умолчанию - понедельник, 09:00.
	cronExpr := os.Getenv("POST_SCHEDULE_CRON")
	if cronExpr == "" {
		cronExpr = "0 9 * * 1"
	}

	c := cron.New()
	if _, err := c.AddFunc(cronExpr, func() {
		if err := services.PostWeeklySchedule(context.Background(), config.DB, config.RDB); err != nil {
			slog.Error("Еженедельная публикация не удалась", "error", err)
			return
		}
		slog.Info("Еженедельное расписание опубликовано")
	}); err != nil {
		slog.Error("Некорректное cron-выражение", "cron", cronExpr, "error", err)
		os.Exit(1)
	}
	c.Start()
	slog.Info("Планировщик публикации запущен", "cron", cronExpr)

	r := gin.Default()
	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		slog.Error("Ошибка запуска HTTP-сервера", "error", err)
		os.Exit(1)
	}
}
