// TRYV/internal/handlers/discord_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motchii709/TRYV/config"
	"github.com/motchii709/TRYV/internal/services"
)

// PostImageInput - картинка расписания из веб-интерфейса,
// строка вида "data:image/png;base64,...".
type PostImageInput struct {
	Image string `json:"image" binding:"required"`
}

// PostScheduleHandler вручную запускает еженедельную публикацию расписания.
// Тот же код выполняется cron-задачей по расписанию.
func PostScheduleHandler(c *gin.Context) {
	if err := services.PostWeeklySchedule(c.Request.Context(), config.DB, config.RDB); err != nil {
		if errors.Is(err, services.ErrWebhookNotConfigured) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Вебхук Discord не настроен"})
			return
		}
		slog.Error("Ошибка публикации расписания", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Не удалось опубликовать расписание: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Расписание опубликовано"})
}

// PostImageHandler публикует картинку расписания на вебхук.
func PostImageHandler(c *gin.Context) {
	var input PostImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body: " + err.Error()})
		return
	}

	if err := services.PostImage(c.Request.Context(), config.RDB, input.Image); err != nil {
		if errors.Is(err, services.ErrWebhookNotConfigured) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Вебхук Discord не настроен"})
			return
		}
		slog.Error("Ошибка публикации изображения", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Не удалось опубликовать изображение: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Изображение опубликовано"})
}
