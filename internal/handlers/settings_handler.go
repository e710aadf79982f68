// TRYV/internal/handlers/settings_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motchii709/TRYV/config"
	"github.com/motchii709/TRYV/internal/services"
)

// GetSettingsHandler возвращает настройки публикации со значениями по умолчанию.
func GetSettingsHandler(c *gin.Context) {
	settings, err := services.GetSettings(c.Request.Context(), config.RDB)
	if err != nil {
		slog.Error("Ошибка чтения настроек", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// SaveSettingsHandler сохраняет настройки публикации.
// Перезаписываются только непустые поля запроса.
func SaveSettingsHandler(c *gin.Context) {
	var input services.SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body: " + err.Error()})
		return
	}

	if err := services.SaveSettings(c.Request.Context(), config.RDB, input); err != nil {
		if errors.Is(err, services.ErrSettingsUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Хранилище настроек недоступно"})
			return
		}
		slog.Error("Ошибка сохранения настроек", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
