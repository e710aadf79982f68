// TRYV/internal/routes/api_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/motchii709/TRYV/internal/handlers"
)

// RegisterAPIRoutes регистрирует все маршруты API.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	// Группа для всех API-запросов с префиксом /api
	apiGroup := api.Group("/api")
	{
		// --- СОБЫТИЯ РАСПИСАНИЯ ---
		events := apiGroup.Group("/events")
		{
			events.GET("", handlers.ListEventsHandler)
			events.POST("", handlers.CreateEventHandler)
			events.PUT("/:id", handlers.UpdateEventHandler)
			events.DELETE("/:id", handlers.DeleteEventHandler)
			events.GET("/export", handlers.ExportEventsHandler)
		}

		// --- НАСТРОЙКИ ПУБЛИКАЦИИ ---
		settings := apiGroup.Group("/settings")
		{
			settings.GET("", handlers.GetSettingsHandler)
			settings.PUT("", handlers.SaveSettingsHandler)
		}

		// --- ПУБЛИКАЦИЯ В DISCORD ---
		apiGroup.POST("/post-schedule", handlers.PostScheduleHandler)
		apiGroup.POST("/post-image", handlers.PostImageHandler)
	}
}
