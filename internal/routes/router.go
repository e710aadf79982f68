package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes инициализирует все маршруты приложения.
// Аутентификации нет: сервис внутренний и доступен только команде.
func SetupRoutes(r *gin.Engine) {
	// Проверка живости для reverse proxy / планировщика.
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	RegisterAPIRoutes(r.Group("/"))
}
