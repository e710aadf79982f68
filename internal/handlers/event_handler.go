// TRYV/internal/handlers/event_handler.go

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motchii709/TRYV/config"
	"github.com/motchii709/TRYV/internal/services"
	"github.com/motchii709/TRYV/models"
)

// EventRequest - структура для получения данных при создании/обновлении события.
// День недели ограничен перечислением на границе API; время приходит текстом
// "HH:MM". Порядок начала/окончания намеренно не проверяется.
type EventRequest struct {
	Weekday     string `json:"weekday" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Organizer   string `json:"organizer"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func (r EventRequest) toModel() models.Event {
	return models.Event{
		Weekday:     r.Weekday,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Title:       r.Title,
		Organizer:   r.Organizer,
		Description: r.Description,
		Color:       r.Color,
	}
}

// ListEventsHandler возвращает все события недельного расписания.
func ListEventsHandler(c *gin.Context) {
	events, err := services.ListEvents(config.DB)
	if err != nil {
		slog.Error("Ошибка чтения списка событий", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// CreateEventHandler создает новое событие.
func CreateEventHandler(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body: " + err.Error()})
		return
	}

	id, err := services.AddEvent(config.DB, req.toModel())
	if err != nil {
		slog.Error("Ошибка создания события", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": id, "message": "Событие создано"})
}

// UpdateEventHandler целиком обновляет существующее событие.
func UpdateEventHandler(c *gin.Context) {
	id := c.Param("id")

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body: " + err.Error()})
		return
	}

	ev := req.toModel()
	ev.EventID = id

	if err := services.UpdateEvent(config.DB, ev); err != nil {
		switch {
		case errors.Is(err, services.ErrNoEvents):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "События отсутствуют"})
		case errors.Is(err, services.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Событие не найдено"})
		default:
			slog.Error("Ошибка обновления события", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update event"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Событие обновлено"})
}

// DeleteEventHandler удаляет событие.
func DeleteEventHandler(c *gin.Context) {
	id := c.Param("id")

	if err := services.DeleteEvent(config.DB, id); err != nil {
		switch {
		case errors.Is(err, services.ErrNoEvents):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "События отсутствуют"})
		case errors.Is(err, services.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Событие не найдено"})
		default:
			slog.Error("Ошибка удаления события", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete event"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Событие удалено"})
}
