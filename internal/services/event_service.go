// TRYV/internal/services/event_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/motchii709/TRYV/models"
)

var (
	// ErrEventNotFound - событие с указанным id не найдено.
	ErrEventNotFound = errors.New("событие не найдено")
	// ErrNoEvents - таблица пуста, обновлять/удалять нечего.
	ErrNoEvents = errors.New("события отсутствуют")
)

// timestampLayouts - форматы, в которых легаси-таблица могла хранить время
// как полноценную дату вместо текста "HH:MM".
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// NormalizeClock приводит значение времени к каноническому виду "HH:MM".
//
// В типизированной схеме колонки всегда текстовые, но данные, импортированные
// из старой таблицы, могли сохраниться как дата/время или без ведущего нуля
// (а также с апострофом - маркером принудительного текста). Нераспознанные
// значения возвращаются без изменений.
func NormalizeClock(raw string) string {
	s := strings.TrimSpace(strings.TrimPrefix(raw, "'"))
	if s == "" {
		return s
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04")
		}
	}

	// "H:MM", "HH:MM" или "HH:MM:SS" - дополняем нулем и отбрасываем секунды.
	parts := strings.Split(s, ":")
	if len(parts) == 2 || len(parts) == 3 {
		hh, mm := parts[0], parts[1]
		if isDigits(hh) && isDigits(mm) && len(hh) <= 2 && len(mm) == 2 {
			if len(hh) == 1 {
				hh = "0" + hh
			}
			return hh + ":" + mm
		}
	}

	return s
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// applyDefaults заполняет значения по умолчанию для необязательных полей.
func applyDefaults(ev *models.Event) {
	if ev.Color == "" {
		ev.Color = models.DefaultColor
	}
	// Description по умолчанию - пустая строка; в Go она такой и будет.
}

// ListEvents возвращает все события в порядке вставки строк.
//
// Строки с пустым id пропускаются (защита от битых записей), время
// нормализуется к "HH:MM", к полям применяются значения по умолчанию.
// Пустая таблица - это пустой список, а не ошибка.
func ListEvents(db *gorm.DB) ([]models.Event, error) {
	var rows []models.Event
	if err := db.Order("seq").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("не удалось прочитать события: %w", err)
	}

	events := make([]models.Event, 0, len(rows))
	for _, ev := range rows {
		if ev.EventID == "" {
			continue
		}
		ev.StartTime = NormalizeClock(ev.StartTime)
		ev.EndTime = NormalizeClock(ev.EndTime)
		applyDefaults(&ev)
		events = append(events, ev)
	}
	return events, nil
}

// AddEvent создает новое событие и возвращает присвоенный ему id.
// Порядок startTime/endTime намеренно не проверяется.
func AddEvent(db *gorm.DB, ev models.Event) (string, error) {
	ev.Seq = 0
	ev.EventID = uuid.NewString()
	ev.StartTime = NormalizeClock(ev.StartTime)
	ev.EndTime = NormalizeClock(ev.EndTime)
	applyDefaults(&ev)

	if err := db.Create(&ev).Error; err != nil {
		return "", fmt.Errorf("не удалось сохранить событие: %w", err)
	}
	return ev.EventID, nil
}

// UpdateEvent целиком заменяет поля события с ev.EventID.
//
// Замена выполняется одним UPDATE по event_id: при гонке двух обновлений
// побеждает последний писатель, промежуточного состояния не бывает.
// Пустая таблица и отсутствующий id - разные ошибки.
func UpdateEvent(db *gorm.DB, ev models.Event) error {
	ev.StartTime = NormalizeClock(ev.StartTime)
	ev.EndTime = NormalizeClock(ev.EndTime)
	applyDefaults(&ev)

	var count int64
	if err := db.Model(&models.Event{}).Count(&count).Error; err != nil {
		return fmt.Errorf("не удалось прочитать события: %w", err)
	}
	if count == 0 {
		return ErrNoEvents
	}

	res := db.Model(&models.Event{}).
		Where("event_id = ?", ev.EventID).
		Select("weekday", "start_time", "end_time", "title", "organizer", "description", "color").
		Updates(map[string]interface{}{
			"weekday":     ev.Weekday,
			"start_time":  ev.StartTime,
			"end_time":    ev.EndTime,
			"title":       ev.Title,
			"organizer":   ev.Organizer,
			"description": ev.Description,
			"color":       ev.Color,
		})
	if res.Error != nil {
		return fmt.Errorf("не удалось обновить событие: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

// DeleteEvent удаляет событие по id. Id удаленного события никогда не
// используется повторно (id генерируются случайно).
func DeleteEvent(db *gorm.DB, id string) error {
	var count int64
	if err := db.Model(&models.Event{}).Count(&count).Error; err != nil {
		return fmt.Errorf("не удалось прочитать события: %w", err)
	}
	if count == 0 {
		return ErrNoEvents
	}

	res := db.Where("event_id = ?", id).Delete(&models.Event{})
	if res.Error != nil {
		return fmt.Errorf("не удалось удалить событие: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}
