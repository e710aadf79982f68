// TRYV/internal/services/discord.go
package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/motchii709/TRYV/models"
)

// ErrWebhookNotConfigured - URL вебхука не задан, публикация невозможна.
var ErrWebhookNotConfigured = errors.New("вебхук Discord не настроен")

const (
	// EmptyScheduleText - текст вместо расписания, когда событий нет вообще.
	EmptyScheduleText = "今週の予定はありません。"

	scheduleTitle  = "📅 今週の予定"
	scheduleFooter = "TRYV Schedule Bot"

	// Акцентный цвет embed-сообщения (#4285F4).
	embedColor = 0x4285F4

	attachmentFilename    = "schedule.png"
	attachmentContentType = "image/png"
)

// dayLabels отображает значения перечисления дней недели в подписи,
// которые видны в Discord (как в заголовках исходной таблицы).
var dayLabels = map[string]string{
	models.Monday:    "月曜日",
	models.Tuesday:   "火曜日",
	models.Wednesday: "水曜日",
	models.Thursday:  "木曜日",
	models.Friday:    "金曜日",
}

// webhookEmbed - структура embed-блока Discord.
type webhookEmbed struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Color       int           `json:"color"`
	Timestamp   string        `json:"timestamp"`
	Footer      webhookFooter `json:"footer"`
}

type webhookFooter struct {
	Text string `json:"text"`
}

// webhookMessage - тело JSON-запроса к вебхуку.
type webhookMessage struct {
	Content string         `json:"content"`
	Embeds  []webhookEmbed `json:"embeds"`
}

// GenerateScheduleText собирает текст недельного расписания.
//
// Дни идут в фиксированном порядке понедельник→пятница; внутри дня события
// отсортированы по возрастанию startTime (лексикографическое сравнение
// корректно, т.к. время хранится как "HH:MM" с ведущими нулями). Дни без
// событий опускаются; если событий нет вовсе, возвращается EmptyScheduleText.
func GenerateScheduleText(events []models.Event) string {
	var b strings.Builder

	for _, day := range models.Weekdays {
		var dayEvents []models.Event
		for _, ev := range events {
			if ev.Weekday == day {
				dayEvents = append(dayEvents, ev)
			}
		}
		if len(dayEvents) == 0 {
			continue
		}

		sort.SliceStable(dayEvents, func(i, j int) bool {
			return dayEvents[i].StartTime < dayEvents[j].StartTime
		})

		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("**" + dayLabels[day] + "**\n")
		for _, ev := range dayEvents {
			b.WriteString(fmt.Sprintf("`%s～%s` **%s** (%s)\n", ev.StartTime, ev.EndTime, ev.Title, ev.Organizer))
		}
	}

	if b.Len() == 0 {
		return EmptyScheduleText
	}
	return b.String()
}

// PostWeeklySchedule читает все события, форматирует расписание и отправляет
// его одним embed-сообщением на настроенный вебхук. Вызывается cron-задачей
// и вручную из веб-интерфейса.
func PostWeeklySchedule(ctx context.Context, db *gorm.DB, rdb *redis.Client) error {
	settings, err := GetSettings(ctx, rdb)
	if err != nil {
		return err
	}
	if settings.WebhookURL == "" {
		return ErrWebhookNotConfigured
	}

	events, err := ListEvents(db)
	if err != nil {
		return err
	}

	msg := webhookMessage{
		Content: "",
		Embeds: []webhookEmbed{{
			Title:       scheduleTitle,
			Description: GenerateScheduleText(events),
			Color:       embedColor,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			Footer:      webhookFooter{Text: scheduleFooter},
		}},
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("не удалось сформировать сообщение: %w", err)
	}

	return postWebhook(ctx, settings.WebhookURL, "application/json", bytes.NewReader(body))
}

// PostImage публикует картинку расписания на вебхук запросом
// multipart/form-data: часть "content" с настроенным текстом сообщения и
// часть "file" с PNG-байтами. Картинка приходит из веб-интерфейса строкой
// вида "data:image/png;base64,...".
func PostImage(ctx context.Context, rdb *redis.Client, dataURI string) error {
	settings, err := GetSettings(ctx, rdb)
	if err != nil {
		return err
	}
	if settings.WebhookURL == "" {
		return ErrWebhookNotConfigured
	}

	encoded := dataURI
	if idx := strings.Index(encoded, ";base64,"); idx != -1 {
		encoded = encoded[idx+len(";base64,"):]
	}
	image, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("не удалось декодировать изображение: %w", err)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("content", settings.PostMessage); err != nil {
		return fmt.Errorf("не удалось сформировать запрос: %w", err)
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, attachmentFilename))
	header.Set("Content-Type", attachmentContentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return fmt.Errorf("не удалось сформировать запрос: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return fmt.Errorf("не удалось сформировать запрос: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("не удалось сформировать запрос: %w", err)
	}

	return postWebhook(ctx, settings.WebhookURL, w.FormDataContentType(), &buf)
}

// postWebhook выполняет POST на вебхук. Успехом считаются только коды
// 200 и 204; любой другой ответ - ошибка с телом ответа. Повторов нет.
func postWebhook(ctx context.Context, url, contentType string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return fmt.Errorf("не удалось сформировать запрос: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("не удалось отправить сообщение в Discord: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Discord вернул ошибку %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}
