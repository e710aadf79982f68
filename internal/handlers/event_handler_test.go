package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/motchii709/TRYV/config"
	"github.com/motchii709/TRYV/internal/routes"
	"github.com/motchii709/TRYV/internal/services"
	"github.com/motchii709/TRYV/models"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Event{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	config.DB = db

	mr := miniredis.RunT(t)
	config.RDB = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEventCRUDFlow(t *testing.T) {
	r := setupRouter(t)

	// Создание
	w := doJSON(t, r, http.MethodPost, "/api/events", gin.H{
		"weekday":   "Monday",
		"startTime": "09:00",
		"endTime":   "10:00",
		"title":     "Standup",
		"organizer": "A",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode create response: %v", err)
	}
	if !created.Success || created.ID == "" {
		t.Fatalf("unexpected create response: %s", w.Body.String())
	}

	// Чтение
	w = doJSON(t, r, http.MethodGet, "/api/events", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var events []models.Event
	if err := json.Unmarshal(w.Body.Bytes(), &events); err != nil {
		t.Fatalf("failed to decode list response: %v", err)
	}
	if len(events) != 1 || events[0].EventID != created.ID || events[0].Color != models.DefaultColor {
		t.Fatalf("unexpected list response: %s", w.Body.String())
	}

	// Обновление
	w = doJSON(t, r, http.MethodPut, "/api/events/"+created.ID, gin.H{
		"weekday":   "Friday",
		"startTime": "15:00",
		"endTime":   "16:00",
		"title":     "Demo",
		"organizer": "B",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Удаление
	w = doJSON(t, r, http.MethodDelete, "/api/events/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Повторное удаление - not found (таблица уже пуста, сообщение другое).
	w = doJSON(t, r, http.MethodDelete, "/api/events/"+created.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", w.Code)
	}
}

func TestCreateEventRejectsUnknownWeekday(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", gin.H{
		"weekday":   "Caturday",
		"startTime": "09:00",
		"endTime":   "10:00",
		"title":     "nope",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown weekday, got %d", w.Code)
	}
}

func TestUpdateEventNotFoundResponse(t *testing.T) {
	r := setupRouter(t)

	// Таблица не пуста, но id не существует.
	if _, err := services.AddEvent(config.DB, models.Event{Weekday: models.Monday, StartTime: "09:00", EndTime: "10:00", Title: "x"}); err != nil {
		t.Fatalf("AddEvent failed: %v", err)
	}

	w := doJSON(t, r, http.MethodPut, "/api/events/does-not-exist", gin.H{
		"weekday":   "Monday",
		"startTime": "09:00",
		"endTime":   "10:00",
		"title":     "y",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSettingsEndpoints(t *testing.T) {
	r := setupRouter(t)

	// Значения по умолчанию.
	w := doJSON(t, r, http.MethodGet, "/api/settings", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get settings: expected 200, got %d", w.Code)
	}
	var settings services.Settings
	if err := json.Unmarshal(w.Body.Bytes(), &settings); err != nil {
		t.Fatalf("failed to decode settings: %v", err)
	}
	if settings.WebhookURL != "" || settings.PostMessage != services.DefaultPostMessage {
		t.Fatalf("expected defaults, got %+v", settings)
	}

	// Частичное сохранение.
	w = doJSON(t, r, http.MethodPut, "/api/settings", gin.H{"webhookUrl": "https://discord.example/hook"})
	if w.Code != http.StatusOK {
		t.Fatalf("save settings: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/settings", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &settings); err != nil {
		t.Fatalf("failed to decode settings: %v", err)
	}
	if settings.WebhookURL != "https://discord.example/hook" {
		t.Errorf("webhook url not saved: %q", settings.WebhookURL)
	}
	if settings.PostMessage != services.DefaultPostMessage {
		t.Errorf("post message should stay default, got %q", settings.PostMessage)
	}
}

func TestPostScheduleWithoutWebhook(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/post-schedule", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 when webhook is not configured, got %d: %s", w.Code, w.Body.String())
	}
}

func TestExportEvents(t *testing.T) {
	r := setupRouter(t)

	if _, err := services.AddEvent(config.DB, models.Event{Weekday: models.Monday, StartTime: "09:00", EndTime: "10:00", Title: "Standup", Organizer: "A"}); err != nil {
		t.Fatalf("AddEvent failed: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/api/events/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export: expected 200, got %d", w.Code)
	}

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("failed to open exported workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Events")
	if err != nil {
		t.Fatalf("failed to read Events sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	if rows[0][1] != "曜日" || rows[0][2] != "開始時刻" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][1] != "Monday" || rows[1][2] != "09:00" || rows[1][4] != "Standup" {
		t.Errorf("unexpected data row: %v", rows[1])
	}
}
