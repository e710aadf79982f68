// TRYV/internal/handlers/export_handler.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/motchii709/TRYV/config"
	"github.com/motchii709/TRYV/internal/services"
)

// eventSheetHeaders - заголовки колонок, как в исходной таблице расписания.
var eventSheetHeaders = []string{"ID", "曜日", "開始時刻", "終了時刻", "タイトル", "担当者", "説明", "色"}

// ExportEventsHandler выгружает расписание в xlsx-файл.
// Первая строка - жирный закрепленный заголовок, далее по строке на событие.
func ExportEventsHandler(c *gin.Context) {
	events, err := services.ListEvents(config.DB)
	if err != nil {
		slog.Error("Ошибка чтения событий для экспорта", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data for export"})
		return
	}

	f := excelize.NewFile()
	sheetName := "Events"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)

	for i, header := range eventSheetHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheetName, "A1", "H1", headerStyle)
	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	for i, ev := range events {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), ev.EventID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), ev.Weekday)
		// Время выгружается строкой, чтобы табличный редактор не переформатировал его.
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), ev.StartTime)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), ev.EndTime)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), ev.Title)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), ev.Organizer)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), ev.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), ev.Color)
	}

	fileName := fmt.Sprintf("events_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}
