// file: models/event.go

package models

// Допустимые дни недели (расписание покрывает только будние дни).
const (
	Monday    = "Monday"
	Tuesday   = "Tuesday"
	Wednesday = "Wednesday"
	Thursday  = "Thursday"
	Friday    = "Friday"
)

// Weekdays задает фиксированный порядок дней для генерации текста расписания.
var Weekdays = []string{Monday, Tuesday, Wednesday, Thursday, Friday}

// DefaultColor - цвет события по умолчанию (используется, если цвет не указан).
const DefaultColor = "#4285F4"

// Event представляет собой одно повторяющееся событие недельного расписания.
// Seq - автоинкрементный первичный ключ, сохраняющий порядок вставки строк
// (список всегда возвращается в этом порядке, как в исходной таблице).
// Время начала/окончания объявлено текстовыми колонками: хранилище никогда
// не интерпретирует их как дату/время, поэтому "09:00" остается "09:00".
type Event struct {
	Seq         int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	EventID     string `gorm:"column:event_id;size:36;uniqueIndex" json:"id"`
	Weekday     string `gorm:"size:16" json:"weekday"`
	StartTime   string `gorm:"type:varchar(5)" json:"startTime"`
	EndTime     string `gorm:"type:varchar(5)" json:"endTime"`
	Title       string `json:"title"`
	Organizer   string `json:"organizer"`
	Description string `json:"description"`
	Color       string `gorm:"size:16" json:"color"`
}
