package model

// CalendarDay одна ячейка 30-дневного календаря.
// Дни не хранятся в базе — окно пересчитывается от "сегодня" при каждом рендере.
type CalendarDay struct {
	Date       string    `json:"date"`      // ISO YYYY-MM-DD
	DayOfMonth int       `json:"dayOfMonth"`
	Weekday    string    `json:"weekday"`   // Локализованное сокращение, "Today"/"Vandaag" для первой ячейки
	Status     DayStatus `json:"status"`
	IsToday    bool      `json:"isToday"`
	Selectable bool      `json:"selectable"` // false только для статуса booked
}

// SlotOption состояние одного слота в модалке выбранной даты
type SlotOption struct {
	SlotID SlotID `json:"slotId"`
	Label  string `json:"label"`
	Booked bool   `json:"booked"`
	Status string `json:"status"` // Локализованная подпись занятости
}
