package model

import (
	"math/rand"
	"strings"
	"time"
)

// DateLayout формат даты календаря (ISO, без времени — время задаётся слотом)
const DateLayout = "2006-01-02"

// HorizonDays размер окна бронирования: [сегодня, сегодня+29]
const HorizonDays = 30

type SlotID string

const (
	SlotA SlotID = "A" // Ранний вечерний слот
	SlotB SlotID = "B" // Поздний вечерний слот
)

// SlotLabels человекочитаемые окна слотов (как на сайте)
var SlotLabels = map[SlotID]string{
	SlotA: "6:00 PM – 8:00 PM",
	SlotB: "8:30 PM – 10:30 PM",
}

// AllSlots фиксированный порядок слотов дня
var AllSlots = []SlotID{SlotA, SlotB}

// IsValidSlot проверяет что слот один из двух допустимых
func IsValidSlot(s SlotID) bool {
	return s == SlotA || s == SlotB
}

type DayStatus string

const (
	DayStatusAvailable DayStatus = "available" // Оба слота свободны
	DayStatusPartial   DayStatus = "partial"   // Занят ровно один слот
	DayStatusBooked    DayStatus = "booked"    // Заняты оба слота, день не кликабелен
)

// Booking бронирование одного слота на одну дату.
// Запись неизменяема после создания, единственная операция — удаление.
type Booking struct {
	ID          string `json:"id"`              // "BK-XXXXXX" или "SIM-xxxxx" для демо-записей
	Date        string `json:"date"`            // ISO YYYY-MM-DD
	SlotID      SlotID `json:"slotId"`          // A или B
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"` // Опционально
	Timestamp   int64  `json:"timestamp"`       // Миллисекунды с эпохи, сортировка "новые сверху"
	IsSimulated bool   `json:"isSimulated"`     // Демо-записи не показываются в списке, но занимают слот
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// randBase36 генерирует n случайных base36-символов
func randBase36(rnd *rand.Rand, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(base36[rnd.Intn(len(base36))])
	}
	return b.String()
}

// NewBookingRef генерирует референс реального бронирования: "BK-" + 6 base36 в верхнем регистре
func NewBookingRef(rnd *rand.Rand) string {
	return "BK-" + strings.ToUpper(randBase36(rnd, 6))
}

// NewSimulatedRef генерирует референс демо-бронирования: "SIM-" + 5 base36
func NewSimulatedRef(rnd *rand.Rand) string {
	return "SIM-" + randBase36(rnd, 5)
}

// NewInquiryRef генерирует референс заявки с формы контактов: "CT-" + 6 base36 в верхнем регистре
func NewInquiryRef(rnd *rand.Rand) string {
	return "CT-" + strings.ToUpper(randBase36(rnd, 6))
}

// FormatDate сериализует дату в календарный ключ YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
