package i18n

import (
	"fmt"
	"time"
)

// Lang поддерживаемый язык сайта
type Lang string

const (
	LangEN Lang = "en"
	LangNL Lang = "nl"
)

// DefaultLang язык по умолчанию и язык фолбэка
const DefaultLang = LangEN

// ParseLang валидирует сохранённое значение языка.
// Любое неизвестное или повреждённое значение трактуется как отсутствующее.
func ParseLang(s string) (Lang, bool) {
	switch Lang(s) {
	case LangEN, LangNL:
		return Lang(s), true
	default:
		return DefaultLang, false
	}
}

// Toggle возвращает другой из двух языков
func Toggle(lang Lang) Lang {
	if lang == LangEN {
		return LangNL
	}
	return LangEN
}

// Словарь строк, которые отдаёт бэкенд: легенда календаря, статусы слотов,
// тексты уведомлений. Остальной контент сайта переводится на клиенте.
var translations = map[Lang]map[string]string{
	LangEN: {
		"leg-avail":           "Available",
		"leg-fast":            "Selling Fast",
		"leg-full":            "Fully Booked",
		"status-avail":        "Available",
		"status-booked":       "Booked",
		"label-today":         "Today",
		"no-book-msg":         "No active bookings found on this device.",
		"no-inq-msg":          "No recent inquiries found on this device.",
		"toast-booked":        "Booked! 🎉 Your slot is confirmed — Ref: %s",
		"toast-conflict":      "Slot was just booked by someone else! Please choose another.",
		"toast-cancelled":     "Booking cancelled successfully.",
		"toast-inquiry-sent":  "Message sent! Ref: %s",
		"toast-record-gone":   "Record deleted.",
		"toast-form-errors":   "Please correct errors in the form.",
		"toast-not-found":     "Booking not found.",
		"toast-bad-request":   "Invalid request.",
	},
	LangNL: {
		"leg-avail":           "Beschikbaar",
		"leg-fast":            "Gaat Snel",
		"leg-full":            "Volgeboekt",
		"status-avail":        "Beschikbaar",
		"status-booked":       "Geboekt",
		"label-today":         "Vandaag",
		"no-book-msg":         "Geen actieve boekingen gevonden op dit apparaat.",
		"no-inq-msg":          "Geen recente aanvragen gevonden op dit apparaat.",
		"toast-booked":        "Geboekt! 🎉 Je slot is bevestigd — Ref: %s",
		"toast-conflict":      "Het slot is zojuist door iemand anders geboekt! Kies een ander.",
		"toast-cancelled":     "Boeking succesvol geannuleerd.",
		"toast-inquiry-sent":  "Bericht verzonden! Ref: %s",
		"toast-record-gone":   "Record verwijderd.",
		"toast-form-errors":   "Corrigeer de fouten in het formulier.",
		"toast-not-found":     "Boeking niet gevonden.",
		"toast-bad-request":   "Ongeldige aanvraag.",
	},
}

// Сокращения дней недели, индекс по time.Weekday (воскресенье = 0)
var weekdaysShort = map[Lang][7]string{
	LangEN: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	LangNL: {"zo", "ma", "di", "wo", "do", "vr", "za"},
}

// T возвращает строку для языка, с фолбэком на английский, затем на ключ
func T(lang Lang, key string) string {
	if s, ok := translations[lang][key]; ok {
		return s
	}
	if s, ok := translations[DefaultLang][key]; ok {
		return s
	}
	return key
}

// Tf форматированный вариант T
func Tf(lang Lang, key string, args ...interface{}) string {
	return fmt.Sprintf(T(lang, key), args...)
}

// WeekdayShort возвращает локализованное сокращение дня недели
func WeekdayShort(lang Lang, wd time.Weekday) string {
	days, ok := weekdaysShort[lang]
	if !ok {
		days = weekdaysShort[DefaultLang]
	}
	return days[int(wd)]
}
