package service

import (
	"github.com/malwis/venue_backend/internal/model"
)

// Движок доступности — чистые функции над списком бронирований,
// никакого внутреннего состояния.

// IsSlotBooked проверяет занят ли слот на дату
func IsSlotBooked(bookings []*model.Booking, date string, slot model.SlotID) bool {
	for _, b := range bookings {
		if b.Date == date && b.SlotID == slot {
			return true
		}
	}
	return false
}

// DayStatus вычисляет трёхзначный статус дня:
// booked — заняты оба слота, partial — ровно один, available — ни одного.
func DayStatus(bookings []*model.Booking, date string) model.DayStatus {
	bookedA := IsSlotBooked(bookings, date, model.SlotA)
	bookedB := IsSlotBooked(bookings, date, model.SlotB)

	switch {
	case bookedA && bookedB:
		return model.DayStatusBooked
	case bookedA || bookedB:
		return model.DayStatusPartial
	default:
		return model.DayStatusAvailable
	}
}
