package service

import (
	"testing"

	"github.com/malwis/venue_backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestIsSlotBooked(t *testing.T) {
	bookings := []*model.Booking{
		{ID: "BK-AAAAAA", Date: "2026-09-01", SlotID: model.SlotA},
		{ID: "SIM-ab12c", Date: "2026-09-02", SlotID: model.SlotB, IsSimulated: true},
	}

	assert.True(t, IsSlotBooked(bookings, "2026-09-01", model.SlotA))
	assert.False(t, IsSlotBooked(bookings, "2026-09-01", model.SlotB))

	// Демо-записи занимают слот наравне с настоящими
	assert.True(t, IsSlotBooked(bookings, "2026-09-02", model.SlotB))
	assert.False(t, IsSlotBooked(bookings, "2026-09-03", model.SlotA))
}

func TestDayStatus(t *testing.T) {
	bookings := []*model.Booking{
		{ID: "BK-AAAAAA", Date: "2026-09-01", SlotID: model.SlotA},
		{ID: "BK-BBBBBB", Date: "2026-09-02", SlotID: model.SlotA},
		{ID: "SIM-ab12c", Date: "2026-09-02", SlotID: model.SlotB, IsSimulated: true},
	}

	assert.Equal(t, model.DayStatusPartial, DayStatus(bookings, "2026-09-01"))
	assert.Equal(t, model.DayStatusBooked, DayStatus(bookings, "2026-09-02"))
	assert.Equal(t, model.DayStatusAvailable, DayStatus(bookings, "2026-09-03"))
}

func TestDayStatusRevertsAfterCancellation(t *testing.T) {
	bookings := []*model.Booking{
		{ID: "BK-AAAAAA", Date: "2026-09-01", SlotID: model.SlotA},
		{ID: "BK-BBBBBB", Date: "2026-09-01", SlotID: model.SlotB},
	}
	assert.Equal(t, model.DayStatusBooked, DayStatus(bookings, "2026-09-01"))

	// Отмена одного из двух бронирований возвращает частичную занятость
	assert.Equal(t, model.DayStatusPartial, DayStatus(bookings[:1], "2026-09-01"))

	// Отмена последнего — полную доступность
	assert.Equal(t, model.DayStatusAvailable, DayStatus(nil, "2026-09-01"))
}
