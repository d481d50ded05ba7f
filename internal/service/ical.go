package service

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/malwis/venue_backend/internal/model"
)

// Временные окна слотов для экспорта в календарь
var slotTimes = map[model.SlotID]struct{ startHour, startMin, endHour, endMin int }{
	model.SlotA: {18, 0, 20, 0},
	model.SlotB: {20, 30, 22, 30},
}

// ExportICal собирает iCal-файл из пользовательских бронирований,
// чтобы посетитель мог добавить свой вечер в личный календарь
func ExportICal(bookings []*model.Booking) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Malwis Party//Venue Booking//EN")

	for _, b := range bookings {
		if b.IsSimulated {
			continue
		}

		day, err := time.ParseInLocation(model.DateLayout, b.Date, time.Local)
		if err != nil {
			return "", fmt.Errorf("parse booking date %q: %w", b.Date, err)
		}

		window, ok := slotTimes[b.SlotID]
		if !ok {
			return "", fmt.Errorf("unknown slot %q on booking %s", b.SlotID, b.ID)
		}

		start := time.Date(day.Year(), day.Month(), day.Day(), window.startHour, window.startMin, 0, 0, time.Local)
		end := time.Date(day.Year(), day.Month(), day.Day(), window.endHour, window.endMin, 0, 0, time.Local)

		event := cal.AddEvent(b.ID + "@malwis.party")
		event.SetCreatedTime(time.UnixMilli(b.Timestamp))
		event.SetDtStampTime(time.UnixMilli(b.Timestamp))
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(fmt.Sprintf("Malwis Party — %s", model.SlotLabels[b.SlotID]))
		event.SetLocation("Malwis Party")
		event.SetDescription(fmt.Sprintf("Booking ref: %s", b.ID))
	}

	return cal.Serialize(), nil
}
