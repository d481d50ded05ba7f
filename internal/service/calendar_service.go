package service

import (
	"context"
	"fmt"
	"time"

	"github.com/malwis/venue_backend/internal/i18n"
	"github.com/malwis/venue_backend/internal/model"
	"go.uber.org/zap"
)

type CalendarService struct {
	bookingService *BookingService
	logger         *zap.Logger
}

func NewCalendarService(bookingService *BookingService, logger *zap.Logger) *CalendarService {
	return &CalendarService{
		bookingService: bookingService,
		logger:         logger,
	}
}

// BuildCalendar строит ровно 30 ячеек окна [сегодня, сегодня+29].
// Окно считается от переданного момента в его локали; дни нигде не хранятся.
func BuildCalendar(now time.Time, bookings []*model.Booking, lang i18n.Lang) []model.CalendarDay {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	days := make([]model.CalendarDay, 0, model.HorizonDays)
	for i := 0; i < model.HorizonDays; i++ {
		day := today.AddDate(0, 0, i)
		date := model.FormatDate(day)
		status := DayStatus(bookings, date)

		weekday := i18n.WeekdayShort(lang, day.Weekday())
		if i == 0 {
			weekday = i18n.T(lang, "label-today")
		}

		days = append(days, model.CalendarDay{
			Date:       date,
			DayOfMonth: day.Day(),
			Weekday:    weekday,
			Status:     status,
			IsToday:    i == 0,
			Selectable: status != model.DayStatusBooked,
		})
	}

	return days
}

// Calendar возвращает текущее состояние календаря бронирований
func (s *CalendarService) Calendar(ctx context.Context, lang i18n.Lang) ([]model.CalendarDay, error) {
	bookings, err := s.bookingService.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	return BuildCalendar(time.Now(), bookings, lang), nil
}
