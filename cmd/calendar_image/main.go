package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/malwis/venue_backend/internal/i18n"
	"github.com/malwis/venue_backend/internal/model"
	"github.com/malwis/venue_backend/internal/render"
	"github.com/malwis/venue_backend/internal/service"
)

func main() {
	// Тестовые данные: пара занятых дней и один частично занятый
	now := time.Now()
	rnd := rand.New(rand.NewSource(42))

	bookings := []*model.Booking{
		{
			ID:          model.NewSimulatedRef(rnd),
			Date:        model.FormatDate(now.AddDate(0, 0, 2)),
			SlotID:      model.SlotA,
			Name:        "Reserved",
			IsSimulated: true,
		},
		{
			ID:          model.NewSimulatedRef(rnd),
			Date:        model.FormatDate(now.AddDate(0, 0, 2)),
			SlotID:      model.SlotB,
			Name:        "Reserved",
			IsSimulated: true,
		},
		{
			ID:          model.NewSimulatedRef(rnd),
			Date:        model.FormatDate(now.AddDate(0, 0, 5)),
			SlotID:      model.SlotB,
			Name:        "Reserved",
			IsSimulated: true,
		},
		{
			ID:     model.NewBookingRef(rnd),
			Date:   model.FormatDate(now.AddDate(0, 0, 9)),
			SlotID: model.SlotA,
			Name:   "Test Visitor",
		},
	}

	days := service.BuildCalendar(now, bookings, i18n.LangEN)

	imageData, err := render.GenerateCalendarImage(days, i18n.LangEN)
	if err != nil {
		fmt.Printf("Ошибка генерации изображения: %v\n", err)
		os.Exit(1)
	}

	filename := "calendar.png"
	if err := os.WriteFile(filename, imageData, 0644); err != nil {
		fmt.Printf("Ошибка сохранения файла: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Изображение успешно сохранено в %s\n", filename)
	fmt.Printf("📅 Дней в сетке: %d\n", len(days))
	fmt.Printf("📊 Бронирований: %d\n", len(bookings))
}
