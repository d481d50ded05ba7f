package controller

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// healthCheck простой индикатор живости сервиса
func healthCheck(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

// NewRouter собирает все маршруты API
func NewRouter(
	bookings *BookingController,
	inquiries *InquiryController,
	preferences *PrefsController,
	hub *Hub,
	rl *RateLimiter,
) *httprouter.Router {
	router := httprouter.New()

	router.GET("/health", healthCheck)

	// Календарь и доступность
	router.GET("/api/calendar", bookings.GetCalendar)
	router.GET("/api/calendar.png", bookings.GetCalendarImage)
	router.GET("/api/days/:date", bookings.GetDay)

	// Бронирования
	router.POST("/api/bookings", rl.Limit(bookings.CreateBooking))
	router.GET("/api/bookings", bookings.ListBookings)
	router.GET("/api/bookings/ics", bookings.ExportICS)
	router.DELETE("/api/bookings", bookings.WipeBookings)
	router.DELETE("/api/bookings/:ref", bookings.CancelBooking)

	// Контактные заявки
	router.POST("/api/inquiries", rl.Limit(inquiries.SubmitInquiry))
	router.GET("/api/inquiries", inquiries.ListInquiries)
	router.DELETE("/api/inquiries/:ref", inquiries.DeleteInquiry)

	// Предпочтения посетителя
	router.GET("/api/prefs/lang", preferences.GetLang)
	router.PUT("/api/prefs/lang", preferences.PutLang)
	router.GET("/api/prefs/intro", preferences.GetIntro)
	router.POST("/api/prefs/intro", preferences.PostIntro)

	// Живые обновления доступности
	router.GET("/ws", hub.HandleWS)

	return router
}
