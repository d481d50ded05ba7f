package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/malwis/venue_backend/internal/i18n"
	"github.com/malwis/venue_backend/internal/model"
	"github.com/malwis/venue_backend/internal/notifier"
	"github.com/malwis/venue_backend/internal/render"
	"github.com/malwis/venue_backend/internal/service"
	"go.uber.org/zap"
)

// BookingController обрабатывает HTTP-запросы бронирования и календаря
type BookingController struct {
	bookingService  *service.BookingService
	calendarService *service.CalendarService
	prefs           LangResolver
	notifier        *notifier.Telegram
	logger          *zap.Logger
}

// NewBookingController создаёт контроллер бронирований
func NewBookingController(
	bookingService *service.BookingService,
	calendarService *service.CalendarService,
	prefs LangResolver,
	tg *notifier.Telegram,
	logger *zap.Logger,
) *BookingController {
	return &BookingController{
		bookingService:  bookingService,
		calendarService: calendarService,
		prefs:           prefs,
		notifier:        tg,
		logger:          logger,
	}
}

// reserveRequest тело запроса на бронирование
type reserveRequest struct {
	Date   string       `json:"date"`
	SlotID model.SlotID `json:"slotId"`
	Name   string       `json:"name"`
	Phone  string       `json:"phone"`
	Email  string       `json:"email"`
}

// GetCalendar отдаёт 30-дневную сетку доступности
func (c *BookingController) GetCalendar(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lang := resolveLang(r, c.prefs)

	days, err := c.calendarService.Calendar(r.Context(), lang)
	if err != nil {
		c.logger.Error("Failed to build calendar", zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, i18n.T(lang, "toast-bad-request"))
		return
	}

	RespondWithJSON(w, http.StatusOK, envelope{Data: days})
}

// GetCalendarImage отдаёт ту же сетку в виде PNG
func (c *BookingController) GetCalendarImage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lang := resolveLang(r, c.prefs)

	days, err := c.calendarService.Calendar(r.Context(), lang)
	if err != nil {
		c.logger.Error("Failed to build calendar", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	png, err := render.GenerateCalendarImage(days, lang)
	if err != nil {
		c.logger.Error("Failed to render calendar image", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// GetDay отдаёт оба слота выбранного дня с их занятостью
func (c *BookingController) GetDay(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	lang := resolveLang(r, c.prefs)
	date := ps.ByName("date")

	options, err := c.bookingService.SlotOptions(r.Context(), date, lang)
	if err != nil {
		c.respondServiceError(w, lang, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, envelope{Data: options})
}

// CreateBooking бронирует слот. Конфликт с параллельным бронированием
// возвращается как 409 с просьбой выбрать другой слот.
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lang := resolveLang(r, c.prefs)

	var req reserveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondWithError(w, http.StatusBadRequest, i18n.T(lang, "toast-bad-request"))
		return
	}

	fields := make(map[string]string)
	if req.Name == "" {
		fields["name"] = "required"
	}
	if req.Phone == "" {
		fields["phone"] = "required"
	}
	if len(fields) > 0 {
		RespondWithFieldErrors(w, http.StatusBadRequest, i18n.T(lang, "toast-form-errors"), fields)
		return
	}

	booking, err := c.bookingService.Reserve(r.Context(), req.Date, req.SlotID, req.Name, req.Phone, req.Email)
	if errors.Is(err, service.ErrSlotTaken) {
		// Вместе с конфликтом отдаём свежую занятость слотов дня,
		// чтобы модалка сразу показала актуальное состояние
		options, optErr := c.bookingService.SlotOptions(r.Context(), req.Date, lang)
		if optErr != nil {
			options = nil
		}
		RespondWithJSON(w, http.StatusConflict, envelope{
			Data:   options,
			Notice: &Notice{Kind: NoticeError, Message: i18n.T(lang, "toast-conflict")},
		})
		return
	}
	if err != nil {
		c.respondServiceError(w, lang, err)
		return
	}

	c.notifier.BookingCreated(r.Context(), booking)

	RespondWithNotice(w, http.StatusCreated, booking, NoticeSuccess, i18n.Tf(lang, "toast-booked", booking.ID))
}

// bookingListResponse список бронирований. Сообщение о пустом списке
// рендерится строкой внутри самого списка, а не тостом, поэтому идёт
// в данных, без уведомления.
type bookingListResponse struct {
	Bookings []*model.Booking `json:"bookings"`
	Message  string           `json:"message,omitempty"`
}

// ListBookings отдаёт пользовательские бронирования, без демо-записей
func (c *BookingController) ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lang := resolveLang(r, c.prefs)

	bookings, err := c.bookingService.ListUserBookings(r.Context())
	if err != nil {
		c.logger.Error("Failed to list bookings", zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, i18n.T(lang, "toast-bad-request"))
		return
	}

	resp := bookingListResponse{Bookings: bookings}
	if len(bookings) == 0 {
		resp.Bookings = []*model.Booking{}
		resp.Message = i18n.T(lang, "no-book-msg")
	}

	RespondWithJSON(w, http.StatusOK, envelope{Data: resp})
}

// CancelBooking отменяет бронирование по референсу
func (c *BookingController) CancelBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	lang := resolveLang(r, c.prefs)
	ref := ps.ByName("ref")

	booking, err := c.bookingService.Cancel(r.Context(), ref)
	if err != nil {
		c.respondServiceError(w, lang, err)
		return
	}

	c.notifier.BookingCancelled(r.Context(), booking)

	RespondWithNotice(w, http.StatusOK, nil, NoticeSuccess, i18n.T(lang, "toast-cancelled"))
}

// WipeBookings полностью очищает хранилище бронирований.
// Отладочный путь, требует явного подтверждения в параметре запроса.
func (c *BookingController) WipeBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lang := resolveLang(r, c.prefs)

	if r.URL.Query().Get("confirm") != "wipe" {
		RespondWithError(w, http.StatusBadRequest, i18n.T(lang, "toast-bad-request"))
		return
	}

	if err := c.bookingService.Wipe(r.Context()); err != nil {
		c.logger.Error("Failed to wipe bookings", zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, i18n.T(lang, "toast-bad-request"))
		return
	}

	RespondWithNotice(w, http.StatusOK, nil, NoticeSuccess, i18n.T(lang, "toast-record-gone"))
}

// ExportICS отдаёт пользовательские бронирования в формате iCalendar
func (c *BookingController) ExportICS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	bookings, err := c.bookingService.ListUserBookings(r.Context())
	if err != nil {
		c.logger.Error("Failed to list bookings", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	ics, err := service.ExportICal(bookings)
	if err != nil {
		c.logger.Error("Failed to export calendar", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="malwis-bookings.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(ics))
}

// respondServiceError транслирует ошибки сервиса в HTTP-статусы и тосты
func (c *BookingController) respondServiceError(w http.ResponseWriter, lang i18n.Lang, err error) {
	switch {
	case errors.Is(err, service.ErrSlotTaken):
		RespondWithError(w, http.StatusConflict, i18n.T(lang, "toast-conflict"))
	case errors.Is(err, service.ErrInvalidSlot),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrOutsideHorizon):
		RespondWithError(w, http.StatusBadRequest, i18n.T(lang, "toast-bad-request"))
	case errors.Is(err, service.ErrBookingNotFound):
		RespondWithError(w, http.StatusNotFound, i18n.T(lang, "toast-not-found"))
	case errors.Is(err, service.ErrSimulatedBooking):
		RespondWithError(w, http.StatusForbidden, i18n.T(lang, "toast-not-found"))
	default:
		c.logger.Error("Booking operation failed", zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, i18n.T(lang, "toast-bad-request"))
	}
}
