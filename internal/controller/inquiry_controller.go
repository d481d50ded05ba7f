package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/malwis/venue_backend/internal/i18n"
	"github.com/malwis/venue_backend/internal/model"
	"github.com/malwis/venue_backend/internal/notifier"
	"github.com/malwis/venue_backend/internal/service"
	"go.uber.org/zap"
)

// InquiryController обрабатывает заявки с контактной формы
type InquiryController struct {
	inquiryService *service.InquiryService
	prefs          LangResolver
	notifier       *notifier.Telegram
	logger         *zap.Logger
}

// NewInquiryController создаёт контроллер заявок
func NewInquiryController(
	inquiryService *service.InquiryService,
	prefs LangResolver,
	tg *notifier.Telegram,
	logger *zap.Logger,
) *InquiryController {
	return &InquiryController{
		inquiryService: inquiryService,
		prefs:          prefs,
		notifier:       tg,
		logger:         logger,
	}
}

// maskedInquiry представление заявки с замаскированным телефоном
type maskedInquiry struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	EventDate string `json:"eventDate,omitempty"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

func maskInquiry(inq *model.Inquiry) maskedInquiry {
	return maskedInquiry{
		ID:        inq.ID,
		Name:      inq.Name,
		Email:     inq.Email,
		Phone:     inq.MaskedPhone(),
		EventDate: inq.EventDate,
		Message:   inq.Message,
		Timestamp: inq.Timestamp,
	}
}

// inquiryListResponse список заявок; сообщение о пустом списке идёт
// в данных, как и у бронирований
type inquiryListResponse struct {
	Inquiries []maskedInquiry `json:"inquiries"`
	Message   string          `json:"message,omitempty"`
}

// SubmitInquiry принимает заявку. Спам из ловушки-ханипота получает
// обычный успешный ответ, но нигде не сохраняется.
func (c *InquiryController) SubmitInquiry(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lang := resolveLang(r, c.prefs)

	var form service.InquiryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		RespondWithError(w, http.StatusBadRequest, i18n.T(lang, "toast-bad-request"))
		return
	}

	inquiry, stored, err := c.inquiryService.Submit(r.Context(), form)
	if err != nil {
		var verrs service.ValidationErrors
		if errors.As(err, &verrs) {
			RespondWithFieldErrors(w, http.StatusBadRequest, i18n.T(lang, "toast-form-errors"), verrs)
			return
		}
		c.logger.Error("Failed to submit inquiry", zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, i18n.T(lang, "toast-bad-request"))
		return
	}

	if stored {
		c.notifier.InquiryReceived(r.Context(), inquiry)
	}

	RespondWithNotice(w, http.StatusCreated, maskInquiry(inquiry), NoticeSuccess, i18n.Tf(lang, "toast-inquiry-sent", inquiry.ID))
}

// ListInquiries отдаёт все заявки с замаскированными телефонами
func (c *InquiryController) ListInquiries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lang := resolveLang(r, c.prefs)

	inquiries, err := c.inquiryService.List(r.Context())
	if err != nil {
		c.logger.Error("Failed to list inquiries", zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, i18n.T(lang, "toast-bad-request"))
		return
	}

	masked := make([]maskedInquiry, 0, len(inquiries))
	for _, inq := range inquiries {
		masked = append(masked, maskInquiry(inq))
	}

	resp := inquiryListResponse{Inquiries: masked}
	if len(masked) == 0 {
		resp.Message = i18n.T(lang, "no-inq-msg")
	}

	RespondWithJSON(w, http.StatusOK, envelope{Data: resp})
}

// DeleteInquiry удаляет заявку по референсу
func (c *InquiryController) DeleteInquiry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	lang := resolveLang(r, c.prefs)
	ref := ps.ByName("ref")

	if err := c.inquiryService.Delete(r.Context(), ref); err != nil {
		if errors.Is(err, service.ErrInquiryNotFound) {
			RespondWithError(w, http.StatusNotFound, i18n.T(lang, "toast-not-found"))
			return
		}
		c.logger.Error("Failed to delete inquiry", zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, i18n.T(lang, "toast-bad-request"))
		return
	}

	RespondWithNotice(w, http.StatusOK, nil, NoticeSuccess, i18n.T(lang, "toast-record-gone"))
}
