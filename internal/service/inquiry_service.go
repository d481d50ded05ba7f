package service

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/malwis/venue_backend/internal/model"
	"go.uber.org/zap"
)

// InquiryStore хранилище заявок с контактной формы
type InquiryStore interface {
	Create(ctx context.Context, inquiry *model.Inquiry) error
	GetByRef(ctx context.Context, ref string) (*model.Inquiry, error)
	List(ctx context.Context) ([]*model.Inquiry, error)
	DeleteByRef(ctx context.Context, ref string) error
}

// InquiryForm данные формы, как их присылает сайт
type InquiryForm struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	EventDate string `json:"eventDate"`
	Message   string `json:"message"`
	Agree     bool   `json:"agree"`
	Website   string `json:"website"` // Honeypot: у людей всегда пусто
}

// ValidationErrors ошибки валидации по полям формы
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-\s()]{7,}$`)
)

// ValidateInquiry проверяет форму по правилам сайта
func ValidateInquiry(form InquiryForm) ValidationErrors {
	errs := ValidationErrors{}

	if len(strings.TrimSpace(form.Name)) < 2 {
		errs["name"] = "Name must be at least 2 characters."
	}
	if !emailPattern.MatchString(strings.TrimSpace(form.Email)) {
		errs["email"] = "Please enter a valid email address."
	}
	if !phonePattern.MatchString(strings.TrimSpace(form.Phone)) {
		errs["phone"] = "Please enter a valid phone number (min 7 digits)."
	}
	if len(strings.TrimSpace(form.Message)) < 20 {
		errs["message"] = "Message must be at least 20 characters."
	}
	if form.EventDate != "" {
		if _, err := time.Parse(model.DateLayout, form.EventDate); err != nil {
			errs["eventDate"] = "Please enter a valid date."
		}
	}
	if !form.Agree {
		errs["agree"] = "You must agree to continue."
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

type InquiryService struct {
	repo   InquiryStore
	logger *zap.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewInquiryService(repo InquiryStore, rnd *rand.Rand, logger *zap.Logger) *InquiryService {
	return &InquiryService{
		repo:   repo,
		rnd:    rnd,
		logger: logger,
	}
}

// IsSpam проверяет honeypot-поле. Заполненное поле — бот; заявка
// молча отбрасывается, но ответ выглядит как успех.
func IsSpam(form InquiryForm) bool {
	return form.Website != ""
}

// Submit валидирует и сохраняет заявку. Для спама из ханипота запись
// не сохраняется, но возвращается с stored=false и правдоподобным
// референсом — ответ бота неотличим от успешного.
func (s *InquiryService) Submit(ctx context.Context, form InquiryForm) (*model.Inquiry, bool, error) {
	// Ханипот проверяется до валидации: бот не должен отличать свой
	// ответ от настоящего даже на мусорных данных
	spam := IsSpam(form)
	if !spam {
		if errs := ValidateInquiry(form); errs != nil {
			return nil, false, errs
		}
	}

	s.mu.Lock()
	ref := model.NewInquiryRef(s.rnd)
	s.mu.Unlock()

	inquiry := &model.Inquiry{
		ID:        ref,
		Name:      strings.TrimSpace(form.Name),
		Email:     strings.TrimSpace(form.Email),
		Phone:     strings.TrimSpace(form.Phone),
		EventDate: form.EventDate,
		Message:   strings.TrimSpace(form.Message),
		Timestamp: time.Now().UnixMilli(),
	}

	if spam {
		s.logger.Warn("Honeypot triggered, dropping inquiry", zap.String("ref", ref))
		return inquiry, false, nil
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, false, fmt.Errorf("create inquiry: %w", err)
	}

	s.logger.Info("Inquiry received",
		zap.String("ref", inquiry.ID),
		zap.String("name", inquiry.Name),
	)

	return inquiry, true, nil
}

// List возвращает все заявки, новые сверху
func (s *InquiryService) List(ctx context.Context) ([]*model.Inquiry, error) {
	return s.repo.List(ctx)
}

// Delete удаляет заявку по референсу
func (s *InquiryService) Delete(ctx context.Context, ref string) error {
	inquiry, err := s.repo.GetByRef(ctx, ref)
	if err != nil {
		return fmt.Errorf("get inquiry: %w", err)
	}

	if inquiry == nil {
		return ErrInquiryNotFound
	}

	if err := s.repo.DeleteByRef(ctx, ref); err != nil {
		return fmt.Errorf("delete inquiry: %w", err)
	}

	s.logger.Info("Inquiry deleted", zap.String("ref", ref))

	return nil
}
