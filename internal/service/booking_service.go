package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/malwis/venue_backend/internal/i18n"
	"github.com/malwis/venue_backend/internal/model"
	"github.com/malwis/venue_backend/internal/repository/base"
	"go.uber.org/zap"
)

// BookingStore хранилище бронирований. Все мутации идут только через него —
// ни один другой компонент не пишет в хранилище напрямую.
type BookingStore interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByRef(ctx context.Context, ref string) (*model.Booking, error)
	List(ctx context.Context) ([]*model.Booking, error)
	ListUser(ctx context.Context) ([]*model.Booking, error)
	ExistsDateSlot(ctx context.Context, date string, slot model.SlotID) (bool, error)
	Count(ctx context.Context) (int64, error)
	DeleteByRef(ctx context.Context, ref string) error
	DeleteAll(ctx context.Context) error
	DeleteBefore(ctx context.Context, date string) (int64, error)
}

// ChangeListener получает уведомление после каждой мутации хранилища,
// синхронно в том же вызове — открытые страницы перерисовывают календарь
// и список бронирований целиком, без инкрементальных диффов.
type ChangeListener interface {
	BookingsChanged()
}

type BookingService struct {
	repo     BookingStore
	listener ChangeListener // может быть nil
	logger   *zap.Logger

	// Инжектируемый источник случайности: демо-засев и референсы
	// детерминируемы в тестах через фиксированный seed
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewBookingService(repo BookingStore, rnd *rand.Rand, logger *zap.Logger) *BookingService {
	return &BookingService{
		repo:   repo,
		rnd:    rnd,
		logger: logger,
	}
}

// SetChangeListener подключает слушателя мутаций (websocket-хаб)
func (s *BookingService) SetChangeListener(l ChangeListener) {
	s.listener = l
}

func (s *BookingService) notifyChanged() {
	if s.listener != nil {
		s.listener.BookingsChanged()
	}
}

// Load возвращает все бронирования в порядке вставки
func (s *BookingService) Load(ctx context.Context) ([]*model.Booking, error) {
	return s.repo.List(ctx)
}

// ListUserBookings возвращает пользовательские бронирования, новые сверху.
// Демо-записи в список не попадают, хотя и занимают слоты.
func (s *BookingService) ListUserBookings(ctx context.Context) ([]*model.Booking, error) {
	return s.repo.ListUser(ctx)
}

// withinHorizon проверяет что дата лежит в окне [сегодня, сегодня+29]
func withinHorizon(date string, now time.Time) (bool, error) {
	parsed, err := time.ParseInLocation(model.DateLayout, date, now.Location())
	if err != nil {
		return false, ErrInvalidDate
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	last := today.AddDate(0, 0, model.HorizonDays-1)

	return !parsed.Before(today) && !parsed.After(last), nil
}

// SlotOptions возвращает состояние обоих слотов выбранной даты для модалки
func (s *BookingService) SlotOptions(ctx context.Context, date string, lang i18n.Lang) ([]model.SlotOption, error) {
	ok, err := withinHorizon(date, time.Now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOutsideHorizon
	}

	bookings, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	options := make([]model.SlotOption, 0, len(model.AllSlots))
	for _, slot := range model.AllSlots {
		booked := IsSlotBooked(bookings, date, slot)

		statusKey := "status-avail"
		if booked {
			statusKey = "status-booked"
		}

		options = append(options, model.SlotOption{
			SlotID: slot,
			Label:  model.SlotLabels[slot],
			Booked: booked,
			Status: i18n.T(lang, statusKey),
		})
	}

	return options, nil
}

// Reserve бронирует слот на дату. Перед коммитом занятость пары (дата, слот)
// проверяется по хранилищу заново — единственная защита от почти
// одновременного бронирования из другой вкладки. Это best-effort, а не
// гарантия; уникальный индекс в базе остаётся последним рубежом.
func (s *BookingService) Reserve(ctx context.Context, date string, slot model.SlotID, name, phone, email string) (*model.Booking, error) {
	if !model.IsValidSlot(slot) {
		return nil, ErrInvalidSlot
	}

	ok, err := withinHorizon(date, time.Now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrOutsideHorizon
	}

	// Повторная проверка доступности непосредственно перед коммитом
	taken, err := s.repo.ExistsDateSlot(ctx, date, slot)
	if err != nil {
		return nil, fmt.Errorf("recheck availability: %w", err)
	}
	if taken {
		return nil, ErrSlotTaken
	}

	s.mu.Lock()
	ref := model.NewBookingRef(s.rnd)
	s.mu.Unlock()

	booking := &model.Booking{
		ID:          ref,
		Date:        date,
		SlotID:      slot,
		Name:        name,
		Phone:       phone,
		Email:       email,
		Timestamp:   time.Now().UnixMilli(),
		IsSimulated: false,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		if base.IsUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("Slot booked",
		zap.String("ref", booking.ID),
		zap.String("date", booking.Date),
		zap.String("slot", string(booking.SlotID)),
	)

	s.notifyChanged()

	return booking, nil
}

// Cancel отменяет пользовательское бронирование по референсу и возвращает
// отменённую запись. Демо-записи через этот путь не удаляются — только
// полной очисткой хранилища.
func (s *BookingService) Cancel(ctx context.Context, ref string) (*model.Booking, error) {
	booking, err := s.repo.GetByRef(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking == nil {
		return nil, ErrBookingNotFound
	}

	if booking.IsSimulated {
		return nil, ErrSimulatedBooking
	}

	if err := s.repo.DeleteByRef(ctx, ref); err != nil {
		return nil, fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("Booking cancelled",
		zap.String("ref", ref),
		zap.String("date", booking.Date),
		zap.String("slot", string(booking.SlotID)),
	)

	s.notifyChanged()

	return booking, nil
}

// SeedIfEmpty засеивает демо-бронирования, только если хранилище пустое.
// Проверка именно по пустоте, без отдельного флага: повторный вызов при
// непустом хранилище — no-op. На каждый из 30 дней независимое испытание
// с вероятностью ~20%, что день частично занят, и условные ~30%, что
// заняты оба слота. Возвращает количество созданных записей.
func (s *BookingService) SeedIfEmpty(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	created := 0

	for i := 0; i < model.HorizonDays; i++ {
		if s.rnd.Float64() >= 0.2 {
			continue
		}

		date := model.FormatDate(today.AddDate(0, 0, i))

		slot := model.SlotA
		if s.rnd.Float64() < 0.5 {
			slot = model.SlotB
		}

		if err := s.createSimulated(ctx, date, slot, now); err != nil {
			return created, err
		}
		created++

		// Иногда день занят целиком
		if s.rnd.Float64() < 0.3 {
			other := model.SlotA
			if slot == model.SlotA {
				other = model.SlotB
			}
			if err := s.createSimulated(ctx, date, other, now); err != nil {
				return created, err
			}
			created++
		}
	}

	s.logger.Info("Seeded demo bookings", zap.Int("created", created))

	if created > 0 {
		s.notifyChanged()
	}

	return created, nil
}

func (s *BookingService) createSimulated(ctx context.Context, date string, slot model.SlotID, now time.Time) error {
	booking := &model.Booking{
		ID:          model.NewSimulatedRef(s.rnd),
		Date:        date,
		SlotID:      slot,
		Name:        "Reserved",
		Phone:       "N/A",
		Timestamp:   now.UnixMilli(),
		IsSimulated: true,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return fmt.Errorf("create simulated booking: %w", err)
	}

	return nil
}

// Wipe полностью очищает хранилище бронирований (отладочный путь,
// единственный способ избавиться от демо-записей)
func (s *BookingService) Wipe(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("wipe bookings: %w", err)
	}

	s.logger.Warn("Booking store wiped")

	s.notifyChanged()

	return nil
}

// PurgeExpired удаляет бронирования с датой раньше сегодняшней
func (s *BookingService) PurgeExpired(ctx context.Context) (int64, error) {
	today := model.FormatDate(time.Now())

	removed, err := s.repo.DeleteBefore(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("purge expired: %w", err)
	}

	if removed > 0 {
		s.notifyChanged()
	}

	return removed, nil
}
