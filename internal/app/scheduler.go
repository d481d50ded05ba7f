package app

import (
	"context"
	"time"

	"github.com/malwis/venue_backend/internal/service"
	"go.uber.org/zap"
)

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	bookingService *service.BookingService
	logger         *zap.Logger
	stopChan       chan struct{}
}

// NewScheduler создаёт новый планировщик
func NewScheduler(bookingService *service.BookingService, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		logger:         logger,
		stopChan:       make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler")

	go s.runPurgeTask(ctx)
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

// runPurgeTask периодически удаляет бронирования, выпавшие из 30-дневного окна.
// Окно пересчитывается от текущей даты, поэтому вчерашние записи больше
// недостижимы через календарь и только занимают место.
func (s *Scheduler) runPurgeTask(ctx context.Context) {
	// Первый запуск сразу при старте
	s.purgeExpired(ctx)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.purgeExpired(ctx)
		case <-s.stopChan:
			s.logger.Info("Purge task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Purge task cancelled")
			return
		}
	}
}

// purgeExpired удаляет все бронирования с датой раньше сегодняшней
func (s *Scheduler) purgeExpired(ctx context.Context) {
	s.logger.Info("Starting expired bookings purge")

	removed, err := s.bookingService.PurgeExpired(ctx)
	if err != nil {
		s.logger.Error("Failed to purge expired bookings", zap.Error(err))
		return
	}

	s.logger.Info("Expired bookings purge completed", zap.Int64("removed", removed))
}
