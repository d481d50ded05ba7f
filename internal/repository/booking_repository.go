package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/malwis/venue_backend/internal/model"
	"github.com/malwis/venue_backend/internal/repository/base"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// scanBooking читает строку bookings в модель, приводя дату к YYYY-MM-DD
func scanBooking(row pgx.Row) (*model.Booking, error) {
	var booking model.Booking
	var day time.Time
	err := row.Scan(
		&booking.ID,
		&day,
		&booking.SlotID,
		&booking.Name,
		&booking.Phone,
		&booking.Email,
		&booking.Timestamp,
		&booking.IsSimulated,
	)
	if err != nil {
		return nil, err
	}
	booking.Date = day.Format(model.DateLayout)
	return &booking, nil
}

// Create создаёт новое бронирование
func (r *BookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (ref, day, slot_id, name, phone, email, ts_millis, is_simulated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(
		ctx, query,
		booking.ID,
		booking.Date,
		booking.SlotID,
		booking.Name,
		booking.Phone,
		booking.Email,
		booking.Timestamp,
		booking.IsSimulated,
	)

	if err != nil {
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

// GetByRef получает бронирование по референсу
func (r *BookingRepository) GetByRef(ctx context.Context, ref string) (*model.Booking, error) {
	query := `
		SELECT ref, day, slot_id, name, phone, email, ts_millis, is_simulated
		FROM bookings
		WHERE ref = $1
	`

	booking, err := scanBooking(r.pool.QueryRow(ctx, query, ref))
	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking by ref: %w", err)
	}

	return booking, nil
}

// List получает все бронирования в порядке вставки
func (r *BookingRepository) List(ctx context.Context) ([]*model.Booking, error) {
	query := `
		SELECT ref, day, slot_id, name, phone, email, ts_millis, is_simulated
		FROM bookings
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// ListUser получает пользовательские (не демо) бронирования, новые сверху
func (r *BookingRepository) ListUser(ctx context.Context) ([]*model.Booking, error) {
	query := `
		SELECT ref, day, slot_id, name, phone, email, ts_millis, is_simulated
		FROM bookings
		WHERE is_simulated = FALSE
		ORDER BY ts_millis DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*model.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// ExistsDateSlot проверяет занята ли пара (дата, слот)
func (r *BookingRepository) ExistsDateSlot(ctx context.Context, date string, slot model.SlotID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM bookings WHERE day = $1 AND slot_id = $2)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, date, slot).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check date slot: %w", err)
	}

	return exists, nil
}

// Count возвращает количество всех бронирований (включая демо)
func (r *BookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

// DeleteByRef удаляет бронирование по референсу
func (r *BookingRepository) DeleteByRef(ctx context.Context, ref string) error {
	query := `DELETE FROM bookings WHERE ref = $1`

	result, err := r.pool.Exec(ctx, query, ref)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking not found")
	}

	return nil
}

// DeleteAll полностью очищает хранилище бронирований
func (r *BookingRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM bookings`)
	if err != nil {
		return fmt.Errorf("delete all bookings: %w", err)
	}

	return nil
}

// DeleteBefore удаляет бронирования с датой раньше указанной
func (r *BookingRepository) DeleteBefore(ctx context.Context, date string) (int64, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE day < $1`, date)
	if err != nil {
		return 0, fmt.Errorf("delete expired bookings: %w", err)
	}

	return result.RowsAffected(), nil
}
