package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/malwis/venue_backend/internal/model"
	"github.com/malwis/venue_backend/internal/repository/base"
)

type InquiryRepository struct {
	pool *pgxpool.Pool
}

func NewInquiryRepository(pool *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{pool: pool}
}

// Create сохраняет новую заявку с контактной формы
func (r *InquiryRepository) Create(ctx context.Context, inquiry *model.Inquiry) error {
	query := `
		INSERT INTO inquiries (ref, name, email, phone, event_date, message, ts_millis)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(
		ctx, query,
		inquiry.ID,
		inquiry.Name,
		inquiry.Email,
		inquiry.Phone,
		inquiry.EventDate,
		inquiry.Message,
		inquiry.Timestamp,
	)

	if err != nil {
		return fmt.Errorf("create inquiry: %w", err)
	}

	return nil
}

// GetByRef получает заявку по референсу
func (r *InquiryRepository) GetByRef(ctx context.Context, ref string) (*model.Inquiry, error) {
	query := `
		SELECT ref, name, email, phone, event_date, message, ts_millis
		FROM inquiries
		WHERE ref = $1
	`

	var inquiry model.Inquiry
	err := r.pool.QueryRow(ctx, query, ref).Scan(
		&inquiry.ID,
		&inquiry.Name,
		&inquiry.Email,
		&inquiry.Phone,
		&inquiry.EventDate,
		&inquiry.Message,
		&inquiry.Timestamp,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inquiry by ref: %w", err)
	}

	return &inquiry, nil
}

// List получает все заявки, новые сверху
func (r *InquiryRepository) List(ctx context.Context) ([]*model.Inquiry, error) {
	query := `
		SELECT ref, name, email, phone, event_date, message, ts_millis
		FROM inquiries
		ORDER BY ts_millis DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []*model.Inquiry
	for rows.Next() {
		var inquiry model.Inquiry
		err := rows.Scan(
			&inquiry.ID,
			&inquiry.Name,
			&inquiry.Email,
			&inquiry.Phone,
			&inquiry.EventDate,
			&inquiry.Message,
			&inquiry.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		inquiries = append(inquiries, &inquiry)
	}

	return inquiries, nil
}

// DeleteByRef удаляет заявку по референсу
func (r *InquiryRepository) DeleteByRef(ctx context.Context, ref string) error {
	query := `DELETE FROM inquiries WHERE ref = $1`

	result, err := r.pool.Exec(ctx, query, ref)
	if err != nil {
		return fmt.Errorf("delete inquiry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("inquiry not found")
	}

	return nil
}
