package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/malwis/venue_backend/internal/i18n"
	"github.com/malwis/venue_backend/internal/model"
	"github.com/malwis/venue_backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memBookingStore хранилище в памяти с контрактом Postgres-репозитория,
// включая ошибку уникального индекса на паре (дата, слот)
type memBookingStore struct {
	bookings []*model.Booking
}

func (m *memBookingStore) Create(_ context.Context, booking *model.Booking) error {
	for _, b := range m.bookings {
		if b.Date == booking.Date && b.SlotID == booking.SlotID {
			return &pgconn.PgError{Code: "23505"}
		}
	}
	m.bookings = append(m.bookings, booking)
	return nil
}

func (m *memBookingStore) GetByRef(_ context.Context, ref string) (*model.Booking, error) {
	for _, b := range m.bookings {
		if b.ID == ref {
			return b, nil
		}
	}
	return nil, nil
}

func (m *memBookingStore) List(_ context.Context) ([]*model.Booking, error) {
	return m.bookings, nil
}

func (m *memBookingStore) ListUser(_ context.Context) ([]*model.Booking, error) {
	user := make([]*model.Booking, 0)
	for i := len(m.bookings) - 1; i >= 0; i-- {
		if !m.bookings[i].IsSimulated {
			user = append(user, m.bookings[i])
		}
	}
	return user, nil
}

func (m *memBookingStore) ExistsDateSlot(_ context.Context, date string, slot model.SlotID) (bool, error) {
	for _, b := range m.bookings {
		if b.Date == date && b.SlotID == slot {
			return true, nil
		}
	}
	return false, nil
}

func (m *memBookingStore) Count(_ context.Context) (int64, error) {
	return int64(len(m.bookings)), nil
}

func (m *memBookingStore) DeleteByRef(_ context.Context, ref string) error {
	for i, b := range m.bookings {
		if b.ID == ref {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memBookingStore) DeleteAll(_ context.Context) error {
	m.bookings = nil
	return nil
}

func (m *memBookingStore) DeleteBefore(_ context.Context, date string) (int64, error) {
	kept := m.bookings[:0]
	var removed int64
	for _, b := range m.bookings {
		if b.Date < date {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	m.bookings = kept
	return removed, nil
}

// apiResponse конверт ответа API, как его видит клиент
type apiResponse struct {
	Data         json.RawMessage   `json:"data"`
	Notification *Notice           `json:"notification"`
	Errors       map[string]string `json:"errors"`
}

func newBookingTestController() (*BookingController, *memBookingStore) {
	store := &memBookingStore{}
	svc := service.NewBookingService(store, rand.New(rand.NewSource(1)), zap.NewNop())
	ctrl := NewBookingController(svc, nil, fixedLangResolver{lang: i18n.LangEN}, nil, zap.NewNop())
	return ctrl, store
}

func postBooking(t *testing.T, ctrl *BookingController, body string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()

	r := httptest.NewRequest("POST", "/api/bookings", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	ctrl.CreateBooking(w, r, nil)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestCreateBookingSuccessEnvelope(t *testing.T) {
	ctrl, _ := newBookingTestController()
	date := model.FormatDate(time.Now().AddDate(0, 0, 3))

	body := fmt.Sprintf(`{"date":%q,"slotId":"A","name":"Eva","phone":"+31600000001"}`, date)
	w, resp := postBooking(t, ctrl, body)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, resp.Notification)
	assert.Equal(t, NoticeSuccess, resp.Notification.Kind)

	var booking model.Booking
	require.NoError(t, json.Unmarshal(resp.Data, &booking))
	assert.Regexp(t, `^BK-[0-9A-Z]{6}$`, booking.ID)
	assert.Contains(t, resp.Notification.Message, booking.ID)
}

func TestCreateBookingConflictRefreshesSlots(t *testing.T) {
	ctrl, _ := newBookingTestController()
	date := model.FormatDate(time.Now().AddDate(0, 0, 3))

	body := fmt.Sprintf(`{"date":%q,"slotId":"B","name":"Eva","phone":"+31600000001"}`, date)
	w, _ := postBooking(t, ctrl, body)
	require.Equal(t, http.StatusCreated, w.Code)

	// Тот же слот из "другой вкладки": конфликт вместо второй записи
	body = fmt.Sprintf(`{"date":%q,"slotId":"B","name":"Sam","phone":"+31600000002"}`, date)
	w, resp := postBooking(t, ctrl, body)

	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, resp.Notification)
	assert.Equal(t, NoticeError, resp.Notification.Kind)
	assert.Equal(t, i18n.T(i18n.LangEN, "toast-conflict"), resp.Notification.Message)

	// Вместе с конфликтом приходит свежая занятость слотов дня
	var options []model.SlotOption
	require.NoError(t, json.Unmarshal(resp.Data, &options))
	require.Len(t, options, 2)
	assert.Equal(t, model.SlotA, options[0].SlotID)
	assert.False(t, options[0].Booked)
	assert.Equal(t, "Available", options[0].Status)
	assert.Equal(t, model.SlotB, options[1].SlotID)
	assert.True(t, options[1].Booked)
	assert.Equal(t, "Booked", options[1].Status)
}

func TestCreateBookingFieldErrors(t *testing.T) {
	ctrl, store := newBookingTestController()
	date := model.FormatDate(time.Now().AddDate(0, 0, 3))

	body := fmt.Sprintf(`{"date":%q,"slotId":"A"}`, date)
	w, resp := postBooking(t, ctrl, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, resp.Notification)
	assert.Equal(t, NoticeError, resp.Notification.Kind)
	assert.Equal(t, "required", resp.Errors["name"])
	assert.Equal(t, "required", resp.Errors["phone"])
	assert.Empty(t, store.bookings)
}

func TestListBookingsEmptyMessageInline(t *testing.T) {
	ctrl, _ := newBookingTestController()

	r := httptest.NewRequest("GET", "/api/bookings", nil)
	w := httptest.NewRecorder()
	ctrl.ListBookings(w, r, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// Пустой список — не повод для тоста: сообщение лежит в данных
	assert.Nil(t, resp.Notification)

	var list bookingListResponse
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Empty(t, list.Bookings)
	assert.Equal(t, i18n.T(i18n.LangEN, "no-book-msg"), list.Message)
}
