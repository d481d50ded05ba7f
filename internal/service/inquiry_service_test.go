package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/malwis/venue_backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeInquiryStore struct {
	inquiries []*model.Inquiry
}

func (f *fakeInquiryStore) Create(_ context.Context, inquiry *model.Inquiry) error {
	f.inquiries = append(f.inquiries, inquiry)
	return nil
}

func (f *fakeInquiryStore) GetByRef(_ context.Context, ref string) (*model.Inquiry, error) {
	for _, inq := range f.inquiries {
		if inq.ID == ref {
			return inq, nil
		}
	}
	return nil, nil
}

func (f *fakeInquiryStore) List(_ context.Context) ([]*model.Inquiry, error) {
	return f.inquiries, nil
}

func (f *fakeInquiryStore) DeleteByRef(_ context.Context, ref string) error {
	for i, inq := range f.inquiries {
		if inq.ID == ref {
			f.inquiries = append(f.inquiries[:i], f.inquiries[i+1:]...)
			return nil
		}
	}
	return nil
}

func validForm() InquiryForm {
	return InquiryForm{
		Name:    "Eva de Vries",
		Email:   "eva@example.com",
		Phone:   "+31 6 1234 5678",
		Message: "We would like to host a birthday party for thirty guests.",
		Agree:   true,
	}
}

func newInquiryService() (*InquiryService, *fakeInquiryStore) {
	store := &fakeInquiryStore{}
	return NewInquiryService(store, rand.New(rand.NewSource(1)), zap.NewNop()), store
}

func TestValidateInquiry(t *testing.T) {
	assert.Nil(t, ValidateInquiry(validForm()))

	tests := []struct {
		name   string
		mutate func(*InquiryForm)
		field  string
	}{
		{"short name", func(f *InquiryForm) { f.Name = "E" }, "name"},
		{"name of spaces", func(f *InquiryForm) { f.Name = "   " }, "name"},
		{"bad email", func(f *InquiryForm) { f.Email = "not-an-email" }, "email"},
		{"email without domain dot", func(f *InquiryForm) { f.Email = "a@b" }, "email"},
		{"short phone", func(f *InquiryForm) { f.Phone = "12345" }, "phone"},
		{"phone with letters", func(f *InquiryForm) { f.Phone = "call me 123" }, "phone"},
		{"short message", func(f *InquiryForm) { f.Message = "too short" }, "message"},
		{"bad event date", func(f *InquiryForm) { f.EventDate = "31-12-2026" }, "eventDate"},
		{"no agreement", func(f *InquiryForm) { f.Agree = false }, "agree"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			errs := ValidateInquiry(form)
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestValidateInquiryOptionalEventDate(t *testing.T) {
	form := validForm()
	form.EventDate = ""
	assert.Nil(t, ValidateInquiry(form))

	form.EventDate = "2026-12-31"
	assert.Nil(t, ValidateInquiry(form))
}

func TestSubmitStoresInquiry(t *testing.T) {
	svc, store := newInquiryService()

	inquiry, stored, err := svc.Submit(context.Background(), validForm())
	require.NoError(t, err)
	assert.True(t, stored)

	assert.Regexp(t, `^CT-[0-9A-Z]{6}$`, inquiry.ID)
	assert.Equal(t, "Eva de Vries", inquiry.Name)
	require.Len(t, store.inquiries, 1)
}

func TestSubmitRejectsInvalidForm(t *testing.T) {
	svc, store := newInquiryService()

	form := validForm()
	form.Message = "short"

	_, _, err := svc.Submit(context.Background(), form)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "message")
	assert.Empty(t, store.inquiries)
}

func TestSubmitDropsHoneypotSilently(t *testing.T) {
	svc, store := newInquiryService()

	form := validForm()
	form.Website = "http://spam.example"

	inquiry, stored, err := svc.Submit(context.Background(), form)
	require.NoError(t, err)

	// Бот получает правдоподобный референс, но запись не сохраняется
	assert.False(t, stored)
	assert.Regexp(t, `^CT-[0-9A-Z]{6}$`, inquiry.ID)
	assert.Empty(t, store.inquiries)
}

func TestSubmitHoneypotSkipsValidation(t *testing.T) {
	svc, store := newInquiryService()

	// Бот с мусорными данными не должен увидеть ошибки валидации
	form := InquiryForm{Website: "spam"}

	_, stored, err := svc.Submit(context.Background(), form)
	require.NoError(t, err)
	assert.False(t, stored)
	assert.Empty(t, store.inquiries)
}

func TestDeleteInquiry(t *testing.T) {
	svc, store := newInquiryService()

	inquiry, _, err := svc.Submit(context.Background(), validForm())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), inquiry.ID))
	assert.Empty(t, store.inquiries)

	assert.ErrorIs(t, svc.Delete(context.Background(), inquiry.ID), ErrInquiryNotFound)
}

func TestMaskedPhone(t *testing.T) {
	inquiry := &model.Inquiry{Phone: "+31612345678"}
	assert.Equal(t, "********5678", inquiry.MaskedPhone())

	short := &model.Inquiry{Phone: "123"}
	assert.Equal(t, "123", short.MaskedPhone())
}
