package controller

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/malwis/venue_backend/internal/i18n"
	"github.com/stretchr/testify/assert"
)

type fixedLangResolver struct {
	lang i18n.Lang
}

func (f fixedLangResolver) Lang(_ context.Context, _ string) i18n.Lang {
	return f.lang
}

func TestResolveLang(t *testing.T) {
	stored := fixedLangResolver{lang: i18n.LangNL}

	// Явный параметр запроса важнее сохранённого предпочтения
	r := httptest.NewRequest("GET", "/api/calendar?lang=en", nil)
	r.Header.Set("X-Visitor-ID", "v1")
	assert.Equal(t, i18n.LangEN, resolveLang(r, stored))

	// Без параметра берём сохранённый язык посетителя
	r = httptest.NewRequest("GET", "/api/calendar", nil)
	r.Header.Set("X-Visitor-ID", "v1")
	assert.Equal(t, i18n.LangNL, resolveLang(r, stored))

	// Мусорный параметр игнорируется
	r = httptest.NewRequest("GET", "/api/calendar?lang=de", nil)
	r.Header.Set("X-Visitor-ID", "v1")
	assert.Equal(t, i18n.LangNL, resolveLang(r, stored))

	// Аноним без предпочтений получает язык по умолчанию
	r = httptest.NewRequest("GET", "/api/calendar", nil)
	assert.Equal(t, i18n.DefaultLang, resolveLang(r, stored))
}

func TestVisitorID(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/prefs/lang?visitor=q1", nil)
	assert.Equal(t, "q1", visitorID(r))

	// Заголовок важнее query-параметра
	r.Header.Set("X-Visitor-ID", "h1")
	assert.Equal(t, "h1", visitorID(r))

	r = httptest.NewRequest("GET", "/api/prefs/lang", nil)
	assert.Equal(t, "", visitorID(r))
}
