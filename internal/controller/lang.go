package controller

import (
	"context"
	"net/http"

	"github.com/malwis/venue_backend/internal/i18n"
)

// LangResolver отдаёт сохранённый язык посетителя
type LangResolver interface {
	Lang(ctx context.Context, visitorID string) i18n.Lang
}

// visitorID извлекает идентификатор посетителя из запроса
func visitorID(r *http.Request) string {
	if id := r.Header.Get("X-Visitor-ID"); id != "" {
		return id
	}
	return r.URL.Query().Get("visitor")
}

// resolveLang определяет язык ответа: явный параметр запроса имеет
// приоритет над сохранённым предпочтением посетителя
func resolveLang(r *http.Request, prefs LangResolver) i18n.Lang {
	if q := r.URL.Query().Get("lang"); q != "" {
		if lang, ok := i18n.ParseLang(q); ok {
			return lang
		}
	}

	if prefs != nil {
		if id := visitorID(r); id != "" {
			return prefs.Lang(r.Context(), id)
		}
	}

	return i18n.DefaultLang
}
