package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseLang(t *testing.T) {
	lang, ok := ParseLang("nl")
	assert.True(t, ok)
	assert.Equal(t, LangNL, lang)

	lang, ok = ParseLang("en")
	assert.True(t, ok)
	assert.Equal(t, LangEN, lang)

	// Мусор из хранилища трактуется как отсутствующее значение
	for _, bad := range []string{"", "de", "EN", "{broken json"} {
		lang, ok = ParseLang(bad)
		assert.False(t, ok)
		assert.Equal(t, DefaultLang, lang)
	}
}

func TestToggle(t *testing.T) {
	assert.Equal(t, LangNL, Toggle(LangEN))
	assert.Equal(t, LangEN, Toggle(LangNL))
}

func TestT(t *testing.T) {
	assert.Equal(t, "Fully Booked", T(LangEN, "leg-full"))
	assert.Equal(t, "Volgeboekt", T(LangNL, "leg-full"))

	// Неизвестный язык падает на английский, неизвестный ключ — на сам ключ
	assert.Equal(t, "Fully Booked", T(Lang("de"), "leg-full"))
	assert.Equal(t, "no-such-key", T(LangEN, "no-such-key"))
}

func TestTf(t *testing.T) {
	msg := Tf(LangEN, "toast-booked", "BK-ABC123")
	assert.Contains(t, msg, "BK-ABC123")
}

func TestWeekdayShort(t *testing.T) {
	assert.Equal(t, "Mon", WeekdayShort(LangEN, time.Monday))
	assert.Equal(t, "ma", WeekdayShort(LangNL, time.Monday))
	assert.Equal(t, "Sun", WeekdayShort(LangEN, time.Sunday))

	// Фолбэк на английский для неизвестного языка
	assert.Equal(t, "Fri", WeekdayShort(Lang("de"), time.Friday))
}

func TestTranslationsComplete(t *testing.T) {
	// Каждый ключ существует в обоих языках
	for key := range translations[LangEN] {
		_, ok := translations[LangNL][key]
		assert.True(t, ok, "missing NL translation for %q", key)
	}
	for key := range translations[LangNL] {
		_, ok := translations[LangEN][key]
		assert.True(t, ok, "missing EN translation for %q", key)
	}
}
