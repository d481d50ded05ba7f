package controller

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/malwis/venue_backend/internal/i18n"
	"github.com/malwis/venue_backend/internal/prefs"
	"go.uber.org/zap"
)

// PrefsController обрабатывает предпочтения посетителя: язык и флаг
// просмотренного интро
type PrefsController struct {
	store  *prefs.Store
	logger *zap.Logger
}

// NewPrefsController создаёт контроллер предпочтений
func NewPrefsController(store *prefs.Store, logger *zap.Logger) *PrefsController {
	return &PrefsController{store: store, logger: logger}
}

type langResponse struct {
	Lang i18n.Lang `json:"lang"`
}

type introResponse struct {
	Seen bool `json:"seen"`
}

// GetLang отдаёт сохранённый язык посетителя
func (c *PrefsController) GetLang(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	lang := c.store.Lang(r.Context(), visitorID(r))
	RespondWithJSON(w, http.StatusOK, langResponse{Lang: lang})
}

// PutLang сохраняет выбор языка. Без тела запроса язык переключается
// на другой из двух.
func (c *PrefsController) PutLang(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id := visitorID(r)
	if id == "" {
		RespondWithError(w, http.StatusBadRequest, i18n.T(i18n.DefaultLang, "toast-bad-request"))
		return
	}

	var req langResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Lang == "" {
		req.Lang = i18n.Toggle(c.store.Lang(r.Context(), id))
	}

	lang, ok := i18n.ParseLang(string(req.Lang))
	if !ok {
		RespondWithError(w, http.StatusBadRequest, i18n.T(i18n.DefaultLang, "toast-bad-request"))
		return
	}

	if err := c.store.SetLang(r.Context(), id, lang); err != nil {
		c.logger.Error("Failed to save language", zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, i18n.T(lang, "toast-bad-request"))
		return
	}

	RespondWithJSON(w, http.StatusOK, langResponse{Lang: lang})
}

// GetIntro сообщает, видел ли посетитель вступительную заставку
func (c *PrefsController) GetIntro(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	seen := c.store.IntroSeen(r.Context(), visitorID(r))
	RespondWithJSON(w, http.StatusOK, introResponse{Seen: seen})
}

// PostIntro отмечает заставку просмотренной до конца сессии
func (c *PrefsController) PostIntro(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id := visitorID(r)
	if id == "" {
		RespondWithError(w, http.StatusBadRequest, i18n.T(i18n.DefaultLang, "toast-bad-request"))
		return
	}

	if err := c.store.MarkIntroSeen(r.Context(), id); err != nil {
		c.logger.Error("Failed to mark intro seen", zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, i18n.T(i18n.DefaultLang, "toast-bad-request"))
		return
	}

	RespondWithJSON(w, http.StatusOK, introResponse{Seen: true})
}
