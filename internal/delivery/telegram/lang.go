package telegram

// Language helpers
func (h *BotHandler) setUserLang(userID int64, lang string) {
	h.langMu.Lock()
	defer h.langMu.Unlock()
	if lang != "ru" {
		lang = "uz"
	}
	h.userLang[userID] = lang
}

func (h *BotHandler) getUserLang(userID int64) string {
	h.langMu.RLock()
	defer h.langMu.RUnlock()
	if lang, ok := h.userLang[userID]; ok {
		return lang
	}
	return "uz"
}

func t(lang, uz, ru string) string {
	if lang == "ru" {
		return ru
	}
	return uz
}
