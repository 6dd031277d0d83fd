package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleCommand komandalarni qayta ishlash
func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	if message == nil || message.From == nil {
		return
	}
	userID := message.From.ID
	cmd := extractCommand(message)
	lang := h.getUserLang(userID)

	switch cmd {
	case "start":
		// Har doim til tanlash menyusini yuborish
		h.resetSession(userID)
		h.sendMarkdownWithMarkup(message.Chat.ID,
			t(lang, "Tilni tanlang:", "Выберите язык:"), languageKeyboard())
	case "help":
		h.sendMessageMarkdown(message.Chat.ID, h.getHelpMessage(lang))
	case "lang":
		h.sendMarkdownWithMarkup(message.Chat.ID,
			t(lang, "Tilni tanlang:", "Выберите язык:"), languageKeyboard())
	case "export":
		h.handleExportCommand(ctx, message)
	default:
		h.sendMessage(message.Chat.ID,
			t(lang, "Noma'lum komanda. /help yordam uchun.", "Неизвестная команда. /help для справки."))
	}
}

func extractCommand(message *tgbotapi.Message) string {
	if message.IsCommand() {
		return message.Command()
	}
	text := strings.TrimSpace(message.Text)
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.TrimPrefix(strings.Fields(text)[0], "/")
	if idx := strings.Index(cmd, "@"); idx >= 0 {
		cmd = cmd[:idx]
	}
	return cmd
}

func (h *BotHandler) getHelpMessage(lang string) string {
	return t(lang,
		`ℹ️ *Sklad bot komandalar:*

/start — boshlash va til tanlash
/lang — tilni almashtirish
/export — qoldiqlarni Excel faylga yuklab olish
/help — ushbu yordam

Amallar klaviatura orqali:
📥 Mahsulot qo'shish — "Sut 10" yoki "Sut - 10"
🔍 Mahsulotni tekshirish — nomini yuboring
📋 Qoldiqlarni ko'rish
📤 Mahsulot spisaniye — "Sut 3" yoki "Sut - 3"`,
		`ℹ️ *Команды склад-бота:*

/start — начать и выбрать язык
/lang — сменить язык
/export — выгрузить остатки в Excel
/help — эта справка

Действия через клавиатуру:
📥 Добавить товар — "Молоко 10" или "Молоко - 10"
🔍 Проверить товар — отправьте название
📋 Показать остатки
📤 Списать товар — "Молоко 3" или "Молоко - 3"`)
}
