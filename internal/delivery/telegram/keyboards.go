package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Asosiy menyu tugmalari (reply keyboard matni shu labellarga teng keladi)
type actionLabels struct {
	uz string
	ru string
}

var menuActions = map[string]actionLabels{
	actionAdd:    {uz: "📥 Mahsulot qo'shish", ru: "📥 Добавить товар"},
	actionCheck:  {uz: "🔍 Mahsulotni tekshirish", ru: "🔍 Проверить товар"},
	actionList:   {uz: "📋 Qoldiqlarni ko'rish", ru: "📋 Показать остатки"},
	actionRemove: {uz: "📤 Mahsulot spisaniye", ru: "📤 Списать товар"},
}

// actionForLabel bosilgan tugma matnidan amalni aniqlaydi (ikkala tilda)
func actionForLabel(text string) (string, bool) {
	for action, labels := range menuActions {
		if text == labels.uz || text == labels.ru {
			return action, true
		}
	}
	return "", false
}

func actionLabel(lang, action string) string {
	labels := menuActions[action]
	return t(lang, labels.uz, labels.ru)
}

// mainMenuKeyboard 4 ta amal tugmali reply keyboard
func mainMenuKeyboard(lang string) tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(actionLabel(lang, actionAdd)),
			tgbotapi.NewKeyboardButton(actionLabel(lang, actionCheck)),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(actionLabel(lang, actionList)),
			tgbotapi.NewKeyboardButton(actionLabel(lang, actionRemove)),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// warehouseKeyboard sklad tanlash inline keyboard, callback data:
// "wh_<action>|<warehouse>"
func (h *BotHandler) warehouseKeyboard(action string) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(h.warehouses))
	for _, w := range h.warehouses {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(w, "wh_"+action+"|"+w),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// languageKeyboard til tanlash inline keyboard
func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🇺🇿 O'zbekcha", "lang_uz"),
			tgbotapi.NewInlineKeyboardButtonData("🇷🇺 Русский", "lang_ru"),
		),
	)
}
