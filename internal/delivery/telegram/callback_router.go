package telegram

import (
	"context"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Callback query larini qayta ishlash
func (h *BotHandler) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq == nil || cq.From == nil || cq.Message == nil || cq.Message.Chat == nil {
		return
	}
	userID := cq.From.ID
	chatID := cq.Message.Chat.ID
	data := cq.Data

	// Callback ga javob (spinnerni to'xtatish)
	if h.bot != nil {
		callback := tgbotapi.NewCallback(cq.ID, "")
		if _, err := h.bot.Request(callback); err != nil {
			log.Printf("Callback javobida xatolik: %v", err)
		}
	}

	if strings.HasPrefix(data, "lang_") {
		h.setUserLang(userID, strings.TrimPrefix(data, "lang_"))
		h.resetSession(userID)
		lang := h.getUserLang(userID)
		h.sendMarkdownWithMarkup(chatID, msgWelcome(lang), mainMenuKeyboard(lang))
		return
	}

	if strings.HasPrefix(data, "wh_") {
		parts := strings.SplitN(strings.TrimPrefix(data, "wh_"), "|", 2)
		if len(parts) != 2 {
			return
		}
		action, warehouse := parts[0], parts[1]
		h.withUserLock(userID, func() {
			h.handleWarehouseChosen(ctx, userID, chatID, action, warehouse)
		})
	}
}

// handleWarehouseChosen sklad tanlandi: add/check/remove uchun data-entry
// holatiga o'tiladi, list darhol qoldiqlarni chiqarib idle ga qaytadi
func (h *BotHandler) handleWarehouseChosen(ctx context.Context, userID, chatID int64, action, warehouse string) {
	lang := h.getUserLang(userID)

	if !h.isKnownWarehouse(warehouse) {
		log.Printf("[callback] noma'lum sklad %q user=%d", warehouse, userID)
		h.resetSession(userID)
		h.sendMessageMarkdown(chatID, msgIdleMenu(lang))
		return
	}

	switch action {
	case actionAdd:
		h.setSession(userID, flowAddingProduct, warehouse)
		h.sendMessageMarkdown(chatID, msgAddPrompt(lang, warehouse))

	case actionCheck:
		h.setSession(userID, flowCheckingProduct, warehouse)
		h.sendMessageMarkdown(chatID, msgCheckPrompt(lang, warehouse))

	case actionList:
		products, err := h.inventoryUseCase.ListProducts(ctx, warehouse)
		if err != nil {
			log.Printf("[callback] list xatosi user=%d: %v", userID, err)
			h.sendMessageMarkdown(chatID, msgStoreError(lang))
			return
		}
		h.sendMessageMarkdown(chatID, msgStockList(lang, warehouse, products))
		h.resetSession(userID)

	case actionRemove:
		// Spisaniyedan oldin joriy qoldiqlar ko'rsatiladi
		products, err := h.inventoryUseCase.ListProducts(ctx, warehouse)
		if err != nil {
			// Sessiya tegilmaydi, skladni qayta tanlash mumkin
			log.Printf("[callback] remove list xatosi user=%d: %v", userID, err)
			h.sendMessageMarkdown(chatID, msgStoreError(lang))
			return
		}
		h.setSession(userID, flowRemovingProduct, warehouse)
		if len(products) == 0 {
			h.sendMessageMarkdown(chatID, msgEmptyWarehouse(lang, warehouse))
		} else {
			h.sendMessageMarkdown(chatID, msgRemovePrompt(lang, warehouse, products))
		}

	default:
		h.resetSession(userID)
		h.sendMessageMarkdown(chatID, msgIdleMenu(lang))
	}
}
