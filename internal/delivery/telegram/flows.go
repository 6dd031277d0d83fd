package telegram

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/yourusername/telegram-warehouse-bot/internal/domain/repository"
	"github.com/yourusername/telegram-warehouse-bot/internal/usecase"
)

// handleTextMessage matnni joriy flow bo'yicha kerakli handlerga uzatadi
func (h *BotHandler) handleTextMessage(ctx context.Context, userID int64, text string, chatID int64) {
	lang := h.getUserLang(userID)

	// Asosiy menyu tugmasi istalgan holatda yangi flow boshlaydi
	if action, ok := actionForLabel(text); ok {
		h.startWarehouseSelection(userID, chatID, lang, action)
		return
	}

	sess := h.getSession(userID)
	switch sess.Flow {
	case flowAddingProduct:
		h.handleAddInput(ctx, userID, chatID, lang, sess, text)
	case flowCheckingProduct:
		h.handleCheckInput(ctx, userID, chatID, lang, sess, text)
	case flowRemovingProduct:
		h.handleRemoveInput(ctx, userID, chatID, lang, sess, text)
	case flowIdle:
		// Kontekstsiz matn: holat o'zgarmaydi, ledger tegilmaydi
		h.sendMessageMarkdown(chatID, msgIdleMenu(lang))
	default:
		// Sklad tanlash kutilayotganda matn keldi — defensiv idle
		log.Printf("[flow] kutilmagan matn: flow=%d user=%d", sess.Flow, userID)
		h.resetSession(userID)
		h.sendMessageMarkdown(chatID, msgIdleMenu(lang))
	}
}

// startWarehouseSelection amal tanlandi, sklad keyboardini ko'rsatish
func (h *BotHandler) startWarehouseSelection(userID, chatID int64, lang, action string) {
	var flow flowState
	switch action {
	case actionAdd:
		flow = flowAddingWarehouse
	case actionCheck:
		flow = flowCheckingWarehouse
	case actionList:
		flow = flowListingWarehouse
	case actionRemove:
		flow = flowRemovingWarehouse
	default:
		h.resetSession(userID)
		h.sendMessageMarkdown(chatID, msgIdleMenu(lang))
		return
	}
	h.setSession(userID, flow, "")
	h.sendMarkdownWithMarkup(chatID, msgChooseWarehouse(lang, action), h.warehouseKeyboard(action))
}

// guardWarehouse sessiyadagi sklad konfiguratsiyada bormi; bo'lmasa
// defensiv ravishda idle ga qaytamiz
func (h *BotHandler) guardWarehouse(userID, chatID int64, lang string, sess userSession) bool {
	if h.isKnownWarehouse(sess.Warehouse) {
		return true
	}
	log.Printf("[flow] noma'lum sklad %q user=%d, idle ga qaytdi", sess.Warehouse, userID)
	h.resetSession(userID)
	h.sendMessageMarkdown(chatID, msgIdleMenu(lang))
	return false
}

// handleAddInput "<nom> <miqdor>" satrini qabul qilib qoldiqni oshiradi
func (h *BotHandler) handleAddInput(ctx context.Context, userID, chatID int64, lang string, sess userSession, text string) {
	if !h.guardWarehouse(userID, chatID, lang, sess) {
		return
	}

	parsed, ok := usecase.ParseLine(text)
	if !ok || parsed.Qty <= 0 {
		// Parse xatosi: state saqlanadi, qayta urinish mumkin
		h.touchSession(userID)
		h.sendMessageMarkdown(chatID, msgParseError(lang))
		return
	}

	product, err := h.inventoryUseCase.AddProduct(ctx, sess.Warehouse, parsed.Name, parsed.Qty)
	if err != nil {
		// Store xatosi: sessiya tegilmaydi, foydalanuvchi qayta yuborishi mumkin
		log.Printf("[flow] add xatosi user=%d: %v", userID, err)
		h.sendMessageMarkdown(chatID, msgStoreError(lang))
		return
	}

	h.sendMessageMarkdown(chatID, msgProductUpdated(lang, parsed.Name, sess.Warehouse, product.Quantity))
	h.resetSession(userID)
}

// handleCheckInput nom bo'yicha qoldiqni ko'rsatadi (exact, keyin fuzzy)
func (h *BotHandler) handleCheckInput(ctx context.Context, userID, chatID int64, lang string, sess userSession, text string) {
	if !h.guardWarehouse(userID, chatID, lang, sess) {
		return
	}

	name := strings.TrimSpace(text)
	product, err := h.inventoryUseCase.ResolveProduct(ctx, sess.Warehouse, name)
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		h.sendMessageMarkdown(chatID, msgProductNotFound(lang, name, sess.Warehouse))
	case err != nil:
		log.Printf("[flow] check xatosi user=%d: %v", userID, err)
		h.sendMessageMarkdown(chatID, msgStoreError(lang))
		return
	default:
		h.sendMessageMarkdown(chatID, msgProductChecked(lang, product.Name, sess.Warehouse, product.Quantity))
	}

	h.resetSession(userID)
}

// handleRemoveInput spisaniye: parse, resolve, joriy qoldiqni ko'rsatib remove
func (h *BotHandler) handleRemoveInput(ctx context.Context, userID, chatID int64, lang string, sess userSession, text string) {
	if !h.guardWarehouse(userID, chatID, lang, sess) {
		return
	}

	parsed, ok := usecase.ParseLine(text)
	if !ok || parsed.Qty <= 0 {
		h.touchSession(userID)
		h.sendMessageMarkdown(chatID, msgParseError(lang))
		return
	}

	product, err := h.inventoryUseCase.ResolveProduct(ctx, sess.Warehouse, parsed.Name)
	if errors.Is(err, repository.ErrProductNotFound) {
		similar, simErr := h.inventoryUseCase.FindSimilar(ctx, sess.Warehouse, parsed.Name)
		if simErr != nil {
			log.Printf("[flow] similar qidiruv xatosi user=%d: %v", userID, simErr)
		}
		h.sendMessageMarkdown(chatID, msgProductNotFoundRemove(lang, parsed.Name, sess.Warehouse, similar))
		h.resetSession(userID)
		return
	}
	if err != nil {
		log.Printf("[flow] remove resolve xatosi user=%d: %v", userID, err)
		h.sendMessageMarkdown(chatID, msgStoreError(lang))
		return
	}

	// Spisaniyedan oldin joriy qoldiq ko'rsatiladi
	h.sendMessageMarkdown(chatID, msgCurrentStock(lang, product.Name, product.Quantity, parsed.Qty))

	result, err := h.inventoryUseCase.RemoveProduct(ctx, product, parsed.Qty)
	switch {
	case errors.Is(err, repository.ErrInsufficientStock):
		h.sendMessageMarkdown(chatID, msgInsufficientStock(lang, product.Name, product.Quantity, parsed.Qty))
	case errors.Is(err, repository.ErrProductNotFound):
		// Parallel so'rov yozuvni o'chirib ulgurgan
		h.sendMessageMarkdown(chatID, msgProductNotFound(lang, product.Name, sess.Warehouse))
	case err != nil:
		log.Printf("[flow] remove xatosi user=%d: %v", userID, err)
		h.sendMessageMarkdown(chatID, msgStoreError(lang))
		return
	case result.Outcome == usecase.RemovedComplete:
		h.sendMessageMarkdown(chatID, msgRemovedComplete(lang, product.Name, sess.Warehouse))
	default:
		h.sendMessageMarkdown(chatID, msgRemovedPartial(lang, product.Name, sess.Warehouse, result.Removed, result.Remaining))
	}

	h.resetSession(userID)
}
