package telegram

import (
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/telegram-warehouse-bot/internal/usecase"
)

// BotHandler Telegram bot handler
type BotHandler struct {
	bot        *tgbotapi.BotAPI
	warehouses []string

	inventoryUseCase usecase.InventoryUseCase

	// Sessiya holati: userID -> flow/warehouse
	sessionMu sync.RWMutex
	sessions  map[int64]*userSession

	// Bitta foydalanuvchidan kelgan xabarlar ketma-ket qayta ishlanadi
	// (sessiya yozuvlari aralashib ketmasligi uchun)
	userLockMu sync.Mutex
	userLocks  map[int64]*sync.Mutex

	// User language preferences
	langMu   sync.RWMutex
	userLang map[int64]string
}

// NewBotHandler yangi bot handler yaratish
func NewBotHandler(token string, warehouses []string, inventoryUseCase usecase.InventoryUseCase) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	handler := &BotHandler{
		bot:              bot,
		warehouses:       warehouses,
		inventoryUseCase: inventoryUseCase,
		sessions:         make(map[int64]*userSession),
		userLocks:        make(map[int64]*sync.Mutex),
		userLang:         make(map[int64]string),
	}

	return handler, nil
}

// GetBotUsername returns the bot's username from Telegram API state.
func (h *BotHandler) GetBotUsername() string {
	return h.bot.Self.UserName
}

// isKnownWarehouse sklad konfiguratsiyada bormi
func (h *BotHandler) isKnownWarehouse(name string) bool {
	for _, w := range h.warehouses {
		if w == name {
			return true
		}
	}
	return false
}
