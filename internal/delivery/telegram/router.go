package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Start botni ishga tushirish
func (h *BotHandler) Start(ctx context.Context) error {
	go h.cleanupSessions(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			if update.CallbackQuery != nil {
				go h.handleCallback(ctx, update.CallbackQuery)
				continue
			}
			if update.Message == nil {
				continue
			}
			go h.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage xabarni qayta ishlash
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil || message.Chat == nil {
		return
	}
	// Sklad boshqaruvi faqat shaxsiy chatda
	if !message.Chat.IsPrivate() {
		return
	}

	userID := message.From.ID
	if message.IsCommand() || strings.HasPrefix(strings.TrimSpace(message.Text), "/") {
		h.handleCommand(ctx, message)
		return
	}
	if message.Text == "" {
		return
	}

	// Bitta userning xabarlari ketma-ket: sessiya o'qish/yozish aralashmaydi
	h.withUserLock(userID, func() {
		h.handleTextMessage(ctx, userID, message.Text, message.Chat.ID)
	})
}
