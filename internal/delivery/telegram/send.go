package telegram

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sendText sends a message with optional parseMode/replyMarkup.
func (h *BotHandler) sendText(chatID int64, text string, parseMode string, replyMarkup interface{}) (*tgbotapi.Message, error) {
	if h.bot == nil {
		return nil, fmt.Errorf("telegram bot is nil")
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = parseMode
	if replyMarkup != nil {
		msg.ReplyMarkup = replyMarkup
	}
	sent, err := h.bot.Send(msg)
	if err != nil {
		return nil, err
	}
	return &sent, nil
}

// sendMessage oddiy xabar yuborish
func (h *BotHandler) sendMessage(chatID int64, text string) {
	if h.bot == nil {
		log.Printf("sendMessage skipped (bot is nil) chat=%d text=%q", chatID, truncateForLog(text, 120))
		return
	}
	if strings.TrimSpace(text) == "" {
		log.Printf("⚠️ Bo'sh xabar yuborilmoqchi bo'ldi! ChatID: %d", chatID)
		return
	}

	for _, chunk := range splitIntoChunks(text, 4096) {
		if _, err := h.sendText(chatID, chunk, "", nil); err != nil {
			log.Printf("Xabar yuborishda xatolik: %v", err)
			return
		}
	}
}

// sendMessageMarkdown markdown formatda xabar yuborish
func (h *BotHandler) sendMessageMarkdown(chatID int64, text string) {
	h.sendMarkdownWithMarkup(chatID, text, nil)
}

func (h *BotHandler) sendMarkdownWithMarkup(chatID int64, text string, replyMarkup interface{}) {
	if h.bot == nil {
		log.Printf("sendMessage skipped (bot is nil) chat=%d text=%q", chatID, truncateForLog(text, 120))
		return
	}
	if strings.TrimSpace(text) == "" {
		log.Printf("⚠️ Bo'sh xabar yuborilmoqchi bo'ldi! ChatID: %d", chatID)
		return
	}

	for _, chunk := range splitIntoChunks(text, 4096) {
		if _, err := h.sendText(chatID, chunk, "Markdown", replyMarkup); err != nil {
			log.Printf("Xabar yuborishda xatolik: %v", err)
			return
		}
	}
}

func truncateForLog(s string, max int) string {
	if len(s) <= max {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(s[:max]) + "…"
}

// splitIntoChunks matnni Telegram limitiga mos bo'laklarga bo'ladi
func splitIntoChunks(s string, limit int) []string {
	if limit <= 0 {
		return []string{s}
	}
	var chunks []string
	var current strings.Builder

	for _, r := range s {
		current.WriteRune(r)
		if current.Len() >= limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}
