package telegram

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/telegram-warehouse-bot/internal/domain/entity"
)

// handleExportCommand barcha skladlar qoldiqlarini xlsx qilib yuboradi
func (h *BotHandler) handleExportCommand(ctx context.Context, message *tgbotapi.Message) {
	lang := h.getUserLang(message.From.ID)
	chatID := message.Chat.ID

	var rows []entity.Product
	for _, warehouse := range h.warehouses {
		products, err := h.inventoryUseCase.ListProducts(ctx, warehouse)
		if err != nil {
			log.Printf("[export] list xatosi warehouse=%q: %v", warehouse, err)
			h.sendMessageMarkdown(chatID, msgStoreError(lang))
			return
		}
		rows = append(rows, products...)
	}

	xlsxBytes, err := buildStockExportXLSX(rows)
	if err != nil {
		log.Printf("stock export xlsx error: %v", err)
		h.sendMessage(chatID, t(lang,
			"❌ Excel fayl tayyorlashda xatolik yuz berdi.",
			"❌ Ошибка при подготовке Excel-файла."))
		return
	}

	if h.bot == nil {
		log.Printf("export skipped (bot is nil) chat=%d rows=%d", chatID, len(rows))
		return
	}

	filename := fmt.Sprintf("stock_%s.xlsx", time.Now().Format("20060102_150405"))
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: filename, Bytes: xlsxBytes})
	doc.Caption = t(lang,
		fmt.Sprintf("📦 Sklad qoldiqlari eksporti\nJami: %d ta yozuv", len(rows)),
		fmt.Sprintf("📦 Экспорт складских остатков\nВсего: %d записей", len(rows)))
	if _, err := h.bot.Send(doc); err != nil {
		log.Printf("stock export send error: %v", err)
		h.sendMessage(chatID, t(lang,
			"❌ Excel fayl yuborishda xatolik yuz berdi.",
			"❌ Ошибка при отправке Excel-файла."))
	}
}

func buildStockExportXLSX(rows []entity.Product) ([]byte, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"Warehouse", "Product", "Quantity", "Updated At"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.Warehouse,
			row.Name,
			row.Quantity,
			row.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		rowIdx := i + 2
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
