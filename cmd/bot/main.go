package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/yourusername/telegram-warehouse-bot/config"
	"github.com/yourusername/telegram-warehouse-bot/internal/delivery/telegram"
	"github.com/yourusername/telegram-warehouse-bot/internal/infrastructure/storage"
	"github.com/yourusername/telegram-warehouse-bot/internal/usecase"
	"github.com/yourusername/telegram-warehouse-bot/pkg/logger"
)

func main() {
	// Logger ni ishga tushirish
	logger.Init()
	logger.InfoLogger.Println("🚀 Ilova ishga tushmoqda...")

	// Konfiguratsiyani yuklash
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Konfiguratsiya yuklanmadi: %v", err)
	}
	logger.InfoLogger.Printf("✅ %d ta sklad sozlandi", len(cfg.Warehouses))

	// Product store: Postgres sozlangan bo'lsa persistent, aks holda memory
	productRepo := storage.NewProductRepositoryFromEnv()
	logger.InfoLogger.Println("✅ Product store tayyor")

	// Use case
	inventoryUseCase := usecase.NewInventoryUseCase(productRepo)
	logger.InfoLogger.Println("✅ Use case tayyor")

	// Telegram bot handler
	botHandler, err := telegram.NewBotHandler(cfg.TelegramToken, cfg.Warehouses, inventoryUseCase)
	if err != nil {
		log.Fatalf("❌ Bot handler yaratilmadi: %v", err)
	}
	logger.InfoLogger.Printf("✅ Telegram bot tayyor: @%s", botHandler.GetBotUsername())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Context yaratish
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Botni alohida goroutine da ishga tushirish
	go func() {
		if err := botHandler.Start(ctx); err != nil && ctx.Err() == nil {
			logger.ErrorLogger.Printf("❌ Bot xatosi: %v", err)
		}
	}()

	logger.InfoLogger.Println("🤖 Bot ishlayapti. To'xtatish uchun Ctrl+C ni bosing.")

	// Signal kutish
	<-sigChan
	logger.InfoLogger.Println("⏳ To'xtatish signali qabul qilindi...")

	// Graceful shutdown
	cancel()
	logger.InfoLogger.Println("✅ Bot to'xtatildi.")
}
