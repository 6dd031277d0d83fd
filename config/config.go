package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultWarehouses deploymentda o'rnatilgan skladlar to'plami.
// Yangi sklad qo'shish — konfiguratsiya o'zgarishi, data-model emas.
var DefaultWarehouses = []string{
	"🏠 Серый гараж",
	"🌿 Зелёный гараж",
	"📦 Катлаван",
	"🏡 Дом",
}

// Config ilovaning konfiguratsiyasi
type Config struct {
	TelegramToken string
	Warehouses    []string
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		Warehouses:    parseWarehouses(os.Getenv("WAREHOUSES")),
	}

	// Validatsiya
	if config.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable bo'sh")
	}
	if len(config.Warehouses) == 0 {
		return nil, fmt.Errorf("WAREHOUSES ro'yxati bo'sh")
	}

	return config, nil
}

// parseWarehouses "A,B,C" ko'rinishdagi ro'yxatni o'qiydi, bo'sh bo'lsa
// default to'plam ishlatiladi
func parseWarehouses(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return append([]string(nil), DefaultWarehouses...)
	}
	var warehouses []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			warehouses = append(warehouses, name)
		}
	}
	return warehouses
}
