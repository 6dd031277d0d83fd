package entity

import "time"

// Product bitta skladdagi bitta mahsulotning qoldig'i
type Product struct {
	ID        string
	Warehouse string
	// Name foydalanuvchi birinchi marta kiritgan ko'rinishda saqlanadi
	Name string
	// SearchKey normalizatsiya qilingan nom (exact lookup uchun)
	SearchKey string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
