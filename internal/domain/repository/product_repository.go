package repository

import (
	"context"
	"errors"

	"github.com/yourusername/telegram-warehouse-bot/internal/domain/entity"
)

var (
	// ErrProductNotFound mahsulot skladda topilmadi
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock skladda yetarli qoldiq yo'q
	ErrInsufficientStock = errors.New("insufficient stock")
)

// ProductRepository sklad qoldiqlarini saqlash kontrakti.
// UpsertIncrement va DecrementQuantity bitta yozuv darajasida atomik
// bo'lishi shart (read-then-write emas).
type ProductRepository interface {
	// FindOne (warehouse, searchKey) bo'yicha exact lookup
	FindOne(ctx context.Context, warehouse, searchKey string) (*entity.Product, error)
	// FindAll sklad bo'yicha barcha yozuvlar, Name bo'yicha tartiblangan
	FindAll(ctx context.Context, warehouse string) ([]entity.Product, error)
	// UpsertIncrement yozuv bo'lmasa yaratadi, bo'lsa quantity ni oshiradi.
	// Name faqat yaratilganda yoziladi. Yangilangan yozuvni qaytaradi.
	UpsertIncrement(ctx context.Context, warehouse, searchKey, name string, delta int) (*entity.Product, error)
	// DecrementQuantity expected qiymat mos kelsagina kamaytiradi
	// (optimistik tekshiruv). Mos kelmasa ErrInsufficientStock.
	DecrementQuantity(ctx context.Context, id string, expected, delta int) (*entity.Product, error)
	// Delete expected qiymat mos kelsagina yozuvni o'chiradi
	Delete(ctx context.Context, id string, expected int) error
}
