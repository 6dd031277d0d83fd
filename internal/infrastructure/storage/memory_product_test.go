package storage

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/yourusername/telegram-warehouse-bot/internal/domain/repository"
)

func TestUpsertIncrementCreatesAndIncrements(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	created, err := repo.UpsertIncrement(ctx, "W1", "olma", "Olma", 5)
	if err != nil {
		t.Fatalf("UpsertIncrement xatosi: %v", err)
	}
	if created.ID == "" {
		t.Error("ID generatsiya qilinmagan")
	}
	if created.Quantity != 5 {
		t.Errorf("Kutilgan quantity=5, natija=%d", created.Quantity)
	}

	updated, err := repo.UpsertIncrement(ctx, "W1", "olma", "OLMA", 3)
	if err != nil {
		t.Fatalf("UpsertIncrement xatosi: %v", err)
	}
	if updated.ID != created.ID {
		t.Error("Yangi yozuv yaratilib qolgan (uniqueness buzilgan)")
	}
	if updated.Quantity != 8 {
		t.Errorf("Kutilgan quantity=8, natija=%d", updated.Quantity)
	}
	// Nom faqat insertda yoziladi
	if updated.Name != "Olma" {
		t.Errorf("Nom o'zgarib ketgan: %q", updated.Name)
	}
}

func TestFindAllOrderedByName(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	for _, name := range []string{"Sut", "Olma", "Tuxum"} {
		if _, err := repo.UpsertIncrement(ctx, "W1", name, name, 1); err != nil {
			t.Fatalf("UpsertIncrement xatosi: %v", err)
		}
	}
	// Boshqa sklad ro'yxatga kirmasligi kerak
	if _, err := repo.UpsertIncrement(ctx, "W2", "non", "Non", 1); err != nil {
		t.Fatalf("UpsertIncrement xatosi: %v", err)
	}

	products, err := repo.FindAll(ctx, "W1")
	if err != nil {
		t.Fatalf("FindAll xatosi: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("Kutilgan 3 ta yozuv, natija=%d", len(products))
	}
	if products[0].Name != "Olma" || products[1].Name != "Sut" || products[2].Name != "Tuxum" {
		t.Errorf("Tartib noto'g'ri: %q %q %q", products[0].Name, products[1].Name, products[2].Name)
	}
}

// Optimistik guard: expected mos kelmasa yozuv tegilmaydi
func TestDecrementQuantityOptimisticGuard(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	product, err := repo.UpsertIncrement(ctx, "W1", "olma", "Olma", 10)
	if err != nil {
		t.Fatalf("UpsertIncrement xatosi: %v", err)
	}

	// Noto'g'ri expected bilan urinish
	if _, err := repo.DecrementQuantity(ctx, product.ID, 7, 3); !errors.Is(err, repository.ErrInsufficientStock) {
		t.Errorf("Kutilgan ErrInsufficientStock, natija=%v", err)
	}
	stored, err := repo.FindOne(ctx, "W1", "olma")
	if err != nil {
		t.Fatalf("FindOne xatosi: %v", err)
	}
	if stored.Quantity != 10 {
		t.Errorf("Yozuv o'zgarib ketgan: quantity=%d", stored.Quantity)
	}

	// To'g'ri expected bilan
	updated, err := repo.DecrementQuantity(ctx, product.ID, 10, 3)
	if err != nil {
		t.Fatalf("DecrementQuantity xatosi: %v", err)
	}
	if updated.Quantity != 7 {
		t.Errorf("Kutilgan quantity=7, natija=%d", updated.Quantity)
	}
}

func TestDeleteWithGuard(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	product, err := repo.UpsertIncrement(ctx, "W1", "olma", "Olma", 5)
	if err != nil {
		t.Fatalf("UpsertIncrement xatosi: %v", err)
	}

	if err := repo.Delete(ctx, product.ID, 4); !errors.Is(err, repository.ErrInsufficientStock) {
		t.Errorf("Kutilgan ErrInsufficientStock, natija=%v", err)
	}
	if err := repo.Delete(ctx, product.ID, 5); err != nil {
		t.Fatalf("Delete xatosi: %v", err)
	}
	if _, err := repo.FindOne(ctx, "W1", "olma"); !errors.Is(err, repository.ErrProductNotFound) {
		t.Errorf("Yozuv o'chirilmagan: %v", err)
	}
	if err := repo.Delete(ctx, product.ID, 5); !errors.Is(err, repository.ErrProductNotFound) {
		t.Errorf("Kutilgan ErrProductNotFound, natija=%v", err)
	}
}

func TestFindOneUnknown(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	if _, err := repo.FindOne(ctx, "W1", "yo'q"); !errors.Is(err, repository.ErrProductNotFound) {
		t.Errorf("Kutilgan ErrProductNotFound, natija=%v", err)
	}
	if _, err := repo.DecrementQuantity(ctx, "no-such-id", 1, 1); !errors.Is(err, repository.ErrProductNotFound) {
		t.Errorf("Kutilgan ErrProductNotFound, natija=%v", err)
	}
}

// Parallel upsertlar (go test -race bilan ishga tushiring)
func TestUpsertIncrementConcurrency(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProductRepository()

	var wg sync.WaitGroup
	numGoroutines := 100
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.UpsertIncrement(ctx, "W1", "olma", "Olma", 1); err != nil {
				t.Errorf("UpsertIncrement xatosi: %v", err)
			}
		}()
	}
	wg.Wait()

	product, err := repo.FindOne(ctx, "W1", "olma")
	if err != nil {
		t.Fatalf("FindOne xatosi: %v", err)
	}
	if product.Quantity != numGoroutines {
		t.Errorf("Kutilgan %d, natija=%d (lost update)", numGoroutines, product.Quantity)
	}
}
