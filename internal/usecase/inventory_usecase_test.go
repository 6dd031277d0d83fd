package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/yourusername/telegram-warehouse-bot/internal/domain/repository"
	"github.com/yourusername/telegram-warehouse-bot/internal/infrastructure/storage"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"  Молоко  ", "молоко"},
		{"Tomato   Sauce", "tomato sauce"},
		{"MILK", "milk"},
		{"", ""},
		{"   ", ""},
	}

	for _, test := range tests {
		result := NormalizeName(test.raw)
		if result != test.expected {
			t.Errorf("NormalizeName(%q): kutilgan=%q, natija=%q", test.raw, test.expected, result)
		}
	}
}

func TestSearchToken(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Tomato Sauce", "tomato"},
		{"  Помидор (красный)  ", "помидор"},
		{"Milk!!!", "milk"},
		{"№1 sut", "1"},
		{"!!!", ""},
		{"", ""},
	}

	for _, test := range tests {
		result := SearchToken(test.name)
		if result != test.expected {
			t.Errorf("SearchToken(%q): kutilgan=%q, natija=%q", test.name, test.expected, result)
		}
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		raw     string
		name    string
		qty     int
		matched bool
	}{
		{"Milk - 10", "Milk", 10, true},
		{"Milk 10", "Milk", 10, true},
		{"Milk 10pcs", "Milk", 10, true},
		{"Помидор-1000", "Помидор", 1000, true},
		{"Помидор - 1000 шт.", "Помидор", 1000, true},
		{"Sut 5 dona", "Sut", 5, true},
		{"Qizil olma 25", "Qizil olma", 25, true},
		{"", "", 0, false},
		{"OnlyText", "", 0, false},
		{"10 10 10 abc", "", 0, false},
	}

	for _, test := range tests {
		parsed, ok := ParseLine(test.raw)
		if ok != test.matched {
			t.Errorf("ParseLine(%q): kutilgan matched=%v, natija=%v", test.raw, test.matched, ok)
			continue
		}
		if !ok {
			continue
		}
		if parsed.Name != test.name || parsed.Qty != test.qty {
			t.Errorf("ParseLine(%q): kutilgan {%q %d}, natija {%q %d}", test.raw, test.name, test.qty, parsed.Name, parsed.Qty)
		}
	}
}

// ParseLine musbatlikni tekshirmaydi: nol fallback orqali qaytadi
func TestParseLineAllowsZero(t *testing.T) {
	parsed, ok := ParseLine("Milk 0")
	if !ok || parsed.Qty != 0 {
		t.Errorf("ParseLine(\"Milk 0\"): kutilgan qty=0, natija=%v ok=%v", parsed.Qty, ok)
	}
}

func newTestUseCase() (InventoryUseCase, repository.ProductRepository) {
	repo := storage.NewMemoryProductRepository()
	return NewInventoryUseCase(repo), repo
}

func TestAddProductAccumulates(t *testing.T) {
	ctx := context.Background()
	uc, repo := newTestUseCase()

	quantities := []int{5, 3, 7}
	total := 0
	for _, q := range quantities {
		if _, err := uc.AddProduct(ctx, "W1", "Olma", q); err != nil {
			t.Fatalf("AddProduct xatosi: %v", err)
		}
		total += q
	}

	product, err := repo.FindOne(ctx, "W1", "olma")
	if err != nil {
		t.Fatalf("FindOne xatosi: %v", err)
	}
	if product.Quantity != total {
		t.Errorf("Kutilgan quantity=%d, natija=%d", total, product.Quantity)
	}
}

// Birinchi kiritilgan nom saqlanib qoladi, keyingi addlar uni o'zgartirmaydi
func TestAddProductKeepsFirstName(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase()

	if _, err := uc.AddProduct(ctx, "W1", "Tomato Sauce", 2); err != nil {
		t.Fatalf("AddProduct xatosi: %v", err)
	}
	product, err := uc.AddProduct(ctx, "W1", "TOMATO   sauce", 3)
	if err != nil {
		t.Fatalf("AddProduct xatosi: %v", err)
	}

	if product.Name != "Tomato Sauce" {
		t.Errorf("Nom o'zgarib ketgan: %q", product.Name)
	}
	if product.Quantity != 5 {
		t.Errorf("Kutilgan quantity=5, natija=%d", product.Quantity)
	}
}

func TestAddProductRejectsNonPositive(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase()

	for _, qty := range []int{0, -5} {
		if _, err := uc.AddProduct(ctx, "W1", "Olma", qty); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("qty=%d: kutilgan ErrInvalidQuantity, natija=%v", qty, err)
		}
	}
}

func TestResolveProductFuzzy(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase()

	if _, err := uc.AddProduct(ctx, "W1", "Tomato Sauce", 4); err != nil {
		t.Fatalf("AddProduct xatosi: %v", err)
	}

	for _, query := range []string{"tomato", "Tomato Sauce Extra", "TOMATO SAUCE"} {
		product, err := uc.ResolveProduct(ctx, "W1", query)
		if err != nil {
			t.Errorf("ResolveProduct(%q) topilmadi: %v", query, err)
			continue
		}
		if product.Name != "Tomato Sauce" {
			t.Errorf("ResolveProduct(%q): kutilgan \"Tomato Sauce\", natija=%q", query, product.Name)
		}
	}

	if _, err := uc.ResolveProduct(ctx, "W1", "Potato"); !errors.Is(err, repository.ErrProductNotFound) {
		t.Errorf("Potato: kutilgan ErrProductNotFound, natija=%v", err)
	}
	// Boshqa skladda ko'rinmasligi kerak
	if _, err := uc.ResolveProduct(ctx, "W2", "tomato"); !errors.Is(err, repository.ErrProductNotFound) {
		t.Errorf("W2 dan topilib qoldi: %v", err)
	}
}

// Fuzzy natija nom bo'yicha tartiblangan, birinchi mos yozuv olinadi
func TestFindSimilarOrdering(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase()

	for _, name := range []string{"Tomato Paste", "Tomato Sauce", "Tom"} {
		if _, err := uc.AddProduct(ctx, "W1", name, 1); err != nil {
			t.Fatalf("AddProduct xatosi: %v", err)
		}
	}

	similar, err := uc.FindSimilar(ctx, "W1", "tomato")
	if err != nil {
		t.Fatalf("FindSimilar xatosi: %v", err)
	}
	if len(similar) != 3 {
		t.Fatalf("Kutilgan 3 ta yozuv, natija=%d", len(similar))
	}
	if similar[0].Name != "Tom" || similar[1].Name != "Tomato Paste" || similar[2].Name != "Tomato Sauce" {
		t.Errorf("Tartib noto'g'ri: %q %q %q", similar[0].Name, similar[1].Name, similar[2].Name)
	}
}

// Bo'sh token hech narsaga mos kelmasligi kerak
func TestFindSimilarEmptyToken(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase()

	if _, err := uc.AddProduct(ctx, "W1", "Olma", 1); err != nil {
		t.Fatalf("AddProduct xatosi: %v", err)
	}
	similar, err := uc.FindSimilar(ctx, "W1", "!!!")
	if err != nil {
		t.Fatalf("FindSimilar xatosi: %v", err)
	}
	if len(similar) != 0 {
		t.Errorf("Bo'sh token %d ta yozuvga mos keldi", len(similar))
	}
}

func TestRemoveProductPartial(t *testing.T) {
	ctx := context.Background()
	uc, repo := newTestUseCase()

	product, err := uc.AddProduct(ctx, "W1", "Olma", 10)
	if err != nil {
		t.Fatalf("AddProduct xatosi: %v", err)
	}

	result, err := uc.RemoveProduct(ctx, product, 4)
	if err != nil {
		t.Fatalf("RemoveProduct xatosi: %v", err)
	}
	if result.Outcome != RemovedPartial || result.Remaining != 6 {
		t.Errorf("Kutilgan partial remaining=6, natija=%+v", result)
	}

	stored, err := repo.FindOne(ctx, "W1", "olma")
	if err != nil {
		t.Fatalf("FindOne xatosi: %v", err)
	}
	if stored.Quantity != 6 {
		t.Errorf("Kutilgan quantity=6, natija=%d", stored.Quantity)
	}
}

// Qoldiq bilan teng miqdorni spisaniye qilish yozuvni butunlay o'chiradi
func TestRemoveProductComplete(t *testing.T) {
	ctx := context.Background()
	uc, repo := newTestUseCase()

	product, err := uc.AddProduct(ctx, "W1", "Olma", 5)
	if err != nil {
		t.Fatalf("AddProduct xatosi: %v", err)
	}

	result, err := uc.RemoveProduct(ctx, product, 5)
	if err != nil {
		t.Fatalf("RemoveProduct xatosi: %v", err)
	}
	if result.Outcome != RemovedComplete {
		t.Errorf("Kutilgan complete, natija=%+v", result)
	}

	if _, err := repo.FindOne(ctx, "W1", "olma"); !errors.Is(err, repository.ErrProductNotFound) {
		t.Errorf("Yozuv o'chirilmagan: %v", err)
	}
}

// Qoldiqdan ko'p spisaniye rad etiladi, yozuv tegilmaydi
func TestRemoveProductInsufficient(t *testing.T) {
	ctx := context.Background()
	uc, repo := newTestUseCase()

	product, err := uc.AddProduct(ctx, "W1", "Olma", 5)
	if err != nil {
		t.Fatalf("AddProduct xatosi: %v", err)
	}

	if _, err := uc.RemoveProduct(ctx, product, 6); !errors.Is(err, repository.ErrInsufficientStock) {
		t.Errorf("Kutilgan ErrInsufficientStock, natija=%v", err)
	}

	stored, err := repo.FindOne(ctx, "W1", "olma")
	if err != nil {
		t.Fatalf("FindOne xatosi: %v", err)
	}
	if stored.Quantity != 5 {
		t.Errorf("Yozuv o'zgarib ketgan: quantity=%d", stored.Quantity)
	}
}

func TestRemoveProductRejectsNonPositive(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase()

	product, err := uc.AddProduct(ctx, "W1", "Olma", 5)
	if err != nil {
		t.Fatalf("AddProduct xatosi: %v", err)
	}
	for _, qty := range []int{0, -1} {
		if _, err := uc.RemoveProduct(ctx, product, qty); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("qty=%d: kutilgan ErrInvalidQuantity, natija=%v", qty, err)
		}
	}
}

// Parallel addlar lost update bermasligi kerak (go test -race bilan)
func TestAddProductConcurrency(t *testing.T) {
	ctx := context.Background()
	uc, repo := newTestUseCase()

	var wg sync.WaitGroup
	numGoroutines := 100
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.AddProduct(ctx, "W1", "Olma", 1); err != nil {
				t.Errorf("AddProduct xatosi: %v", err)
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
