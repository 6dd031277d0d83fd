package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/yourusername/telegram-warehouse-bot/internal/domain/entity"
	"github.com/yourusername/telegram-warehouse-bot/internal/domain/repository"
)

// ErrInvalidQuantity nol yoki manfiy miqdor bilan amal so'ralganda.
// Parser musbatlikni tekshirmaydi, bu qatlam tekshiradi.
var ErrInvalidQuantity = errors.New("quantity must be positive")

// RemoveOutcome spisaniye natijasi turi
type RemoveOutcome int

const (
	RemovedPartial RemoveOutcome = iota
	RemovedComplete
)

// RemoveResult spisaniye natijasi
type RemoveResult struct {
	Outcome   RemoveOutcome
	Removed   int
	Remaining int
}

// InventoryUseCase sklad qoldiqlari bilan bog'liq business logic
type InventoryUseCase interface {
	// AddProduct atomik increment-or-create; yangilangan yozuvni qaytaradi
	AddProduct(ctx context.Context, warehouse, name string, qty int) (*entity.Product, error)
	// ResolveProduct exact key bo'yicha, topilmasa fuzzy bo'yicha qidiradi
	ResolveProduct(ctx context.Context, warehouse, query string) (*entity.Product, error)
	// FindSimilar fuzzy mos kelgan yozuvlarning to'liq ro'yxati (takliflar uchun)
	FindSimilar(ctx context.Context, warehouse, query string) ([]entity.Product, error)
	// RemoveProduct topilgan yozuvdan qty ni spisaniye qiladi
	RemoveProduct(ctx context.Context, product *entity.Product, qty int) (*RemoveResult, error)
	// ListProducts sklad bo'yicha barcha yozuvlar, nom bo'yicha tartiblangan
	ListProducts(ctx context.Context, warehouse string) ([]entity.Product, error)
}

type inventoryUseCase struct {
	productRepo repository.ProductRepository
}

// NewInventoryUseCase yangi InventoryUseCase yaratish
func NewInventoryUseCase(productRepo repository.ProductRepository) InventoryUseCase {
	return &inventoryUseCase{productRepo: productRepo}
}

// --- Normalizer ---

var whitespaceRunRe = regexp.MustCompile(`\s+`)

// NormalizeName exact-match kaliti: trim, ichki bo'shliqlarni bitta
// probelga yig'ish, lowercase
func NormalizeName(raw string) string {
	return strings.ToLower(whitespaceRunRe.ReplaceAllString(strings.TrimSpace(raw), " "))
}

// SearchToken fuzzy-match kaliti: normalizatsiyadan keyin harf/raqam/probel
// bo'lmagan belgilar olib tashlanadi va faqat birinchi so'z olinadi
// ("tomato" "tomato sauce" ga mos keladi)
var searchTokenStripRe = regexp.MustCompile(`[^\p{L}\p{N}\s]+`)

func SearchToken(name string) string {
	cleaned := searchTokenStripRe.ReplaceAllString(NormalizeName(name), "")
	fields := strings.Fields(cleaned)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// --- Line parser ---

// ParsedLine bitta satrdan ajratilgan (nom, miqdor) juftligi
type ParsedLine struct {
	Name string
	Qty  int
}

var (
	// "Помидор - 1000", "Помидор-1000 шт."
	hyphenLineRe = regexp.MustCompile(`(?i)^(.+?)\s*-\s*(\d+)\s*(?:шт|dona|pcs)?\.?$`)
	// "Помидор 1000", "Milk 10pcs"
	spaceLineRe = regexp.MustCompile(`(?i)^(.+?)\s+(\d+)\s*(?:шт|dona|pcs)?\.?$`)
)

type parseStrategy func(string) (ParsedLine, bool)

func parseHyphenLine(text string) (ParsedLine, bool) {
	return parseByRegex(hyphenLineRe, text)
}

func parseSpaceLine(text string) (ParsedLine, bool) {
	return parseByRegex(spaceLineRe, text)
}

func parseByRegex(re *regexp.Regexp, text string) (ParsedLine, bool) {
	match := re.FindStringSubmatch(text)
	if match == nil {
		return ParsedLine{}, false
	}
	name := strings.TrimSpace(match[1])
	qty, err := strconv.Atoi(match[2])
	if err != nil || name == "" {
		return ParsedLine{}, false
	}
	return ParsedLine{Name: name, Qty: qty}, true
}

// parseTrailingNumber fallback: oxirgi token butun son bo'lsa, qolgani nom
func parseTrailingNumber(text string) (ParsedLine, bool) {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return ParsedLine{}, false
	}
	qty, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return ParsedLine{}, false
	}
	name := strings.TrimSpace(strings.Join(parts[:len(parts)-1], " "))
	if name == "" {
		return ParsedLine{}, false
	}
	return ParsedLine{Name: name, Qty: qty}, true
}

var lineStrategies = []parseStrategy{
	parseHyphenLine,
	parseSpaceLine,
	parseTrailingNumber,
}

// ParseLine satrdan (nom, miqdor) ni ajratadi. Strategiyalar tartib bilan
// sinaladi, birinchi muvaffaqiyatlisi olinadi. Miqdor musbatligi bu yerda
// tekshirilmaydi.
func ParseLine(raw string) (ParsedLine, bool) {
	for _, strategy := range lineStrategies {
		if parsed, ok := strategy(raw); ok {
			return parsed, true
		}
	}
	return ParsedLine{}, false
}

// --- Ledger operations ---

func (u *inventoryUseCase) AddProduct(ctx context.Context, warehouse, name string, qty int) (*entity.Product, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}
	product, err := u.productRepo.UpsertIncrement(ctx, warehouse, NormalizeName(name), name, qty)
	if err != nil {
		return nil, fmt.Errorf("upsert product: %w", err)
	}
	return product, nil
}

// ResolveProduct avval exact key, keyin fuzzy qidiruv
func (u *inventoryUseCase) ResolveProduct(ctx context.Context, warehouse, query string) (*entity.Product, error) {
	product, err := u.productRepo.FindOne(ctx, warehouse, NormalizeName(query))
	if err == nil {
		return product, nil
	}
	if !errors.Is(err, repository.ErrProductNotFound) {
		return nil, err
	}

	similar, err := u.FindSimilar(ctx, warehouse, query)
	if err != nil {
		return nil, err
	}
	if len(similar) == 0 {
		return nil, repository.ErrProductNotFound
	}
	return &similar[0], nil
}

// FindSimilar ikki tomonlama containment: yozuv tokeni so'rov tokenini
// o'z ichiga olsa yoki aksincha. Bo'sh token hech narsaga mos kelmaydi.
func (u *inventoryUseCase) FindSimilar(ctx context.Context, warehouse, query string) ([]entity.Product, error) {
	queryToken := SearchToken(query)
	if queryToken == "" {
		return nil, nil
	}

	products, err := u.productRepo.FindAll(ctx, warehouse)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	var matched []entity.Product
	for _, p := range products {
		productToken := SearchToken(p.Name)
		if productToken == "" {
			continue
		}
		if strings.Contains(productToken, queryToken) || strings.Contains(queryToken, productToken) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (u *inventoryUseCase) RemoveProduct(ctx context.Context, product *entity.Product, qty int) (*RemoveResult, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}
	if qty > product.Quantity {
		return nil, repository.ErrInsufficientStock
	}
	if qty == product.Quantity {
		if err := u.productRepo.Delete(ctx, product.ID, product.Quantity); err != nil {
			return nil, err
		}
		return &RemoveResult{Outcome: RemovedComplete, Removed: qty, Remaining: 0}, nil
	}
	updated, err := u.productRepo.DecrementQuantity(ctx, product.ID, product.Quantity, qty)
	if err != nil {
		return nil, err
	}
	return &RemoveResult{Outcome: RemovedPartial, Removed: qty, Remaining: updated.Quantity}, nil
}

func (u *inventoryUseCase) ListProducts(ctx context.Context, warehouse string) ([]entity.Product, error) {
	products, err := u.productRepo.FindAll(ctx, warehouse)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
