package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/yourusername/telegram-warehouse-bot/internal/domain/entity"
	"github.com/yourusername/telegram-warehouse-bot/internal/domain/repository"
)

// postgresProductRepository persistent sklad store
type postgresProductRepository struct {
	db *sql.DB
}

// NewPostgresProductRepository Postgres store yaratish va sxemani tayyorlash
func NewPostgresProductRepository(dsn string) (repository.ProductRepository, error) {
	db, err := openPostgresWithRetry(dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	schema := `
CREATE TABLE IF NOT EXISTS products (
	id TEXT PRIMARY KEY,
	warehouse TEXT NOT NULL,
	name TEXT NOT NULL,
	search_key TEXT NOT NULL,
	quantity BIGINT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ DEFAULT NOW(),
	updated_at TIMESTAMPTZ DEFAULT NOW()
);`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create products table: %w", err)
	}
	// Bitta skladda bitta mahsulot faqat bitta yozuv
	if _, err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS products_warehouse_search_key_idx ON products (warehouse, search_key)`); err != nil {
		return nil, fmt.Errorf("create unique index: %w", err)
	}

	return &postgresProductRepository{db: db}, nil
}

const productColumns = `id, warehouse, name, search_key, quantity, created_at, updated_at`

func scanProduct(row *sql.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Warehouse, &p.Name, &p.SearchKey, &p.Quantity, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresProductRepository) FindOne(ctx context.Context, warehouse, searchKey string) (*entity.Product, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT `+productColumns+` FROM products WHERE warehouse=$1 AND search_key=$2`, warehouse, searchKey)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresProductRepository) FindAll(ctx context.Context, warehouse string) ([]entity.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT `+productColumns+` FROM products WHERE warehouse=$1 ORDER BY name ASC`, warehouse)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Warehouse, &p.Name, &p.SearchKey, &p.Quantity, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

// UpsertIncrement bitta shartli upsert: parallel qo'shishlarda lost update
// bo'lmasligi uchun increment DB tomonida bajariladi. Name faqat insert
// paytida yoziladi (DO UPDATE uni o'zgartirmaydi).
func (r *postgresProductRepository) UpsertIncrement(ctx context.Context, warehouse, searchKey, name string, delta int) (*entity.Product, error) {
	row := r.db.QueryRowContext(ctx, `
	INSERT INTO products (id, warehouse, name, search_key, quantity)
	VALUES ($1,$2,$3,$4,$5)
	ON CONFLICT (warehouse, search_key) DO UPDATE SET
		quantity = products.quantity + EXCLUDED.quantity,
		updated_at = NOW()
	RETURNING `+productColumns, uuid.New().String(), warehouse, name, searchKey, delta)
	return scanProduct(row)
}

// DecrementQuantity optimistik guard bilan: WHERE quantity=$expected
// sharti boshqa so'rov qoldiqni o'zgartirgan bo'lsa yozuvni tegmasdan
// qaytaradi
func (r *postgresProductRepository) DecrementQuantity(ctx context.Context, id string, expected, delta int) (*entity.Product, error) {
	row := r.db.QueryRowContext(ctx, `
	UPDATE products SET quantity = quantity - $3, updated_at = NOW()
	WHERE id=$1 AND quantity=$2 AND quantity >= $3
	RETURNING `+productColumns, id, expected, delta)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, r.classifyMiss(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresProductRepository) Delete(ctx context.Context, id string, expected int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1 AND quantity=$2`, id, expected)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return r.classifyMiss(ctx, id)
	}
	return nil
}

// classifyMiss guard ishlamay qolganda sababni aniqlaydi: yozuv yo'qmi
// yoki qoldiq o'zgarib ketganmi
func (r *postgresProductRepository) classifyMiss(ctx context.Context, id string) error {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM products WHERE id=$1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return repository.ErrProductNotFound
	}
	return repository.ErrInsufficientStock
}

// NewProductRepositoryFromEnv DSN berilsa Postgres, aks holda memory
func NewProductRepositoryFromEnv() repository.ProductRepository {
	dsn := os.Getenv("POSTGRES_DSN")
	if strings.TrimSpace(dsn) == "" {
		dsn = BuildPostgresDSNFromEnv()
	}
	if strings.TrimSpace(dsn) == "" {
		return NewMemoryProductRepository()
	}
	repo, err := NewPostgresProductRepository(dsn)
	if err != nil {
		log.Printf("product store: Postgres ulanmadi, memory store ga qaytdi: %v", err)
		return NewMemoryProductRepository()
	}
	return repo
}
