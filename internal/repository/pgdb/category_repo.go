package pgdb

import (
	"context"

	"github.com/glowshelf/go-backend/internal/domain"
	"github.com/glowshelf/go-backend/internal/repository/pgdb/converter"
	"github.com/glowshelf/go-backend/pkg/e"
	"github.com/glowshelf/go-backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

// Upsert идемпотентно создаёт категорию по паре (имя, тип), игнорируя дубликаты.
func (c *CategoryRepo) Upsert(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		WITH upsert AS (
			INSERT INTO categories(name, category_type) VALUES ($1, $2)
			ON CONFLICT (name, category_type) DO NOTHING
			RETURNING id, name, category_type, created_at, updated_at
		)
		SELECT id, name, category_type, created_at, updated_at FROM upsert
		UNION ALL
		SELECT id, name, category_type, created_at, updated_at FROM categories
		WHERE name = $1 AND category_type = $2 AND NOT EXISTS (SELECT 1 FROM upsert);
	`

	var model converter.CategoryModel
	if err := tx.QueryRow(ctx, query, category.Name, string(category.Type)).
		Scan(
			&model.ID, &model.Name, &model.Type, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}
