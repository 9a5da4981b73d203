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

// BrandRepo реализует репозиторий брендов поверх PostgreSQL.
type BrandRepo struct {
	pool *pgxpool.Pool
	conv converter.BrandConverter
}

func NewBrandRepo(pool *pgxpool.Pool, conv converter.BrandConverter) *BrandRepo {
	return &BrandRepo{pool: pool, conv: conv}
}

// Upsert идемпотентно создаёт бренд по уникальному имени.
// Существующая запись возвращается без изменений.
func (b *BrandRepo) Upsert(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		WITH upsert AS (
			INSERT INTO brands(name) VALUES ($1)
			ON CONFLICT (name) DO NOTHING
			RETURNING id, name, created_at, updated_at
		)
		SELECT id, name, created_at, updated_at FROM upsert
		UNION ALL
		SELECT id, name, created_at, updated_at FROM brands
		WHERE name = $1 AND NOT EXISTS (SELECT 1 FROM upsert);
	`

	var model converter.BrandModel
	if err := tx.QueryRow(ctx, query, brand.Name).
		Scan(
			&model.ID, &model.Name, &model.CreatedAt, &model.UpdatedAt,
		); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return b.conv.ToEntity(&model), nil
}
