package pgdb

import (
	"context"

	"github.com/glowshelf/go-backend/internal/domain"
	"github.com/glowshelf/go-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// UsageLogRepo реализует репозиторий записей об использовании поверх PostgreSQL.
type UsageLogRepo struct {
	pool *pgxpool.Pool
}

func NewUsageLogRepo(pool *pgxpool.Pool) *UsageLogRepo {
	return &UsageLogRepo{pool: pool}
}

// Create добавляет запись об использовании продукта.
func (u *UsageLogRepo) Create(ctx context.Context, log *domain.UsageLog) (*domain.UsageLog, error) {
	query := `
		INSERT INTO usage_logs (product_id, notes)
		VALUES ($1, $2)
		RETURNING id, product_id, used_at, notes;
	`

	var created domain.UsageLog
	err := u.pool.QueryRow(ctx, query, log.ProductID, log.Notes).
		Scan(&created.ID, &created.ProductID, &created.UsedAt, &created.Notes)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &created, nil
}

// ListByProduct возвращает записи об использовании продукта, новые первыми.
func (u *UsageLogRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.UsageLog, error) {
	query := `
		SELECT id, product_id, used_at, notes
		FROM usage_logs
		WHERE product_id = $1
		ORDER BY used_at DESC, id DESC
	`

	rows, err := u.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.UsageLog, 0)
	for rows.Next() {
		var log domain.UsageLog
		if err := rows.Scan(&log.ID, &log.ProductID, &log.UsedAt, &log.Notes); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, log)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
