package pgdb

import (
	"context"
	"errors"

	"github.com/glowshelf/go-backend/internal/domain"
	"github.com/glowshelf/go-backend/internal/repository/pgdb/converter"
	"github.com/glowshelf/go-backend/internal/usecase"
	"github.com/glowshelf/go-backend/pkg/e"
	"github.com/glowshelf/go-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
// Все выборки и мутации жёстко ограничены владельцем на уровне SQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

const productColumns = `
	id, owner_id, name, brand_id, category_id, shade, capacity,
	purchase_date, purchase_location, production_date, price_cents,
	expiration_date, open_status, opened_date, rating, image_key,
	created_at, updated_at`

// Create вставляет новый продукт в рамках текущей транзакции.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (
			owner_id, name, brand_id, category_id, shade, capacity,
			purchase_date, purchase_location, production_date, price_cents,
			expiration_date, open_status, opened_date, rating, image_key
		)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, CURRENT_DATE), $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING` + productColumns + `;
	`

	var purchaseDate any
	if !product.PurchaseDate.IsZero() {
		purchaseDate = product.PurchaseDate
	}

	var model converter.ProductModel
	err = tx.QueryRow(ctx, query,
		product.OwnerID, product.Name, product.BrandID, product.CategoryID,
		product.Shade, product.Capacity, purchaseDate,
		product.PurchaseLocation, product.ProductionDate, product.PriceCents,
		product.ExpirationDate, product.OpenStatus, product.OpenedDate,
		product.Rating, product.ImageKey,
	).Scan(
		&model.ID, &model.OwnerID, &model.Name, &model.BrandID, &model.CategoryID,
		&model.Shade, &model.Capacity, &model.PurchaseDate, &model.PurchaseLocation,
		&model.ProductionDate, &model.PriceCents, &model.ExpirationDate,
		&model.OpenStatus, &model.OpenedDate, &model.Rating, &model.ImageKey,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Update перезаписывает поля продукта владельца в рамках текущей транзакции.
// Возвращает e.ErrProductNotFound, если продукт не существует или принадлежит другому владельцу.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products SET
			name = $3,
			brand_id = $4,
			category_id = $5,
			shade = $6,
			capacity = $7,
			purchase_date = COALESCE($8, purchase_date),
			purchase_location = $9,
			production_date = $10,
			price_cents = $11,
			expiration_date = $12,
			open_status = $13,
			opened_date = $14,
			rating = $15,
			image_key = COALESCE($16, image_key),
			updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING` + productColumns + `;
	`

	var purchaseDate any
	if !product.PurchaseDate.IsZero() {
		purchaseDate = product.PurchaseDate
	}

	var model converter.ProductModel
	err = tx.QueryRow(ctx, query,
		product.ID, product.OwnerID, product.Name, product.BrandID, product.CategoryID,
		product.Shade, product.Capacity, purchaseDate,
		product.PurchaseLocation, product.ProductionDate, product.PriceCents,
		product.ExpirationDate, product.OpenStatus, product.OpenedDate,
		product.Rating, product.ImageKey,
	).Scan(
		&model.ID, &model.OwnerID, &model.Name, &model.BrandID, &model.CategoryID,
		&model.Shade, &model.Capacity, &model.PurchaseDate, &model.PurchaseLocation,
		&model.ProductionDate, &model.PriceCents, &model.ExpirationDate,
		&model.OpenStatus, &model.OpenedDate, &model.Rating, &model.ImageKey,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Delete удаляет продукт владельца и возвращает удалённую запись
// (в том числе ключ изображения для последующей очистки в S3).
func (p *ProductRepo) Delete(ctx context.Context, ownerID, productID int64) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		DELETE FROM products
		WHERE id = $1 AND owner_id = $2
		RETURNING` + productColumns + `;
	`

	var model converter.ProductModel
	err = tx.QueryRow(ctx, query, productID, ownerID).Scan(
		&model.ID, &model.OwnerID, &model.Name, &model.BrandID, &model.CategoryID,
		&model.Shade, &model.Capacity, &model.PurchaseDate, &model.PurchaseLocation,
		&model.ProductionDate, &model.PriceCents, &model.ExpirationDate,
		&model.OpenStatus, &model.OpenedDate, &model.Rating, &model.ImageKey,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetByID возвращает продукт владельца с именами бренда и категории.
func (p *ProductRepo) GetByID(ctx context.Context, ownerID, productID int64) (*usecase.ProductView, error) {
	query := `
		SELECT
			pr.id, pr.owner_id, pr.name, pr.brand_id, pr.category_id, pr.shade,
			pr.capacity, pr.purchase_date, pr.purchase_location, pr.production_date,
			pr.price_cents, pr.expiration_date, pr.open_status, pr.opened_date,
			pr.rating, pr.image_key, pr.created_at, pr.updated_at,
			br.name, COALESCE(cat.name, '')
		FROM products pr
		JOIN brands br ON pr.brand_id = br.id
		LEFT JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.id = $1 AND pr.owner_id = $2
	`

	view, err := scanProductView(p.pool.QueryRow(ctx, query, productID, ownerID), p.conv)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return view, nil
}

// FindByOwner возвращает все продукты владельца с именами бренда и категории.
// Порядок выборки не важен: сортировка выполняется слоем бизнес-логики.
func (p *ProductRepo) FindByOwner(ctx context.Context, ownerID int64) ([]usecase.ProductView, error) {
	query := `
		SELECT
			pr.id, pr.owner_id, pr.name, pr.brand_id, pr.category_id, pr.shade,
			pr.capacity, pr.purchase_date, pr.purchase_location, pr.production_date,
			pr.price_cents, pr.expiration_date, pr.open_status, pr.opened_date,
			pr.rating, pr.image_key, pr.created_at, pr.updated_at,
			br.name, COALESCE(cat.name, '')
		FROM products pr
		JOIN brands br ON pr.brand_id = br.id
		LEFT JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.owner_id = $1
	`

	rows, err := p.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductView, 0)
	for rows.Next() {
		view, err := scanProductView(rows, p.conv)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *view)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func scanProductView(row pgx.Row, conv converter.ProductConverter) (*usecase.ProductView, error) {
	var (
		model        converter.ProductModel
		brandName    string
		categoryName string
	)

	if err := row.Scan(
		&model.ID, &model.OwnerID, &model.Name, &model.BrandID, &model.CategoryID,
		&model.Shade, &model.Capacity, &model.PurchaseDate, &model.PurchaseLocation,
		&model.ProductionDate, &model.PriceCents, &model.ExpirationDate,
		&model.OpenStatus, &model.OpenedDate, &model.Rating, &model.ImageKey,
		&model.CreatedAt, &model.UpdatedAt,
		&brandName, &categoryName,
	); err != nil {
		return nil, err
	}

	return &usecase.ProductView{
		Product:      *conv.ToEntity(&model),
		BrandName:    brandName,
		CategoryName: categoryName,
	}, nil
}
