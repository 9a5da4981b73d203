package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/glowshelf/go-backend/internal/domain"
	"github.com/glowshelf/go-backend/pkg/e"
	"github.com/glowshelf/go-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductUseCase реализует бизнес-логику учёта косметических продуктов:
// CRUD, фильтрацию с пагинацией и агрегаты по статусам годности.
// Не хранит состояния между вызовами и безопасен для конкурентного использования.
type ProductUseCase struct {
	productRepo  ProductRepository
	brandRepo    BrandRepository
	categoryRepo CategoryRepository
	usageRepo    UsageLogRepository
	dbPool       transaction.Transactional
	imagesInfra  ImagesInfra
	outboxRepo   OutboxRepository
	cacheRepo    CacheRepository
	logger       logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	brandRepo BrandRepository,
	categoryRepo CategoryRepository,
	usageRepo UsageLogRepository,
	dbPool transaction.Transactional,
	imagesInfra ImagesInfra,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		brandRepo:    brandRepo,
		categoryRepo: categoryRepo,
		usageRepo:    usageRepo,
		dbPool:       dbPool,
		imagesInfra:  imagesInfra,
		outboxRepo:   outboxRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
	}
}

// Query возвращает страницу отфильтрованного, отсортированного по срочности
// списка продуктов владельца вместе с метаданными пагинации.
// Критерии нормализуются, а не отклоняются: страница меньше первой
// превращается в первую, страница за пределами — в последнюю,
// неизвестный статус игнорируется.
func (p *ProductUseCase) Query(ctx context.Context, req *QueryProductsReq) (*ProductPageRes, error) {
	const op = "ProductUseCase.Query"

	views, err := p.ownedProducts(ctx, req.OwnerID, req.Reference)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	filtered := applyFilters(views, req)

	sortByUrgency(filtered)

	totalCount := len(filtered)
	totalPages := (totalCount + PageSize - 1) / PageSize

	page := req.Page
	if page < 1 {
		page = 1
	}
	if totalPages == 0 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}

	items := make([]ProductView, 0, PageSize)
	offset := (page - 1) * PageSize
	if offset < totalCount {
		end := offset + PageSize
		if end > totalCount {
			end = totalCount
		}
		items = append(items, filtered[offset:end]...)
	}

	return NewProductPageRes(items, totalCount, page, totalPages), nil
}

// CountByStatus возвращает количество продуктов владельца в каждом статусе
// годности на опорную дату. Результат кэшируется по владельцу и дате,
// промах или ошибка кэша приводят к пересчёту из БД.
func (p *ProductUseCase) CountByStatus(ctx context.Context, ownerID int64, reference time.Time) (*StatusSummaryRes, error) {
	const op = "ProductUseCase.CountByStatus"

	day := reference.Format("2006-01-02")
	if cached, err := p.cacheRepo.GetSummary(ctx, ownerID, day); err == nil && cached != nil {
		return cached, nil
	}

	views, err := p.ownedProducts(ctx, ownerID, reference)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	summary := &StatusSummaryRes{}
	for _, view := range views {
		summary.Add(view.Status)
	}

	// Фоновое кэширование, не блокирующее ответ
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := p.cacheRepo.SetSummary(bgCtx, ownerID, day, summary); err != nil {
			p.logger.Warnf("Failed to cache status summary in background: %v", e.Wrap(op, err))
		}
	}()

	return summary, nil
}

// ExpiringOverview возвращает сгруппированные списки просроченных и
// истекающих продуктов, каждый отсортирован по возрастанию даты истечения.
func (p *ProductUseCase) ExpiringOverview(ctx context.Context, ownerID int64, reference time.Time) (*ExpiringOverviewRes, error) {
	const op = "ProductUseCase.ExpiringOverview"

	views, err := p.ownedProducts(ctx, ownerID, reference)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	res := &ExpiringOverviewRes{
		Expired: make([]ProductView, 0),
		Urgent:  make([]ProductView, 0),
		Soon:    make([]ProductView, 0),
	}
	for _, view := range views {
		switch view.Status {
		case domain.StatusExpired:
			res.Expired = append(res.Expired, view)
		case domain.StatusUrgent:
			res.Urgent = append(res.Urgent, view)
		case domain.StatusSoon:
			res.Soon = append(res.Soon, view)
		}
	}

	sortByExpiration(res.Expired)
	sortByExpiration(res.Urgent)
	sortByExpiration(res.Soon)

	return res, nil
}

// AddProduct создаёт продукт вместе с брендом и категорией (идемпотентно),
// загружает изображение и записывает outbox-событие в одной транзакции.
func (p *ProductUseCase) AddProduct(ctx context.Context, req *AddProductReq) (*ProductView, error) {
	const op = "ProductUseCase.AddProduct"

	if err := validateProduct(req.Name, req.BrandName); err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		imageKey string
		uploaded bool
	)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, e.WrapStorage(err))
	}
	// Если произошла ошибка, происходит Rollback транзакции и очистка загруженного изображения
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}

			if uploaded {
				p.logger.Warnf(
					"Cleaning up orphaned image after transaction failure. product_name: %s, error: %v",
					req.Name,
					e.Wrap(op, err),
				)

				p.imagesInfra.CleanupImages([]string{imageKey})
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	brand, err := p.brandRepo.Upsert(ctx, domain.NewBrand(req.BrandName))
	if err != nil {
		return nil, e.Wrap(op, e.WrapStorage(err))
	}

	categoryID, err := p.upsertCategory(ctx, req.CategoryName, req.CategoryType)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.Image != nil {
		imageKey, err = p.imagesInfra.UploadImage(ctx, NewUploadImageReq(req.Name, req.Image))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		uploaded = true
	}

	product := domain.NewProduct(req.OwnerID, req.Name, brand.ID, categoryID)
	product.Shade = req.Shade
	product.Capacity = req.Capacity
	product.PurchaseLocation = req.PurchaseLocation
	product.ProductionDate = req.ProductionDate
	product.PriceCents = req.PriceCents
	product.ExpirationDate = req.ExpirationDate
	product.OpenedDate = req.OpenedDate
	product.Rating = req.Rating
	if req.OpenStatus != "" {
		product.OpenStatus = req.OpenStatus
	}
	if req.PurchaseDate != nil {
		product.PurchaseDate = *req.PurchaseDate
	}
	if uploaded {
		product.ImageKey = &imageKey
	}

	created, err := p.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, e.WrapStorage(err))
	}

	if err = p.enqueueChangeEvent(ctx, ProductCreated, created.ID, created.OwnerID); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, e.WrapStorage(err))
	}

	p.invalidateSummary(ctx, req.OwnerID, op)

	return &ProductView{
		Product:      *created,
		BrandName:    req.BrandName,
		CategoryName: req.CategoryName,
	}, nil
}

// GetProduct возвращает продукт владельца со статусом на опорную дату.
func (p *ProductUseCase) GetProduct(ctx context.Context, ownerID, productID int64, reference time.Time) (*ProductView, error) {
	const op = "ProductUseCase.GetProduct"

	view, err := p.productRepo.GetByID(ctx, ownerID, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	classifyView(view, reference)
	return view, nil
}

// UpdateProduct перезаписывает поля продукта, при необходимости заменяя
// изображение. Старое изображение удаляется в фоне после коммита.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) (*ProductView, error) {
	const op = "ProductUseCase.UpdateProduct"

	if err := validateProduct(req.Name, req.BrandName); err != nil {
		return nil, e.Wrap(op, err)
	}

	existing, err := p.productRepo.GetByID(ctx, req.OwnerID, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		imageKey string
		uploaded bool
	)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, e.Wrap(op, e.WrapStorage(err))
	}
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}

			if uploaded {
				p.imagesInfra.CleanupImages([]string{imageKey})
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	brand, err := p.brandRepo.Upsert(ctx, domain.NewBrand(req.BrandName))
	if err != nil {
		return nil, e.Wrap(op, e.WrapStorage(err))
	}

	categoryID, err := p.upsertCategory(ctx, req.CategoryName, req.CategoryType)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.Image != nil {
		imageKey, err = p.imagesInfra.UploadImage(ctx, NewUploadImageReq(req.Name, req.Image))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		uploaded = true
	}

	product := existing.Product
	product.Name = req.Name
	product.BrandID = brand.ID
	product.CategoryID = categoryID
	product.Shade = req.Shade
	product.Capacity = req.Capacity
	product.PurchaseLocation = req.PurchaseLocation
	product.ProductionDate = req.ProductionDate
	product.PriceCents = req.PriceCents
	product.ExpirationDate = req.ExpirationDate
	product.OpenedDate = req.OpenedDate
	product.Rating = req.Rating
	product.OpenStatus = req.OpenStatus
	if product.OpenStatus == "" {
		product.OpenStatus = domain.OpenUnopened
	}
	if req.PurchaseDate != nil {
		product.PurchaseDate = *req.PurchaseDate
	}
	if uploaded {
		product.ImageKey = &imageKey
	}

	updated, err := p.productRepo.Update(ctx, &product)
	if err != nil {
		return nil, e.Wrap(op, e.WrapStorage(err))
	}

	if err = p.enqueueChangeEvent(ctx, ProductUpdated, updated.ID, updated.OwnerID); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, e.WrapStorage(err))
	}

	// Заменённое изображение больше никем не используется
	if uploaded && existing.Product.ImageKey != nil {
		p.imagesInfra.CleanupImages([]string{*existing.Product.ImageKey})
	}

	p.invalidateSummary(ctx, req.OwnerID, op)

	return &ProductView{
		Product:      *updated,
		BrandName:    req.BrandName,
		CategoryName: req.CategoryName,
	}, nil
}

// DeleteProduct удаляет продукт владельца вместе с его изображением
// и записывает outbox-событие удаления.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, ownerID, productID int64) error {
	const op = "ProductUseCase.DeleteProduct"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return e.Wrap(op, e.WrapStorage(err))
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	deleted, err := p.productRepo.Delete(ctx, ownerID, productID)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err = p.enqueueChangeEvent(ctx, ProductDeleted, deleted.ID, deleted.OwnerID); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, e.WrapStorage(err))
	}

	if deleted.ImageKey != nil {
		p.imagesInfra.CleanupImages([]string{*deleted.ImageKey})
	}

	p.invalidateSummary(ctx, ownerID, op)

	return nil
}

// AddUsageLog добавляет запись об использовании продукта владельца.
func (p *ProductUseCase) AddUsageLog(ctx context.Context, ownerID, productID int64, notes string) (*domain.UsageLog, error) {
	const op = "ProductUseCase.AddUsageLog"

	// Проверка принадлежности продукта владельцу
	if _, err := p.productRepo.GetByID(ctx, ownerID, productID); err != nil {
		return nil, e.Wrap(op, err)
	}

	log, err := p.usageRepo.Create(ctx, domain.NewUsageLog(productID, notes))
	if err != nil {
		return nil, e.Wrap(op, e.WrapStorage(err))
	}

	return log, nil
}

// ListUsageLogs возвращает записи об использовании продукта, новые первыми.
func (p *ProductUseCase) ListUsageLogs(ctx context.Context, ownerID, productID int64) ([]domain.UsageLog, error) {
	const op = "ProductUseCase.ListUsageLogs"

	if _, err := p.productRepo.GetByID(ctx, ownerID, productID); err != nil {
		return nil, e.Wrap(op, err)
	}

	logs, err := p.usageRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, e.WrapStorage(err))
	}

	return logs, nil
}

// ownedProducts загружает продукты владельца и классифицирует каждый.
// Репозиторий обязан фильтровать по владельцу на уровне хранилища,
// но инвариант проверяется повторно: чужая запись в выборке — дефект
// слоя хранения, о котором нельзя молчать.
func (p *ProductUseCase) ownedProducts(ctx context.Context, ownerID int64, reference time.Time) ([]ProductView, error) {
	views, err := p.productRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, e.WrapStorage(err)
	}

	for i := range views {
		if views[i].Product.OwnerID != ownerID {
			p.logger.Errorf(e.ErrOwnerScopeViolation,
				"repository returned product %d owned by %d in a query scoped to owner %d",
				views[i].Product.ID, views[i].Product.OwnerID, ownerID,
			)
			return nil, e.ErrOwnerScopeViolation
		}

		classifyView(&views[i], reference)
	}

	return views, nil
}

// upsertCategory идемпотентно создаёт категорию; пустое имя означает «без категории».
func (p *ProductUseCase) upsertCategory(ctx context.Context, name string, categoryType domain.CategoryType) (*int64, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil
	}

	category, err := p.categoryRepo.Upsert(ctx, domain.NewCategory(name, categoryType))
	if err != nil {
		return nil, e.WrapStorage(err)
	}

	return &category.ID, nil
}

// enqueueChangeEvent записывает событие изменения продукта в outbox
// в рамках текущей транзакции.
func (p *ProductUseCase) enqueueChangeEvent(ctx context.Context, eventType OutboxEventType, productID, ownerID int64) error {
	eventID := uuid.NewString()
	payload, err := json.Marshal(ProductChangePayload{
		EventID:    eventID,
		EventType:  string(eventType),
		ProductID:  productID,
		OwnerID:    ownerID,
		OccurredAt: time.Now().UTC().UnixNano(),
	})
	if err != nil {
		return err
	}

	_, err = p.outboxRepo.Create(ctx, NewOutboxEvent(eventID, eventType, productID, ownerID, payload))
	if err != nil {
		return e.WrapStorage(err)
	}

	return nil
}

// invalidateSummary удаляет закэшированные счётчики статусов владельца.
func (p *ProductUseCase) invalidateSummary(ctx context.Context, ownerID int64, op string) {
	if err := p.cacheRepo.DeleteSummary(ctx, ownerID); err != nil {
		p.logger.Warnf("Failed to invalidate status summary: %v", e.Wrap(op, err))
	}
}

// classifyView вычисляет статус и число дней до истечения срока.
func classifyView(view *ProductView, reference time.Time) {
	view.Status = view.Product.Status(reference)
	if view.Product.ExpirationDate != nil {
		days := domain.DaysUntil(*view.Product.ExpirationDate, reference)
		view.DaysLeft = &days
	}
}

// applyFilters последовательно применяет фильтры категории, ключевого слова
// и статуса. Пустые значения означают отсутствие фильтра.
func applyFilters(views []ProductView, req *QueryProductsReq) []ProductView {
	filtered := make([]ProductView, 0, len(views))

	keyword := strings.ToLower(strings.TrimSpace(req.Keyword))
	statusFilter, hasStatus := domain.ParseExpirationStatus(req.Status)

	for _, view := range views {
		if req.CategoryID != nil {
			if view.Product.CategoryID == nil || *view.Product.CategoryID != *req.CategoryID {
				continue
			}
		}

		if keyword != "" && !matchesKeyword(&view, keyword) {
			continue
		}

		if hasStatus && view.Status != statusFilter {
			continue
		}

		filtered = append(filtered, view)
	}

	return filtered
}

// matchesKeyword проверяет вхождение подстроки без учёта регистра
// в имя продукта, бренда или категории.
func matchesKeyword(view *ProductView, keyword string) bool {
	return strings.Contains(strings.ToLower(view.Product.Name), keyword) ||
		strings.Contains(strings.ToLower(view.BrandName), keyword) ||
		strings.Contains(strings.ToLower(view.CategoryName), keyword)
}

// sortByUrgency сортирует продукты по убыванию срочности статуса,
// затем по возрастанию даты истечения, затем по ID. Полностью
// детерминированный порядок исключает дубли и пропуски при пагинации.
func sortByUrgency(views []ProductView) {
	sort.SliceStable(views, func(i, j int) bool {
		pi, pj := views[i].Status.Priority(), views[j].Status.Priority()
		if pi != pj {
			return pi < pj
		}

		if c := compareExpiration(views[i].Product.ExpirationDate, views[j].Product.ExpirationDate); c != 0 {
			return c < 0
		}

		return views[i].Product.ID < views[j].Product.ID
	})
}

// sortByExpiration сортирует по возрастанию даты истечения, затем по ID.
func sortByExpiration(views []ProductView) {
	sort.SliceStable(views, func(i, j int) bool {
		if c := compareExpiration(views[i].Product.ExpirationDate, views[j].Product.ExpirationDate); c != 0 {
			return c < 0
		}

		return views[i].Product.ID < views[j].Product.ID
	})
}

// compareExpiration сравнивает даты истечения; отсутствующая дата идёт последней.
func compareExpiration(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	default:
		return 0
	}
}

// validateProduct проверяет обязательные поля запроса на создание/обновление.
func validateProduct(name, brandName string) error {
	if strings.TrimSpace(name) == "" {
		return e.ErrProductNameRequired
	}

	if strings.TrimSpace(brandName) == "" {
		return e.ErrBrandNameRequired
	}

	return nil
}
