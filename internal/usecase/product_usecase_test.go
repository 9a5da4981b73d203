package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/glowshelf/go-backend/internal/domain"
	"github.com/glowshelf/go-backend/pkg/e"
	"github.com/glowshelf/go-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProductRepo отдаёт заранее подготовленные выборки без БД.
type fakeProductRepo struct {
	views []ProductView
	err   error
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return product, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return product, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, ownerID, productID int64) (*domain.Product, error) {
	return nil, e.ErrProductNotFound
}

func (f *fakeProductRepo) GetByID(ctx context.Context, ownerID, productID int64) (*ProductView, error) {
	for i := range f.views {
		if f.views[i].Product.ID == productID && f.views[i].Product.OwnerID == ownerID {
			view := f.views[i]
			return &view, nil
		}
	}
	return nil, e.ErrProductNotFound
}

func (f *fakeProductRepo) FindByOwner(ctx context.Context, ownerID int64) ([]ProductView, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]ProductView, len(f.views))
	copy(out, f.views)
	return out, nil
}

type fakeCacheRepo struct {
	mu      sync.Mutex
	entries map[int64]*StatusSummaryRes
	days    map[int64]string
	sets    int
	deletes int
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{
		entries: make(map[int64]*StatusSummaryRes),
		days:    make(map[int64]string),
	}
}

func (f *fakeCacheRepo) GetSummary(ctx context.Context, ownerID int64, day string) (*StatusSummaryRes, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.days[ownerID] != day {
		return nil, nil
	}
	return f.entries[ownerID], nil
}

func (f *fakeCacheRepo) SetSummary(ctx context.Context, ownerID int64, day string, summary *StatusSummaryRes) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[ownerID] = summary
	f.days[ownerID] = day
	f.sets++
	return nil
}

func (f *fakeCacheRepo) DeleteSummary(ctx context.Context, ownerID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, ownerID)
	delete(f.days, ownerID)
	f.deletes++
	return nil
}

type fakeUsageRepo struct {
	logs   []domain.UsageLog
	nextID int64
}

func (f *fakeUsageRepo) Create(ctx context.Context, log *domain.UsageLog) (*domain.UsageLog, error) {
	f.nextID++
	created := *log
	created.ID = f.nextID
	created.UsedAt = time.Now()
	f.logs = append(f.logs, created)
	return &created, nil
}

func (f *fakeUsageRepo) ListByProduct(ctx context.Context, productID int64) ([]domain.UsageLog, error) {
	out := make([]domain.UsageLog, 0)
	for _, log := range f.logs {
		if log.ProductID == productID {
			out = append(out, log)
		}
	}
	return out, nil
}

const testOwner int64 = 42

var testReference = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func expiringIn(days int) *time.Time {
	t := time.Date(2026, time.March, 15+days, 0, 0, 0, 0, time.UTC)
	return &t
}

func testView(id int64, name, brand, category string, expiration *time.Time) ProductView {
	return ProductView{
		Product: domain.Product{
			ID:             id,
			OwnerID:        testOwner,
			Name:           name,
			ExpirationDate: expiration,
		},
		BrandName:    brand,
		CategoryName: category,
	}
}

func newTestUC(repo *fakeProductRepo, cache *fakeCacheRepo, usage *fakeUsageRepo) *ProductUseCase {
	if cache == nil {
		cache = newFakeCacheRepo()
	}
	if usage == nil {
		usage = &fakeUsageRepo{}
	}
	return NewProductUC(repo, nil, nil, usage, nil, nil, nil, cache, logger.NewSlogLogger())
}

func TestQuerySortsByUrgency(t *testing.T) {
	repo := &fakeProductRepo{views: []ProductView{
		testView(1, "Крем", "A", "", nil),                // unknown
		testView(2, "Тушь", "B", "", expiringIn(60)),     // good
		testView(3, "Сыворотка", "C", "", expiringIn(20)), // soon
		testView(4, "Помада", "D", "", expiringIn(3)),    // urgent
		testView(5, "Тоник", "E", "", expiringIn(-5)),    // expired
	}}

	uc := newTestUC(repo, nil, nil)

	page, err := uc.Query(context.Background(), &QueryProductsReq{
		OwnerID:   testOwner,
		Page:      1,
		Reference: testReference,
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 5)

	gotStatuses := make([]domain.ExpirationStatus, 0, len(page.Items))
	for _, item := range page.Items {
		gotStatuses = append(gotStatuses, item.Status)
	}
	assert.Equal(t, []domain.ExpirationStatus{
		domain.StatusExpired,
		domain.StatusUrgent,
		domain.StatusSoon,
		domain.StatusGood,
		domain.StatusUnknown,
	}, gotStatuses)
}

func TestQueryTiesBrokenByExpirationThenID(t *testing.T) {
	repo := &fakeProductRepo{views: []ProductView{
		testView(9, "A", "X", "", expiringIn(5)),
		testView(2, "B", "X", "", expiringIn(3)),
		testView(7, "C", "X", "", expiringIn(3)),
	}}

	uc := newTestUC(repo, nil, nil)

	page, err := uc.Query(context.Background(), &QueryProductsReq{
		OwnerID:   testOwner,
		Page:      1,
		Reference: testReference,
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)

	assert.Equal(t, int64(2), page.Items[0].Product.ID)
	assert.Equal(t, int64(7), page.Items[1].Product.ID)
	assert.Equal(t, int64(9), page.Items[2].Product.ID)
}

func TestQueryPagination(t *testing.T) {
	views := make([]ProductView, 0, 15)
	for i := int64(1); i <= 15; i++ {
		views = append(views, testView(i, "Продукт", "Бренд", "", expiringIn(60)))
	}
	repo := &fakeProductRepo{views: views}
	uc := newTestUC(repo, nil, nil)

	tests := []struct {
		name      string
		page      int
		wantPage  int
		wantItems int
	}{
		{"first page is full", 1, 1, 10},
		{"second page holds the rest", 2, 2, 5},
		{"page below first is normalized", 0, 1, 10},
		{"negative page is normalized", -3, 1, 10},
		{"page past the end is clamped to last", 99, 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := uc.Query(context.Background(), &QueryProductsReq{
				OwnerID:   testOwner,
				Page:      tt.page,
				Reference: testReference,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantPage, page.Page)
			assert.Len(t, page.Items, tt.wantItems)
			assert.Equal(t, 15, page.TotalCount)
			assert.Equal(t, 2, page.TotalPages)
			assert.Equal(t, tt.wantPage < 2, page.HasNext)
			assert.Equal(t, tt.wantPage > 1, page.HasPrevious)
		})
	}
}

func TestQueryEmptyShelf(t *testing.T) {
	uc := newTestUC(&fakeProductRepo{}, nil, nil)

	page, err := uc.Query(context.Background(), &QueryProductsReq{
		OwnerID:   testOwner,
		Page:      5,
		Reference: testReference,
	})
	require.NoError(t, err)

	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalCount)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 1, page.Page)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrevious)
}

func TestQueryStatusFilter(t *testing.T) {
	repo := &fakeProductRepo{views: []ProductView{
		testView(1, "Крем", "A", "", expiringIn(3)),
		testView(2, "Тушь", "B", "", expiringIn(60)),
	}}
	uc := newTestUC(repo, nil, nil)

	page, err := uc.Query(context.Background(), &QueryProductsReq{
		OwnerID:   testOwner,
		Status:    "urgent",
		Page:      1,
		Reference: testReference,
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Items[0].Product.ID)

	// Статус без совпадений — пустая страница, а не ошибка
	page, err = uc.Query(context.Background(), &QueryProductsReq{
		OwnerID:   testOwner,
		Status:    "expired",
		Page:      1,
		Reference: testReference,
	})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalCount)

	// Неизвестный статус игнорируется
	page, err = uc.Query(context.Background(), &QueryProductsReq{
		OwnerID:   testOwner,
		Status:    "fresh",
		Page:      1,
		Reference: testReference,
	})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
}

func TestQueryKeywordFilter(t *testing.T) {
	repo := &fakeProductRepo{views: []ProductView{
		testView(1, "Ночной крем", "GlowLab", "Уход", expiringIn(10)),
		testView(2, "Тушь", "Lumi", "Макияж", expiringIn(10)),
		testView(3, "Помада", "glowlab", "Макияж", expiringIn(10)),
	}}
	uc := newTestUC(repo, nil, nil)

	// Регистронезависимый поиск по бренду
	page, err := uc.Query(context.Background(), &QueryProductsReq{
		OwnerID:   testOwner,
		Keyword:   "GLOWLAB",
		Page:      1,
		Reference: testReference,
	})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)

	// Поиск по названию категории
	page, err = uc.Query(context.Background(), &QueryProductsReq{
		OwnerID:   testOwner,
		Keyword:   "макияж",
		Page:      1,
		Reference: testReference,
	})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
}

func TestQueryCategoryFilter(t *testing.T) {
	catA, catB := int64(1), int64(2)

	viewWithCat := func(id int64, cat *int64) ProductView {
		v := testView(id, "Продукт", "Бренд", "", expiringIn(10))
		v.Product.CategoryID = cat
		return v
	}

	repo := &fakeProductRepo{views: []ProductView{
		viewWithCat(1, &catA),
		viewWithCat(2, &catB),
		viewWithCat(3, nil),
	}}
	uc := newTestUC(repo, nil, nil)

	page, err := uc.Query(context.Background(), &QueryProductsReq{
		OwnerID:    testOwner,
		CategoryID: &catA,
		Page:       1,
		Reference:  testReference,
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, int64(1), page.Items[0].Product.ID)
}

func TestQueryOwnerScopeViolation(t *testing.T) {
	foreign := testView(1, "Чужой", "Бренд", "", expiringIn(10))
	foreign.Product.OwnerID = testOwner + 1

	uc := newTestUC(&fakeProductRepo{views: []ProductView{foreign}}, nil, nil)

	_, err := uc.Query(context.Background(), &QueryProductsReq{
		OwnerID:   testOwner,
		Page:      1,
		Reference: testReference,
	})
	require.ErrorIs(t, err, e.ErrOwnerScopeViolation)
}

func TestQueryStorageError(t *testing.T) {
	uc := newTestUC(&fakeProductRepo{err: assert.AnError}, nil, nil)

	_, err := uc.Query(context.Background(), &QueryProductsReq{
		OwnerID:   testOwner,
		Page:      1,
		Reference: testReference,
	})
	require.ErrorIs(t, err, e.ErrStorageUnavailable)
}

func TestCountByStatus(t *testing.T) {
	repo := &fakeProductRepo{views: []ProductView{
		testView(1, "A", "X", "", expiringIn(-1)),
		testView(2, "B", "X", "", expiringIn(2)),
		testView(3, "C", "X", "", expiringIn(15)),
		testView(4, "D", "X", "", expiringIn(90)),
		testView(5, "E", "X", "", nil),
	}}
	cache := newFakeCacheRepo()
	uc := newTestUC(repo, cache, nil)

	summary, err := uc.CountByStatus(context.Background(), testOwner, testReference)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Expired)
	assert.Equal(t, 1, summary.Urgent)
	assert.Equal(t, 1, summary.Soon)
	assert.Equal(t, 1, summary.Good)
	assert.Equal(t, 1, summary.Unknown)
	assert.Equal(t, 5, summary.Total)
}

func TestCountByStatusUsesCache(t *testing.T) {
	cache := newFakeCacheRepo()
	day := testReference.Format("2006-01-02")
	cached := &StatusSummaryRes{Good: 7, Total: 7}
	require.NoError(t, cache.SetSummary(context.Background(), testOwner, day, cached))

	// Репозиторий вернул бы ошибку, но до него дело не доходит
	uc := newTestUC(&fakeProductRepo{err: assert.AnError}, cache, nil)

	summary, err := uc.CountByStatus(context.Background(), testOwner, testReference)
	require.NoError(t, err)
	assert.Equal(t, cached, summary)

	// Счётчики на другой день — промах, пересчёт идёт в репозиторий
	_, err = uc.CountByStatus(context.Background(), testOwner, testReference.AddDate(0, 0, 1))
	require.Error(t, err)
}

func TestExpiringOverview(t *testing.T) {
	repo := &fakeProductRepo{views: []ProductView{
		testView(1, "A", "X", "", expiringIn(25)),
		testView(2, "B", "X", "", expiringIn(-3)),
		testView(3, "C", "X", "", expiringIn(5)),
		testView(4, "D", "X", "", expiringIn(2)),
		testView(5, "E", "X", "", expiringIn(90)), // good, в обзор не входит
		testView(6, "F", "X", "", nil),            // unknown, в обзор не входит
	}}
	uc := newTestUC(repo, nil, nil)

	overview, err := uc.ExpiringOverview(context.Background(), testOwner, testReference)
	require.NoError(t, err)

	require.Len(t, overview.Expired, 1)
	assert.Equal(t, int64(2), overview.Expired[0].Product.ID)

	require.Len(t, overview.Urgent, 2)
	assert.Equal(t, int64(4), overview.Urgent[0].Product.ID)
	assert.Equal(t, int64(3), overview.Urgent[1].Product.ID)

	require.Len(t, overview.Soon, 1)
	assert.Equal(t, int64(1), overview.Soon[0].Product.ID)
}

func TestGetProduct(t *testing.T) {
	repo := &fakeProductRepo{views: []ProductView{
		testView(10, "Крем", "GlowLab", "Уход", expiringIn(4)),
	}}
	uc := newTestUC(repo, nil, nil)

	view, err := uc.GetProduct(context.Background(), testOwner, 10, testReference)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUrgent, view.Status)
	require.NotNil(t, view.DaysLeft)
	assert.Equal(t, 4, *view.DaysLeft)

	_, err = uc.GetProduct(context.Background(), testOwner, 999, testReference)
	require.ErrorIs(t, err, e.ErrProductNotFound)

	// Продукт другого владельца неотличим от несуществующего
	_, err = uc.GetProduct(context.Background(), testOwner+1, 10, testReference)
	require.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestUsageLogs(t *testing.T) {
	repo := &fakeProductRepo{views: []ProductView{
		testView(10, "Крем", "GlowLab", "", nil),
	}}
	usage := &fakeUsageRepo{}
	uc := newTestUC(repo, nil, usage)

	log, err := uc.AddUsageLog(context.Background(), testOwner, 10, "утренний уход")
	require.NoError(t, err)
	assert.Equal(t, int64(10), log.ProductID)
	assert.Equal(t, "утренний уход", log.Notes)

	logs, err := uc.ListUsageLogs(context.Background(), testOwner, 10)
	require.NoError(t, err)
	assert.Len(t, logs, 1)

	// Запись о чужом или несуществующем продукте невозможна
	_, err = uc.AddUsageLog(context.Background(), testOwner, 999, "")
	require.ErrorIs(t, err, e.ErrProductNotFound)

	_, err = uc.ListUsageLogs(context.Background(), testOwner+1, 10)
	require.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestValidateProduct(t *testing.T) {
	uc := newTestUC(&fakeProductRepo{}, nil, nil)

	_, err := uc.AddProduct(context.Background(), &AddProductReq{OwnerID: testOwner, BrandName: "GlowLab"})
	require.ErrorIs(t, err, e.ErrProductNameRequired)

	_, err = uc.AddProduct(context.Background(), &AddProductReq{OwnerID: testOwner, Name: "Крем"})
	require.ErrorIs(t, err, e.ErrBrandNameRequired)

	_, err = uc.UpdateProduct(context.Background(), &UpdateProductReq{OwnerID: testOwner, Name: "  "})
	require.ErrorIs(t, err, e.ErrProductNameRequired)
}
