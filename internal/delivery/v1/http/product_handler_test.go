package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/glowshelf/go-backend/internal/domain"
	"github.com/glowshelf/go-backend/internal/usecase"
	"github.com/glowshelf/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductUC struct {
	queryReq   *usecase.QueryProductsReq
	usageNotes string
	usageOwner int64
	usageID    int64
}

func (f *fakeProductUC) AddProduct(ctx context.Context, req *usecase.AddProductReq) (*usecase.ProductView, error) {
	return &usecase.ProductView{}, nil
}

func (f *fakeProductUC) GetProduct(ctx context.Context, ownerID, productID int64, reference time.Time) (*usecase.ProductView, error) {
	return &usecase.ProductView{}, nil
}

func (f *fakeProductUC) UpdateProduct(ctx context.Context, req *usecase.UpdateProductReq) (*usecase.ProductView, error) {
	return &usecase.ProductView{}, nil
}

func (f *fakeProductUC) DeleteProduct(ctx context.Context, ownerID, productID int64) error {
	return nil
}

func (f *fakeProductUC) Query(ctx context.Context, req *usecase.QueryProductsReq) (*usecase.ProductPageRes, error) {
	f.queryReq = req
	return usecase.NewProductPageRes(nil, 0, 1, 0), nil
}

func (f *fakeProductUC) CountByStatus(ctx context.Context, ownerID int64, reference time.Time) (*usecase.StatusSummaryRes, error) {
	return &usecase.StatusSummaryRes{}, nil
}

func (f *fakeProductUC) ExpiringOverview(ctx context.Context, ownerID int64, reference time.Time) (*usecase.ExpiringOverviewRes, error) {
	return &usecase.ExpiringOverviewRes{}, nil
}

func (f *fakeProductUC) AddUsageLog(ctx context.Context, ownerID, productID int64, notes string) (*domain.UsageLog, error) {
	f.usageOwner = ownerID
	f.usageID = productID
	f.usageNotes = notes
	return &domain.UsageLog{ID: 1, ProductID: productID, UsedAt: time.Now(), Notes: notes}, nil
}

func (f *fakeProductUC) ListUsageLogs(ctx context.Context, ownerID, productID int64) ([]domain.UsageLog, error) {
	return nil, nil
}

func newTestHandler(uc usecase.ProductUC) *ProductHandler {
	return NewProductHandler(uc, logger.NewSlogLogger(), time.UTC)
}

// withURLParam подкладывает path-параметр chi в контекст запроса.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListProductsQueryParams(t *testing.T) {
	uc := &fakeProductUC{}
	handler := newTestHandler(uc)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/products?category_id=7&status=urgent&q=Mask&page=3", nil)
	r.Header.Set(ownerHeader, "42")
	w := httptest.NewRecorder()

	handler.listProducts(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.queryReq)
	assert.Equal(t, int64(42), uc.queryReq.OwnerID)
	assert.Equal(t, "Mask", uc.queryReq.Keyword)
	assert.Equal(t, "urgent", uc.queryReq.Status)
	assert.Equal(t, 3, uc.queryReq.Page)
	require.NotNil(t, uc.queryReq.CategoryID)
	assert.Equal(t, int64(7), *uc.queryReq.CategoryID)
}

func TestListProductsWithoutCategoryFilter(t *testing.T) {
	uc := &fakeProductUC{}
	handler := newTestHandler(uc)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	r.Header.Set(ownerHeader, "42")
	w := httptest.NewRecorder()

	handler.listProducts(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.queryReq)
	assert.Nil(t, uc.queryReq.CategoryID)
}

func TestAddUsageLogReadsNotesFromForm(t *testing.T) {
	uc := &fakeProductUC{}
	handler := newTestHandler(uc)

	form := url.Values{"notes": {"almost empty"}}
	r := httptest.NewRequest(http.MethodPost, "/api/v1/products/5/usage", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set(ownerHeader, "42")
	r = withURLParam(r, "id", "5")
	w := httptest.NewRecorder()

	handler.addUsageLog(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(42), uc.usageOwner)
	assert.Equal(t, int64(5), uc.usageID)
	assert.Equal(t, "almost empty", uc.usageNotes)
}
