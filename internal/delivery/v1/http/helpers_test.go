package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/glowshelf/go-backend/internal/domain"
	"github.com/glowshelf/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceToCents(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr error
	}{
		{"integer", "600", 60000, nil},
		{"two decimals", "599.99", 59999, nil},
		{"one decimal", "12.5", 1250, nil},
		{"zero", "0", 0, nil},
		{"negative", "-10", 0, e.ErrInvalidPrice},
		{"not a number", "abc", 0, e.ErrInvalidPrice},
		{"three decimals", "10.999", 0, e.ErrPricePrecision},
		{"at the cap", "1000000000", 100_000_000_000, nil},
		{"just above the cap", "1000000000.01", 0, e.ErrInvalidPrice},
		{"absurdly large", "99999999999", 0, e.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePriceToCents(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOwnerFromRequest(t *testing.T) {
	newReq := func(owner string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
		if owner != "" {
			r.Header.Set(ownerHeader, owner)
		}
		return r
	}

	ownerID, err := ownerFromRequest(newReq("42"))
	require.NoError(t, err)
	assert.Equal(t, int64(42), ownerID)

	_, err = ownerFromRequest(newReq(""))
	require.ErrorIs(t, err, e.ErrOwnerRequired)

	_, err = ownerFromRequest(newReq("abc"))
	require.ErrorIs(t, err, e.ErrOwnerRequired)

	_, err = ownerFromRequest(newReq("-1"))
	require.ErrorIs(t, err, e.ErrOwnerRequired)
}

func TestReferenceDate(t *testing.T) {
	tz := time.UTC

	r := httptest.NewRequest(http.MethodGet, "/api/v1/products?as_of=2026-03-15", nil)
	got, err := referenceDate(r, tz)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), got)

	r = httptest.NewRequest(http.MethodGet, "/api/v1/products?as_of=15.03.2026", nil)
	_, err = referenceDate(r, tz)
	require.ErrorIs(t, err, e.ErrInvalidDate)

	// Без параметра берётся текущее время
	r = httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	got, err = referenceDate(r, tz)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), got, time.Minute)
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{e.ErrOwnerRequired, http.StatusUnauthorized},
		{e.ErrProductNotFound, http.StatusNotFound},
		{e.ErrProductNameRequired, http.StatusBadRequest},
		{e.ErrBrandNameRequired, http.StatusBadRequest},
		{e.ErrInvalidDate, http.StatusBadRequest},
		{e.ErrInvalidPrice, http.StatusBadRequest},
		{e.ErrInvalidRating, http.StatusBadRequest},
		{e.ErrInvalidOpenStatus, http.StatusBadRequest},
		{e.ErrInvalidProductID, http.StatusBadRequest},
		{e.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{e.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{e.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		code, _ := ToHTTPResponse(tt.err)
		assert.Equal(t, tt.code, code, "error: %v", tt.err)
	}

	// Обёрнутые ошибки хранилища сохраняют код
	code, _ := ToHTTPResponse(e.WrapStorage(assert.AnError))
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func newFormRequest(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestParseProductForm(t *testing.T) {
	base := func() url.Values {
		return url.Values{
			"name":  {"Matte Lipstick"},
			"brand": {"Glow"},
		}
	}

	t.Run("full form", func(t *testing.T) {
		values := base()
		values.Set("category", "Lips")
		values.Set("category_type", "makeup")
		values.Set("purchase_location", "Sephora")
		values.Set("production_date", "2025-01-10")
		values.Set("open_status", "opened")
		values.Set("opened_date", "2025-06-01")
		values.Set("rating", "4")

		form, err := parseProductForm(newFormRequest(values))
		require.NoError(t, err)
		assert.Equal(t, "Sephora", form.PurchaseLocation)
		assert.Equal(t, domain.OpenOpened, form.OpenStatus)
		require.NotNil(t, form.ProductionDate)
		assert.Equal(t, "2025-01-10", form.ProductionDate.Format(dateLayout))
		require.NotNil(t, form.OpenedDate)
		assert.Equal(t, "2025-06-01", form.OpenedDate.Format(dateLayout))
		require.NotNil(t, form.Rating)
		assert.Equal(t, 4, *form.Rating)
	})

	t.Run("defaults", func(t *testing.T) {
		form, err := parseProductForm(newFormRequest(base()))
		require.NoError(t, err)
		assert.Equal(t, domain.OpenUnopened, form.OpenStatus)
		assert.Nil(t, form.Rating)
		assert.Nil(t, form.OpenedDate)
	})

	t.Run("rating out of range", func(t *testing.T) {
		values := base()
		values.Set("rating", "9")

		_, err := parseProductForm(newFormRequest(values))
		require.ErrorIs(t, err, e.ErrInvalidRating)
	})

	t.Run("rating not a number", func(t *testing.T) {
		values := base()
		values.Set("rating", "great")

		_, err := parseProductForm(newFormRequest(values))
		require.ErrorIs(t, err, e.ErrInvalidRating)
	})

	t.Run("unknown open status", func(t *testing.T) {
		values := base()
		values.Set("open_status", "leaking")

		_, err := parseProductForm(newFormRequest(values))
		require.ErrorIs(t, err, e.ErrInvalidOpenStatus)
	})
}
