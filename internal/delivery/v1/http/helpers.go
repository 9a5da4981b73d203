package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/glowshelf/go-backend/internal/domain"
	"github.com/glowshelf/go-backend/internal/usecase"
	"github.com/glowshelf/go-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

const (
	ownerHeader = "X-Owner-ID"
	dateLayout  = "2006-01-02"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ProductForm — разобранные поля multipart-формы создания/редактирования продукта.
type ProductForm struct {
	Name             string
	BrandName        string
	CategoryName     string
	CategoryType     domain.CategoryType
	Shade            string
	Capacity         string
	PurchaseDate     *time.Time
	PurchaseLocation string
	ProductionDate   *time.Time
	PriceCents       *int64
	ExpirationDate   *time.Time
	OpenStatus       domain.OpenStatus
	OpenedDate       *time.Time
	Rating           *int
	Image            *usecase.ProductImage
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrOwnerRequired):
		return http.StatusUnauthorized, e.ErrOwnerRequired.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, e.ErrFileTooLarge.Error()
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, e.ErrUnsupportedMediaType.Error()
	case errors.Is(err, e.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, e.ErrStorageUnavailable.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrExpectedMultipart):
		return http.StatusBadRequest, e.ErrExpectedMultipart.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrBrandNameRequired):
		return http.StatusBadRequest, e.ErrBrandNameRequired.Error()
	case errors.Is(err, e.ErrInvalidCategoryType):
		return http.StatusBadRequest, e.ErrInvalidCategoryType.Error()
	case errors.Is(err, e.ErrInvalidDate):
		return http.StatusBadRequest, e.ErrInvalidDate.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrInvalidRating):
		return http.StatusBadRequest, e.ErrInvalidRating.Error()
	case errors.Is(err, e.ErrInvalidOpenStatus):
		return http.StatusBadRequest, e.ErrInvalidOpenStatus.Error()
	case errors.Is(err, e.ErrInvalidProductID):
		return http.StatusBadRequest, e.ErrInvalidProductID.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// ownerFromRequest извлекает идентификатор владельца из заголовка X-Owner-ID.
// Все операции выполняются строго в пределах полки одного владельца.
func ownerFromRequest(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.Header.Get(ownerHeader))
	if raw == "" {
		return 0, e.ErrOwnerRequired
	}

	ownerID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || ownerID <= 0 {
		return 0, e.ErrOwnerRequired
	}

	return ownerID, nil
}

// productIDFromRequest извлекает идентификатор продукта из URL.
func productIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	productID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || productID <= 0 {
		return 0, e.ErrInvalidProductID
	}

	return productID, nil
}

// referenceDate возвращает опорную дату для классификации статусов.
// Необязательный параметр as_of=YYYY-MM-DD позволяет посмотреть полку
// «глазами» другой даты; по умолчанию берётся текущее время в часовом
// поясе приложения.
func referenceDate(r *http.Request, tz *time.Location) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("as_of"))
	if raw == "" {
		return time.Now().In(tz), nil
	}

	t, err := time.ParseInLocation(dateLayout, raw, tz)
	if err != nil {
		return time.Time{}, e.ErrInvalidDate
	}

	return t, nil
}

// parsePriceToCents конвертирует строку вида "599.99" или "600" в копейки.
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, errors.New("price is empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	// Потолок в рублях, до конвертации в копейки
	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	cents := d.Mul(decimal.NewFromInt(100)).Round(0)

	return cents.IntPart(), nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

// parseProductForm разбирает и валидирует поля формы продукта.
// Обязательны только name и brand; остальные поля пустые по умолчанию.
func parseProductForm(r *http.Request) (*ProductForm, error) {
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		return nil, e.ErrProductNameRequired
	}

	brandName := strings.TrimSpace(r.FormValue("brand"))
	if brandName == "" {
		return nil, e.ErrBrandNameRequired
	}

	categoryType, ok := domain.ParseCategoryType(strings.TrimSpace(r.FormValue("category_type")))
	if !ok {
		return nil, e.ErrInvalidCategoryType
	}

	openStatus, ok := domain.ParseOpenStatus(strings.TrimSpace(r.FormValue("open_status")))
	if !ok {
		return nil, e.ErrInvalidOpenStatus
	}

	form := &ProductForm{
		Name:             name,
		BrandName:        brandName,
		CategoryName:     strings.TrimSpace(r.FormValue("category")),
		CategoryType:     categoryType,
		Shade:            strings.TrimSpace(r.FormValue("shade")),
		Capacity:         strings.TrimSpace(r.FormValue("capacity")),
		PurchaseLocation: strings.TrimSpace(r.FormValue("purchase_location")),
		OpenStatus:       openStatus,
	}

	if raw := strings.TrimSpace(r.FormValue("price")); raw != "" {
		cents, err := parsePriceToCents(raw)
		if err != nil {
			return nil, err
		}
		form.PriceCents = &cents
	}

	if raw := strings.TrimSpace(r.FormValue("rating")); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil || rating < 1 || rating > 5 {
			return nil, e.ErrInvalidRating
		}
		form.Rating = &rating
	}

	var err error
	form.PurchaseDate, err = parseOptionalDate(r.FormValue("purchase_date"))
	if err != nil {
		return nil, err
	}

	form.ProductionDate, err = parseOptionalDate(r.FormValue("production_date"))
	if err != nil {
		return nil, err
	}

	form.ExpirationDate, err = parseOptionalDate(r.FormValue("expiration_date"))
	if err != nil {
		return nil, err
	}

	form.OpenedDate, err = parseOptionalDate(r.FormValue("opened_date"))
	if err != nil {
		return nil, err
	}

	if r.MultipartForm != nil {
		form.Image, err = parseImage(r.MultipartForm.File["image"])
		if err != nil {
			return nil, err
		}
	}

	return form, nil
}

func parseOptionalDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, e.Wrap(fmt.Sprintf("date: %s", raw), e.ErrInvalidDate)
	}

	return &t, nil
}

// parseImage читает единственную фотографию продукта из multipart-формы.
// Отсутствие файла ошибкой не считается.
func parseImage(files []*multipart.FileHeader) (*usecase.ProductImage, error) {
	const maxFileSize = 15 << 20

	if len(files) == 0 {
		return nil, nil
	}

	fh := files[0]
	data, mimeType, err := readFile(fh, maxFileSize)
	if err != nil {
		return nil, err
	}

	return usecase.NewProductImage(data, mimeType, int64(len(data)), fh.Filename), nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
