package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/glowshelf/go-backend/internal/usecase"
	"github.com/glowshelf/go-backend/pkg/e"
	"github.com/glowshelf/go-backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
	timezone       *time.Location
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger, timezone *time.Location) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger, timezone: timezone}
}

// createProduct
//
//	@Summary		Добавление продукта на полку
//	@Description	Создает косметический продукт с необязательной фотографией
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			X-Owner-ID		header		int		true	"Идентификатор владельца"
//	@Param			name			formData	string	true	"Название продукта"
//	@Param			brand			formData	string	true	"Бренд"
//	@Param			category		formData	string	false	"Категория"
//	@Param			category_type	formData	string	false	"Тип категории (skincare, makeup, fragrance, hair, body, other)"
//	@Param			shade			formData	string	false	"Оттенок"
//	@Param			capacity		formData	string	false	"Объём"
//	@Param			purchase_date		formData	string	false	"Дата покупки YYYY-MM-DD"
//	@Param			purchase_location	formData	string	false	"Место покупки"
//	@Param			production_date		formData	string	false	"Дата производства YYYY-MM-DD"
//	@Param			price				formData	number	false	"Цена"
//	@Param			expiration_date		formData	string	false	"Срок годности YYYY-MM-DD"
//	@Param			open_status			formData	string	false	"Статус упаковки (unopened, opened, finished, discarded)"
//	@Param			opened_date			formData	string	false	"Дата вскрытия YYYY-MM-DD"
//	@Param			rating				formData	int		false	"Оценка от 1 до 5"
//	@Param			image				formData	file	false	"Фотография продукта"
//	@Success		201				{object}	ProductResponse
//	@Failure		400				{object}	ErrorResponse	"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 16 << 20
	)

	ownerID, err := ownerFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	form, err := parseProductForm(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	view, err := p.productUsecase.AddProduct(r.Context(), &usecase.AddProductReq{
		OwnerID:          ownerID,
		Name:             form.Name,
		BrandName:        form.BrandName,
		CategoryName:     form.CategoryName,
		CategoryType:     form.CategoryType,
		Shade:            form.Shade,
		Capacity:         form.Capacity,
		PurchaseDate:     form.PurchaseDate,
		PurchaseLocation: form.PurchaseLocation,
		ProductionDate:   form.ProductionDate,
		PriceCents:       form.PriceCents,
		ExpirationDate:   form.ExpirationDate,
		OpenStatus:       form.OpenStatus,
		OpenedDate:       form.OpenedDate,
		Rating:           form.Rating,
		Image:            form.Image,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewProductResponse(view))
}

// listProducts
//
//	@Summary		Список продуктов владельца
//	@Description	Фильтрует по статусу, категории и ключевому слову, сортирует по срочности и отдаёт страницу из 10 записей
//	@Tags			products
//	@Produce		json
//	@Param			X-Owner-ID	header		int		true	"Идентификатор владельца"
//	@Param			status		query		string	false	"Фильтр по статусу (expired, urgent, soon, good, unknown)"
//	@Param			category_id	query		int		false	"Фильтр по идентификатору категории"
//	@Param			q			query		string	false	"Поиск по названию, бренду и категории"
//	@Param			page		query		int		false	"Номер страницы"
//	@Param			as_of		query		string	false	"Опорная дата YYYY-MM-DD"
//	@Success		200			{object}	ProductPageResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	reference, err := referenceDate(r, p.timezone)
	if err != nil {
		WriteError(w, err)
		return
	}

	req := &usecase.QueryProductsReq{
		OwnerID:   ownerID,
		Keyword:   strings.TrimSpace(r.URL.Query().Get("q")),
		Status:    strings.TrimSpace(r.URL.Query().Get("status")),
		Reference: reference,
	}

	// Нечисловые и отрицательные номера страниц не отклоняются,
	// а нормализуются к первой странице.
	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			req.Page = page
		} else {
			req.Page = 1
		}
	}

	if raw := r.URL.Query().Get("category_id"); raw != "" {
		if categoryID, err := strconv.ParseInt(raw, 10, 64); err == nil {
			req.CategoryID = &categoryID
		}
	}

	page, err := p.productUsecase.Query(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductPageResponse(page))
}

// getProduct
//
//	@Summary	Карточка продукта
//	@Tags		products
//	@Produce	json
//	@Param		X-Owner-ID	header		int		true	"Идентификатор владельца"
//	@Param		id			path		int		true	"Идентификатор продукта"
//	@Param		as_of		query		string	false	"Опорная дата YYYY-MM-DD"
//	@Success	200			{object}	ProductResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := productIDFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	reference, err := referenceDate(r, p.timezone)
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := p.productUsecase.GetProduct(r.Context(), ownerID, productID, reference)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponse(view))
}

// updateProduct
//
//	@Summary		Редактирование продукта
//	@Description	Перезаписывает поля продукта значениями из формы, как при редактировании карточки
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			X-Owner-ID	header		int	true	"Идентификатор владельца"
//	@Param			id			path		int	true	"Идентификатор продукта"
//	@Success		200			{object}	ProductResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 16 << 20
	)

	ownerID, err := ownerFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := productIDFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	form, err := parseProductForm(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	view, err := p.productUsecase.UpdateProduct(r.Context(), &usecase.UpdateProductReq{
		OwnerID:          ownerID,
		ProductID:        productID,
		Name:             form.Name,
		BrandName:        form.BrandName,
		CategoryName:     form.CategoryName,
		CategoryType:     form.CategoryType,
		Shade:            form.Shade,
		Capacity:         form.Capacity,
		PurchaseDate:     form.PurchaseDate,
		PurchaseLocation: form.PurchaseLocation,
		ProductionDate:   form.ProductionDate,
		PriceCents:       form.PriceCents,
		ExpirationDate:   form.ExpirationDate,
		OpenStatus:       form.OpenStatus,
		OpenedDate:       form.OpenedDate,
		Rating:           form.Rating,
		Image:            form.Image,
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponse(view))
}

// deleteProduct
//
//	@Summary	Удаление продукта с полки
//	@Tags		products
//	@Produce	json
//	@Param		X-Owner-ID	header	int	true	"Идентификатор владельца"
//	@Param		id			path	int	true	"Идентификатор продукта"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := productIDFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := p.productUsecase.DeleteProduct(r.Context(), ownerID, productID); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// addUsageLog
//
//	@Summary	Отметка об использовании продукта
//	@Tags		usage
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		X-Owner-ID	header		int		true	"Идентификатор владельца"
//	@Param		id			path		int		true	"Идентификатор продукта"
//	@Param		notes		formData	string	false	"Заметка об использовании"
//	@Success	201			{object}	UsageLogResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/products/{id}/usage [post]
func (p *ProductHandler) addUsageLog(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := productIDFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	notes := strings.TrimSpace(r.FormValue("notes"))

	log, err := p.productUsecase.AddUsageLog(r.Context(), ownerID, productID, notes)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewUsageLogResponse(log))
}

// listUsageLogs
//
//	@Summary	История использования продукта
//	@Tags		usage
//	@Produce	json
//	@Param		X-Owner-ID	header		int	true	"Идентификатор владельца"
//	@Param		id			path		int	true	"Идентификатор продукта"
//	@Success	200			{array}		UsageLogResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/products/{id}/usage [get]
func (p *ProductHandler) listUsageLogs(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := productIDFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	logs, err := p.productUsecase.ListUsageLogs(r.Context(), ownerID, productID)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewUsageLogResponseList(logs))
}
