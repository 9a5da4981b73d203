package http

import (
	"net/http"
	"time"

	"github.com/glowshelf/go-backend/internal/usecase"
	"github.com/glowshelf/go-backend/pkg/logger"
)

type DashboardHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
	timezone       *time.Location
}

func NewDashboardHandler(productUsecase usecase.ProductUC, logger logger.Logger, timezone *time.Location) *DashboardHandler {
	return &DashboardHandler{productUsecase: productUsecase, logger: logger, timezone: timezone}
}

// summary
//
//	@Summary		Сводка по статусам годности
//	@Description	Количество продуктов владельца в каждом статусе, сумма равна общему числу продуктов
//	@Tags			dashboard
//	@Produce		json
//	@Param			X-Owner-ID	header		int		true	"Идентификатор владельца"
//	@Param			as_of		query		string	false	"Опорная дата YYYY-MM-DD"
//	@Success		200			{object}	usecase.StatusSummaryRes
//	@Failure		400			{object}	ErrorResponse
//	@Router			/dashboard/summary [get]
func (d *DashboardHandler) summary(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	reference, err := referenceDate(r, d.timezone)
	if err != nil {
		WriteError(w, err)
		return
	}

	summary, err := d.productUsecase.CountByStatus(r.Context(), ownerID, reference)
	if err != nil {
		d.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, summary)
}

// expiring
//
//	@Summary		Продукты, требующие внимания
//	@Description	Просроченные и подходящие к концу срока годности продукты, сгруппированные по статусу
//	@Tags			dashboard
//	@Produce		json
//	@Param			X-Owner-ID	header		int		true	"Идентификатор владельца"
//	@Param			as_of		query		string	false	"Опорная дата YYYY-MM-DD"
//	@Success		200			{object}	ExpiringOverviewResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/dashboard/expiring [get]
func (d *DashboardHandler) expiring(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	reference, err := referenceDate(r, d.timezone)
	if err != nil {
		WriteError(w, err)
		return
	}

	overview, err := d.productUsecase.ExpiringOverview(r.Context(), ownerID, reference)
	if err != nil {
		d.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewExpiringOverviewResponse(overview))
}
