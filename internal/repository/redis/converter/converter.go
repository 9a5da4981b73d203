//go:generate goverter gen github.com/glowshelf/go-backend/internal/repository/redis/converter

package converter

import (
	"github.com/glowshelf/go-backend/internal/usecase"
)

// goverter:converter
// goverter:ignore Day
type StatusSummaryConverter interface {
	ToRedisModel(entity *usecase.StatusSummaryRes) *StatusSummaryRedisModel
	ToUseCase(model *StatusSummaryRedisModel) *usecase.StatusSummaryRes
}
