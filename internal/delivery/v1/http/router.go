package http

import (
	"time"

	_ "github.com/glowshelf/go-backend/docs" // Импорт сгенерированных файлов
	"github.com/glowshelf/go-backend/internal/usecase"
	"github.com/glowshelf/go-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router   *chi.Mux
	logger   logger.Logger
	timezone *time.Location
}

func NewRouter(router *chi.Mux, logger logger.Logger, timezone *time.Location) *Router {
	return &Router{router: router, logger: logger, timezone: timezone}
}

func (r *Router) Init(prUC usecase.ProductUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		prHandler := NewProductHandler(prUC, r.logger, r.timezone)
		registerProductRoutes(v1, prHandler)

		dashHandler := NewDashboardHandler(prUC, r.logger, r.timezone)
		registerDashboardRoutes(v1, dashHandler)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", prHandler.createProduct)
		pr.Get("/", prHandler.listProducts)

		pr.Route("/{id}", func(item chi.Router) {
			item.Get("/", prHandler.getProduct)
			item.Put("/", prHandler.updateProduct)
			item.Delete("/", prHandler.deleteProduct)

			item.Post("/usage", prHandler.addUsageLog)
			item.Get("/usage", prHandler.listUsageLogs)
		})
	})
}

func registerDashboardRoutes(router chi.Router, dashHandler *DashboardHandler) {
	router.Route("/dashboard", func(d chi.Router) {
		d.Get("/summary", dashHandler.summary)
		d.Get("/expiring", dashHandler.expiring)
	})
}
