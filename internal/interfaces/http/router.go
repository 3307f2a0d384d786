package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/stockledger-api/internal/application/inventory"
	"github.com/jhoicas/stockledger-api/internal/infrastructure/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockCard     *inventory.StockCardUseCase
	JWTSecret     string
	JWTIssuer     string
	MaxWindowDays int
	Metrics       *metrics.Metrics // nil = sin métricas
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Use(MetricsMiddleware(deps.Metrics))
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	// Stock cards por instalación (solo lectura)
	facilities := protected.Group("/facilities/:facilityId")
	stockCardHandler := NewStockCardHandler(deps.StockCard, deps.MaxWindowDays)
	facilities.Get("/stock-on-hand", stockCardHandler.GetStockOnHand)
	facilities.Get("/product-movements", stockCardHandler.GetProductMovements)
	facilities.Get("/product-movements/latest", stockCardHandler.GetLatestProductMovements)
}
