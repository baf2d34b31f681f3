package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/precios-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	PricingUC   *usecase.PricingUseCase
	SalesUC     *usecase.SalesUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	ConfigUC    *usecase.ConfigUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Precios (por producto y simulador)
	pricingHandler := NewPricingHandler(deps.PricingUC)
	products.Get("/:id/pricing", pricingHandler.Compute)
	products.Post("/:id/pricing", pricingHandler.Apply)
	api.Post("/pricing/preview", pricingHandler.Preview)

	// Ventas
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SalesUC)
	sales.Post("/", saleHandler.Register)
	sales.Get("/:id", saleHandler.GetByID)
	products.Get("/:id/sales-summary", saleHandler.WindowSummary)

	// Analítica
	analytics := api.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	analytics.Get("/trend", analyticsHandler.Trend)
	analytics.Get("/abc", analyticsHandler.ABC)
	analytics.Get("/alerts", analyticsHandler.Alerts)
	analytics.Get("/dashboard", analyticsHandler.Dashboard)

	// Configuración del negocio
	config := api.Group("/config")
	configHandler := NewConfigHandler(deps.ConfigUC)
	config.Get("/", configHandler.Get)
	config.Put("/volume", configHandler.SetVolume)
	config.Get("/thresholds", configHandler.GetThresholds)
	config.Put("/thresholds", configHandler.SaveThresholds)
	config.Get("/goals", configHandler.GetGoals)
	config.Put("/goals", configHandler.SaveGoals)
	config.Post("/:map", configHandler.SetEntry)
	config.Delete("/:map/:key", configHandler.RemoveEntry)
}
