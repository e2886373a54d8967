package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Precios-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	IngestUC   *usecase.IngestUseCase
	CatalogUC  *usecase.CatalogUseCase
	SupplierUC *usecase.SupplierUseCase
}

// Router registra las rutas de la API. Las rutas cuelgan de la raíz para
// mantener compatibilidad con los clientes existentes del servicio.
func Router(app *fiber.App, deps RouterDeps) {
	uploadHandler := NewUploadHandler(deps.IngestUC)
	app.Post("/upload", uploadHandler.Upload)

	productHandler := NewProductHandler(deps.CatalogUC)
	app.Get("/products/search", productHandler.Search)
	app.Get("/products/:id/prices", productHandler.Prices)

	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers := app.Group("/suppliers")
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
}
