package http

import (
	"github.com/gofiber/fiber/v2"

	appretail "github.com/jhoicas/inventario-retail/internal/application/retail"
)

// RouterDeps dependencias para el router.
// Import y List pueden ser nil cuando no hay base de datos configurada;
// en ese caso solo se registran las rutas que no persisten.
type RouterDeps struct {
	Fixture        *appretail.FixtureUseCase
	Preview        *appretail.PreviewUseCase
	Import         *appretail.ImportUseCase
	List           *appretail.ListUseCase
	UploadMaxBytes int64
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	fixtures := api.Group("/fixtures")
	fixtureHandler := NewFixtureHandler(deps.Fixture)
	fixtures.Get("/sample-retail", fixtureHandler.SampleRetail)

	retail := api.Group("/retail")
	retailHandler := NewRetailHandler(deps.Preview, deps.Import, deps.List, deps.UploadMaxBytes)
	retail.Post("/preview", retailHandler.Preview)

	if deps.Import == nil || deps.List == nil {
		return
	}
	// Rutas protegidas: la empresa sale del JWT
	auth := AuthMiddleware(deps.JWTSecret)
	retail.Post("/upload", auth, retailHandler.Upload)
	retail.Get("/", auth, retailHandler.List)
}
