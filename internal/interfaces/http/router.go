package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/agentes-ledger/internal/application/balance"
	"github.com/tu-usuario/agentes-ledger/internal/application/catalog"
	"github.com/tu-usuario/agentes-ledger/internal/application/ledger"
	"github.com/tu-usuario/agentes-ledger/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *catalog.UseCase
	BalanceUC *balance.UseCase
	LedgerUC  *ledger.UseCase
	ReportUC  *report.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (login por secreto compartido)
	authHandler := NewAuthHandler(deps.CatalogUC)
	api.Post("/auth/login", authHandler.Login)

	// Agentes y sus posiciones derivadas
	agents := api.Group("/agents")
	agentHandler := NewAgentHandler(deps.CatalogUC, deps.BalanceUC)
	agents.Post("/", agentHandler.Create)
	agents.Get("/", agentHandler.List)
	agents.Get("/:name", agentHandler.GetByName)
	agents.Post("/:name/session", agentHandler.BindSession)
	agents.Get("/:name/stock", agentHandler.Stock)
	agents.Get("/:name/debt", agentHandler.Debt)

	// Resolución inversa sesión -> agente (¿quién es este chat?)
	api.Get("/sessions/:id/agent", agentHandler.BySession)

	// Catálogo de productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Put("/:name/price", productHandler.UpdatePrice)

	// Libro: entregas, ventas y movimientos de caja
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	api.Post("/issues", ledgerHandler.CreateIssue)
	api.Post("/sales", ledgerHandler.CreateSale)
	api.Post("/ledger-entries", ledgerHandler.CreateEntry)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	api.Get("/reports/daily-sales", reportHandler.DailySales)
}
