package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/agentes-ledger/internal/application/balance"
	"github.com/tu-usuario/agentes-ledger/internal/application/catalog"
	"github.com/tu-usuario/agentes-ledger/internal/application/ledger"
	"github.com/tu-usuario/agentes-ledger/internal/application/report"
	"github.com/tu-usuario/agentes-ledger/internal/infrastructure/postgres"
	"github.com/tu-usuario/agentes-ledger/internal/infrastructure/sheets"
	"github.com/tu-usuario/agentes-ledger/internal/interfaces/http"
	"github.com/tu-usuario/agentes-ledger/internal/mirror"
	"github.com/tu-usuario/agentes-ledger/pkg/config"
	"github.com/tu-usuario/agentes-ledger/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.CreateTables(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}

	agentRepo := postgres.NewAgentRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	issueRepo := postgres.NewIssueRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)

	// Espejo: si hay hoja de cálculo configurada se replica en segundo plano;
	// si no, las notificaciones se descartan y el núcleo opera igual.
	var notifier mirror.Notifier = mirror.Discard{}
	var worker *mirror.Worker
	if cfg.Mirror.SpreadsheetID != "" {
		sink, err := sheets.NewClient(ctx, cfg.Mirror)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente de Google Sheets")
		}
		worker = mirror.NewWorker(sink, log, cfg.Mirror.QueueSize)
		worker.Start()
		notifier = worker
		log.Info().Str("spreadsheet", cfg.Mirror.SpreadsheetID).Msg("espejo habilitado")
	} else {
		log.Info().Msg("espejo deshabilitado (MIRROR_SPREADSHEET_ID vacío)")
	}

	catalogUC := catalog.NewUseCase(agentRepo, productRepo)
	balanceUC := balance.NewUseCase(agentRepo, issueRepo, saleRepo, ledgerRepo)
	ledgerUC := ledger.NewUseCase(agentRepo, productRepo, issueRepo, saleRepo, ledgerRepo, notifier)
	reportUC := report.NewUseCase(saleRepo, cfg.Report)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	http.Router(app, http.RouterDeps{
		CatalogUC: catalogUC,
		BalanceUC: balanceUC,
		LedgerUC:  ledgerUC,
		ReportUC:  reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if worker != nil {
		// Drenar la cola del espejo antes de salir.
		worker.Close()
	}

	log.Info().Msg("aplicación detenida")
}
