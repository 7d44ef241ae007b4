package main

import (
	"context"
	"os"

	appanalytics "github.com/tu-usuario/inventario-lite/internal/application/analytics"
	"github.com/tu-usuario/inventario-lite/internal/application/audit"
	"github.com/tu-usuario/inventario-lite/internal/application/auth"
	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/application/inventory"
	"github.com/tu-usuario/inventario-lite/internal/application/reports"
	"github.com/tu-usuario/inventario-lite/internal/application/usecase"
	"github.com/tu-usuario/inventario-lite/internal/infrastructure/export"
	"github.com/tu-usuario/inventario-lite/internal/infrastructure/memoria"
	infrapdf "github.com/tu-usuario/inventario-lite/internal/infrastructure/pdf"
	"github.com/tu-usuario/inventario-lite/pkg/config"
	"github.com/tu-usuario/inventario-lite/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	themes := config.NewThemeStore(cfg.Theme)
	log.Info().Str("theme", themes.Current()).Msg("preferencia de tema")

	// Estado de la sesión: colecciones en memoria sembradas con la demo.
	// Se descarta al terminar el proceso; no hay persistencia.
	store, err := memoria.NewSeededStore()
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar datos de demostración")
	}

	session := auth.NewSession(store.Notifications)
	recorder := audit.NewRecorder(store.Audit, session, log)
	authUC := auth.NewUseCase(store.Users, session, cfg.Auth.Delay, log)
	productUC := usecase.NewProductUseCase(store.Products, store.Categories, session, recorder, log)
	categoryUC := usecase.NewCategoryUseCase(store.Categories, store.Products, session, log)
	notificationUC := usecase.NewNotificationUseCase(store.Notifications)
	userUC := usecase.NewUserUseCase(store.Users, session)
	adjustUC := inventory.NewAdjustUseCase(
		store.Products, store.Transactions, store.Notifications, session, recorder, log)
	dashboardUC := appanalytics.NewDashboardUseCase(store.Products, store.Categories)
	reportsUC := reports.NewUseCase(store.Products, store.Categories, store.Transactions)
	csvWriter := export.NewCSVWriter()
	pdfGenerator := infrapdf.NewMarotoReportGenerator()

	ctx := context.Background()

	// Sesión guiada de demostración sobre el estado sembrado.
	user, err := authUC.Login(ctx, dto.LoginRequest{Username: "admin", Password: "admin"})
	if err != nil {
		log.Fatal().Err(err).Msg("login")
	}
	log.Info().Str("username", user.Username).Str("role", user.Role).Msg("usuario autenticado")

	summary, err := dashboardUC.GetSummary()
	if err != nil {
		log.Fatal().Err(err).Msg("dashboard")
	}
	log.Info().
		Int("products", summary.TotalProducts).
		Str("stock_value", summary.TotalStockValueDisplay).
		Int("low_stock", summary.LowStockCount).
		Int("out_of_stock", summary.OutOfStockCount).
		Msg("resumen de inventario")

	matcha, err := productUC.List(dto.ProductFilter{Search: "GRO-OMT-002"})
	if err != nil || len(matcha) == 0 {
		log.Fatal().Err(err).Msg("buscar producto de demo")
	}
	if _, err := adjustUC.Adjust(matcha[0].ID, -40); err != nil {
		log.Fatal().Err(err).Msg("ajustar stock")
	}

	center, err := notificationUC.Center()
	if err != nil {
		log.Fatal().Err(err).Msg("notificaciones")
	}
	log.Info().Int("unread", center.UnreadCount).Msg("centro de notificaciones")

	if _, err := categoryUC.Add("Stationery"); err != nil {
		log.Fatal().Err(err).Msg("agregar categoría")
	}

	users, err := userUC.List()
	if err != nil {
		log.Fatal().Err(err).Msg("listar usuarios")
	}
	log.Info().Int("users", len(users)).Msg("tabla de administración de usuarios")

	doc, err := reportsUC.Generate(dto.ReportSales)
	if err != nil {
		log.Fatal().Err(err).Msg("generar reporte")
	}
	outDir := os.TempDir()
	csvPath, err := csvWriter.WriteFile(outDir, doc)
	if err != nil {
		log.Fatal().Err(err).Msg("exportar CSV")
	}
	log.Info().Str("path", csvPath).Msg("reporte exportado")

	pdfBytes, err := pdfGenerator.GenerateReportPDF(doc)
	if err != nil {
		log.Fatal().Err(err).Msg("imprimir reporte")
	}
	log.Info().Int("bytes", len(pdfBytes)).Str("report", doc.Title).Msg("reporte impreso (PDF)")

	trail, err := recorder.List()
	if err != nil {
		log.Fatal().Err(err).Msg("auditoría")
	}
	log.Info().Int("entries", len(trail)).Msg("historial de auditoría")

	if err := authUC.Logout(); err != nil {
		log.Fatal().Err(err).Msg("logout")
	}
	log.Info().Msg("sesión finalizada; el estado en memoria se descarta")
}
