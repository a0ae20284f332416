package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"fulfill-backend/internal/auth"
	"fulfill-backend/internal/cache"
	"fulfill-backend/internal/config"
	"fulfill-backend/internal/database"
	"fulfill-backend/internal/db"
	"fulfill-backend/internal/handlers"
	"fulfill-backend/internal/health"
	h "fulfill-backend/internal/http"
	"fulfill-backend/internal/live"
	"fulfill-backend/internal/middleware"
	"fulfill-backend/internal/monitoring"
	"fulfill-backend/internal/repositories"
	"fulfill-backend/internal/services"
	"fulfill-backend/migrations"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	// Redis cache is optional - graceful fallback if unavailable
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (progress reads will hit the database)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run database migrations from the embedded filesystem
	migrator := database.NewMigratorWithFS(pool, migrations.FS, ".")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	healthChecker := health.NewHealthChecker(pool)
	statsCollector := monitoring.NewCollector(pool)
	jwtManager := auth.NewJWTManager(cfg)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	orderRepo := repositories.NewOrderRepository(pool)
	lineRepo := repositories.NewOrderLineRepository(pool)
	qcRepo := repositories.NewQcSubmissionRepository(pool)

	// Live progress hub
	hub := live.NewHub()
	go hub.Run()

	// Services
	userService := services.NewUserService(userRepo, jwtManager)
	totpService := services.NewTOTPService(userRepo)
	orderService := services.NewOrderService(orderRepo, lineRepo, qcRepo)
	qcService := services.NewQcService(lineRepo, qcRepo, orderRepo, hub)
	reportService := services.NewReportService(orderRepo, lineRepo, qcRepo)

	// Evidence store is optional - uploads are disabled without credentials
	evidenceService, err := services.NewEvidenceService(cfg)
	if err != nil {
		log.Printf("[Evidence] %v (evidence uploads disabled)", err)
		evidenceService = nil
	}

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, totpService)
	userHandler := handlers.NewUserHandler(userService)
	orderHandler := handlers.NewOrderHandler(orderService)
	qcHandler := handlers.NewQcHandler(qcService)
	evidenceHandler := handlers.NewEvidenceHandler(evidenceService)
	reportHandler := handlers.NewReportHandler(reportService)
	totpHandler := handlers.NewTOTPHandler(totpService, userRepo)
	monitoringHandler := handlers.NewMonitoringHandler(statsCollector)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	router := h.NewRouter(
		authHandler,
		userHandler,
		orderHandler,
		qcHandler,
		evidenceHandler,
		reportHandler,
		totpHandler,
		monitoringHandler,
		healthHandler,
		hub,
		authMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, corsMiddleware(router)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
