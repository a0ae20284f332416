package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fulfill-backend/internal/handlers"
	"fulfill-backend/internal/live"
	"fulfill-backend/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	orderHandler *handlers.OrderHandler,
	qcHandler *handlers.QcHandler,
	evidenceHandler *handlers.EvidenceHandler,
	reportHandler *handlers.ReportHandler,
	totpHandler *handlers.TOTPHandler,
	monitoringHandler *handlers.MonitoringHandler,
	healthHandler *handlers.HealthHandler,
	hub *live.Hub,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.PanicRecovery)
	r.Use(middleware.MetricsMiddleware)
	r.Use(middleware.APILogging)

	// Public API routes - Authentication
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/verify-2fa", authHandler.Verify2FA).Methods("POST")

	// Protected API routes - Users (admin only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.HandleFunc("", authMiddleware.RequireRole("admin")(http.HandlerFunc(userHandler.ListUsers)).ServeHTTP).Methods("GET")
	usersAPI.HandleFunc("", authMiddleware.RequireRole("admin")(http.HandlerFunc(userHandler.CreateUser)).ServeHTTP).Methods("POST")
	usersAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(userHandler.GetUser)).ServeHTTP).Methods("GET")
	usersAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(userHandler.UpdateUser)).ServeHTTP).Methods("PUT")
	usersAPI.HandleFunc("/{id}", authMiddleware.RequireRole("admin")(http.HandlerFunc(userHandler.DeleteUser)).ServeHTTP).Methods("DELETE")
	usersAPI.HandleFunc("/{id}/toggle-active", authMiddleware.RequireRole("admin")(http.HandlerFunc(userHandler.ToggleUserStatus)).ServeHTTP).Methods("PATCH")

	// Protected API routes - Orders
	ordersAPI := r.PathPrefix("/api/orders").Subrouter()
	ordersAPI.Use(authMiddleware.Authenticate)
	ordersAPI.HandleFunc("", orderHandler.ListOrders).Methods("GET")
	ordersAPI.HandleFunc("", orderHandler.CreateOrder).Methods("POST")
	ordersAPI.HandleFunc("/{id}", orderHandler.UpdateOrder).Methods("PUT")
	ordersAPI.HandleFunc("/{id}/progress", orderHandler.GetOrderProgress).Methods("GET")
	ordersAPI.HandleFunc("/{id}/report", reportHandler.GetQcReport).Methods("GET")
	ordersAPI.HandleFunc("/{id}/report/pdf", reportHandler.DownloadQcReportPDF).Methods("GET")

	// Protected API routes - Order Lines
	linesAPI := r.PathPrefix("/api/order-lines").Subrouter()
	linesAPI.Use(authMiddleware.Authenticate)
	linesAPI.HandleFunc("/{line_id}/status", orderHandler.UpdateLineStatus).Methods("PUT")
	linesAPI.HandleFunc("/{line_id}/qc", qcHandler.History).Methods("GET")

	// Protected API routes - QC submissions (decisions are admin only)
	qcAPI := r.PathPrefix("/api/qc").Subrouter()
	qcAPI.Use(authMiddleware.Authenticate)
	qcAPI.HandleFunc("/submissions", qcHandler.Submit).Methods("POST")
	qcAPI.HandleFunc("/submissions/{id}/images", qcHandler.AppendImages).Methods("POST")
	qcAPI.HandleFunc("/submissions/{id}/approve", authMiddleware.RequireRole("admin")(http.HandlerFunc(qcHandler.Approve)).ServeHTTP).Methods("POST")
	qcAPI.HandleFunc("/submissions/{id}/reject", authMiddleware.RequireRole("admin")(http.HandlerFunc(qcHandler.Reject)).ServeHTTP).Methods("POST")

	// Protected API routes - Evidence images (presigned S3 URLs)
	evidenceAPI := r.PathPrefix("/api/evidence").Subrouter()
	evidenceAPI.Use(authMiddleware.Authenticate)
	evidenceAPI.HandleFunc("/upload-url", evidenceHandler.PresignUpload).Methods("GET")
	evidenceAPI.HandleFunc("/download-url", evidenceHandler.PresignDownload).Methods("GET")

	// Protected API routes - 2FA
	totpAPI := r.PathPrefix("/api/2fa").Subrouter()
	totpAPI.Use(authMiddleware.Authenticate)
	totpAPI.HandleFunc("/setup", totpHandler.SetupTOTP).Methods("POST")
	totpAPI.HandleFunc("/enable", totpHandler.EnableTOTP).Methods("POST")
	totpAPI.HandleFunc("/disable", totpHandler.DisableTOTP).Methods("POST")
	totpAPI.HandleFunc("/status", totpHandler.GetStatus).Methods("GET")

	// Protected API routes - Monitoring (admin only)
	monitoringAPI := r.PathPrefix("/api/monitoring").Subrouter()
	monitoringAPI.Use(authMiddleware.Authenticate)
	monitoringAPI.HandleFunc("/stats", authMiddleware.RequireRole("admin")(http.HandlerFunc(monitoringHandler.GetStats)).ServeHTTP).Methods("GET")

	// WebSocket - live progress events
	r.HandleFunc("/ws/progress", hub.HandleWebSocket)

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
