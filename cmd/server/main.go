package main

import (
	"context"
	"log"
	"net/http"

	"bookstore-be/internal/api"
	"bookstore-be/internal/book"
	"bookstore-be/internal/config"
	"bookstore-be/internal/db"
	"bookstore-be/internal/insights"
	"bookstore-be/internal/logger"
	"bookstore-be/internal/metrics"
	"bookstore-be/internal/middleware"
	"bookstore-be/internal/order"
	"bookstore-be/internal/report"
	"bookstore-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	userRepo := user.NewRepository(database)
	if err := userRepo.Init(context.Background()); err != nil {
		log.Fatalf("Failed to create accounts table: %v", err)
	}
	userSvc := user.NewService(userRepo)

	bookRepo := book.NewRepository(database)
	bookSvc := book.NewService(bookRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	reportRepo := report.NewRepository(database)
	reportSvc := report.NewService(reportRepo)

	insightsSvc := insights.NewService(bookRepo, reportRepo)

	reg := metrics.NewRegistry()

	h := api.NewHandler(bookSvc, orderSvc, reportSvc, insightsSvc, userSvc, reg)

	var handler http.Handler = h.Routes()
	handler = middleware.RateLimitMiddleware(handler)
	handler = middleware.AuthMiddleware(handler)
	handler = middleware.MetricsMiddleware(reg)(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)

	log.Printf("📚 Bookstore backend running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, handler))
}
