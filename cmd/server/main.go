package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/hellok1tta/bakery-shop/internal/config"
	"github.com/hellok1tta/bakery-shop/internal/db"
	"github.com/hellok1tta/bakery-shop/internal/handlers"
	"github.com/hellok1tta/bakery-shop/internal/httpserver"
	"github.com/hellok1tta/bakery-shop/internal/logging"
	"github.com/hellok1tta/bakery-shop/internal/middleware"
	"github.com/hellok1tta/bakery-shop/internal/store"
)

func main() {
	cfg := config.Load()
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel)

	gdb, err := db.Open(context.Background(), cfg.DatabaseURL, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Ошибка инициализации БД: %v", err)
	}

	st := store.New(gdb)

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover(), echomw.RequestID(), echomw.CORS())
	e.Use(logging.RequestLogger(logger))

	deps := httpserver.Deps{
		DB:             gdb,
		AuthHandler:    &handlers.AuthHandler{Store: st, JWTSecret: cfg.JWTSecret},
		CatalogHandler: &handlers.CatalogHandler{Store: st},
		OrderHandler:   &handlers.OrderHandler{Store: st},
		ReviewHandler:  &handlers.ReviewHandler{Store: st},
		Auth:           middleware.NewBearerAuth(cfg.JWTSecret),
		StaticDir:      cfg.StaticDir,
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := gdb.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	logger.Info("shutdown complete")
}
