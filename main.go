package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "ebus/internal/config"
	"ebus/internal/domain/models"
	router "ebus/internal/http"
	"ebus/internal/repositories"
	"ebus/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	client := intconfig.ConnectDB(env.MongoURI)
	defer intconfig.CloseDB()

	db := client.Database(env.MongoDB)
	deps := router.Deps{
		Routes:   repositories.NewMongoRouteRepo(db),
		Bookings: repositories.NewMongoBookingRepo(db),
		Users:    repositories.NewMongoUserRepo(db),
	}

	// Seed the catalog before accepting traffic so no request can race
	// an empty catalog.
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	catalog := services.CatalogService{Routes: deps.Routes}
	if err := catalog.SeedIfEmpty(seedCtx, models.DefaultRoutes); err != nil {
		log.Fatalf("failed to seed route catalog: %v", err)
	}
	cancelSeed()

	r := router.NewRouter(env, deps)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening at http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}
