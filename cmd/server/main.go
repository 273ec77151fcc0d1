package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/malarharish/catalog-api/internal/config"
	"github.com/malarharish/catalog-api/internal/events"
	"github.com/malarharish/catalog-api/internal/graph"
	"github.com/malarharish/catalog-api/internal/logging"
	"github.com/malarharish/catalog-api/internal/search"
	"github.com/malarharish/catalog-api/internal/store"
	"github.com/malarharish/catalog-api/internal/token"
	httpserver "github.com/malarharish/catalog-api/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := store.Connect(ctx, configuration.MONGO_URI, configuration.MONGO_DB)
	cancel()
	if err != nil {
		log.Fatalf("mongo init error: %v", err)
	}
	logger.Info("MongoDB connected", "database", configuration.MONGO_DB)

	productStore := store.NewProductStore(db)
	userStore := store.NewUserStore(db)

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	err = userStore.EnsureIndexes(ctx)
	cancel()
	if err != nil {
		log.Fatalf("mongo index error: %v", err)
	}

	var producer *events.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = events.NewProducer(configuration.KAFKA_ADDRESS)
		logger.Info("Kafka producer ready", "address", configuration.KAFKA_ADDRESS)
	}

	var searchClient *search.Client
	if configuration.ES_URL != "" {
		searchClient, err = search.NewClient(configuration)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		logger.Info("Elasticsearch connected", "url", configuration.ES_URL)
	}

	resolver := &graph.Resolver{
		Store:    productStore,
		Users:    userStore,
		Tokens:   &token.Service{Secret: []byte(configuration.JWT_SECRET)},
		Producer: producer,
		Search:   searchClient,
	}
	schema := graph.MustParseSchema(resolver)

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(httpserver.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{Schema: schema})

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()
	logger.Info("Server running", "port", configuration.PORT)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if err := db.Client().Disconnect(ctx); err != nil {
		log.Printf("mongo disconnect error: %v", err)
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Printf("kafka close error: %v", err)
		}
	}

	logger.Info("shutdown complete")
}
