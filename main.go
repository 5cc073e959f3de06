package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CorrelAid/form_intake/handlers"
	"github.com/CorrelAid/form_intake/inits"
	"github.com/CorrelAid/form_intake/logger"
	"github.com/CorrelAid/form_intake/metrics"
	"github.com/CorrelAid/form_intake/middleware"
	"github.com/CorrelAid/form_intake/models"
	"github.com/CorrelAid/form_intake/operations"
	"github.com/CorrelAid/form_intake/repository"
	"github.com/CorrelAid/form_intake/routines"
	"github.com/CorrelAid/form_intake/templates"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	envFile := flag.String("env", ".env", "path to an optional env file")
	flag.Parse()

	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := inits.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	leadSvc, feedbackSvc, ping, closeStore, err := buildServices(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer closeStore()

	router, err := newRouter(cfg, leadSvc, feedbackSvc, ping)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("Starting server", "addr", srv.Addr, "store_driver", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("Server forced to shut down", "error", err)
	}
}

// buildServices opens the configured store and returns the persistence
// services, a health probe and a close function.
func buildServices(cfg *inits.Config) (*operations.LeadService, *operations.FeedbackService, handlers.PingFunc, func(), error) {
	switch cfg.StoreDriver {
	case inits.DriverPostgres:
		db, err := inits.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, nil, nil, err
		}
		leads := operations.NewLeadService(repository.NewGormStore[models.Lead](db, models.Lead{}.TableName()))
		feedback := operations.NewFeedbackService(repository.NewGormStore[models.Feedback](db, models.Feedback{}.TableName()))
		closeFn := func() {
			if err := sqlDB.Close(); err != nil {
				logger.GetLogger().Warnw("Failed to close database", "error", err)
			}
		}
		return leads, feedback, sqlDB.PingContext, closeFn, nil
	default:
		db, err := inits.NewMemDB()
		if err != nil {
			return nil, nil, nil, nil, err
		}
		leads := operations.NewLeadService(repository.NewMemStore[models.Lead](db, inits.LeadTable))
		feedback := operations.NewFeedbackService(repository.NewMemStore[models.Feedback](db, inits.FeedbackTable))
		ping := func(ctx context.Context) error { return ctx.Err() }

		ctx, cancel := context.WithCancel(context.Background())
		go routines.StartSummaryRoutine(ctx, db, cfg.SummaryInterval, inits.LeadTable, inits.FeedbackTable)
		return leads, feedback, ping, cancel, nil
	}
}

func newRouter(cfg *inits.Config, leads handlers.LeadSaver, feedback handlers.FeedbackSaver, ping handlers.PingFunc) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.New(reg)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestIDMiddleware(), middleware.AccessLogMiddleware(logger.GetLogger()), middleware.ErrorHandler())
	router.SetHTMLTemplate(tmpl)

	router.GET("/healthz", handlers.NewHealthHandler(ping).Check)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	forms := router.Group("/", middleware.DomainWhitelistMiddleware(cfg.AllowedHosts))
	handlers.NewFormsHandler(handlers.NewDispatcher(leads, feedback), collector).RegisterRoutes(forms,
		middleware.BodyLimitMiddleware(cfg.MaxFormBytes),
		middleware.RateLimitMiddleware(cfg.RateLimitPerMinute))

	return router, nil
}
