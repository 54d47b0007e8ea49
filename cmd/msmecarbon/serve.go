package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"msme-carbon/internal/database"
	"msme-carbon/internal/handlers"
	"msme-carbon/internal/middleware"
	"msme-carbon/internal/models"
	"msme-carbon/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// rateLimiterSweepInterval is how often idle rate limiter visitors are evicted
const rateLimiterSweepInterval = time.Minute

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the classification HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	db, err := a.openIndicatorDB(ctx)
	if err != nil {
		return err
	}
	defer closeDB(db, a.logger)

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	classificationLogger := services.NewClassificationLogger(a.logger)

	stack, err := a.buildStack(ctx, db, metrics, classificationLogger)
	if err != nil {
		return err
	}

	e := a.newServer(stack, db, prometheus.DefaultRegisterer)

	limiter := middleware.NewRateLimiter(float64(a.cfg.Security.RateLimitPerSecond), a.cfg.Security.RateLimitBurst)
	e.Use(limiter.Middleware())
	go limiter.Run(ctx, rateLimiterSweepInterval)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("starting server", "address", a.cfg.Server.Address(), "environment", a.cfg.Server.Environment)
		if err := e.Start(a.cfg.Server.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// newServer builds the echo instance with every route and middleware except rate limiting
func (a *app) newServer(stack *classifierStack, db *database.DB, reg prometheus.Registerer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = a.cfg.Server.ReadTimeout
	e.Server.WriteTimeout = a.cfg.Server.WriteTimeout

	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(reg, a.logger).Handle

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(reg, a.logger))
	e.Use(middleware.SecurityHeaders(a.cfg.IsProduction()))
	e.Use(echomw.BodyLimit(a.cfg.Security.MaxBodyBytes))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: a.cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))

	var gormDB *gorm.DB
	if db != nil {
		gormDB = db.DB
	}

	handlers.RegisterRoutes(e,
		handlers.NewIndustryHandler(stack.classifier, stack.assessor),
		handlers.NewHealthCheckHandler(gormDB, models.SectorCount),
	)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
