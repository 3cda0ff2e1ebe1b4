package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/amrit073/NEPGA/configs"
	"github.com/amrit073/NEPGA/metrics"
	"github.com/amrit073/NEPGA/middlewares"
	"github.com/amrit073/NEPGA/repository"
	"github.com/amrit073/NEPGA/routes"
	"github.com/amrit073/NEPGA/services"
	"github.com/amrit073/NEPGA/utils"
	"github.com/amrit073/NEPGA/ws"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func main() {
	root := &cobra.Command{
		Use:          "npega",
		Short:        "Passport application backend",
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Migrate the database and start the HTTP server",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Migrate the database schema and exit",
			RunE:  runMigrate,
		},
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := configs.LoadConfig()
	if err != nil {
		return err
	}
	log := configs.NewLogger(cfg)

	db, err := configs.OpenDB(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := configs.CloseDB(db); err != nil {
			log.WithError(err).Error("close database")
		}
	}()

	if err := configs.SetupDatabase(db); err != nil {
		return err
	}
	log.Info("schema migrated")
	return nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := configs.LoadConfig()
	if err != nil {
		return err
	}
	log := configs.NewLogger(cfg)

	// DB
	db, err := configs.OpenDB(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := configs.CloseDB(db); err != nil {
			log.WithError(err).Error("close database")
		}
	}()
	if err := configs.SetupDatabase(db); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	hub := ws.NewStatusHub(cfg.AllowedOrigins(), log)
	go hub.Run(ctx)

	authority := utils.NewTokenAuthority(utils.TokenAuthorityConfig{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		TTL:      cfg.JWTTTL,
	}, clock)

	apps := services.NewApplicationService(
		repository.NewApplicationRepository(db),
		services.NewLifecycle(cfg.StrictStatusTransitions),
		clock,
		hub, m,
	)

	pages, err := utils.NewPageResolver(cfg.PublicDir)
	if err != nil {
		return err
	}
	log.WithField("pages", pages.Names()).Debug("page allow-list loaded")

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Log:            log,
		Authority:      authority,
		Applications:   apps,
		Pages:          pages,
		Hub:            hub,
		Metrics:        m,
		Gatherer:       reg,
		SubmitLimiter:  middlewares.NewIPRateLimiter(cfg.SubmitRatePerSec, cfg.SubmitBurst, clock),
		AllowedOrigins: cfg.AllowedOrigins(),
		StaticDir:      filepath.Join(cfg.PublicDir, "static"),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
		return err
	}
	return nil
}
