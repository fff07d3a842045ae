package main

import (
	"context"
	crypto_rand "crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/epsalud/eps-api/internal/config"
	"github.com/epsalud/eps-api/internal/domain/aseguramiento"
	"github.com/epsalud/eps-api/internal/domain/catalogo"
	"github.com/epsalud/eps-api/internal/domain/citas"
	"github.com/epsalud/eps-api/internal/domain/directorio"
	"github.com/epsalud/eps-api/internal/domain/facturacion"
	"github.com/epsalud/eps-api/internal/domain/farmacia"
	"github.com/epsalud/eps-api/internal/domain/laboratorio"
	"github.com/epsalud/eps-api/internal/domain/pacientes"
	"github.com/epsalud/eps-api/internal/domain/reportes"
	"github.com/epsalud/eps-api/internal/domain/usuarios"
	"github.com/epsalud/eps-api/internal/platform/auth"
	"github.com/epsalud/eps-api/internal/platform/db"
	"github.com/epsalud/eps-api/internal/platform/middleware"
	"github.com/epsalud/eps-api/internal/platform/seed"
	"github.com/epsalud/eps-api/internal/platform/validation"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "eps-server",
		Short: "API de administración EPS",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the development fixture (wipes existing data)",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			return seed.New(pool, logger).Run(ctx)
		},
	}
}

// resolveTokenSecret returns the configured token secret, or generates a
// random one in development so the server can run without configuration.
// Tokens signed with a generated secret do not survive a restart.
func resolveTokenSecret(cfg *config.Config, logger zerolog.Logger) ([]byte, error) {
	if cfg.TokenSecret != "" {
		return []byte(cfg.TokenSecret), nil
	}
	key := make([]byte, 32)
	if _, err := crypto_rand.Read(key); err != nil {
		return nil, fmt.Errorf("generating token secret: %w", err)
	}
	logger.Warn().Msg("TOKEN_SECRET not set, using a random secret for this run")
	return []byte(hex.EncodeToString(key)), nil
}

func runServer() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	secret, err := resolveTokenSecret(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to resolve token secret")
	}
	issuer := auth.NewIssuer(secret, cfg.TokenTTL(), auth.NewPGTokenStore(pool))
	val := validation.NewEngine(db.NewChecker(pool))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	e.Use(middleware.RateLimit(rateLimitCfg))

	// Route tiers: public → authenticated user → admin → superadmin.
	// An admin token passes user gates and a superadmin token passes both.
	public := e.Group("")
	user := e.Group("", auth.Middleware(issuer))
	admin := user.Group("", auth.RequireRole(auth.RoleAdmin))
	superadmin := user.Group("", auth.RequireRole(auth.RoleSuperAdmin))

	catalogo.NewHandler(
		catalogo.NewCiudadService(catalogo.NewCiudadRepoPG(pool), val),
		catalogo.NewEspecialidadService(catalogo.NewEspecialidadRepoPG(pool), val),
	).RegisterRoutes(public, admin)

	directorio.NewHandler(
		directorio.NewMedicoService(directorio.NewMedicoRepoPG(pool), val),
		directorio.NewConsultorioService(directorio.NewConsultorioRepoPG(pool), val),
		directorio.NewHorarioService(directorio.NewHorarioRepoPG(pool), val),
	).RegisterRoutes(admin)

	pacientes.NewHandler(
		pacientes.NewPacienteService(pacientes.NewPacienteRepoPG(pool), val),
		pacientes.NewHistoriaClinicaService(pacientes.NewHistoriaClinicaRepoPG(pool), val),
	).RegisterRoutes(admin)

	citas.NewHandler(
		citas.NewCitaService(citas.NewCitaRepoPG(pool), val),
		citas.NewConsultaMedicaService(citas.NewConsultaMedicaRepoPG(pool), val),
	).RegisterRoutes(user, admin)

	aseguramiento.NewHandler(
		aseguramiento.NewAseguradoraService(aseguramiento.NewAseguradoraRepoPG(pool), val),
		aseguramiento.NewAfiliacionService(aseguramiento.NewAfiliacionRepoPG(pool), val),
	).RegisterRoutes(admin)

	farmacia.NewHandler(
		farmacia.NewMedicamentoService(farmacia.NewMedicamentoRepoPG(pool), val),
		farmacia.NewRecetaMedicaService(farmacia.NewRecetaMedicaRepoPG(pool), val),
	).RegisterRoutes(admin)

	laboratorio.NewHandler(
		laboratorio.NewLaboratorioService(laboratorio.NewLaboratorioRepoPG(pool), val),
		laboratorio.NewExamenMedicoService(laboratorio.NewExamenMedicoRepoPG(pool), val),
		laboratorio.NewOrdenExamenService(laboratorio.NewOrdenExamenRepoPG(pool), val),
	).RegisterRoutes(admin)

	facturacion.NewHandler(
		facturacion.NewFacturaService(facturacion.NewFacturaRepoPG(pool), val),
		facturacion.NewPagoService(facturacion.NewPagoRepoPG(pool), val),
	).RegisterRoutes(admin)

	reportes.NewHandler(reportes.NewRepoPG(pool)).RegisterRoutes(user)

	usuarios.NewHandler(
		usuarios.NewService(usuarios.NewUserRepoPG(pool), issuer, val),
	).RegisterRoutes(public, user, superadmin)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
