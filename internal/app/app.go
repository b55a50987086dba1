// Package app wires configuration, storage, services and the HTTP server
// together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/centralring-backend/internal/adapter/postgres"
	"github.com/heartmarshall/centralring-backend/internal/adapter/postgres/entity"
	"github.com/heartmarshall/centralring-backend/internal/adapter/postgres/entitytype"
	"github.com/heartmarshall/centralring-backend/internal/adapter/postgres/otpcode"
	"github.com/heartmarshall/centralring-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/centralring-backend/internal/adapter/provider/email"
	"github.com/heartmarshall/centralring-backend/internal/adapter/provider/supabase"
	"github.com/heartmarshall/centralring-backend/internal/adapter/redis"
	"github.com/heartmarshall/centralring-backend/internal/auth"
	"github.com/heartmarshall/centralring-backend/internal/config"
	"github.com/heartmarshall/centralring-backend/internal/domain"
	authsvc "github.com/heartmarshall/centralring-backend/internal/service/auth"
	"github.com/heartmarshall/centralring-backend/internal/service/catalog"
	"github.com/heartmarshall/centralring-backend/internal/service/interaction"
	"github.com/heartmarshall/centralring-backend/internal/service/marketplace"
	"github.com/heartmarshall/centralring-backend/internal/transport/dataloader"
	"github.com/heartmarshall/centralring-backend/internal/transport/middleware"
	"github.com/heartmarshall/centralring-backend/internal/transport/rest"
)

const rateLimiterCleanup = time.Minute

// otpStore is what the auth service and the health check need from either
// OTP backend.
type otpStore interface {
	Save(ctx context.Context, code *domain.OTPCode) error
	Get(ctx context.Context, email string) (*domain.OTPCode, error)
	IncrementAttempts(ctx context.Context, email string) (int, error)
	Delete(ctx context.Context, email string) error
}

// Run loads configuration, connects to the database and serves HTTP until
// ctx is cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("otp_backend", cfg.OTPStore.Backend),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	otps, checks, closeOTP, err := newOTPStore(ctx, cfg.OTPStore, pool)
	if err != nil {
		return err
	}
	defer closeOTP()

	mailer, err := email.NewMailer(cfg.Email.ResendAPIKey, cfg.Email.From, cfg.Email.BaseURL, logger)
	if err != nil {
		return err
	}

	var (
		types    = entitytype.New(pool)
		entities = entity.New(pool)
		users    = user.New(pool)
		jwt      = auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	)

	catalogSvc := catalog.NewService(logger, types, entities, postgres.NewTxManager(pool))
	interactionSvc := interaction.NewService(logger, entities)
	marketplaceSvc := marketplace.NewService(logger, entities)
	authService := authsvc.NewService(logger, otps, users, mailer, jwt, cfg.Auth)

	var metrics *middleware.Metrics
	if cfg.Server.MetricsEnabled {
		metrics = middleware.NewMetrics()
	}

	var rateLimit middleware.Middleware
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, rateLimiterCleanup)
		defer limiter.Stop()
		rateLimit = limiter.Limit()
	}

	router := rest.NewRouter(rest.RouterDeps{
		Health:      rest.NewHealthHandler(BuildVersion(), append([]rest.Check{{Name: "database", Pinger: pool}}, checks...)...),
		Auth:        rest.NewAuthHandler(authService, logger),
		Catalog:     rest.NewCatalogHandler(catalogSvc, logger),
		Interaction: rest.NewInteractionHandler(interactionSvc, logger),
		Marketplace: rest.NewMarketplaceHandler(marketplaceSvc, logger),
		Loaders:     &dataloader.Repos{EntityType: types},
		Metrics:     metrics,
		RateLimit:   rateLimit,
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(newVerifierChain(cfg.Auth, jwt, logger), logger),
		middleware.Logger(logger),
	)(http.MaxBytesHandler(router, cfg.Server.MaxBodyBytes))

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done or the listener fails.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// newOTPStore returns the configured OTP backend, the extra health checks
// it needs and a release function.
func newOTPStore(ctx context.Context, cfg config.OTPStoreConfig, pool *pgxpool.Pool) (otpStore, []rest.Check, func(), error) {
	if cfg.Backend != config.OTPBackendRedis {
		return otpcode.New(pool), nil, func() {}, nil
	}

	client, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, nil, err
	}
	store := redis.NewOTPStore(client, cfg.KeyPrefix)
	closeFn := func() { _ = client.Close() }
	return store, []rest.Check{{Name: "otp_store", Pinger: store}}, closeFn, nil
}

// newVerifierChain orders credential verifiers from cheapest to most
// expensive: tokens this service issued, locally verifiable Supabase
// tokens, then the Supabase user endpoint.
func newVerifierChain(cfg config.AuthConfig, jwt *auth.JWTManager, logger *slog.Logger) auth.Chain {
	verifiers := []auth.Verifier{jwt}
	if cfg.SupabaseJWTEnabled() {
		verifiers = append(verifiers, auth.NewSupabaseJWTVerifier(cfg.SupabaseJWTSecret))
	}
	if cfg.SupabaseRemoteEnabled() {
		verifiers = append(verifiers, supabase.NewVerifier(cfg.SupabaseURL, cfg.SupabaseAnonKey, logger))
	}
	return auth.NewChain(verifiers...)
}
