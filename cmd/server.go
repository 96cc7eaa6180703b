package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/rosterhub/roster-backend/api"
	"github.com/rosterhub/roster-backend/infra"
	"github.com/rosterhub/roster-backend/repositories"
	"github.com/rosterhub/roster-backend/usecases"
	"github.com/rosterhub/roster-backend/utils"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:            utils.GetEnv("ENV", "development"),
		AppName:        "roster-backend",
		Port:           utils.GetRequiredEnv[string]("PORT"),
		ClientAppUrl:   utils.GetEnv("CLIENT_APP_URL", ""),
		DefaultTimeout: time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 15)) * time.Second,
	}
	pgConfig := infra.PgConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           "roster",
		Hostname:           utils.GetEnv("PG_HOSTNAME", ""),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", ""),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
	serverConfig := struct {
		loggingFormat           string
		sentryDsn               string
		globalAdminEmail        string
		enforceUniqueAssignment bool
	}{
		loggingFormat:           utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:               utils.GetEnv("SENTRY_DSN", ""),
		globalAdminEmail:        utils.GetEnv("CREATE_GLOBAL_ADMIN_EMAIL", ""),
		enforceUniqueAssignment: utils.GetEnv("ENFORCE_UNIQUE_ASSIGNMENT", false),
	}

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	infra.SetupSentry(serverConfig.sentryDsn, apiConfig.Env)
	defer sentry.Flush(3 * time.Second)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		pgConfig.MaxPoolConnections)
	if err != nil {
		return err
	}

	repos := repositories.NewRepositories(pool)
	uc := usecases.NewUsecases(repos,
		usecases.WithEnforceUniqueAssignment(serverConfig.enforceUniqueAssignment),
	)

	if serverConfig.globalAdminEmail != "" {
		seedUsecase := uc.NewSeedUseCase()
		if err := seedUsecase.SeedGlobalAdmin(ctx, serverConfig.globalAdminEmail); err != nil {
			return err
		}
	}

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "error while serving the app", "error", err.Error())
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "error while shutting down the server")
	}
	return nil
}
