package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"

	"github.com/caseflow-kz/caseflow-backend/api"
	"github.com/caseflow-kz/caseflow-backend/infra"
	"github.com/caseflow-kz/caseflow-backend/utils"
)

func RunServer() error {
	conf := readCommonConfig()
	apiConfig := api.Configuration{
		Env:            conf.env,
		Port:           utils.GetRequiredEnv[string]("PORT"),
		AllowedOrigins: splitOrigins(utils.GetEnv("ALLOWED_ORIGINS", "")),
		RequestTimeout: time.Duration(utils.GetEnv("REQUEST_TIMEOUT_SECOND", 10)) * time.Second,
	}

	logger := utils.NewLogger(conf.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	infra.SetupSentry(conf.sentryDsn, conf.env)
	defer sentry.Flush(3 * time.Second)

	uc, pool, err := setupUsecases(ctx, conf)
	if err != nil {
		return err
	}
	defer pool.Close()

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", "port", apiConfig.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "error serving the app", "error", err.Error())
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	origins := strings.Split(raw, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}
