package cmd

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/caseflow-kz/caseflow-backend/infra"
	"github.com/caseflow-kz/caseflow-backend/jobs"
	"github.com/caseflow-kz/caseflow-backend/utils"
)

func RunJobScheduler() error {
	conf := readCommonConfig()

	logger := utils.NewLogger(conf.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	infra.SetupSentry(conf.sentryDsn, conf.env)
	defer sentry.Flush(3 * time.Second)

	uc, pool, err := setupUsecases(ctx, conf)
	if err != nil {
		return err
	}
	defer pool.Close()

	logger.InfoContext(ctx, "starting job scheduler", "timezone", conf.timezone)
	jobs.RunScheduler(ctx, uc, conf.timezone)
	return nil
}
