package cmd

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/caseflow-kz/caseflow-backend/infra"
	"github.com/caseflow-kz/caseflow-backend/utils"
)

// RunSweeps runs every reminder sweep once and exits. Meant for external
// schedulers such as Cloud Scheduler or a systemd timer.
func RunSweeps() error {
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

	summaries, err := uc.NewSweepUsecase().RunAllSweeps(ctx)
	for _, summary := range summaries {
		logger.InfoContext(ctx, "sweep finished", summary.LogAttrs()...)
	}
	return err
}
