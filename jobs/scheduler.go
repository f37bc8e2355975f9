package jobs

import (
	"context"

	"github.com/adhocore/gronx/pkg/tasker"

	"github.com/caseflow-kz/caseflow-backend/usecases"
	"github.com/caseflow-kz/caseflow-backend/utils"
)

func errToReturnCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}

// RunScheduler owns the registry of (cron expression, sweep) pairs. All five
// sweep families run on independent ticks; a family whose previous run is
// still in flight is skipped rather than run concurrently.
func RunScheduler(ctx context.Context, uc usecases.Usecases, tz string) {
	taskr := tasker.New(tasker.Option{
		Verbose: true,
		Tz:      tz,
	}).WithContext(ctx)

	notConcurrent := false

	// Weekday mornings: ruling check deadlines on submitted cases.
	taskr.Task("0 9 * * 1-5", func(ctx context.Context) (int, error) {
		err := runSweepJob(ctx, uc, "check_deadline_sweep",
			func(ctx context.Context, sweeps *usecases.SweepUsecase) error {
				_, err := sweeps.RunCheckDeadlineSweep(ctx)
				return err
			})
		return errToReturnCode(err), err
	}, notConcurrent)

	// Every evening: hearings scheduled for tomorrow.
	taskr.Task("0 18 * * *", func(ctx context.Context) (int, error) {
		err := runSweepJob(ctx, uc, "hearing_day_sweep",
			func(ctx context.Context, sweeps *usecases.SweepUsecase) error {
				_, err := sweeps.RunHearingDaySweep(ctx)
				return err
			})
		return errToReturnCode(err), err
	}, notConcurrent)

	// On the hour: hearings starting in sixty minutes.
	taskr.Task("0 * * * *", func(ctx context.Context) (int, error) {
		err := runSweepJob(ctx, uc, "hearing_hour_sweep",
			func(ctx context.Context, sweeps *usecases.SweepUsecase) error {
				_, err := sweeps.RunHearingHourSweep(ctx)
				return err
			})
		return errToReturnCode(err), err
	}, notConcurrent)

	// Every morning: appeal filing deadlines on closed cases.
	taskr.Task("0 10 * * *", func(ctx context.Context) (int, error) {
		err := runSweepJob(ctx, uc, "appeal_deadline_sweep",
			func(ctx context.Context, sweeps *usecases.SweepUsecase) error {
				_, err := sweeps.RunAppealDeadlineSweep(ctx)
				return err
			})
		return errToReturnCode(err), err
	}, notConcurrent)

	// Every morning: the case end reminder keys match an exact day count, so
	// the sweep has to run daily or the 5/1/0 day marks can be missed.
	taskr.Task("0 11 * * *", func(ctx context.Context) (int, error) {
		err := runSweepJob(ctx, uc, "case_end_sweep",
			func(ctx context.Context, sweeps *usecases.SweepUsecase) error {
				_, err := sweeps.RunCaseEndSweep(ctx)
				return err
			})
		return errToReturnCode(err), err
	}, notConcurrent)

	taskr.Run()
}

func runSweepJob(
	ctx context.Context,
	uc usecases.Usecases,
	jobName string,
	fn func(context.Context, *usecases.SweepUsecase) error,
) error {
	logger := utils.LoggerFromContext(ctx).With("job", jobName)
	ctx = utils.StoreLoggerInContext(ctx, logger)
	return executeWithMonitoring(ctx, jobName, func(ctx context.Context) error {
		return fn(ctx, uc.NewSweepUsecase())
	})
}
