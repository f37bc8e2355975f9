package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/caseflow-kz/caseflow-backend/models"
	"github.com/caseflow-kz/caseflow-backend/repositories"
	"github.com/caseflow-kz/caseflow-backend/repositories/clock"
	"github.com/caseflow-kz/caseflow-backend/usecases/executor_factory"
	"github.com/caseflow-kz/caseflow-backend/usecases/notifications"
	"github.com/caseflow-kz/caseflow-backend/utils"
)

// The hour-before window is five minutes wide so a sweep running a little
// late still catches hearings scheduled exactly one hour out.
const hearingHourWindow = 5 * time.Minute

// Case end reminders look at most 20 days ahead; the exact-day match happens
// in memory against the day count.
const caseEndLookahead = 20

type sweepRepository interface {
	ListCasesWithCheckDeadlineDue(ctx context.Context, exec repositories.Executor, now time.Time) ([]models.Case, error)
	ListCasesWithHearingBetween(ctx context.Context, exec repositories.Executor, start, end time.Time) ([]models.Case, error)
	ListCasesWithAppealDeadlineBetween(ctx context.Context, exec repositories.Executor, start, end time.Time) ([]models.Case, error)
	ListCasesWithCaseEndBetween(ctx context.Context, exec repositories.Executor, start, end time.Time) ([]models.Case, error)
	MarkNotificationSent(ctx context.Context, exec repositories.Executor, caseId string, key models.ReminderKey, sentAt time.Time) (bool, error)
	ClearNotification(ctx context.Context, exec repositories.Executor, caseId string, key models.ReminderKey) error
}

type SweepSummary struct {
	Family  string
	Matched int
	Sent    int
	Skipped int
	Failed  int
}

func (s SweepSummary) LogAttrs() []any {
	return []any{
		slog.String("family", s.Family),
		slog.Int("matched", s.Matched),
		slog.Int("sent", s.Sent),
		slog.Int("skipped", s.Skipped),
		slog.Int("failed", s.Failed),
	}
}

// SweepUsecase implements the periodic scan-and-notify cycles. Every sweep is
// idempotent with respect to its own dedup logic: running it twice in the
// same window dispatches nothing the second time.
type SweepUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      sweepRepository
	notifier        Notifier
	clock           clock.Clock
	location        *time.Location
}

func (uc *SweepUsecase) now() time.Time {
	return uc.clock.Now().In(uc.location)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RunCheckDeadlineSweep reminds about submitted cases whose ruling check
// deadline has been reached.
func (uc *SweepUsecase) RunCheckDeadlineSweep(ctx context.Context) (SweepSummary, error) {
	summary := SweepSummary{Family: "check_deadline"}
	exec := uc.executorFactory.NewExecutor()

	cases, err := uc.repository.ListCasesWithCheckDeadlineDue(ctx, exec, uc.now())
	if err != nil {
		return summary, errors.Wrap(err, "error listing cases with check deadline due")
	}
	summary.Matched = len(cases)

	for _, c := range cases {
		uc.dispatchReminder(ctx, exec, c, models.ReminderCheckDeadline,
			notifications.CheckReminder(c, uc.location), &summary)
	}

	uc.logSummary(ctx, summary)
	return summary, nil
}

// RunHearingDaySweep reminds about hearings scheduled anywhere within
// tomorrow, in the configured timezone.
func (uc *SweepUsecase) RunHearingDaySweep(ctx context.Context) (SweepSummary, error) {
	summary := SweepSummary{Family: "hearing_day_before"}
	exec := uc.executorFactory.NewExecutor()

	tomorrowStart := startOfDay(uc.now()).AddDate(0, 0, 1)
	dayAfterStart := tomorrowStart.AddDate(0, 0, 1)

	cases, err := uc.repository.ListCasesWithHearingBetween(ctx, exec, tomorrowStart, dayAfterStart)
	if err != nil {
		return summary, errors.Wrap(err, "error listing cases with hearing tomorrow")
	}
	summary.Matched = len(cases)

	for _, c := range cases {
		uc.dispatchReminder(ctx, exec, c, models.ReminderHearingDayBefore,
			notifications.HearingReminder(c, models.ReminderHearingDayBefore, uc.location), &summary)
	}

	uc.logSummary(ctx, summary)
	return summary, nil
}

// RunHearingHourSweep reminds about hearings starting in one hour.
func (uc *SweepUsecase) RunHearingHourSweep(ctx context.Context) (SweepSummary, error) {
	summary := SweepSummary{Family: "hearing_hour_before"}
	exec := uc.executorFactory.NewExecutor()

	rangeStart := uc.now().Add(time.Hour)
	rangeEnd := rangeStart.Add(hearingHourWindow)

	cases, err := uc.repository.ListCasesWithHearingBetween(ctx, exec, rangeStart, rangeEnd)
	if err != nil {
		return summary, errors.Wrap(err, "error listing cases with hearing in one hour")
	}
	summary.Matched = len(cases)

	for _, c := range cases {
		uc.dispatchReminder(ctx, exec, c, models.ReminderHearingHourBefore,
			notifications.HearingReminder(c, models.ReminderHearingHourBefore, uc.location), &summary)
	}

	uc.logSummary(ctx, summary)
	return summary, nil
}

// RunAppealDeadlineSweep reminds about closed cases whose appeal filing
// deadline falls today or tomorrow.
func (uc *SweepUsecase) RunAppealDeadlineSweep(ctx context.Context) (SweepSummary, error) {
	summary := SweepSummary{Family: "appeal_deadline"}
	exec := uc.executorFactory.NewExecutor()

	todayStart := startOfDay(uc.now())
	tomorrowStart := todayStart.AddDate(0, 0, 1)

	cases, err := uc.repository.ListCasesWithAppealDeadlineBetween(ctx, exec, todayStart, tomorrowStart)
	if err != nil {
		return summary, errors.Wrap(err, "error listing cases with appeal deadline due")
	}
	summary.Matched = len(cases)

	for _, c := range cases {
		uc.dispatchReminder(ctx, exec, c, models.ReminderAppealDeadline,
			notifications.AppealReminder(c, uc.location), &summary)
	}

	uc.logSummary(ctx, summary)
	return summary, nil
}

// RunCaseEndSweep reminds about accepted cases approaching their statutory
// end date, at fixed lead times of 10, 5, 1 and 0 days. The day count is part
// of the reminder key, so each lead time fires independently.
func (uc *SweepUsecase) RunCaseEndSweep(ctx context.Context) (SweepSummary, error) {
	summary := SweepSummary{Family: "case_end"}
	exec := uc.executorFactory.NewExecutor()

	now := uc.now()
	todayStart := startOfDay(now)

	cases, err := uc.repository.ListCasesWithCaseEndBetween(ctx, exec,
		todayStart, todayStart.AddDate(0, 0, caseEndLookahead))
	if err != nil {
		return summary, errors.Wrap(err, "error listing cases approaching their end date")
	}

	for _, c := range cases {
		if c.CaseEndDate == nil {
			continue
		}
		daysLeft := models.DaysUntil(*c.CaseEndDate, now)
		key, due := models.CaseEndReminderKey(daysLeft)
		if !due {
			continue
		}
		summary.Matched++
		uc.dispatchReminder(ctx, exec, c, key,
			notifications.CaseEndReminder(c, daysLeft, uc.location), &summary)
	}

	uc.logSummary(ctx, summary)
	return summary, nil
}

// RunAllSweeps composes all five families for manual or operational
// invocation. A failure in one family never prevents the remaining families
// from running.
func (uc *SweepUsecase) RunAllSweeps(ctx context.Context) ([]SweepSummary, error) {
	sweeps := []func(context.Context) (SweepSummary, error){
		uc.RunCheckDeadlineSweep,
		uc.RunHearingDaySweep,
		uc.RunHearingHourSweep,
		uc.RunAppealDeadlineSweep,
		uc.RunCaseEndSweep,
	}

	summaries := make([]SweepSummary, 0, len(sweeps))
	var combinedErr error
	for _, sweep := range sweeps {
		summary, err := sweep(ctx)
		summaries = append(summaries, summary)
		if err != nil {
			combinedErr = errors.CombineErrors(combinedErr, err)
		}
	}
	return summaries, combinedErr
}

// dispatchReminder is the per-case critical section of every sweep: claim the
// (case, key) pair with a conditional write, then deliver. Losing the claim
// means another sweep got there first. A failed delivery releases the claim
// so the next tick retries it; any other per-case failure is logged and the
// sweep moves on.
func (uc *SweepUsecase) dispatchReminder(
	ctx context.Context,
	exec repositories.Executor,
	c models.Case,
	key models.ReminderKey,
	text string,
	summary *SweepSummary,
) {
	logger := utils.LoggerFromContext(ctx)

	if c.NotificationsSent.WasSent(key) {
		summary.Skipped++
		return
	}

	claimed, err := uc.repository.MarkNotificationSent(ctx, exec, c.Id, key, uc.clock.Now())
	if err != nil {
		summary.Failed++
		logger.ErrorContext(ctx, "failed to claim reminder",
			slog.String("case", c.Number), slog.String("reminder", key.String()),
			slog.String("error", err.Error()))
		return
	}
	if !claimed {
		summary.Skipped++
		return
	}

	if err := uc.notifier.SendMessage(ctx, c.Responsible.TelegramChatId, text); err != nil {
		summary.Failed++
		logger.ErrorContext(ctx, "reminder dispatch failed",
			slog.String("case", c.Number), slog.String("reminder", key.String()),
			slog.String("error", err.Error()))
		if clearErr := uc.repository.ClearNotification(ctx, exec, c.Id, key); clearErr != nil {
			logger.ErrorContext(ctx, "failed to release reminder claim",
				slog.String("case", c.Number), slog.String("reminder", key.String()),
				slog.String("error", clearErr.Error()))
		}
		return
	}

	summary.Sent++
	logger.InfoContext(ctx, fmt.Sprintf("Sent %s reminder for case %s", key, c.Number))
}

func (uc *SweepUsecase) logSummary(ctx context.Context, summary SweepSummary) {
	utils.LoggerFromContext(ctx).InfoContext(ctx, "sweep done", summary.LogAttrs()...)
}
