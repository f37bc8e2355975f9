package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/caseflow-kz/caseflow-backend/mocks"
	"github.com/caseflow-kz/caseflow-backend/models"
	"github.com/caseflow-kz/caseflow-backend/repositories/clock"
)

type SweepUsecaseTestSuite struct {
	suite.Suite
	repository      *mocks.CaseRepository
	executorFactory *mocks.ExecutorFactory
	executor        *mocks.Executor
	notifier        *mocks.Notifier
	clock           *clock.Mock

	now time.Time
}

func (suite *SweepUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.CaseRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)
	suite.notifier = new(mocks.Notifier)

	// Monday June 2nd 2025, 09:00 UTC
	suite.now = time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	suite.clock = clock.NewMock(suite.now)

	suite.executorFactory.Setup(suite.executor)
}

func (suite *SweepUsecaseTestSuite) makeUsecase() *SweepUsecase {
	return &SweepUsecase{
		executorFactory: suite.executorFactory,
		repository:      suite.repository,
		notifier:        suite.notifier,
		clock:           suite.clock,
		location:        time.UTC,
	}
}

func (suite *SweepUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.notifier.AssertExpectations(t)
}

func (suite *SweepUsecaseTestSuite) makeCase(id string, status models.CaseStatus) models.Case {
	return models.Case{
		Id:     id,
		Number: "2-1234/2025",
		Title:  "Иванов против ТОО Ромашка",
		Status: status,
		Responsible: models.User{
			Id:             "b7a1f8ce-0000-0000-0000-000000000001",
			Name:           "Айгерим",
			TelegramChatId: "chat-42",
		},
		FilingDate: suite.now.AddDate(0, 0, -14),
	}
}

func (suite *SweepUsecaseTestSuite) TestCheckDeadlineSweep_SendsAndClaims() {
	deadline := suite.now.AddDate(0, 0, -1)
	c := suite.makeCase("case-1", models.CaseSubmitted)
	c.CheckDeadline = &deadline

	suite.repository.On("ListCasesWithCheckDeadlineDue", suite.executor, suite.now).
		Return([]models.Case{c}, nil)
	suite.repository.On("MarkNotificationSent", suite.executor, "case-1",
		models.ReminderCheckDeadline, suite.now).Return(true, nil)
	suite.notifier.On("SendMessage", "chat-42", mock.AnythingOfType("string")).Return(nil)

	summary, err := suite.makeUsecase().RunCheckDeadlineSweep(context.Background())

	suite.NoError(err)
	suite.Equal(1, summary.Matched)
	suite.Equal(1, summary.Sent)
	suite.Equal(0, summary.Skipped)
	suite.Equal(0, summary.Failed)
	suite.AssertExpectations()
}

func (suite *SweepUsecaseTestSuite) TestCheckDeadlineSweep_AlreadySentIsSkipped() {
	deadline := suite.now.AddDate(0, 0, -1)
	c := suite.makeCase("case-1", models.CaseSubmitted)
	c.CheckDeadline = &deadline
	c.NotificationsSent = models.NotificationsSent{
		models.ReminderCheckDeadline: {Sent: true, SentAt: suite.now.Add(-time.Hour)},
	}

	suite.repository.On("ListCasesWithCheckDeadlineDue", suite.executor, suite.now).
		Return([]models.Case{c}, nil)

	summary, err := suite.makeUsecase().RunCheckDeadlineSweep(context.Background())

	suite.NoError(err)
	suite.Equal(1, summary.Matched)
	suite.Equal(0, summary.Sent)
	suite.Equal(1, summary.Skipped)
	suite.notifier.AssertNotCalled(suite.T(), "SendMessage", mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *SweepUsecaseTestSuite) TestDispatch_LostClaimMeansNoSend() {
	deadline := suite.now.AddDate(0, 0, -1)
	c := suite.makeCase("case-1", models.CaseSubmitted)
	c.CheckDeadline = &deadline

	suite.repository.On("ListCasesWithCheckDeadlineDue", suite.executor, suite.now).
		Return([]models.Case{c}, nil)
	// another process claimed the reminder between listing and marking
	suite.repository.On("MarkNotificationSent", suite.executor, "case-1",
		models.ReminderCheckDeadline, suite.now).Return(false, nil)

	summary, err := suite.makeUsecase().RunCheckDeadlineSweep(context.Background())

	suite.NoError(err)
	suite.Equal(1, summary.Skipped)
	suite.Equal(0, summary.Sent)
	suite.notifier.AssertNotCalled(suite.T(), "SendMessage", mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *SweepUsecaseTestSuite) TestDispatch_FailedSendReleasesClaim() {
	deadline := suite.now.AddDate(0, 0, -1)
	c := suite.makeCase("case-1", models.CaseSubmitted)
	c.CheckDeadline = &deadline

	suite.repository.On("ListCasesWithCheckDeadlineDue", suite.executor, suite.now).
		Return([]models.Case{c}, nil)
	suite.repository.On("MarkNotificationSent", suite.executor, "case-1",
		models.ReminderCheckDeadline, suite.now).Return(true, nil)
	suite.notifier.On("SendMessage", "chat-42", mock.AnythingOfType("string")).
		Return(errors.Wrap(models.DispatchFailureError, "telegram unavailable"))
	suite.repository.On("ClearNotification", suite.executor, "case-1",
		models.ReminderCheckDeadline).Return(nil)

	summary, err := suite.makeUsecase().RunCheckDeadlineSweep(context.Background())

	suite.NoError(err)
	suite.Equal(1, summary.Failed)
	suite.Equal(0, summary.Sent)
	suite.AssertExpectations()
}

func (suite *SweepUsecaseTestSuite) TestDispatch_OneFailureDoesNotStopOthers() {
	deadline := suite.now.AddDate(0, 0, -1)
	failing := suite.makeCase("case-1", models.CaseSubmitted)
	failing.CheckDeadline = &deadline
	healthy := suite.makeCase("case-2", models.CaseSubmitted)
	healthy.CheckDeadline = &deadline
	healthy.Responsible.TelegramChatId = "chat-43"

	suite.repository.On("ListCasesWithCheckDeadlineDue", suite.executor, suite.now).
		Return([]models.Case{failing, healthy}, nil)
	suite.repository.On("MarkNotificationSent", suite.executor, mock.Anything,
		models.ReminderCheckDeadline, suite.now).Return(true, nil)
	suite.notifier.On("SendMessage", "chat-42", mock.AnythingOfType("string")).
		Return(errors.Wrap(models.DispatchFailureError, "blocked by user"))
	suite.repository.On("ClearNotification", suite.executor, "case-1",
		models.ReminderCheckDeadline).Return(nil)
	suite.notifier.On("SendMessage", "chat-43", mock.AnythingOfType("string")).Return(nil)

	summary, err := suite.makeUsecase().RunCheckDeadlineSweep(context.Background())

	suite.NoError(err)
	suite.Equal(2, summary.Matched)
	suite.Equal(1, summary.Sent)
	suite.Equal(1, summary.Failed)
	suite.AssertExpectations()
}

func (suite *SweepUsecaseTestSuite) TestHearingDaySweep_WindowIsTomorrow() {
	tomorrowStart := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)
	dayAfterStart := time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC)

	hearing := time.Date(2025, time.June, 3, 14, 30, 0, 0, time.UTC)
	c := suite.makeCase("case-1", models.CaseAccepted)
	c.HearingDate = &hearing

	suite.repository.On("ListCasesWithHearingBetween", suite.executor,
		tomorrowStart, dayAfterStart).Return([]models.Case{c}, nil)
	suite.repository.On("MarkNotificationSent", suite.executor, "case-1",
		models.ReminderHearingDayBefore, suite.now).Return(true, nil)
	suite.notifier.On("SendMessage", "chat-42", mock.AnythingOfType("string")).Return(nil)

	summary, err := suite.makeUsecase().RunHearingDaySweep(context.Background())

	suite.NoError(err)
	suite.Equal(1, summary.Sent)
	suite.AssertExpectations()
}

func (suite *SweepUsecaseTestSuite) TestHearingHourSweep_WindowIsOneHourAhead() {
	rangeStart := suite.now.Add(time.Hour)
	rangeEnd := rangeStart.Add(5 * time.Minute)

	hearing := suite.now.Add(time.Hour + 2*time.Minute)
	c := suite.makeCase("case-1", models.CaseAccepted)
	c.HearingDate = &hearing

	suite.repository.On("ListCasesWithHearingBetween", suite.executor,
		rangeStart, rangeEnd).Return([]models.Case{c}, nil)
	suite.repository.On("MarkNotificationSent", suite.executor, "case-1",
		models.ReminderHearingHourBefore, suite.now).Return(true, nil)
	suite.notifier.On("SendMessage", "chat-42", mock.AnythingOfType("string")).Return(nil)

	summary, err := suite.makeUsecase().RunHearingHourSweep(context.Background())

	suite.NoError(err)
	suite.Equal(1, summary.Sent)
	suite.AssertExpectations()
}

func (suite *SweepUsecaseTestSuite) TestHearingSweeps_UseDistinctKeys() {
	hearing := suite.now.Add(time.Hour + time.Minute)
	c := suite.makeCase("case-1", models.CaseAccepted)
	c.HearingDate = &hearing
	// the day-before reminder already went out yesterday
	c.NotificationsSent = models.NotificationsSent{
		models.ReminderHearingDayBefore: {Sent: true, SentAt: suite.now.Add(-15 * time.Hour)},
	}

	suite.repository.On("ListCasesWithHearingBetween", suite.executor,
		mock.Anything, mock.Anything).Return([]models.Case{c}, nil)
	suite.repository.On("MarkNotificationSent", suite.executor, "case-1",
		models.ReminderHearingHourBefore, suite.now).Return(true, nil)
	suite.notifier.On("SendMessage", "chat-42", mock.AnythingOfType("string")).Return(nil)

	summary, err := suite.makeUsecase().RunHearingHourSweep(context.Background())

	suite.NoError(err)
	suite.Equal(1, summary.Sent)
	suite.AssertExpectations()
}

func (suite *SweepUsecaseTestSuite) TestAppealDeadlineSweep_WindowIsTodayAndTomorrow() {
	todayStart := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	tomorrowStart := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)

	appealDeadline := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC)
	c := suite.makeCase("case-1", models.CaseClosed)
	c.AppealDeadline = &appealDeadline

	suite.repository.On("ListCasesWithAppealDeadlineBetween", suite.executor,
		todayStart, tomorrowStart).Return([]models.Case{c}, nil)
	suite.repository.On("MarkNotificationSent", suite.executor, "case-1",
		models.ReminderAppealDeadline, suite.now).Return(true, nil)
	suite.notifier.On("SendMessage", "chat-42", mock.AnythingOfType("string")).Return(nil)

	summary, err := suite.makeUsecase().RunAppealDeadlineSweep(context.Background())

	suite.NoError(err)
	suite.Equal(1, summary.Sent)
	suite.AssertExpectations()
}

func (suite *SweepUsecaseTestSuite) TestCaseEndSweep_ExactLeadTimesOnly() {
	in10 := suite.now.AddDate(0, 0, 10)
	in7 := suite.now.AddDate(0, 0, 7)
	today := suite.now

	dueIn10 := suite.makeCase("case-10", models.CaseAccepted)
	dueIn10.CaseEndDate = &in10
	dueIn7 := suite.makeCase("case-7", models.CaseAccepted)
	dueIn7.CaseEndDate = &in7
	dueToday := suite.makeCase("case-0", models.CaseAccepted)
	dueToday.CaseEndDate = &today
	dueToday.Responsible.TelegramChatId = "chat-43"

	suite.repository.On("ListCasesWithCaseEndBetween", suite.executor,
		mock.Anything, mock.Anything).Return([]models.Case{dueIn10, dueIn7, dueToday}, nil)
	suite.repository.On("MarkNotificationSent", suite.executor, "case-10",
		models.ReminderCaseEnd10Days, suite.now).Return(true, nil)
	suite.repository.On("MarkNotificationSent", suite.executor, "case-0",
		models.ReminderCaseEndToday, suite.now).Return(true, nil)
	suite.notifier.On("SendMessage", "chat-42", mock.AnythingOfType("string")).Return(nil)
	suite.notifier.On("SendMessage", "chat-43", mock.AnythingOfType("string")).Return(nil)

	summary, err := suite.makeUsecase().RunCaseEndSweep(context.Background())

	suite.NoError(err)
	suite.Equal(2, summary.Matched)
	suite.Equal(2, summary.Sent)
	suite.AssertExpectations()
}

func (suite *SweepUsecaseTestSuite) TestCaseEndSweep_SecondRunSameDaySendsNothing() {
	in5 := suite.now.AddDate(0, 0, 5)
	c := suite.makeCase("case-5", models.CaseAccepted)
	c.CaseEndDate = &in5
	c.NotificationsSent = models.NotificationsSent{
		models.ReminderCaseEnd10Days: {Sent: true, SentAt: suite.now.AddDate(0, 0, -5)},
		models.ReminderCaseEnd5Days:  {Sent: true, SentAt: suite.now.Add(-time.Hour)},
	}

	suite.repository.On("ListCasesWithCaseEndBetween", suite.executor,
		mock.Anything, mock.Anything).Return([]models.Case{c}, nil)

	summary, err := suite.makeUsecase().RunCaseEndSweep(context.Background())

	suite.NoError(err)
	suite.Equal(1, summary.Matched)
	suite.Equal(0, summary.Sent)
	suite.Equal(1, summary.Skipped)
	suite.notifier.AssertNotCalled(suite.T(), "SendMessage", mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *SweepUsecaseTestSuite) TestRunAllSweeps_FailureInOneFamilyDoesNotStopTheRest() {
	listErr := errors.New("connection reset")

	suite.repository.On("ListCasesWithCheckDeadlineDue", suite.executor, suite.now).
		Return([]models.Case(nil), listErr)
	suite.repository.On("ListCasesWithHearingBetween", suite.executor,
		mock.Anything, mock.Anything).Return([]models.Case{}, nil)
	suite.repository.On("ListCasesWithAppealDeadlineBetween", suite.executor,
		mock.Anything, mock.Anything).Return([]models.Case{}, nil)
	suite.repository.On("ListCasesWithCaseEndBetween", suite.executor,
		mock.Anything, mock.Anything).Return([]models.Case{}, nil)

	summaries, err := suite.makeUsecase().RunAllSweeps(context.Background())

	suite.ErrorIs(err, listErr)
	suite.Len(summaries, 5)
	suite.AssertExpectations()
}

func TestSweepUsecase(t *testing.T) {
	suite.Run(t, new(SweepUsecaseTestSuite))
}
