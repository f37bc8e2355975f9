package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/caseflow-kz/caseflow-backend/models"
	"github.com/caseflow-kz/caseflow-backend/repositories"
)

type CaseRepository struct {
	mock.Mock
}

func (r *CaseRepository) GetCaseById(ctx context.Context, exec repositories.Executor, caseId string) (models.Case, error) {
	args := r.Called(exec, caseId)
	return args.Get(0).(models.Case), args.Error(1)
}

func (r *CaseRepository) ListCases(ctx context.Context, exec repositories.Executor, filters models.CaseFilters) ([]models.Case, error) {
	args := r.Called(exec, filters)
	return args.Get(0).([]models.Case), args.Error(1)
}

func (r *CaseRepository) CreateCase(ctx context.Context, exec repositories.Executor, newCaseId string, c models.Case) error {
	args := r.Called(exec, newCaseId, c)
	return args.Error(0)
}

func (r *CaseRepository) UpdateCaseFields(ctx context.Context, exec repositories.Executor, caseId string, updates models.UpdateCaseFields) error {
	args := r.Called(exec, caseId, updates)
	return args.Error(0)
}

func (r *CaseRepository) GetUserById(ctx context.Context, exec repositories.Executor, userId string) (models.User, error) {
	args := r.Called(exec, userId)
	return args.Get(0).(models.User), args.Error(1)
}

func (r *CaseRepository) ListCasesWithCheckDeadlineDue(ctx context.Context, exec repositories.Executor, now time.Time) ([]models.Case, error) {
	args := r.Called(exec, now)
	return args.Get(0).([]models.Case), args.Error(1)
}

func (r *CaseRepository) ListCasesWithHearingBetween(ctx context.Context, exec repositories.Executor, start, end time.Time) ([]models.Case, error) {
	args := r.Called(exec, start, end)
	return args.Get(0).([]models.Case), args.Error(1)
}

func (r *CaseRepository) ListCasesWithAppealDeadlineBetween(ctx context.Context, exec repositories.Executor, start, end time.Time) ([]models.Case, error) {
	args := r.Called(exec, start, end)
	return args.Get(0).([]models.Case), args.Error(1)
}

func (r *CaseRepository) ListCasesWithCaseEndBetween(ctx context.Context, exec repositories.Executor, start, end time.Time) ([]models.Case, error) {
	args := r.Called(exec, start, end)
	return args.Get(0).([]models.Case), args.Error(1)
}

func (r *CaseRepository) MarkNotificationSent(ctx context.Context, exec repositories.Executor, caseId string, key models.ReminderKey, sentAt time.Time) (bool, error) {
	args := r.Called(exec, caseId, key, sentAt)
	return args.Bool(0), args.Error(1)
}

func (r *CaseRepository) ClearNotification(ctx context.Context, exec repositories.Executor, caseId string, key models.ReminderKey) error {
	args := r.Called(exec, caseId, key)
	return args.Error(0)
}
