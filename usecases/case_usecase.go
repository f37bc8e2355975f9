package usecases

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/caseflow-kz/caseflow-backend/models"
	"github.com/caseflow-kz/caseflow-backend/repositories"
	"github.com/caseflow-kz/caseflow-backend/repositories/clock"
	"github.com/caseflow-kz/caseflow-backend/usecases/executor_factory"
	"github.com/caseflow-kz/caseflow-backend/usecases/notifications"
	"github.com/caseflow-kz/caseflow-backend/utils"
)

type caseUsecaseRepository interface {
	GetCaseById(ctx context.Context, exec repositories.Executor, caseId string) (models.Case, error)
	ListCases(ctx context.Context, exec repositories.Executor, filters models.CaseFilters) ([]models.Case, error)
	CreateCase(ctx context.Context, exec repositories.Executor, newCaseId string, c models.Case) error
	UpdateCaseFields(ctx context.Context, exec repositories.Executor, caseId string, updates models.UpdateCaseFields) error
	GetUserById(ctx context.Context, exec repositories.Executor, userId string) (models.User, error)
}

type CaseUseCase struct {
	executorFactory    executor_factory.ExecutorFactory
	repository         caseUsecaseRepository
	notifier           Notifier
	clock              clock.Clock
	location           *time.Location
	onStatusTransition StatusTransitionHook
}

func (uc *CaseUseCase) CreateCase(ctx context.Context, attrs models.CreateCaseAttributes) (models.Case, error) {
	if attrs.Number == "" || attrs.Title == "" {
		return models.Case{}, errors.Wrap(models.BadParameterError, "case number and title are required")
	}
	if attrs.FilingDate.IsZero() {
		return models.Case{}, errors.Wrap(models.BadParameterError, "filing date is required")
	}

	newCaseId := uuid.NewString()
	err := uc.executorFactory.Transaction(ctx, func(tx repositories.Executor) error {
		responsible, err := uc.repository.GetUserById(ctx, tx, attrs.ResponsibleId)
		if errors.Is(err, models.NotFoundError) {
			return models.ErrUnknownResponsible
		}
		if err != nil {
			return err
		}

		newCase := models.Case{
			Number:      attrs.Number,
			Title:       attrs.Title,
			Description: attrs.Description,
			Status:      models.CaseSubmitted,
			Responsible: responsible,
			FilingDate:  attrs.FilingDate,
		}
		newCase, err = models.DeriveDeadlines(newCase, uc.clock.Now())
		if err != nil {
			return err
		}
		return uc.repository.CreateCase(ctx, tx, newCaseId, newCase)
	})
	if repositories.IsUniqueViolationError(err) {
		return models.Case{}, errors.Wrap(models.ConflictError, "a case with this number already exists")
	}
	if err != nil {
		return models.Case{}, err
	}

	return uc.repository.GetCaseById(ctx, uc.executorFactory.NewExecutor(), newCaseId)
}

func (uc *CaseUseCase) GetCase(ctx context.Context, caseId string) (models.Case, error) {
	return uc.repository.GetCaseById(ctx, uc.executorFactory.NewExecutor(), caseId)
}

func (uc *CaseUseCase) ListCases(ctx context.Context, filters models.CaseFilters) ([]models.Case, error) {
	return uc.repository.ListCases(ctx, uc.executorFactory.NewExecutor(), filters)
}

// UpdateCaseStatus moves a case to newStatus, reruns deadline derivation
// against the post-transition state and persists only the fields the
// derivation changed. The transition hook fires after commit with the old and
// new status values.
func (uc *CaseUseCase) UpdateCaseStatus(ctx context.Context, caseId string, newStatus models.CaseStatus) (models.Case, error) {
	if models.CaseStatusFrom(string(newStatus)) == models.CaseUnknownStatus {
		return models.Case{}, models.ErrUnknownCaseStatus
	}

	var updated models.Case
	var oldStatus models.CaseStatus
	err := uc.executorFactory.Transaction(ctx, func(tx repositories.Executor) error {
		c, err := uc.repository.GetCaseById(ctx, tx, caseId)
		if err != nil {
			return err
		}
		oldStatus = c.Status
		c.Status = newStatus

		derived, err := models.DeriveDeadlines(c, uc.clock.Now())
		if err != nil {
			return err
		}

		updates := deadlineUpdates(c, derived)
		updates.Status = &newStatus
		if err := uc.repository.UpdateCaseFields(ctx, tx, caseId, updates); err != nil {
			return err
		}
		updated = derived
		return nil
	})
	if err != nil {
		return models.Case{}, err
	}

	if uc.onStatusTransition != nil {
		uc.onStatusTransition(ctx, updated, oldStatus, newStatus)
	}
	return updated, nil
}

// SetHearing schedules the hearing of an accepted case. This is the one
// lifecycle precondition enforced by the core itself.
func (uc *CaseUseCase) SetHearing(ctx context.Context, caseId string, hearingDate time.Time) (models.Case, error) {
	var updated models.Case
	err := uc.executorFactory.Transaction(ctx, func(tx repositories.Executor) error {
		c, err := uc.repository.GetCaseById(ctx, tx, caseId)
		if err != nil {
			return err
		}
		if c.Status != models.CaseAccepted {
			return models.ErrHearingOnNonAcceptedCase
		}

		if err := uc.repository.UpdateCaseFields(ctx, tx, caseId, models.UpdateCaseFields{
			HearingDate: &hearingDate,
		}); err != nil {
			return err
		}
		c.HearingDate = &hearingDate
		updated = c
		return nil
	})
	return updated, err
}

// SetDecisionDate records the decision date and derives the appeal and
// decision deadlines from it.
func (uc *CaseUseCase) SetDecisionDate(ctx context.Context, caseId string, decisionDate time.Time) (models.Case, error) {
	var updated models.Case
	err := uc.executorFactory.Transaction(ctx, func(tx repositories.Executor) error {
		c, err := uc.repository.GetCaseById(ctx, tx, caseId)
		if err != nil {
			return err
		}
		c.DecisionDate = &decisionDate

		derived, err := models.DeriveDeadlines(c, uc.clock.Now())
		if err != nil {
			return err
		}

		updates := deadlineUpdates(c, derived)
		updates.DecisionDate = &decisionDate
		if err := uc.repository.UpdateCaseFields(ctx, tx, caseId, updates); err != nil {
			return err
		}
		updated = derived
		return nil
	})
	return updated, err
}

// BroadcastReturnedCase is the default status transition hook: when a case
// comes back as returned, its responsible party is told immediately. Failures
// are logged and dropped, per the fire and forget contract.
func BroadcastReturnedCase(notifier Notifier, loc *time.Location) StatusTransitionHook {
	return func(ctx context.Context, c models.Case, oldStatus, newStatus models.CaseStatus) {
		if newStatus != models.CaseReturned || oldStatus == models.CaseReturned {
			return
		}
		if err := notifier.SendMessage(ctx, c.Responsible.TelegramChatId,
			notifications.ReturnNotification(c, loc)); err != nil {
			utils.LoggerFromContext(ctx).ErrorContext(ctx, "failed to broadcast returned case",
				"case", c.Number, "error", err.Error())
		}
	}
}

// deadlineUpdates narrows a derived case down to the deadline fields that
// actually changed, so the persisted update stays individually scoped.
func deadlineUpdates(before, after models.Case) models.UpdateCaseFields {
	updates := models.UpdateCaseFields{}
	if timeChanged(before.CheckDeadline, after.CheckDeadline) {
		updates.CheckDeadline = after.CheckDeadline
	}
	if timeChanged(before.AppealDeadline, after.AppealDeadline) {
		updates.AppealDeadline = after.AppealDeadline
	}
	if timeChanged(before.DecisionDeadline, after.DecisionDeadline) {
		updates.DecisionDeadline = after.DecisionDeadline
	}
	if timeChanged(before.CaseEndDate, after.CaseEndDate) {
		updates.CaseEndDate = after.CaseEndDate
	}
	if timeChanged(before.AcceptedDate, after.AcceptedDate) {
		updates.AcceptedDate = after.AcceptedDate
	}
	return updates
}

func timeChanged(before, after *time.Time) bool {
	return after != nil && (before == nil || !before.Equal(*after))
}
