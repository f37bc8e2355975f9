package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/caseflow-kz/caseflow-backend/models"
	"github.com/caseflow-kz/caseflow-backend/repositories/dbmodels"
)

func selectCasesWithResponsible() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(append(
			columnsNames("c", dbmodels.SelectCaseColumn),
			"u.name AS responsible_name",
			"u.telegram_chat_id AS responsible_chat_id",
		)...).
		From(dbmodels.TABLE_CASES + " AS c").
		Join(dbmodels.TABLE_USERS + " AS u ON u.id = c.responsible_id")
}

func (repo CaseflowDbRepository) GetCaseById(ctx context.Context, exec Executor, caseId string) (models.Case, error) {
	query := selectCasesWithResponsible().
		Where(squirrel.Eq{"c.id": caseId})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptCaseWithResponsible)
}

func (repo CaseflowDbRepository) ListCases(ctx context.Context, exec Executor, filters models.CaseFilters) ([]models.Case, error) {
	query := selectCasesWithResponsible().
		OrderBy("c.created_at DESC")

	if filters.Status != nil {
		query = query.Where(squirrel.Eq{"c.status": *filters.Status})
	}
	if filters.ResponsibleId != nil {
		query = query.Where(squirrel.Eq{"c.responsible_id": *filters.ResponsibleId})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCaseWithResponsible)
}

// Sweep queries. Each one is a range or comparison predicate on a deadline
// field plus an equality on status, matching the partial indexes on the cases
// table.

func (repo CaseflowDbRepository) ListCasesWithCheckDeadlineDue(
	ctx context.Context,
	exec Executor,
	now time.Time,
) ([]models.Case, error) {
	query := selectCasesWithResponsible().
		Where(squirrel.LtOrEq{"c.check_deadline": now}).
		Where(squirrel.Eq{"c.status": models.CaseSubmitted})

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCaseWithResponsible)
}

func (repo CaseflowDbRepository) ListCasesWithHearingBetween(
	ctx context.Context,
	exec Executor,
	start, end time.Time,
) ([]models.Case, error) {
	query := selectCasesWithResponsible().
		Where("c.hearing_date >= ? AND c.hearing_date < ?", start, end).
		Where(squirrel.Eq{"c.status": models.CaseAccepted})

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCaseWithResponsible)
}

func (repo CaseflowDbRepository) ListCasesWithAppealDeadlineBetween(
	ctx context.Context,
	exec Executor,
	start, end time.Time,
) ([]models.Case, error) {
	query := selectCasesWithResponsible().
		Where("c.appeal_deadline >= ? AND c.appeal_deadline <= ?", start, end).
		Where(squirrel.Eq{"c.status": models.CaseClosed})

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCaseWithResponsible)
}

func (repo CaseflowDbRepository) ListCasesWithCaseEndBetween(
	ctx context.Context,
	exec Executor,
	start, end time.Time,
) ([]models.Case, error) {
	query := selectCasesWithResponsible().
		Where("c.case_end_date >= ? AND c.case_end_date <= ?", start, end).
		Where(squirrel.Eq{"c.status": models.CaseAccepted})

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCaseWithResponsible)
}

func (repo CaseflowDbRepository) CreateCase(
	ctx context.Context,
	exec Executor,
	newCaseId string,
	c models.Case,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_CASES).
			Columns(
				"id",
				"number",
				"title",
				"description",
				"status",
				"responsible_id",
				"filing_date",
				"check_deadline",
			).
			Values(
				newCaseId,
				c.Number,
				c.Title,
				c.Description,
				c.Status,
				c.Responsible.Id,
				c.FilingDate,
				c.CheckDeadline,
			),
	)
	return err
}

// UpdateCaseFields writes only the fields present in updates: deadline and
// notification writers touching the same case must not overwrite each other.
func (repo CaseflowDbRepository) UpdateCaseFields(
	ctx context.Context,
	exec Executor,
	caseId string,
	updates models.UpdateCaseFields,
) error {
	if updates.IsEmpty() {
		return nil
	}

	query := NewQueryBuilder().
		Update(dbmodels.TABLE_CASES).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": caseId})

	if updates.Status != nil {
		query = query.Set("status", *updates.Status)
	}
	if updates.HearingDate != nil {
		query = query.Set("hearing_date", *updates.HearingDate)
	}
	if updates.DecisionDate != nil {
		query = query.Set("decision_date", *updates.DecisionDate)
	}
	if updates.CheckDeadline != nil {
		query = query.Set("check_deadline", *updates.CheckDeadline)
	}
	if updates.AppealDeadline != nil {
		query = query.Set("appeal_deadline", *updates.AppealDeadline)
	}
	if updates.DecisionDeadline != nil {
		query = query.Set("decision_deadline", *updates.DecisionDeadline)
	}
	if updates.CaseEndDate != nil {
		query = query.Set("case_end_date", *updates.CaseEndDate)
	}
	if updates.AcceptedDate != nil {
		query = query.Set("accepted_date", *updates.AcceptedDate)
	}

	_, err := ExecBuilder(ctx, exec, query)
	return err
}
