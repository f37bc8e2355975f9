package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/caseflow-kz/caseflow-backend/models"
	"github.com/caseflow-kz/caseflow-backend/repositories/dbmodels"
)

// MarkNotificationSent claims the (case, reminder key) pair with a conditional
// jsonb merge: the patch is applied only if the key is not already present, so
// two sweeps racing on the same pair cannot both claim it. Returns whether
// this caller won the claim. jsonb_exists is used instead of the `?` operator
// to keep the statement free of placeholder ambiguity.
func (repo CaseflowDbRepository) MarkNotificationSent(
	ctx context.Context,
	exec Executor,
	caseId string,
	key models.ReminderKey,
	sentAt time.Time,
) (bool, error) {
	patch, err := dbmodels.SerializeNotificationPatch(key, sentAt)
	if err != nil {
		return false, err
	}

	query := NewQueryBuilder().
		Update(dbmodels.TABLE_CASES).
		Set("notifications_sent", squirrel.Expr(
			"coalesce(notifications_sent, '{}'::jsonb) || ?::jsonb", patch)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": caseId}).
		Where(squirrel.Expr(
			"NOT jsonb_exists(coalesce(notifications_sent, '{}'::jsonb), ?)", string(key)))

	affected, err := ExecBuilder(ctx, exec, query)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ClearNotification releases a claim after a failed dispatch, so the case
// becomes eligible again on the next periodic tick. This is the only code
// path that removes a reminder key; a key belonging to a delivered reminder
// is never cleared.
func (repo CaseflowDbRepository) ClearNotification(
	ctx context.Context,
	exec Executor,
	caseId string,
	key models.ReminderKey,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_CASES).
		Set("notifications_sent", squirrel.Expr(
			"coalesce(notifications_sent, '{}'::jsonb) - ?::text", string(key))).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": caseId})

	_, err := ExecBuilder(ctx, exec, query)
	return err
}
