package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseflow-kz/caseflow-backend/models"
)

func TestMarkNotificationSent(t *testing.T) {
	caseId := "6e3bcd36-0000-0000-0000-000000000001"
	sentAt := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	repo := CaseflowDbRepository{}

	t.Run("claim won when the key was absent", func(t *testing.T) {
		pool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer pool.Close()

		pool.ExpectExec(`UPDATE cases SET notifications_sent = coalesce\(notifications_sent, '\{\}'::jsonb\) \|\| \$1::jsonb, updated_at = now\(\) WHERE id = \$2 AND NOT jsonb_exists\(coalesce\(notifications_sent, '\{\}'::jsonb\), \$3\)`).
			WithArgs(pgxmock.AnyArg(), caseId, string(models.ReminderCheckDeadline)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		claimed, err := repo.MarkNotificationSent(context.Background(), pool,
			caseId, models.ReminderCheckDeadline, sentAt)

		require.NoError(t, err)
		assert.True(t, claimed)
		assert.NoError(t, pool.ExpectationsWereMet())
	})

	t.Run("claim lost when the key already exists", func(t *testing.T) {
		pool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer pool.Close()

		pool.ExpectExec(`UPDATE cases SET notifications_sent`).
			WithArgs(pgxmock.AnyArg(), caseId, string(models.ReminderCheckDeadline)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		claimed, err := repo.MarkNotificationSent(context.Background(), pool,
			caseId, models.ReminderCheckDeadline, sentAt)

		require.NoError(t, err)
		assert.False(t, claimed)
		assert.NoError(t, pool.ExpectationsWereMet())
	})
}

func TestClearNotification(t *testing.T) {
	caseId := "6e3bcd36-0000-0000-0000-000000000001"
	repo := CaseflowDbRepository{}

	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	pool.ExpectExec(`UPDATE cases SET notifications_sent = coalesce\(notifications_sent, '\{\}'::jsonb\) - \$1::text, updated_at = now\(\) WHERE id = \$2`).
		WithArgs(string(models.ReminderCheckDeadline), caseId).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.ClearNotification(context.Background(), pool,
		caseId, models.ReminderCheckDeadline)

	require.NoError(t, err)
	assert.NoError(t, pool.ExpectationsWereMet())
}
