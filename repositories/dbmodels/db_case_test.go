package dbmodels

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caseflow-kz/caseflow-backend/models"
)

func TestAdaptCase(t *testing.T) {
	sentAt := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	deadline := time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC)

	db := DBCase{
		Id:                "6e3bcd36-0000-0000-0000-000000000001",
		Number:            "2-1234/2025",
		Title:             "Иванов против ТОО Ромашка",
		Status:            "submitted",
		ResponsibleId:     "b7a1f8ce-0000-0000-0000-000000000001",
		NotificationsSent: []byte(`{"check_reminder":{"sent":true,"sent_at":"2025-06-02T09:00:00Z"}}`),
		FilingDate:        time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		CheckDeadline:     null.TimeFrom(deadline),
	}

	c, err := AdaptCase(db)
	require.NoError(t, err)

	assert.Equal(t, models.CaseSubmitted, c.Status)
	assert.True(t, c.NotificationsSent.WasSent(models.ReminderCheckDeadline))
	assert.Equal(t, sentAt, c.NotificationsSent[models.ReminderCheckDeadline].SentAt)
	require.NotNil(t, c.CheckDeadline)
	assert.Equal(t, deadline, *c.CheckDeadline)
	assert.Nil(t, c.HearingDate)
}

func TestAdaptCaseEmptyNotifications(t *testing.T) {
	c, err := AdaptCase(DBCase{Status: "accepted"})
	require.NoError(t, err)
	assert.NotNil(t, c.NotificationsSent)
	assert.False(t, c.NotificationsSent.WasSent(models.ReminderCheckDeadline))
}

func TestAdaptCaseBadNotificationsPayload(t *testing.T) {
	_, err := AdaptCase(DBCase{NotificationsSent: []byte(`not json`)})
	assert.Error(t, err)
}

func TestAdaptCaseWithResponsible(t *testing.T) {
	db := DBCaseWithResponsible{
		DBCase:            DBCase{Id: "case-1", ResponsibleId: "user-1", Status: "accepted"},
		ResponsibleName:   "Айгерим",
		ResponsibleChatId: "chat-42",
	}

	c, err := AdaptCaseWithResponsible(db)
	require.NoError(t, err)
	assert.Equal(t, "user-1", c.Responsible.Id)
	assert.Equal(t, "Айгерим", c.Responsible.Name)
	assert.Equal(t, "chat-42", c.Responsible.TelegramChatId)
}

func TestSerializeNotificationPatchRoundTrip(t *testing.T) {
	sentAt := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)

	patch, err := SerializeNotificationPatch(models.ReminderAppealDeadline, sentAt)
	require.NoError(t, err)

	var decoded models.NotificationsSent
	require.NoError(t, json.Unmarshal(patch, &decoded))
	assert.True(t, decoded.WasSent(models.ReminderAppealDeadline))
	assert.Equal(t, sentAt, decoded[models.ReminderAppealDeadline].SentAt)
}
