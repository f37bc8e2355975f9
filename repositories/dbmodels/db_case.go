package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"

	"github.com/caseflow-kz/caseflow-backend/models"
	"github.com/caseflow-kz/caseflow-backend/utils"
)

type DBCase struct {
	Id                string    `db:"id"`
	Number            string    `db:"number"`
	Title             string    `db:"title"`
	Description       string    `db:"description"`
	Status            string    `db:"status"`
	ResponsibleId     string    `db:"responsible_id"`
	NotificationsSent []byte    `db:"notifications_sent"`
	FilingDate        time.Time `db:"filing_date"`
	CheckDeadline     null.Time `db:"check_deadline"`
	HearingDate       null.Time `db:"hearing_date"`
	DecisionDate      null.Time `db:"decision_date"`
	AppealDeadline    null.Time `db:"appeal_deadline"`
	DecisionDeadline  null.Time `db:"decision_deadline"`
	CaseEndDate       null.Time `db:"case_end_date"`
	AcceptedDate      null.Time `db:"accepted_date"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// DBCaseWithResponsible carries a case row joined with its responsible user.
type DBCaseWithResponsible struct {
	DBCase
	ResponsibleName   string `db:"responsible_name"`
	ResponsibleChatId string `db:"responsible_chat_id"`
}

const TABLE_CASES = "cases"

var SelectCaseColumn = utils.ColumnList[DBCase]()

func AdaptCase(db DBCase) (models.Case, error) {
	notificationsSent := models.NotificationsSent{}
	if len(db.NotificationsSent) > 0 {
		if err := json.Unmarshal(db.NotificationsSent, &notificationsSent); err != nil {
			return models.Case{}, errors.Wrap(err, "can't unmarshal notifications_sent")
		}
	}

	return models.Case{
		Id:                db.Id,
		Number:            db.Number,
		Title:             db.Title,
		Description:       db.Description,
		Status:            models.CaseStatusFrom(db.Status),
		Responsible:       models.User{Id: db.ResponsibleId},
		NotificationsSent: notificationsSent,
		FilingDate:        db.FilingDate,
		CheckDeadline:     db.CheckDeadline.Ptr(),
		HearingDate:       db.HearingDate.Ptr(),
		DecisionDate:      db.DecisionDate.Ptr(),
		AppealDeadline:    db.AppealDeadline.Ptr(),
		DecisionDeadline:  db.DecisionDeadline.Ptr(),
		CaseEndDate:       db.CaseEndDate.Ptr(),
		AcceptedDate:      db.AcceptedDate.Ptr(),
		CreatedAt:         db.CreatedAt,
		UpdatedAt:         db.UpdatedAt,
	}, nil
}

func AdaptCaseWithResponsible(db DBCaseWithResponsible) (models.Case, error) {
	c, err := AdaptCase(db.DBCase)
	if err != nil {
		return models.Case{}, err
	}
	c.Responsible = models.User{
		Id:             db.ResponsibleId,
		Name:           db.ResponsibleName,
		TelegramChatId: db.ResponsibleChatId,
	}
	return c, nil
}

// SerializeNotificationPatch renders the jsonb fragment merged into
// notifications_sent when a reminder is marked sent.
func SerializeNotificationPatch(key models.ReminderKey, sentAt time.Time) ([]byte, error) {
	patch := models.NotificationsSent{
		key: {Sent: true, SentAt: sentAt},
	}
	serialized, err := json.Marshal(patch)
	return serialized, errors.Wrap(err, "can't marshal notifications_sent patch")
}
