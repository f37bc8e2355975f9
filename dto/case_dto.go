package dto

import (
	"time"

	"github.com/caseflow-kz/caseflow-backend/models"
)

type APIResponsible struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type APINotificationRecord struct {
	Sent   bool      `json:"sent"`
	SentAt time.Time `json:"sent_at"`
}

type APICase struct {
	Id                string                           `json:"id"`
	Number            string                           `json:"number"`
	Title             string                           `json:"title"`
	Description       string                           `json:"description"`
	Status            string                           `json:"status"`
	Responsible       APIResponsible                   `json:"responsible"`
	NotificationsSent map[string]APINotificationRecord `json:"notifications_sent"`
	FilingDate        string                           `json:"filing_date"`
	CheckDeadline     *string                          `json:"check_deadline"`
	HearingDate       *time.Time                       `json:"hearing_date"`
	DecisionDate      *string                          `json:"decision_date"`
	AppealDeadline    *string                          `json:"appeal_deadline"`
	DecisionDeadline  *string                          `json:"decision_deadline"`
	CaseEndDate       *string                          `json:"case_end_date"`
	AcceptedDate      *time.Time                       `json:"accepted_date"`
	CreatedAt         time.Time                        `json:"created_at"`
	UpdatedAt         time.Time                        `json:"updated_at"`
}

const dateLayout = "2006-01-02"

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dateLayout)
	return &formatted
}

func AdaptCaseDto(c models.Case) APICase {
	notifications := make(map[string]APINotificationRecord, len(c.NotificationsSent))
	for key, record := range c.NotificationsSent {
		notifications[string(key)] = APINotificationRecord{
			Sent:   record.Sent,
			SentAt: record.SentAt,
		}
	}

	return APICase{
		Id:                c.Id,
		Number:            c.Number,
		Title:             c.Title,
		Description:       c.Description,
		Status:            string(c.Status),
		Responsible:       APIResponsible{Id: c.Responsible.Id, Name: c.Responsible.Name},
		NotificationsSent: notifications,
		FilingDate:        c.FilingDate.Format(dateLayout),
		CheckDeadline:     formatDate(c.CheckDeadline),
		HearingDate:       c.HearingDate,
		DecisionDate:      formatDate(c.DecisionDate),
		AppealDeadline:    formatDate(c.AppealDeadline),
		DecisionDeadline:  formatDate(c.DecisionDeadline),
		CaseEndDate:       formatDate(c.CaseEndDate),
		AcceptedDate:      c.AcceptedDate,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

type CreateCaseBody struct {
	Number        string `json:"number" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description"`
	ResponsibleId string `json:"responsible_id" binding:"required,uuid"`
	FilingDate    string `json:"filing_date" binding:"required,datetime=2006-01-02"`
}

type UpdateCaseStatusBody struct {
	Status string `json:"status" binding:"required"`
}

type SetHearingBody struct {
	HearingDate time.Time `json:"hearing_date" binding:"required"`
}

type SetDecisionDateBody struct {
	DecisionDate string `json:"decision_date" binding:"required,datetime=2006-01-02"`
}
