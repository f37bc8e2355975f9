package models

import (
	"slices"
	"time"
)

type CaseStatus string

const (
	CaseSubmitted     CaseStatus = "submitted"
	CasePendingCheck  CaseStatus = "pending_check"
	CaseAccepted      CaseStatus = "accepted"
	CaseReturned      CaseStatus = "returned"
	CaseClosed        CaseStatus = "closed"
	CaseDecisionMade  CaseStatus = "decision_made"
	CaseAppeal        CaseStatus = "appeal"
	CaseUnknownStatus CaseStatus = "unknown"
)

var ValidCaseStatuses = []CaseStatus{
	CaseSubmitted,
	CasePendingCheck,
	CaseAccepted,
	CaseReturned,
	CaseClosed,
	CaseDecisionMade,
	CaseAppeal,
}

func CaseStatusFrom(s string) CaseStatus {
	if status := CaseStatus(s); slices.Contains(ValidCaseStatuses, status) {
		return status
	}
	return CaseUnknownStatus
}

// CanTransition documents the nominal lifecycle flow. Transitions outside of
// it are not hard-blocked by this layer: business gating (who may move a case
// where) belongs to the caller. The one exception, setting a hearing date on a
// non-accepted case, is enforced in the case usecase.
func (s CaseStatus) CanTransition(newStatus CaseStatus) bool {
	if s == newStatus {
		return true
	}

	switch s {
	case CaseSubmitted:
		return newStatus == CasePendingCheck
	case CasePendingCheck:
		return newStatus == CaseAccepted || newStatus == CaseReturned
	case CaseAccepted:
		return slices.Contains([]CaseStatus{CaseDecisionMade, CaseReturned, CaseClosed}, newStatus)
	case CaseClosed:
		return newStatus == CaseAppeal
	default:
		return false
	}
}

// Case is the central entity of the deadline tracking core. All deadline
// fields are derived, never set directly by a caller: see DeriveDeadlines.
type Case struct {
	Id          string
	Number      string
	Title       string
	Description string
	Status      CaseStatus
	Responsible User

	NotificationsSent NotificationsSent

	FilingDate       time.Time
	CheckDeadline    *time.Time
	HearingDate      *time.Time
	DecisionDate     *time.Time
	AppealDeadline   *time.Time
	DecisionDeadline *time.Time
	CaseEndDate      *time.Time
	AcceptedDate     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateCaseAttributes struct {
	Number        string
	Title         string
	Description   string
	ResponsibleId string
	FilingDate    time.Time
}

type CaseFilters struct {
	Status        *CaseStatus
	ResponsibleId *string
}

// UpdateCaseFields carries individually scoped field updates. Only non-nil
// fields are written, so concurrent writers touching different fields of the
// same case do not clobber each other.
type UpdateCaseFields struct {
	Status           *CaseStatus
	HearingDate      *time.Time
	DecisionDate     *time.Time
	CheckDeadline    *time.Time
	AppealDeadline   *time.Time
	DecisionDeadline *time.Time
	CaseEndDate      *time.Time
	AcceptedDate     *time.Time
}

func (u UpdateCaseFields) IsEmpty() bool {
	return u.Status == nil &&
		u.HearingDate == nil &&
		u.DecisionDate == nil &&
		u.CheckDeadline == nil &&
		u.AppealDeadline == nil &&
		u.DecisionDeadline == nil &&
		u.CaseEndDate == nil &&
		u.AcceptedDate == nil
}
