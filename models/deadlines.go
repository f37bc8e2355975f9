package models

import (
	"time"

	"github.com/caseflow-kz/caseflow-backend/pure_utils"
)

// Statutory lead times, in days, between a lifecycle event and the deadline
// derived from it.
const (
	CheckDeadlineBusinessDays    = 10
	AppealDeadlineCalendarDays   = 10
	DecisionDeadlineCalendarDays = 30
	CaseDurationBusinessDays     = 23
)

// DeriveDeadlines recomputes the derived deadline fields of a case from its
// lifecycle event dates and status. It is called explicitly by every code path
// that mutates a governing field (filing date, decision date, status), never
// from a persistence hook, so the derivation stays testable as a pure function.
//
// now is only read when the case transitions into the accepted status: the
// accepted date and case end date are stamped once at wall-clock time of the
// transition and are never overwritten by a later recompute.
func DeriveDeadlines(c Case, now time.Time) (Case, error) {
	if !c.FilingDate.IsZero() && c.CheckDeadline == nil {
		checkDeadline, err := pure_utils.AddBusinessDays(c.FilingDate, CheckDeadlineBusinessDays)
		if err != nil {
			return Case{}, err
		}
		c.CheckDeadline = &checkDeadline
	}

	if c.DecisionDate != nil {
		appealDeadline := pure_utils.AddCalendarDays(*c.DecisionDate, AppealDeadlineCalendarDays)
		decisionDeadline := pure_utils.AddCalendarDays(*c.DecisionDate, DecisionDeadlineCalendarDays)
		c.AppealDeadline = &appealDeadline
		c.DecisionDeadline = &decisionDeadline
	}

	if c.Status == CaseAccepted && c.AcceptedDate == nil {
		caseEndDate, err := pure_utils.AddBusinessDays(now, CaseDurationBusinessDays)
		if err != nil {
			return Case{}, err
		}
		acceptedDate := now
		c.AcceptedDate = &acceptedDate
		c.CaseEndDate = &caseEndDate
	}

	return c, nil
}
