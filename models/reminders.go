package models

import (
	"fmt"
	"time"
)

// ReminderKey identifies one notification type for idempotency purposes.
// The case end family encodes the lead time into the key itself: the same
// underlying deadline fires several distinct reminders at different lead
// times, and a shared key would suppress the later ones after the first fired.
type ReminderKey string

const (
	ReminderCheckDeadline     ReminderKey = "check_reminder"
	ReminderHearingDayBefore  ReminderKey = "day_before"
	ReminderHearingHourBefore ReminderKey = "hour_before"
	ReminderAppealDeadline    ReminderKey = "appeal_reminder"
	ReminderCaseEnd10Days     ReminderKey = "case_end_10_days"
	ReminderCaseEnd5Days      ReminderKey = "case_end_5_days"
	ReminderCaseEnd1Day       ReminderKey = "case_end_1_days"
	ReminderCaseEndToday      ReminderKey = "case_end_0_days"
)

// CaseEndNotifyDays are the lead times, in days before the case end date, at
// which a case end reminder is due.
var CaseEndNotifyDays = []int{10, 5, 1, 0}

// CaseEndReminderKey returns the reminder key for a given number of days left
// until the case end date, and whether that day count fires a reminder at all.
func CaseEndReminderKey(daysLeft int) (ReminderKey, bool) {
	switch daysLeft {
	case 10:
		return ReminderCaseEnd10Days, true
	case 5:
		return ReminderCaseEnd5Days, true
	case 1:
		return ReminderCaseEnd1Day, true
	case 0:
		return ReminderCaseEndToday, true
	default:
		return "", false
	}
}

// DaysUntil returns the number of days between now and deadline, rounded up,
// matching how "N days left" is counted for case end reminders.
func DaysUntil(deadline, now time.Time) int {
	diff := deadline.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

type SentRecord struct {
	Sent   bool      `json:"sent"`
	SentAt time.Time `json:"sent_at"`
}

// NotificationsSent is owned exclusively by the case and mutated only through
// the repository's mark/clear operations, never by lifecycle transition code.
type NotificationsSent map[ReminderKey]SentRecord

func (n NotificationsSent) WasSent(key ReminderKey) bool {
	return n[key].Sent
}

func (r ReminderKey) String() string {
	return string(r)
}

func (r ReminderKey) Validate() error {
	switch r {
	case ReminderCheckDeadline, ReminderHearingDayBefore, ReminderHearingHourBefore,
		ReminderAppealDeadline, ReminderCaseEnd10Days, ReminderCaseEnd5Days,
		ReminderCaseEnd1Day, ReminderCaseEndToday:
		return nil
	}
	return fmt.Errorf("unknown reminder key %q: %w", string(r), BadParameterError)
}
