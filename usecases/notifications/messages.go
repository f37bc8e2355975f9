// Package notifications renders the reminder texts sent to responsible
// parties. Texts are in Russian, matching the audience of the product; dates
// are rendered in the tribunal's configured timezone.
package notifications

import (
	"fmt"
	"time"

	"github.com/caseflow-kz/caseflow-backend/models"
)

const (
	dateLayout     = "02.01.2006"
	dateTimeLayout = "02.01.2006 15:04"
)

func formatDate(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "—"
	}
	return t.In(loc).Format(dateLayout)
}

func formatDateTime(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "—"
	}
	return t.In(loc).Format(dateTimeLayout)
}

func CheckReminder(c models.Case, loc *time.Location) string {
	return fmt.Sprintf(
		"🕵️ <b>Напоминание о проверке дела</b>\n\n"+
			"📄 <b>Дело:</b> %s — %s\n"+
			"📅 <b>Срок проверки:</b> %s\n"+
			"👤 <b>Ответственный:</b> %s",
		c.Number, c.Title, formatDate(c.CheckDeadline, loc), c.Responsible.Name)
}

func HearingReminder(c models.Case, key models.ReminderKey, loc *time.Location) string {
	prefix := "📌 Завтра заседание!"
	if key == models.ReminderHearingHourBefore {
		prefix = "⏰ Через час заседание!"
	}
	return fmt.Sprintf(
		"%s\n\n"+
			"📄 <b>Дело:</b> %s — %s\n"+
			"🕒 <b>Дата заседания:</b> %s\n"+
			"👤 <b>Ответственный:</b> %s",
		prefix, c.Number, c.Title, formatDateTime(c.HearingDate, loc), c.Responsible.Name)
}

func AppealReminder(c models.Case, loc *time.Location) string {
	return fmt.Sprintf(
		"📝 <b>Напоминание о частной жалобе</b>\n\n"+
			"📄 <b>Дело:</b> %s — %s\n"+
			"📅 <b>Срок подачи жалобы:</b> %s\n"+
			"👤 <b>Ответственный:</b> %s",
		c.Number, c.Title, formatDate(c.AppealDeadline, loc), c.Responsible.Name)
}

func CaseEndReminder(c models.Case, daysLeft int, loc *time.Location) string {
	var lead string
	switch daysLeft {
	case 0:
		lead = "срок рассмотрения истекает сегодня"
	case 1:
		lead = "остался 1 день до окончания срока рассмотрения"
	default:
		lead = fmt.Sprintf("осталось %d дней до окончания срока рассмотрения", daysLeft)
	}
	return fmt.Sprintf(
		"🔚 <b>Окончание срока по делу</b>\n\n"+
			"📄 <b>Дело:</b> %s — %s\n"+
			"⏳ <b>Внимание:</b> %s\n"+
			"📅 <b>Дата окончания:</b> %s\n"+
			"👤 <b>Ответственный:</b> %s",
		c.Number, c.Title, lead, formatDate(c.CaseEndDate, loc), c.Responsible.Name)
}

func ReturnNotification(c models.Case, loc *time.Location) string {
	return fmt.Sprintf(
		"❗ <b>Дело возвращено!</b>\n\n"+
			"📄 <b>Дело:</b> %s — %s\n"+
			"📅 <b>Дата подачи:</b> %s\n"+
			"⚠️ Обратите внимание на причины возврата.",
		c.Number, c.Title, formatDate(&c.FilingDate, loc))
}
