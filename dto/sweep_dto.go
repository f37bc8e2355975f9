package dto

import "github.com/caseflow-kz/caseflow-backend/usecases"

type APISweepSummary struct {
	Family  string `json:"family"`
	Matched int    `json:"matched"`
	Sent    int    `json:"sent"`
	Skipped int    `json:"skipped"`
	Failed  int    `json:"failed"`
}

func AdaptSweepSummaryDto(s usecases.SweepSummary) APISweepSummary {
	return APISweepSummary{
		Family:  s.Family,
		Matched: s.Matched,
		Sent:    s.Sent,
		Skipped: s.Skipped,
		Failed:  s.Failed,
	}
}
