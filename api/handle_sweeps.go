package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caseflow-kz/caseflow-backend/dto"
	"github.com/caseflow-kz/caseflow-backend/pure_utils"
	"github.com/caseflow-kz/caseflow-backend/usecases"
)

type SweepInput struct {
	Family string `uri:"family" binding:"required"`
}

func handleRunAllSweeps(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewSweepUsecase()
		summaries, err := usecase.RunAllSweeps(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"summaries": pure_utils.Map(summaries, dto.AdaptSweepSummaryDto),
		})
	}
}

func handleRunSweep(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var sweepInput SweepInput
		if err := c.ShouldBindUri(&sweepInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewSweepUsecase()
		var run func(context.Context) (usecases.SweepSummary, error)
		switch sweepInput.Family {
		case "check_deadline":
			run = usecase.RunCheckDeadlineSweep
		case "hearing_day":
			run = usecase.RunHearingDaySweep
		case "hearing_hour":
			run = usecase.RunHearingHourSweep
		case "appeal_deadline":
			run = usecase.RunAppealDeadlineSweep
		case "case_end":
			run = usecase.RunCaseEndSweep
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": "unknown sweep family"})
			return
		}

		summary, err := run(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"summary": dto.AdaptSweepSummaryDto(summary)})
	}
}
