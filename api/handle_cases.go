package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/caseflow-kz/caseflow-backend/dto"
	"github.com/caseflow-kz/caseflow-backend/models"
	"github.com/caseflow-kz/caseflow-backend/pure_utils"
	"github.com/caseflow-kz/caseflow-backend/usecases"
)

type CaseInput struct {
	Id string `uri:"case_id" binding:"required,uuid"`
}

type CaseListFilters struct {
	Status        *string `form:"status"`
	ResponsibleId *string `form:"responsible_id"`
}

func handleListCases(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var filters CaseListFilters
		if err := c.ShouldBind(&filters); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		modelFilters := models.CaseFilters{ResponsibleId: filters.ResponsibleId}
		if filters.Status != nil {
			status := models.CaseStatusFrom(*filters.Status)
			if status == models.CaseUnknownStatus {
				c.JSON(http.StatusBadRequest, gin.H{"message": "unknown case status"})
				return
			}
			modelFilters.Status = &status
		}

		usecase := uc.NewCaseUseCase()
		cases, err := usecase.ListCases(ctx, modelFilters)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"cases": pure_utils.Map(cases, dto.AdaptCaseDto)})
	}
}

func handleGetCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewCaseUseCase()
		trackedCase, err := usecase.GetCase(ctx, caseInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(trackedCase)})
	}
}

func handlePostCase(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var body dto.CreateCaseBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		filingDate, err := time.Parse("2006-01-02", body.FilingDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid filing_date"})
			return
		}

		usecase := uc.NewCaseUseCase()
		createdCase, err := usecase.CreateCase(ctx, models.CreateCaseAttributes{
			Number:        body.Number,
			Title:         body.Title,
			Description:   body.Description,
			ResponsibleId: body.ResponsibleId,
			FilingDate:    filingDate,
		})
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusCreated, gin.H{"case": dto.AdaptCaseDto(createdCase)})
	}
}

func handleUpdateCaseStatus(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var body dto.UpdateCaseStatusBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		usecase := uc.NewCaseUseCase()
		updatedCase, err := usecase.UpdateCaseStatus(ctx, caseInput.Id, models.CaseStatus(body.Status))
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(updatedCase)})
	}
}

func handleSetHearing(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var body dto.SetHearingBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		usecase := uc.NewCaseUseCase()
		updatedCase, err := usecase.SetHearing(ctx, caseInput.Id, body.HearingDate)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(updatedCase)})
	}
}

func handleSetDecisionDate(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var caseInput CaseInput
		if err := c.ShouldBindUri(&caseInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		var body dto.SetDecisionDateBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		decisionDate, err := time.Parse("2006-01-02", body.DecisionDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid decision_date"})
			return
		}

		usecase := uc.NewCaseUseCase()
		updatedCase, err := usecase.SetDecisionDate(ctx, caseInput.Id, decisionDate)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"case": dto.AdaptCaseDto(updatedCase)})
	}
}
