package api

import (
	"github.com/gin-gonic/gin"

	"github.com/caseflow-kz/caseflow-backend/usecases"
)

func addRoutes(r *gin.Engine, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe)

	r.GET("/users", handleListUsers(uc))
	r.GET("/users/:user_id", handleGetUser(uc))

	r.GET("/cases", handleListCases(uc))
	r.POST("/cases", handlePostCase(uc))
	r.GET("/cases/:case_id", handleGetCase(uc))
	r.POST("/cases/:case_id/status", handleUpdateCaseStatus(uc))
	r.POST("/cases/:case_id/hearing", handleSetHearing(uc))
	r.POST("/cases/:case_id/decision", handleSetDecisionDate(uc))

	r.POST("/sweeps/run", handleRunAllSweeps(uc))
	r.POST("/sweeps/:family/run", handleRunSweep(uc))
}
