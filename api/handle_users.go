package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caseflow-kz/caseflow-backend/dto"
	"github.com/caseflow-kz/caseflow-backend/pure_utils"
	"github.com/caseflow-kz/caseflow-backend/usecases"
)

func handleListUsers(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := uc.NewUserUseCase()
		users, err := usecase.ListActiveUsers(ctx)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"users": pure_utils.Map(users, dto.AdaptUserDto)})
	}
}

func handleGetUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var userInput struct {
			Id string `uri:"user_id" binding:"required,uuid"`
		}
		if err := c.ShouldBindUri(&userInput); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := uc.NewUserUseCase()
		user, err := usecase.GetUser(ctx, userInput.Id)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{"user": dto.AdaptUserDto(user)})
	}
}
