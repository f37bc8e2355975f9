package usecases

import (
	"context"

	"github.com/caseflow-kz/caseflow-backend/models"
	"github.com/caseflow-kz/caseflow-backend/repositories"
	"github.com/caseflow-kz/caseflow-backend/usecases/executor_factory"
)

type userUsecaseRepository interface {
	GetUserById(ctx context.Context, exec repositories.Executor, userId string) (models.User, error)
	ListActiveUsers(ctx context.Context, exec repositories.Executor) ([]models.User, error)
}

// UserUseCase exposes the responsible party directory: active users are the
// ones a case can be assigned to.
type UserUseCase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      userUsecaseRepository
}

func (uc *UserUseCase) GetUser(ctx context.Context, userId string) (models.User, error) {
	return uc.repository.GetUserById(ctx, uc.executorFactory.NewExecutor(), userId)
}

func (uc *UserUseCase) ListActiveUsers(ctx context.Context) ([]models.User, error) {
	return uc.repository.ListActiveUsers(ctx, uc.executorFactory.NewExecutor())
}
