package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/caseflow-kz/caseflow-backend/models"
	"github.com/caseflow-kz/caseflow-backend/repositories/dbmodels"
)

func (repo CaseflowDbRepository) GetUserById(ctx context.Context, exec Executor, userId string) (models.User, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectUserColumn...).
		From(dbmodels.TABLE_USERS).
		Where(squirrel.Eq{"id": userId})

	return SqlToModel(ctx, exec, query, dbmodels.AdaptUser)
}

func (repo CaseflowDbRepository) ListActiveUsers(ctx context.Context, exec Executor) ([]models.User, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectUserColumn...).
		From(dbmodels.TABLE_USERS).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptUser)
}
