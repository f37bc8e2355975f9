package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/caseflow-kz/caseflow-backend/models"
	"github.com/caseflow-kz/caseflow-backend/utils"
)

type DBUser struct {
	Id             string      `db:"id"`
	Name           string      `db:"name"`
	Username       null.String `db:"username"`
	Role           string      `db:"role"`
	TelegramChatId string      `db:"telegram_chat_id"`
	IsActive       bool        `db:"is_active"`
	CreatedAt      time.Time   `db:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at"`
}

const TABLE_USERS = "users"

var SelectUserColumn = utils.ColumnList[DBUser]()

func AdaptUser(db DBUser) (models.User, error) {
	return models.User{
		Id:             db.Id,
		Name:           db.Name,
		Username:       db.Username.ValueOrZero(),
		Role:           models.UserRole(db.Role),
		TelegramChatId: db.TelegramChatId,
		IsActive:       db.IsActive,
		CreatedAt:      db.CreatedAt,
		UpdatedAt:      db.UpdatedAt,
	}, nil
}
