package dto

import (
	"time"

	"github.com/caseflow-kz/caseflow-backend/models"
)

type APIUser struct {
	Id             string    `json:"id"`
	Name           string    `json:"name"`
	Username       string    `json:"username,omitempty"`
	Role           string    `json:"role"`
	TelegramChatId string    `json:"telegram_chat_id"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func AdaptUserDto(u models.User) APIUser {
	return APIUser{
		Id:             u.Id,
		Name:           u.Name,
		Username:       u.Username,
		Role:           string(u.Role),
		TelegramChatId: u.TelegramChatId,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
	}
}
