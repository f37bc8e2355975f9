package models

import "time"

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleLawyer UserRole = "lawyer"
)

// User is a responsible party: the recipient of every reminder for the cases
// assigned to them. TelegramChatId is the opaque notification address.
type User struct {
	Id             string
	Name           string
	Username       string
	Role           UserRole
	TelegramChatId string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
