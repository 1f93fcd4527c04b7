package model

import "time"

// User is a directory entry for an authenticated principal. Identity is
// owned by the external auth system; this record is read-only here.
type User struct {
	UserID      string    `gorm:"column:user_id;primaryKey"`
	DisplayName string    `gorm:"column:display_name"`
	Email       string    `gorm:"column:email"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
