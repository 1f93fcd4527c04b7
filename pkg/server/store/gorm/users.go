package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/openshelf/sharegate/pkg/model"
	"github.com/openshelf/sharegate/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// SearchUsers matches display name or email case-insensitively
func (s *UsersStore) SearchUsers(query, excludeID string, limit int) ([]model.User, error) {
	pattern := "%" + query + "%"

	var users []model.User
	tx := s.db.Raw(`
		SELECT user_id, display_name, email, created_at
		FROM users
		WHERE user_id <> ?
		  AND (display_name ILIKE ? OR email ILIKE ?)
		ORDER BY display_name
		LIMIT ?
	`, excludeID, pattern, pattern, limit).Scan(&users)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return users, nil
}

// FetchUser retrieves a user by ID
func (s *UsersStore) FetchUser(userID string) (*model.User, error) {
	var user model.User
	tx := s.db.Where("user_id = ?", userID).First(&user)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &user, nil
}
