package store

import "github.com/openshelf/sharegate/pkg/model"

// UsersStore abstracts the user directory. The directory is owned by
// the external identity system; only reads happen here.
type UsersStore interface {
	// SearchUsers returns users whose display name or email contains
	// query, case-insensitively, excluding excludeID (the caller).
	SearchUsers(query, excludeID string, limit int) ([]model.User, error)

	// FetchUser retrieves a user by ID. Returns nil with no error when
	// absent.
	FetchUser(userID string) (*model.User, error)
}
