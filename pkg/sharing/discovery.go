package sharing

import (
	"strings"

	"github.com/openshelf/sharegate/pkg/model"
	"github.com/openshelf/sharegate/pkg/server/store"
)

// DiscoveryService answers the search surface: the user directory and
// the public resources of all owners. Results are capped to bound
// response size; there is no pagination.
type DiscoveryService struct {
	users     store.UsersStore
	resources store.ResourcesStore
	limit     int
}

// NewDiscoveryService creates a DiscoveryService. limit caps every
// result list; values below 1 fall back to 50.
func NewDiscoveryService(users store.UsersStore, resources store.ResourcesStore, limit int) *DiscoveryService {
	if limit < 1 {
		limit = 50
	}
	return &DiscoveryService{users: users, resources: resources, limit: limit}
}

// SearchUsers matches display name or email case-insensitively,
// excluding the caller. Any authenticated user may search the
// directory; an empty query matches nobody rather than everybody.
func (d *DiscoveryService) SearchUsers(callerID, query string) ([]model.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.User{}, nil
	}

	users, err := d.users.SearchUsers(query, callerID, d.limit)
	if err != nil {
		return nil, StorageUnavailable(err)
	}
	return users, nil
}

// UserPublicResources returns targetUserID's public resources. An
// unknown user yields an empty list, not an error, so the directory
// does not leak which user IDs exist.
func (d *DiscoveryService) UserPublicResources(callerID, targetUserID string) ([]store.PublicResource, error) {
	resources, err := d.resources.ListPublicByOwner(targetUserID, d.limit)
	if err != nil {
		return nil, StorageUnavailable(err)
	}
	return resources, nil
}

// SearchPublic matches public resources by name or description,
// case-insensitively, across all owners.
func (d *DiscoveryService) SearchPublic(callerID, query string) ([]store.PublicResource, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []store.PublicResource{}, nil
	}

	resources, err := d.resources.SearchPublic(query, d.limit)
	if err != nil {
		return nil, StorageUnavailable(err)
	}
	return resources, nil
}
