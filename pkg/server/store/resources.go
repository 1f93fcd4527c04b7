package store

import "github.com/openshelf/sharegate/pkg/model"

// PublicResource is a resource row joined with its owner's display name
// for the discovery surface.
type PublicResource struct {
	model.Resource
	OwnerName string
}

// ResourcesStore abstracts resource reads and the visibility flag, the
// only resource column this service mutates.
type ResourcesStore interface {
	// FetchResource retrieves a single resource. Returns nil with no
	// error when the resource does not exist.
	FetchResource(kind model.ResourceKind, resourceID string) (*model.Resource, error)

	// ToggleVisibility atomically flips private<->public and returns the
	// updated resource, or nil when the resource does not exist.
	ToggleVisibility(kind model.ResourceKind, resourceID string) (*model.Resource, error)

	// ListPublicByOwner returns the owner's public resources, newest
	// first. Unknown owners yield an empty slice.
	ListPublicByOwner(ownerID string, limit int) ([]PublicResource, error)

	// SearchPublic returns public resources whose name or description
	// contains query, case-insensitively, across all owners.
	SearchPublic(query string, limit int) ([]PublicResource, error)

	// SharedWith returns the current state of every resource for which
	// an approved share request exists with the given requester. Deleted
	// resources are omitted.
	SharedWith(requesterID string) ([]model.Resource, error)
}
