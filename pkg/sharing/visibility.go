package sharing

import (
	"github.com/openshelf/sharegate/pkg/audit"
	"github.com/openshelf/sharegate/pkg/model"
	"github.com/openshelf/sharegate/pkg/server/store"
)

// VisibilityManager toggles a resource between private and public.
// Only the owner may toggle. The operation is deliberately a toggle,
// not a set: two calls return the resource to its original visibility.
type VisibilityManager struct {
	resources store.ResourcesStore
}

// NewVisibilityManager creates a VisibilityManager.
func NewVisibilityManager(resources store.ResourcesStore) *VisibilityManager {
	return &VisibilityManager{resources: resources}
}

// ToggleVisibility flips the resource's visibility and returns the
// updated record.
func (m *VisibilityManager) ToggleVisibility(callerID string, kind model.ResourceKind, resourceID string) (*model.Resource, error) {
	resource, err := m.resources.FetchResource(kind, resourceID)
	if err != nil {
		return nil, StorageUnavailable(err)
	}
	if resource == nil {
		return nil, NotFound("resource %s/%s not found", kind, resourceID)
	}
	if !resource.IsOwnedBy(callerID) {
		audit.Log(audit.ForbiddenEvent{
			UserID:    callerID,
			Operation: "toggle-visibility",
			EntityID:  kind.String() + "/" + resourceID,
		})
		return nil, Forbidden("only the owner may change visibility of %s/%s", kind, resourceID)
	}

	updated, err := m.resources.ToggleVisibility(kind, resourceID)
	if err != nil {
		return nil, StorageUnavailable(err)
	}
	if updated == nil {
		// Deleted between the ownership check and the write.
		return nil, NotFound("resource %s/%s not found", kind, resourceID)
	}

	audit.Log(audit.VisibilityEvent{
		OwnerID:      callerID,
		ResourceKind: kind.String(),
		ResourceID:   resourceID,
		Visibility:   updated.Visibility.String(),
	})
	return updated, nil
}
