package gorm

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/openshelf/sharegate/pkg/model"
	"github.com/openshelf/sharegate/pkg/server/store"
)

// Ensure ResourcesStore implements store.ResourcesStore
var _ store.ResourcesStore = (*ResourcesStore)(nil)

// ResourcesStore implements store.ResourcesStore using GORM
type ResourcesStore struct {
	db *gorm.DB
}

// NewResourcesStore creates a new ResourcesStore
func NewResourcesStore(db *gorm.DB) *ResourcesStore {
	return &ResourcesStore{db: db}
}

// FetchResource retrieves a single resource by kind and ID
func (s *ResourcesStore) FetchResource(kind model.ResourceKind, resourceID string) (*model.Resource, error) {
	var resource model.Resource
	tx := s.db.Where("kind = ? AND resource_id = ?", kind, resourceID).First(&resource)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &resource, nil
}

// ToggleVisibility flips private<->public in a single statement. The
// flip and the read-back happen atomically via RETURNING, so two
// concurrent toggles produce two flips, never a lost update.
func (s *ResourcesStore) ToggleVisibility(kind model.ResourceKind, resourceID string) (*model.Resource, error) {
	var row resourceRow
	tx := s.db.Raw(`
		UPDATE resources
		SET visibility = CASE visibility WHEN 'public' THEN 'private' ELSE 'public' END,
		    updated_at = now()
		WHERE kind = ? AND resource_id = ?
		RETURNING resource_id, kind, owner_id, name, description, visibility, created_at, updated_at
	`, kind, resourceID).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, nil
	}
	resource := row.toModel()
	return &resource, nil
}

// ListPublicByOwner returns the owner's public resources, newest first
func (s *ResourcesStore) ListPublicByOwner(ownerID string, limit int) ([]store.PublicResource, error) {
	var rows []publicResourceRow
	tx := s.db.Raw(`
		SELECT r.resource_id, r.kind, r.owner_id, r.name, r.description, r.visibility,
		       r.created_at, r.updated_at,
		       COALESCE(u.display_name, '') AS owner_name
		FROM resources r
		LEFT JOIN users u ON u.user_id = r.owner_id
		WHERE r.owner_id = ? AND r.visibility = 'public'
		ORDER BY r.created_at DESC
		LIMIT ?
	`, ownerID, limit).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toPublicResources(rows), nil
}

// SearchPublic returns public resources matching query by name or description
func (s *ResourcesStore) SearchPublic(query string, limit int) ([]store.PublicResource, error) {
	pattern := "%" + query + "%"

	var rows []publicResourceRow
	tx := s.db.Raw(`
		SELECT r.resource_id, r.kind, r.owner_id, r.name, r.description, r.visibility,
		       r.created_at, r.updated_at,
		       COALESCE(u.display_name, '') AS owner_name
		FROM resources r
		LEFT JOIN users u ON u.user_id = r.owner_id
		WHERE r.visibility = 'public'
		  AND (r.name ILIKE ? OR r.description ILIKE ?)
		ORDER BY r.name
		LIMIT ?
	`, pattern, pattern, limit).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toPublicResources(rows), nil
}

// SharedWith joins approved share requests against current resource
// state. Resources deleted since approval drop out of the join.
func (s *ResourcesStore) SharedWith(requesterID string) ([]model.Resource, error) {
	var rows []resourceRow
	tx := s.db.Raw(`
		SELECT DISTINCT r.resource_id, r.kind, r.owner_id, r.name, r.description,
		       r.visibility, r.created_at, r.updated_at
		FROM resources r
		JOIN share_requests sr
		  ON sr.resource_kind = r.kind AND sr.resource_id = r.resource_id
		WHERE sr.requester_id = ? AND sr.status = 'approved'
		ORDER BY r.created_at DESC
	`, requesterID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	resources := make([]model.Resource, 0, len(rows))
	for _, row := range rows {
		resources = append(resources, row.toModel())
	}
	return resources, nil
}

type resourceRow struct {
	ResourceID  string
	Kind        model.ResourceKind
	OwnerID     string
	Name        string
	Description string
	Visibility  model.Visibility
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (row resourceRow) toModel() model.Resource {
	return model.Resource{
		ResourceID:  row.ResourceID,
		Kind:        row.Kind,
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		Description: row.Description,
		Visibility:  row.Visibility,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

type publicResourceRow struct {
	resourceRow
	OwnerName string
}

func toPublicResources(rows []publicResourceRow) []store.PublicResource {
	resources := make([]store.PublicResource, 0, len(rows))
	for _, row := range rows {
		resources = append(resources, store.PublicResource{
			Resource:  row.toModel(),
			OwnerName: row.OwnerName,
		})
	}
	return resources
}
