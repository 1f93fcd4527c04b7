package model

import "time"

// Resource is a shareable entity (agent, note, conversation, task, team).
// Only the visibility column is mutated here; everything else belongs to
// the subsystem that owns the resource kind.
type Resource struct {
	ResourceID  string       `gorm:"column:resource_id;primaryKey"`
	Kind        ResourceKind `gorm:"column:kind;primaryKey"`
	OwnerID     string       `gorm:"column:owner_id;not null"`
	Name        string       `gorm:"column:name"`
	Description string       `gorm:"column:description"`
	Visibility  Visibility   `gorm:"column:visibility"`
	CreatedAt   time.Time    `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time    `gorm:"column:updated_at;autoUpdateTime"`
}

func (Resource) TableName() string {
	return "resources"
}

// IsOwnedBy reports whether userID owns the resource. Every authorization
// decision in the sharing workflow goes through this one predicate.
func (r *Resource) IsOwnedBy(userID string) bool {
	return r.OwnerID == userID
}
