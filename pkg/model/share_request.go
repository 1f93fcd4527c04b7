package model

import "time"

// ShareRequest records one request by a user for read access to another
// user's resource. Requests are never deleted; approved and denied
// records remain as an audit trail. OwnerID is snapshotted from the
// resource at creation time.
type ShareRequest struct {
	RequestID    string       `gorm:"column:request_id;primaryKey"`
	ResourceKind ResourceKind `gorm:"column:resource_kind"`
	ResourceID   string       `gorm:"column:resource_id"`
	RequesterID  string       `gorm:"column:requester_id"`
	OwnerID      string       `gorm:"column:owner_id"`
	Status       Status       `gorm:"column:status"`
	CreatedAt    time.Time    `gorm:"column:created_at;autoCreateTime"`
	DecidedAt    *time.Time   `gorm:"column:decided_at"`
}

func (ShareRequest) TableName() string {
	return "share_requests"
}

// Decided reports whether the request has reached a terminal status.
// PENDING is the only status that admits a transition.
func (r *ShareRequest) Decided() bool {
	return r.Status != StatusPending
}
