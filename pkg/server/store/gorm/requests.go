package gorm

import (
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/openshelf/sharegate/pkg/model"
	"github.com/openshelf/sharegate/pkg/server/store"
)

// Ensure ShareRequestsStore implements store.ShareRequestsStore
var _ store.ShareRequestsStore = (*ShareRequestsStore)(nil)

// ShareRequestsStore implements store.ShareRequestsStore using GORM
type ShareRequestsStore struct {
	db *gorm.DB
}

// NewShareRequestsStore creates a new ShareRequestsStore
func NewShareRequestsStore(db *gorm.DB) *ShareRequestsStore {
	return &ShareRequestsStore{db: db}
}

// CreateRequest inserts a new pending request. The partial unique index
// share_requests_pending_uniq rejects a second pending request for the
// same (requester, kind, resource); that surfaces as ErrDuplicatePending.
func (s *ShareRequestsStore) CreateRequest(req *model.ShareRequest) error {
	tx := s.db.Exec(`
		INSERT INTO share_requests
			(request_id, resource_kind, resource_id, requester_id, owner_id, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, req.RequestID, req.ResourceKind, req.ResourceID, req.RequesterID, req.OwnerID, req.Status, req.CreatedAt)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return store.ErrDuplicatePending
		}
		return tx.Error
	}
	return nil
}

// FetchRequest retrieves a request by ID
func (s *ShareRequestsStore) FetchRequest(requestID string) (*model.ShareRequest, error) {
	var req model.ShareRequest
	tx := s.db.Where("request_id = ?", requestID).First(&req)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return &req, nil
}

// ListPendingForOwner returns pending requests oldest first, enriched
// with the requester's directory entry and the resource name. Both
// joins are LEFT so a deleted resource or user still lists the request.
func (s *ShareRequestsStore) ListPendingForOwner(ownerID string) ([]store.PendingRequest, error) {
	type pendingRow struct {
		RequestID      string
		ResourceKind   model.ResourceKind
		ResourceID     string
		RequesterID    string
		OwnerID        string
		Status         model.Status
		CreatedAt      time.Time
		DecidedAt      *time.Time
		RequesterName  string
		RequesterEmail string
		ResourceName   string
	}

	var rows []pendingRow
	tx := s.db.Raw(`
		SELECT sr.request_id, sr.resource_kind, sr.resource_id, sr.requester_id,
		       sr.owner_id, sr.status, sr.created_at, sr.decided_at,
		       COALESCE(u.display_name, '') AS requester_name,
		       COALESCE(u.email, '') AS requester_email,
		       COALESCE(r.name, '') AS resource_name
		FROM share_requests sr
		LEFT JOIN users u ON u.user_id = sr.requester_id
		LEFT JOIN resources r ON r.kind = sr.resource_kind AND r.resource_id = sr.resource_id
		WHERE sr.owner_id = ? AND sr.status = 'pending'
		ORDER BY sr.created_at ASC
	`, ownerID).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	requests := make([]store.PendingRequest, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, store.PendingRequest{
			ShareRequest: model.ShareRequest{
				RequestID:    row.RequestID,
				ResourceKind: row.ResourceKind,
				ResourceID:   row.ResourceID,
				RequesterID:  row.RequesterID,
				OwnerID:      row.OwnerID,
				Status:       row.Status,
				CreatedAt:    row.CreatedAt,
				DecidedAt:    row.DecidedAt,
			},
			RequesterName:  row.RequesterName,
			RequesterEmail: row.RequesterEmail,
			ResourceName:   row.ResourceName,
		})
	}
	return requests, nil
}

// Decide applies a terminal status. The WHERE clause only matches while
// the stored status is still pending, so a second decide on the same
// request affects zero rows.
func (s *ShareRequestsStore) Decide(requestID string, status model.Status, decidedAt time.Time) (bool, error) {
	tx := s.db.Exec(`
		UPDATE share_requests
		SET status = ?, decided_at = ?
		WHERE request_id = ? AND status = 'pending'
	`, status, decidedAt, requestID)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// HasApproved reports whether an approved request grants the requester
// access to the resource
func (s *ShareRequestsStore) HasApproved(requesterID string, kind model.ResourceKind, resourceID string) (bool, error) {
	var exists bool
	tx := s.db.Raw(`
		SELECT EXISTS(
			SELECT 1 FROM share_requests
			WHERE requester_id = ? AND resource_kind = ? AND resource_id = ? AND status = 'approved'
		)
	`, requesterID, kind, resourceID).Scan(&exists)
	if tx.Error != nil {
		return false, tx.Error
	}
	return exists, nil
}

// isUniqueViolation detects a PostgreSQL unique constraint error
// regardless of which driver produced it.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key value")
}
