package store

import (
	"errors"
	"time"

	"github.com/openshelf/sharegate/pkg/model"
)

// ErrDuplicatePending is returned by CreateRequest when a pending
// request already exists for the same (requester, kind, resource). The
// database enforces this with a partial unique index, so concurrent
// duplicate creations cannot both succeed.
var ErrDuplicatePending = errors.New("a pending request already exists for this resource")

// PendingRequest is a share request enriched with the requester's
// directory entry and the resource name, resolved at read time. A
// deleted resource leaves ResourceName empty.
type PendingRequest struct {
	model.ShareRequest
	RequesterName  string
	RequesterEmail string
	ResourceName   string
}

// ShareRequestsStore abstracts share request persistence. Requests are
// insert-only plus a single conditional status update; they are never
// deleted.
type ShareRequestsStore interface {
	// CreateRequest inserts a new pending request. Returns
	// ErrDuplicatePending on a uniqueness violation.
	CreateRequest(req *model.ShareRequest) error

	// FetchRequest retrieves a request by ID. Returns nil with no error
	// when absent.
	FetchRequest(requestID string) (*model.ShareRequest, error)

	// ListPendingForOwner returns pending requests addressed to the
	// owner, oldest first.
	ListPendingForOwner(ownerID string) ([]PendingRequest, error)

	// Decide moves a request from pending to the given terminal status,
	// stamping decidedAt. The update only applies while the stored
	// status is still pending; applied is false otherwise, so a
	// concurrent double-decide cannot succeed twice.
	Decide(requestID string, status model.Status, decidedAt time.Time) (applied bool, err error)

	// HasApproved reports whether an approved request exists for the
	// requester on the given resource.
	HasApproved(requesterID string, kind model.ResourceKind, resourceID string) (bool, error)
}
