package sharing

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/openshelf/sharegate/pkg/audit"
	"github.com/openshelf/sharegate/pkg/model"
	"github.com/openshelf/sharegate/pkg/server/store"
)

// ShareRequestEngine drives the share request state machine:
//
//	PENDING --approve--> APPROVED (terminal)
//	PENDING --deny-----> DENIED   (terminal)
//
// An APPROVED request is the grant: read access is derived by querying
// approved requests, never written separately.
type ShareRequestEngine struct {
	resources store.ResourcesStore
	requests  store.ShareRequestsStore

	now   func() time.Time
	newID func() string
}

// NewShareRequestEngine creates a ShareRequestEngine.
func NewShareRequestEngine(resources store.ResourcesStore, requests store.ShareRequestsStore) *ShareRequestEngine {
	return &ShareRequestEngine{
		resources: resources,
		requests:  requests,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// CreateRequest records a new pending request by callerID for the given
// resource. Private resources are the only valid target: owners cannot
// request their own resources, and public resources need no approval.
func (e *ShareRequestEngine) CreateRequest(callerID string, kind model.ResourceKind, resourceID string) (*model.ShareRequest, error) {
	resource, err := e.resources.FetchResource(kind, resourceID)
	if err != nil {
		return nil, StorageUnavailable(err)
	}
	if resource == nil {
		return nil, NotFound("resource %s/%s not found", kind, resourceID)
	}
	if resource.IsOwnedBy(callerID) {
		return nil, InvalidOperation("cannot request access to your own resource")
	}
	if resource.Visibility == model.VisibilityPublic {
		return nil, InvalidOperation("resource %s/%s is public; no approval needed", kind, resourceID)
	}

	req := &model.ShareRequest{
		RequestID:    e.newID(),
		ResourceKind: kind,
		ResourceID:   resourceID,
		RequesterID:  callerID,
		OwnerID:      resource.OwnerID,
		Status:       model.StatusPending,
		CreatedAt:    e.now().UTC(),
	}

	if err := e.requests.CreateRequest(req); err != nil {
		if errors.Is(err, store.ErrDuplicatePending) {
			return nil, Conflict("a pending request already exists for %s/%s", kind, resourceID)
		}
		return nil, StorageUnavailable(err)
	}

	audit.Log(audit.RequestEvent{
		RequestID:    req.RequestID,
		RequesterID:  callerID,
		OwnerID:      resource.OwnerID,
		ResourceKind: kind.String(),
		ResourceID:   resourceID,
	})
	return req, nil
}

// PendingRequests returns the pending requests addressed to callerID as
// owner, oldest first, enriched with requester and resource names.
func (e *ShareRequestEngine) PendingRequests(callerID string) ([]store.PendingRequest, error) {
	pending, err := e.requests.ListPendingForOwner(callerID)
	if err != nil {
		return nil, StorageUnavailable(err)
	}
	return pending, nil
}

// Approve moves a pending request to APPROVED. This implicitly creates
// the access grant for the requester.
func (e *ShareRequestEngine) Approve(callerID, requestID string) (*model.ShareRequest, error) {
	return e.decide(callerID, requestID, model.StatusApproved)
}

// Deny moves a pending request to DENIED.
func (e *ShareRequestEngine) Deny(callerID, requestID string) (*model.ShareRequest, error) {
	return e.decide(callerID, requestID, model.StatusDenied)
}

func (e *ShareRequestEngine) decide(callerID, requestID string, status model.Status) (*model.ShareRequest, error) {
	req, err := e.requests.FetchRequest(requestID)
	if err != nil {
		return nil, StorageUnavailable(err)
	}
	if req == nil {
		return nil, NotFound("share request %s not found", requestID)
	}
	// Ownership is checked before status so a non-owner learns nothing
	// about the request's state.
	if req.OwnerID != callerID {
		audit.Log(audit.ForbiddenEvent{
			UserID:    callerID,
			Operation: "decide-share-request",
			EntityID:  requestID,
		})
		return nil, Forbidden("only the resource owner may decide request %s", requestID)
	}
	if !req.Status.CanTransitionTo(status) {
		return nil, InvalidOperation("request %s is already %s", requestID, req.Status)
	}

	decidedAt := e.now().UTC()
	applied, err := e.requests.Decide(requestID, status, decidedAt)
	if err != nil {
		return nil, StorageUnavailable(err)
	}
	if !applied {
		// Lost a race against a concurrent decision.
		return nil, InvalidOperation("request %s has already been decided", requestID)
	}

	req.Status = status
	req.DecidedAt = &decidedAt

	audit.Log(audit.DecisionEvent{
		RequestID:   requestID,
		OwnerID:     callerID,
		RequesterID: req.RequesterID,
		Approved:    status == model.StatusApproved,
	})
	return req, nil
}

// SharedResources returns the current state of every resource shared
// with callerID through an approved request. Resources deleted since
// approval are silently omitted.
func (e *ShareRequestEngine) SharedResources(callerID string) ([]model.Resource, error) {
	resources, err := e.resources.SharedWith(callerID)
	if err != nil {
		return nil, StorageUnavailable(err)
	}
	return resources, nil
}

// CheckAccess reports whether callerID may read the resource: owners
// always may, public resources are readable by anyone authenticated,
// and otherwise access derives from an approved share request.
func (e *ShareRequestEngine) CheckAccess(callerID string, kind model.ResourceKind, resourceID string) (hasAccess, isOwner bool, err error) {
	resource, err := e.resources.FetchResource(kind, resourceID)
	if err != nil {
		return false, false, StorageUnavailable(err)
	}
	if resource == nil {
		return false, false, NotFound("resource %s/%s not found", kind, resourceID)
	}
	if resource.IsOwnedBy(callerID) {
		return true, true, nil
	}
	if resource.Visibility == model.VisibilityPublic {
		return true, false, nil
	}

	approved, err := e.requests.HasApproved(callerID, kind, resourceID)
	if err != nil {
		return false, false, StorageUnavailable(err)
	}
	return approved, false, nil
}
