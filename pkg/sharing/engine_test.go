package sharing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/sharegate/pkg/model"
	"github.com/openshelf/sharegate/pkg/server/store"
)

func fixedEngine(resources store.ResourcesStore, requests store.ShareRequestsStore) *ShareRequestEngine {
	engine := NewShareRequestEngine(resources, requests)
	engine.now = func() time.Time { return time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC) }
	engine.newID = func() string { return "req-fixed" }
	return engine
}

func privateNote() *model.Resource {
	return &model.Resource{
		ResourceID: "note-1",
		Kind:       model.KindNote,
		OwnerID:    "owner-1",
		Name:       "Design notes",
		Visibility: model.VisibilityPrivate,
	}
}

func TestCreateRequest(t *testing.T) {
	t.Run("records a pending request with snapshotted owner", func(t *testing.T) {
		resources := NewMockResourcesStore()
		requests := NewMockShareRequestsStore()
		resources.On("FetchResource", model.KindNote, "note-1").Return(privateNote(), nil)
		requests.On("CreateRequest", mock.AnythingOfType("*model.ShareRequest")).Return(nil)

		req, err := fixedEngine(resources, requests).CreateRequest("requester-1", model.KindNote, "note-1")

		require.NoError(t, err)
		assert.Equal(t, "req-fixed", req.RequestID)
		assert.Equal(t, "owner-1", req.OwnerID)
		assert.Equal(t, "requester-1", req.RequesterID)
		assert.Equal(t, model.StatusPending, req.Status)
		assert.Equal(t, time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC), req.CreatedAt)
		assert.Nil(t, req.DecidedAt)
		requests.AssertExpectations(t)
	})

	t.Run("missing resource is NotFound", func(t *testing.T) {
		resources := NewMockResourcesStore()
		resources.On("FetchResource", model.KindNote, "ghost").Return(nil, nil)

		_, err := fixedEngine(resources, NewMockShareRequestsStore()).CreateRequest("requester-1", model.KindNote, "ghost")

		assert.True(t, IsKind(err, KindNotFound))
	})

	t.Run("own resource is InvalidOperation", func(t *testing.T) {
		resources := NewMockResourcesStore()
		resources.On("FetchResource", model.KindNote, "note-1").Return(privateNote(), nil)

		_, err := fixedEngine(resources, NewMockShareRequestsStore()).CreateRequest("owner-1", model.KindNote, "note-1")

		assert.True(t, IsKind(err, KindInvalidOperation))
	})

	t.Run("public resource is InvalidOperation", func(t *testing.T) {
		public := privateNote()
		public.Visibility = model.VisibilityPublic
		resources := NewMockResourcesStore()
		resources.On("FetchResource", model.KindNote, "note-1").Return(public, nil)

		_, err := fixedEngine(resources, NewMockShareRequestsStore()).CreateRequest("requester-1", model.KindNote, "note-1")

		assert.True(t, IsKind(err, KindInvalidOperation))
	})

	t.Run("duplicate pending is Conflict", func(t *testing.T) {
		resources := NewMockResourcesStore()
		requests := NewMockShareRequestsStore()
		resources.On("FetchResource", model.KindNote, "note-1").Return(privateNote(), nil)
		requests.On("CreateRequest", mock.AnythingOfType("*model.ShareRequest")).Return(store.ErrDuplicatePending)

		_, err := fixedEngine(resources, requests).CreateRequest("requester-1", model.KindNote, "note-1")

		assert.True(t, IsKind(err, KindConflict))
	})

	t.Run("store failure is StorageUnavailable", func(t *testing.T) {
		resources := NewMockResourcesStore()
		resources.On("FetchResource", model.KindNote, "note-1").Return(nil, errors.New("connection reset"))

		_, err := fixedEngine(resources, NewMockShareRequestsStore()).CreateRequest("requester-1", model.KindNote, "note-1")

		assert.True(t, IsKind(err, KindStorageUnavailable))
	})
}

func TestDecide(t *testing.T) {
	pending := func() *model.ShareRequest {
		return &model.ShareRequest{
			RequestID:    "req-1",
			ResourceKind: model.KindNote,
			ResourceID:   "note-1",
			RequesterID:  "requester-1",
			OwnerID:      "owner-1",
			Status:       model.StatusPending,
			CreatedAt:    time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC),
		}
	}

	t.Run("approve stamps status and decision time", func(t *testing.T) {
		requests := NewMockShareRequestsStore()
		requests.On("FetchRequest", "req-1").Return(pending(), nil)
		requests.On("Decide", "req-1", model.StatusApproved, time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)).Return(true, nil)

		req, err := fixedEngine(NewMockResourcesStore(), requests).Approve("owner-1", "req-1")

		require.NoError(t, err)
		assert.Equal(t, model.StatusApproved, req.Status)
		require.NotNil(t, req.DecidedAt)
		assert.Equal(t, time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC), *req.DecidedAt)
	})

	t.Run("deny stamps status", func(t *testing.T) {
		requests := NewMockShareRequestsStore()
		requests.On("FetchRequest", "req-1").Return(pending(), nil)
		requests.On("Decide", "req-1", model.StatusDenied, mock.AnythingOfType("time.Time")).Return(true, nil)

		req, err := fixedEngine(NewMockResourcesStore(), requests).Deny("owner-1", "req-1")

		require.NoError(t, err)
		assert.Equal(t, model.StatusDenied, req.Status)
	})

	t.Run("non-owner is Forbidden even on a decided request", func(t *testing.T) {
		decided := pending()
		decided.Status = model.StatusApproved

		requests := NewMockShareRequestsStore()
		requests.On("FetchRequest", "req-1").Return(decided, nil)

		_, err := fixedEngine(NewMockResourcesStore(), requests).Approve("intruder", "req-1")

		// Ownership wins over state, so strangers cannot probe request status
		assert.True(t, IsKind(err, KindForbidden))
	})

	t.Run("already decided is InvalidOperation", func(t *testing.T) {
		decided := pending()
		decided.Status = model.StatusDenied

		requests := NewMockShareRequestsStore()
		requests.On("FetchRequest", "req-1").Return(decided, nil)

		_, err := fixedEngine(NewMockResourcesStore(), requests).Approve("owner-1", "req-1")

		assert.True(t, IsKind(err, KindInvalidOperation))
	})

	t.Run("losing the decide race is InvalidOperation", func(t *testing.T) {
		requests := NewMockShareRequestsStore()
		requests.On("FetchRequest", "req-1").Return(pending(), nil)
		requests.On("Decide", "req-1", model.StatusApproved, mock.AnythingOfType("time.Time")).Return(false, nil)

		_, err := fixedEngine(NewMockResourcesStore(), requests).Approve("owner-1", "req-1")

		assert.True(t, IsKind(err, KindInvalidOperation))
	})

	t.Run("missing request is NotFound", func(t *testing.T) {
		requests := NewMockShareRequestsStore()
		requests.On("FetchRequest", "ghost").Return(nil, nil)

		_, err := fixedEngine(NewMockResourcesStore(), requests).Approve("owner-1", "ghost")

		assert.True(t, IsKind(err, KindNotFound))
	})
}

func TestPendingRequests(t *testing.T) {
	requests := NewMockShareRequestsStore()
	requests.On("ListPendingForOwner", "owner-1").Return([]store.PendingRequest{
		{
			ShareRequest:  model.ShareRequest{RequestID: "req-1", Status: model.StatusPending},
			RequesterName: "Ada",
			ResourceName:  "Design notes",
		},
	}, nil)

	pending, err := fixedEngine(NewMockResourcesStore(), requests).PendingRequests("owner-1")

	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Ada", pending[0].RequesterName)
}

func TestCheckAccess(t *testing.T) {
	t.Run("owner always has access", func(t *testing.T) {
		resources := NewMockResourcesStore()
		resources.On("FetchResource", model.KindNote, "note-1").Return(privateNote(), nil)

		hasAccess, isOwner, err := fixedEngine(resources, NewMockShareRequestsStore()).CheckAccess("owner-1", model.KindNote, "note-1")

		require.NoError(t, err)
		assert.True(t, hasAccess)
		assert.True(t, isOwner)
	})

	t.Run("anyone reads a public resource", func(t *testing.T) {
		public := privateNote()
		public.Visibility = model.VisibilityPublic
		resources := NewMockResourcesStore()
		resources.On("FetchResource", model.KindNote, "note-1").Return(public, nil)

		hasAccess, isOwner, err := fixedEngine(resources, NewMockShareRequestsStore()).CheckAccess("stranger", model.KindNote, "note-1")

		require.NoError(t, err)
		assert.True(t, hasAccess)
		assert.False(t, isOwner)
	})

	t.Run("private access derives from an approved request", func(t *testing.T) {
		resources := NewMockResourcesStore()
		requests := NewMockShareRequestsStore()
		resources.On("FetchResource", model.KindNote, "note-1").Return(privateNote(), nil)
		requests.On("HasApproved", "requester-1", model.KindNote, "note-1").Return(true, nil)

		hasAccess, isOwner, err := fixedEngine(resources, requests).CheckAccess("requester-1", model.KindNote, "note-1")

		require.NoError(t, err)
		assert.True(t, hasAccess)
		assert.False(t, isOwner)
	})

	t.Run("no approval means no access", func(t *testing.T) {
		resources := NewMockResourcesStore()
		requests := NewMockShareRequestsStore()
		resources.On("FetchResource", model.KindNote, "note-1").Return(privateNote(), nil)
		requests.On("HasApproved", "stranger", model.KindNote, "note-1").Return(false, nil)

		hasAccess, _, err := fixedEngine(resources, requests).CheckAccess("stranger", model.KindNote, "note-1")

		require.NoError(t, err)
		assert.False(t, hasAccess)
	})
}

func TestSharedResources(t *testing.T) {
	resources := NewMockResourcesStore()
	resources.On("SharedWith", "requester-1").Return([]model.Resource{*privateNote()}, nil)

	shared, err := fixedEngine(resources, NewMockShareRequestsStore()).SharedResources("requester-1")

	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.Equal(t, "note-1", shared[0].ResourceID)
}
