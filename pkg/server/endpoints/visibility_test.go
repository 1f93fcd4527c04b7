package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openshelf/sharegate/pkg/model"
	"github.com/openshelf/sharegate/pkg/sharing"
)

func TestHandleToggleVisibility(t *testing.T) {
	private := &model.Resource{
		ResourceID: "agent-1",
		Kind:       model.KindAgent,
		OwnerID:    "owner-1",
		Name:       "Research agent",
		Visibility: model.VisibilityPrivate,
	}
	public := &model.Resource{
		ResourceID: "agent-1",
		Kind:       model.KindAgent,
		OwnerID:    "owner-1",
		Name:       "Research agent",
		Visibility: model.VisibilityPublic,
	}

	withVars := func(userID string) *http.Request {
		req := authedRequest("PATCH", "/resources/agent/agent-1/visibility", nil, userID)
		return mux.SetURLVars(req, map[string]string{"kind": "agent", "resource_id": "agent-1"})
	}

	t.Run("owner toggles private to public", func(t *testing.T) {
		resources := NewMockResourcesStore()
		resources.On("FetchResource", model.KindAgent, "agent-1").Return(private, nil)
		resources.On("ToggleVisibility", model.KindAgent, "agent-1").Return(public, nil)

		handler := handleToggleVisibility(sharing.NewVisibilityManager(resources))

		w := httptest.NewRecorder()
		handler(w, withVars("owner-1"))

		require.Equal(t, http.StatusOK, w.Code)

		var resp ResourceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "public", resp.Visibility)
		resources.AssertExpectations(t)
	})

	t.Run("non-owner gets 403 and no write happens", func(t *testing.T) {
		resources := NewMockResourcesStore()
		resources.On("FetchResource", model.KindAgent, "agent-1").Return(private, nil)

		handler := handleToggleVisibility(sharing.NewVisibilityManager(resources))

		w := httptest.NewRecorder()
		handler(w, withVars("intruder"))

		assert.Equal(t, http.StatusForbidden, w.Code)
		resources.AssertNotCalled(t, "ToggleVisibility", model.KindAgent, "agent-1")
	})

	t.Run("missing resource gets 404", func(t *testing.T) {
		resources := NewMockResourcesStore()
		resources.On("FetchResource", model.KindAgent, "agent-1").Return(nil, nil)

		handler := handleToggleVisibility(sharing.NewVisibilityManager(resources))

		w := httptest.NewRecorder()
		handler(w, withVars("owner-1"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown kind gets 400", func(t *testing.T) {
		handler := handleToggleVisibility(sharing.NewVisibilityManager(NewMockResourcesStore()))

		req := authedRequest("PATCH", "/resources/widget/agent-1/visibility", nil, "owner-1")
		req = mux.SetURLVars(req, map[string]string{"kind": "widget", "resource_id": "agent-1"})
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
