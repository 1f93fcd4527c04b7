package endpoints

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/openshelf/sharegate/pkg/identity"
	"github.com/openshelf/sharegate/pkg/model"
	"github.com/openshelf/sharegate/pkg/server"
	"github.com/openshelf/sharegate/pkg/sharing"
)

// ResourceResponse represents a resource in the API response
type ResourceResponse struct {
	ResourceID  string `json:"resource_id"`
	Kind        string `json:"kind"`
	OwnerID     string `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Visibility  string `json:"visibility"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// RegisterVisibilityEndpoints registers the visibility toggle endpoint
func RegisterVisibilityEndpoints(s *server.Server) {
	manager := s.Visibility

	visibilityRouter := s.Router.PathPrefix("/resources/{kind}/{resource_id}/visibility").Subrouter()
	visibilityRouter.Use(s.Authenticator.Middleware)

	visibilityRouter.HandleFunc("", handleToggleVisibility(manager)).Methods("PATCH")
}

func handleToggleVisibility(manager *sharing.VisibilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		vars := mux.Vars(r)
		kind, err := model.ResourceKindString(vars["kind"])
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Unknown resource kind: "+vars["kind"])
			return
		}

		resource, err := manager.ToggleVisibility(id.UserID, kind, vars["resource_id"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, resourceResponse(resource))
	}
}

func resourceResponse(r *model.Resource) ResourceResponse {
	return ResourceResponse{
		ResourceID:  r.ResourceID,
		Kind:        r.Kind.String(),
		OwnerID:     r.OwnerID,
		Name:        r.Name,
		Description: r.Description,
		Visibility:  r.Visibility.String(),
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
