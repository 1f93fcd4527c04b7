package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/openshelf/sharegate/pkg/identity"
	"github.com/openshelf/sharegate/pkg/model"
	"github.com/openshelf/sharegate/pkg/server"
	"github.com/openshelf/sharegate/pkg/server/store"
	"github.com/openshelf/sharegate/pkg/sharing"
)

// UserResponse represents a user in the API response
type UserResponse struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// PublicResourceResponse is a resource with its owner's display name
type PublicResourceResponse struct {
	ResourceResponse
	OwnerName string `json:"owner_name"`
}

// RegisterDiscoveryEndpoints registers the user search and public
// resource browsing endpoints
func RegisterDiscoveryEndpoints(s *server.Server) {
	discovery := s.Discovery

	searchRouter := s.Router.PathPrefix("/search").Subrouter()
	searchRouter.Use(s.Authenticator.Middleware)
	searchRouter.HandleFunc("/users", handleSearchUsers(discovery)).Methods("GET")
	searchRouter.HandleFunc("/public", handleSearchPublic(discovery)).Methods("GET")

	usersRouter := s.Router.PathPrefix("/users").Subrouter()
	usersRouter.Use(s.Authenticator.Middleware)
	usersRouter.HandleFunc("/{user_id}/public-resources", handleUserPublicResources(discovery)).Methods("GET")
}

func handleSearchUsers(discovery *sharing.DiscoveryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		users, err := discovery.SearchUsers(id.UserID, r.URL.Query().Get("q"))
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		responses := make([]UserResponse, 0, len(users))
		for i := range users {
			responses = append(responses, userResponse(&users[i]))
		}
		respondWithJSON(w, http.StatusOK, responses)
	}
}

func handleUserPublicResources(discovery *sharing.DiscoveryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		resources, err := discovery.UserPublicResources(id.UserID, mux.Vars(r)["user_id"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, publicResourceResponses(resources))
	}
}

func handleSearchPublic(discovery *sharing.DiscoveryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		resources, err := discovery.SearchPublic(id.UserID, r.URL.Query().Get("q"))
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, publicResourceResponses(resources))
	}
}

func userResponse(u *model.User) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
	}
}

func publicResourceResponses(resources []store.PublicResource) []PublicResourceResponse {
	responses := make([]PublicResourceResponse, 0, len(resources))
	for i := range resources {
		responses = append(responses, PublicResourceResponse{
			ResourceResponse: resourceResponse(&resources[i].Resource),
			OwnerName:        resources[i].OwnerName,
		})
	}
	return responses
}
