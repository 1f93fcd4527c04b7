package endpoints

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/openshelf/sharegate/pkg/identity"
	"github.com/openshelf/sharegate/pkg/model"
	"github.com/openshelf/sharegate/pkg/server"
	"github.com/openshelf/sharegate/pkg/server/store"
	"github.com/openshelf/sharegate/pkg/sharing"
)

// CreateShareRequestBody is the request body for POST /share-requests
type CreateShareRequestBody struct {
	ResourceKind string `json:"resource_kind"`
	ResourceID   string `json:"resource_id"`
}

// ShareRequestResponse represents a share request in the API response
type ShareRequestResponse struct {
	RequestID    string `json:"request_id"`
	ResourceKind string `json:"resource_kind"`
	ResourceID   string `json:"resource_id"`
	RequesterID  string `json:"requester_id"`
	OwnerID      string `json:"owner_id"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	DecidedAt    string `json:"decided_at,omitempty"`
}

// PendingRequestResponse is a share request enriched with requester and
// resource details for the owner's inbox
type PendingRequestResponse struct {
	ShareRequestResponse
	RequesterName  string `json:"requester_name"`
	RequesterEmail string `json:"requester_email"`
	ResourceName   string `json:"resource_name"`
}

// AccessResponse represents the response from the access check endpoint
type AccessResponse struct {
	HasAccess bool `json:"has_access"`
	IsOwner   bool `json:"is_owner"`
}

// RegisterShareRequestEndpoints registers the share request lifecycle endpoints
func RegisterShareRequestEndpoints(s *server.Server) {
	engine := s.Engine

	requestsRouter := s.Router.PathPrefix("/share-requests").Subrouter()
	requestsRouter.Use(s.Authenticator.Middleware)

	requestsRouter.HandleFunc("", handleCreateShareRequest(engine)).Methods("POST")
	requestsRouter.HandleFunc("/pending", handlePendingRequests(engine)).Methods("GET")
	requestsRouter.HandleFunc("/{request_id}/approve", handleDecision(engine, model.StatusApproved)).Methods("POST")
	requestsRouter.HandleFunc("/{request_id}/deny", handleDecision(engine, model.StatusDenied)).Methods("POST")

	sharedRouter := s.Router.PathPrefix("/shared-resources").Subrouter()
	sharedRouter.Use(s.Authenticator.Middleware)
	sharedRouter.HandleFunc("", handleSharedResources(engine)).Methods("GET")

	accessRouter := s.Router.PathPrefix("/resources/{kind}/{resource_id}/access").Subrouter()
	accessRouter.Use(s.Authenticator.Middleware)
	accessRouter.HandleFunc("", handleCheckAccess(engine)).Methods("GET")
}

func handleCreateShareRequest(engine *sharing.ShareRequestEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		var body CreateShareRequestBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			respondWithError(w, http.StatusBadRequest, "Malformed request body")
			return
		}

		kind, err := model.ResourceKindString(body.ResourceKind)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Unknown resource kind: "+body.ResourceKind)
			return
		}
		if body.ResourceID == "" {
			respondWithError(w, http.StatusBadRequest, "resource_id is required")
			return
		}

		req, err := engine.CreateRequest(id.UserID, kind, body.ResourceID)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, shareRequestResponse(req))
	}
}

func handlePendingRequests(engine *sharing.ShareRequestEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		pending, err := engine.PendingRequests(id.UserID)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		responses := make([]PendingRequestResponse, 0, len(pending))
		for i := range pending {
			responses = append(responses, pendingRequestResponse(&pending[i]))
		}
		respondWithJSON(w, http.StatusOK, responses)
	}
}

func handleDecision(engine *sharing.ShareRequestEngine, status model.Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		requestID := mux.Vars(r)["request_id"]

		var req *model.ShareRequest
		var err error
		if status == model.StatusApproved {
			req, err = engine.Approve(id.UserID, requestID)
		} else {
			req, err = engine.Deny(id.UserID, requestID)
		}
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, shareRequestResponse(req))
	}
}

func handleSharedResources(engine *sharing.ShareRequestEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.Get(r.Context())
		if !ok {
			respondWithError(w, http.StatusUnauthorized, "Unable to determine identity")
			return
		}

		resources, err := engine.SharedResources(id.UserID)
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		responses := make([]ResourceResponse, 0, len(resources))
		for i := range resources {
			responses = append(responses, resourceResponse(&resources[i]))
		}
		respondWithJSON(w, http.StatusOK, responses)
	}
}

func handleCheckAccess(engine *sharing.ShareRequestEngine) http.HandlerFunc {
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

		hasAccess, isOwner, err := engine.CheckAccess(id.UserID, kind, vars["resource_id"])
		if err != nil {
			respondWithDomainError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, AccessResponse{HasAccess: hasAccess, IsOwner: isOwner})
	}
}

func shareRequestResponse(req *model.ShareRequest) ShareRequestResponse {
	resp := ShareRequestResponse{
		RequestID:    req.RequestID,
		ResourceKind: req.ResourceKind.String(),
		ResourceID:   req.ResourceID,
		RequesterID:  req.RequesterID,
		OwnerID:      req.OwnerID,
		Status:       req.Status.String(),
		CreatedAt:    req.CreatedAt.UTC().Format(time.RFC3339),
	}
	if req.DecidedAt != nil {
		resp.DecidedAt = req.DecidedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func pendingRequestResponse(req *store.PendingRequest) PendingRequestResponse {
	return PendingRequestResponse{
		ShareRequestResponse: shareRequestResponse(&req.ShareRequest),
		RequesterName:        req.RequesterName,
		RequesterEmail:       req.RequesterEmail,
		ResourceName:         req.ResourceName,
	}
}
