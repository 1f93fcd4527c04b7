// Package server provides the HTTP server for the sharing API.
//
// This package implements the HTTP server that handles all sharing and
// discovery requests. It uses gorilla/mux for routing and provides
// middleware for authentication.
//
// # Server Setup
//
//	srv := server.NewServer(db, cfg, tokenKey, host, port)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds the router, database handle, the store
// interfaces backed by GORM, and the domain services built on them:
//
//   - Visibility: owner-only visibility toggling
//   - Engine: share request lifecycle (create, approve, deny)
//   - Discovery: user search and public resource browsing
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers all sharing API endpoints including:
//
//   - /share-requests - Create share requests
//   - /share-requests/pending - List pending requests for the owner
//   - /share-requests/{id}/approve, /deny - Decide requests
//   - /shared-resources - Resources shared with the caller
//   - /resources/{kind}/{id}/visibility - Toggle visibility
//   - /resources/{kind}/{id}/access - Check access
//   - /search/users - User search
//   - /users/{id}/public-resources - A user's public resources
//   - /search/public - Public resource search
package server
