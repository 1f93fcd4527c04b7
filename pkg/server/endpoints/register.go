package endpoints

import (
	"github.com/openshelf/sharegate/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterDiscoveryEndpoints(srv)
	RegisterShareRequestEndpoints(srv)
	RegisterVisibilityEndpoints(srv)
	RegisterStatusEndpoints(srv)
}
