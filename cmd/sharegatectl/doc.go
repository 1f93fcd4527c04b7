// Package main provides the sharegatectl CLI for the sharegate resource
// sharing service.
//
// Sharegate mediates access to user-owned resources (agents, notes,
// conversations, tasks, teams): owners toggle visibility between private
// and public, other users request access to private resources, and
// owners approve or deny those requests.
//
// # Architecture
//
// The service is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: Store interfaces and GORM implementations
//   - pkg/sharing: Share request engine, visibility, discovery
//   - pkg/model: Database models
//   - pkg/db: Database connection utilities
//   - pkg/audit: Audit logging
//   - pkg/config: Configuration management
//
// # Quick Start
//
//	# Generate a token signing key
//	sharegatectl token-key generate > token_key
//	export SHAREGATE_TOKEN_KEY=$(cat token_key)
//
//	# Run database migrations
//	sharegatectl db migrate
//
//	# Start the server
//	sharegatectl server
//
//	# Mint a development token
//	sharegatectl token user-1
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - SHAREGATE_TOKEN_KEY: Base64-encoded HMAC key for bearer tokens
//   - SHAREGATE_LOG_LEVEL: Set to "debug" for SQL query logging
//   - SHAREGATE_PORT: Server port (default: 8080)
package main
