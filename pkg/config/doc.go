// Package config provides configuration management for the sharing service.
//
// This package handles loading and validating server configuration from a
// YAML file and environment variables.
//
// # Configuration Sources
//
// Configuration is loaded from:
//
//   - Environment variables (primary)
//   - /etc/sharegate/sharegate.yml (optional, path overridable with
//     SHAREGATE_CONFIG_PATH)
//
// # Key Configuration Options
//
//   - SHAREGATE_PORT: Server listen port
//   - SHAREGATE_SEARCH_RESULT_LIMIT: Cap on search results
//   - SHAREGATE_TOKEN_TTL: Lifetime of minted tokens in seconds
//   - DATABASE_URL: Database connection
package config
