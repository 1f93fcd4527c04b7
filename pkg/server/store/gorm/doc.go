// Package gorm implements the store interfaces against PostgreSQL via
// GORM. The invariants of the sharing workflow (one pending request per
// requester and resource, terminal decisions) are enforced here with a
// partial unique index and conditional updates rather than in-process
// locks, so concurrent duplicate calls resolve at the database.
package gorm
