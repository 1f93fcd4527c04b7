// Package audit emits RFC5424-formatted audit events for the sharing
// workflow: request creation, approve/deny decisions, visibility
// toggles, and rejected authorization attempts. Events go to stdout
// and, when SHAREGATE_AUDIT_DATABASE_URL is set, to a messages table.
package audit
