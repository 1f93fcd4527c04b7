// Package identity carries the authenticated principal through the
// request context.
package identity
