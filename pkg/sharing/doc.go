// Package sharing implements the share request workflow: the state
// machine for requests (pending, approved, denied), the visibility
// toggle, derived access grants, and the discovery queries over the
// public surface.
//
// The package holds no state between calls. All reads hit the stores
// so every decision acts on current persisted status, and the racy
// invariants (duplicate pending requests, double decisions) land on
// atomic conditional writes inside the store layer.
package sharing
