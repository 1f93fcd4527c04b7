package model

//go:generate go run github.com/dmarkham/enumer -type Status -trimprefix Status -transform lower -json -sql -output status_gen.go

// Status is the share request lifecycle state. PENDING may transition to
// APPROVED or DENIED; both are terminal.
type Status int

const (
	StatusPending Status = iota
	StatusApproved
	StatusDenied
)

// CanTransitionTo reports whether the state machine permits moving from
// the current status to next. Only pending requests may be decided.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && (next == StatusApproved || next == StatusDenied)
}
