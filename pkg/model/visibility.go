package model

//go:generate go run github.com/dmarkham/enumer -type Visibility -trimprefix Visibility -transform lower -json -sql -output visibility_gen.go

// Visibility controls resource discoverability. PUBLIC resources appear
// in search; PRIVATE resources are readable only by the owner and by
// requesters with an approved share request.
type Visibility int

const (
	VisibilityPrivate Visibility = iota
	VisibilityPublic
)

// Toggled returns the opposite visibility.
func (v Visibility) Toggled() Visibility {
	if v == VisibilityPrivate {
		return VisibilityPublic
	}
	return VisibilityPrivate
}
