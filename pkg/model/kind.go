package model

//go:generate go run github.com/dmarkham/enumer -type ResourceKind -trimprefix Kind -transform lower -json -sql -output kind_gen.go

// ResourceKind tags the subsystem a resource belongs to. The sharing
// workflow treats all kinds uniformly; the kind only scopes resource
// identifiers, which are unique per (kind, id).
type ResourceKind int

const (
	KindAgent ResourceKind = iota
	KindNote
	KindConversation
	KindTask
	KindTeam
)
