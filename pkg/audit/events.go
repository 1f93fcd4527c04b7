package audit

import "fmt"

// RequestEvent records the creation of a share request.
type RequestEvent struct {
	RequestID    string
	RequesterID  string
	OwnerID      string
	ResourceKind string
	ResourceID   string
}

func (e RequestEvent) MessageID() string {
	return "share-request"
}

func (e RequestEvent) Message() string {
	return fmt.Sprintf("%s requested access to %s/%s owned by %s",
		e.RequesterID, e.ResourceKind, e.ResourceID, e.OwnerID)
}

func (e RequestEvent) Severity() Severity {
	return SeverityInfo
}

func (e RequestEvent) Facility() int {
	return FacilityAuth
}

func (e RequestEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDShare: {
			"request": e.RequestID,
			"owner":   e.OwnerID,
		},
		SDIDSubject: {
			"user":     e.RequesterID,
			"kind":     e.ResourceKind,
			"resource": e.ResourceID,
		},
	}
}

// DecisionEvent records an approve or deny decision on a share request.
type DecisionEvent struct {
	RequestID   string
	OwnerID     string
	RequesterID string
	Approved    bool
}

func (e DecisionEvent) MessageID() string {
	return "share-decision"
}

func (e DecisionEvent) Message() string {
	verb := "denied"
	if e.Approved {
		verb = "approved"
	}
	return fmt.Sprintf("%s %s share request %s from %s", e.OwnerID, verb, e.RequestID, e.RequesterID)
}

func (e DecisionEvent) Severity() Severity {
	return SeverityInfo
}

func (e DecisionEvent) Facility() int {
	return FacilityAuth
}

func (e DecisionEvent) StructuredData() map[string]map[string]string {
	decision := "denied"
	if e.Approved {
		decision = "approved"
	}
	return map[string]map[string]string{
		SDIDShare: {
			"request":  e.RequestID,
			"decision": decision,
		},
		SDIDSubject: {
			"user": e.OwnerID,
		},
	}
}

// VisibilityEvent records a visibility toggle.
type VisibilityEvent struct {
	OwnerID      string
	ResourceKind string
	ResourceID   string
	Visibility   string
}

func (e VisibilityEvent) MessageID() string {
	return "visibility"
}

func (e VisibilityEvent) Message() string {
	return fmt.Sprintf("%s set %s/%s to %s", e.OwnerID, e.ResourceKind, e.ResourceID, e.Visibility)
}

func (e VisibilityEvent) Severity() Severity {
	return SeverityInfo
}

func (e VisibilityEvent) Facility() int {
	return FacilityAuth
}

func (e VisibilityEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDShare: {
			"visibility": e.Visibility,
		},
		SDIDSubject: {
			"user":     e.OwnerID,
			"kind":     e.ResourceKind,
			"resource": e.ResourceID,
		},
	}
}

// ForbiddenEvent records an authorization failure: a caller attempted
// an owner-only operation on an entity they do not own.
type ForbiddenEvent struct {
	UserID    string
	Operation string
	EntityID  string
}

func (e ForbiddenEvent) MessageID() string {
	return "forbidden"
}

func (e ForbiddenEvent) Message() string {
	return fmt.Sprintf("%s was refused %s on %s", e.UserID, e.Operation, e.EntityID)
}

func (e ForbiddenEvent) Severity() Severity {
	return SeverityWarning
}

func (e ForbiddenEvent) Facility() int {
	return FacilityAuthPriv
}

func (e ForbiddenEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDShare: {
			"operation": e.Operation,
			"entity":    e.EntityID,
		},
		SDIDSubject: {
			"user": e.UserID,
		},
	}
}
