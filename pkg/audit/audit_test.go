package audit

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	event := RequestEvent{
		RequestID:    "req-1",
		RequesterID:  "user-2",
		OwnerID:      "user-1",
		ResourceKind: "note",
		ResourceID:   "note-1",
	}

	logger.Log(event)

	output := buf.String()

	// Check RFC5424 format components
	if !strings.Contains(output, "sharegate") {
		t.Error("Expected app name 'sharegate' in output")
	}
	if !strings.Contains(output, "share-request") {
		t.Error("Expected message ID 'share-request' in output")
	}
	if !strings.Contains(output, "req-1") {
		t.Error("Expected request ID in output")
	}
	if !strings.Contains(output, "user-2") {
		t.Error("Expected requester ID in output")
	}
	if !strings.HasPrefix(output, "<") {
		t.Error("Expected output to begin with a PRI value")
	}
}

func TestRequestEvent(t *testing.T) {
	event := RequestEvent{
		RequestID:    "req-1",
		RequesterID:  "user-2",
		OwnerID:      "user-1",
		ResourceKind: "agent",
		ResourceID:   "agent-9",
	}

	if event.MessageID() != "share-request" {
		t.Errorf("MessageID() = %v, want 'share-request'", event.MessageID())
	}
	if !strings.Contains(event.Message(), "requested access") {
		t.Errorf("Message() = %q, want to contain 'requested access'", event.Message())
	}
	if event.Severity() != SeverityInfo {
		t.Errorf("Severity() = %v, want SeverityInfo", event.Severity())
	}
	if event.Facility() != FacilityAuth {
		t.Errorf("Facility() = %v, want FacilityAuth", event.Facility())
	}
}

func TestDecisionEvent(t *testing.T) {
	tests := []struct {
		name    string
		event   DecisionEvent
		wantMsg string
	}{
		{
			name: "approved",
			event: DecisionEvent{
				RequestID:   "req-1",
				OwnerID:     "user-1",
				RequesterID: "user-2",
				Approved:    true,
			},
			wantMsg: "approved",
		},
		{
			name: "denied",
			event: DecisionEvent{
				RequestID:   "req-1",
				OwnerID:     "user-1",
				RequesterID: "user-2",
				Approved:    false,
			},
			wantMsg: "denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.event.Message(), tt.wantMsg) {
				t.Errorf("Message() = %q, want to contain %q", tt.event.Message(), tt.wantMsg)
			}
			if tt.event.MessageID() != "share-decision" {
				t.Errorf("MessageID() = %v, want 'share-decision'", tt.event.MessageID())
			}
			sd := tt.event.StructuredData()
			if sd[SDIDShare]["decision"] != tt.wantMsg {
				t.Errorf("StructuredData share.decision = %v, want %q", sd[SDIDShare]["decision"], tt.wantMsg)
			}
		})
	}
}

func TestVisibilityEvent(t *testing.T) {
	event := VisibilityEvent{
		OwnerID:      "user-1",
		ResourceKind: "note",
		ResourceID:   "note-1",
		Visibility:   "public",
	}

	if event.MessageID() != "visibility" {
		t.Errorf("MessageID() = %v, want 'visibility'", event.MessageID())
	}
	if !strings.Contains(event.Message(), "set note/note-1 to public") {
		t.Errorf("Message() = %q, want to contain 'set note/note-1 to public'", event.Message())
	}

	sd := event.StructuredData()
	if sd[SDIDShare]["visibility"] != "public" {
		t.Errorf("StructuredData share.visibility = %v, want 'public'", sd[SDIDShare]["visibility"])
	}
	if sd[SDIDSubject]["resource"] != "note-1" {
		t.Errorf("StructuredData subject.resource = %v, want 'note-1'", sd[SDIDSubject]["resource"])
	}
}

func TestForbiddenEvent(t *testing.T) {
	event := ForbiddenEvent{
		UserID:    "user-2",
		Operation: "approve",
		EntityID:  "req-1",
	}

	if event.MessageID() != "forbidden" {
		t.Errorf("MessageID() = %v, want 'forbidden'", event.MessageID())
	}
	if !strings.Contains(event.Message(), "was refused approve") {
		t.Errorf("Message() = %q, want to contain 'was refused approve'", event.Message())
	}
	if event.Severity() != SeverityWarning {
		t.Errorf("Severity() = %v, want SeverityWarning", event.Severity())
	}
	if event.Facility() != FacilityAuthPriv {
		t.Errorf("Facility() = %v, want FacilityAuthPriv", event.Facility())
	}
}

func TestStructuredDataContents(t *testing.T) {
	event := RequestEvent{
		RequestID:    "req-1",
		RequesterID:  "user-2",
		OwnerID:      "user-1",
		ResourceKind: "task",
		ResourceID:   "task-4",
	}

	sd := event.StructuredData()

	if sd[SDIDShare]["request"] != "req-1" {
		t.Errorf("StructuredData share.request = %v, want 'req-1'", sd[SDIDShare]["request"])
	}
	if sd[SDIDSubject]["user"] != "user-2" {
		t.Errorf("StructuredData subject.user = %v, want 'user-2'", sd[SDIDSubject]["user"])
	}
	if sd[SDIDSubject]["kind"] != "task" {
		t.Errorf("StructuredData subject.kind = %v, want 'task'", sd[SDIDSubject]["kind"])
	}
}

func TestAuditToggle(t *testing.T) {
	// Save original state
	originalEnabled := auditEnabled
	defer func() {
		auditEnabled = originalEnabled
	}()

	SetEnabled(false)
	if IsEnabled() {
		t.Error("Expected audit to be disabled")
	}

	SetEnabled(true)
	if !IsEnabled() {
		t.Error("Expected audit to be enabled")
	}
}

func TestEscapeSDValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"simple", `"simple"`},
		{`with"quote`, `"with\"quote"`},
		{`with\backslash`, `"with\\backslash"`},
		{`with]bracket`, `"with\]bracket"`},
		{`all"special\chars]`, `"all\"special\\chars\]"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := escapeSDValue(tt.input)
			if got != tt.want {
				t.Errorf("escapeSDValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
