package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v5"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte
	tokens       map[string]string
	currentUser  string
	requestIDs   map[string]string // requester -> last request ID
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:         tc,
		tokens:     make(map[string]string),
		requestIDs: make(map[string]string),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^a sharegate server is running$`, s.aServerIsRunning)
	sc.Step(`^a user "([^"]*)" exists with email "([^"]*)"$`, s.aUserExists)
	sc.Step(`^"([^"]*)" owns a private (\w+) "([^"]*)" named "([^"]*)"$`, s.userOwnsPrivateResource)
	sc.Step(`^I am authenticated as "([^"]*)"$`, s.iAmAuthenticatedAs)

	// Share request steps
	sc.Step(`^I request access to the (\w+) "([^"]*)"$`, s.iRequestAccess)
	sc.Step(`^I list my pending requests$`, s.iListPendingRequests)
	sc.Step(`^I (approve|deny) the request from "([^"]*)"$`, s.iDecideRequest)
	sc.Step(`^I list my shared resources$`, s.iListSharedResources)
	sc.Step(`^I check my access to the (\w+) "([^"]*)"$`, s.iCheckAccess)

	// Visibility steps
	sc.Step(`^I toggle visibility of the (\w+) "([^"]*)"$`, s.iToggleVisibility)
	sc.Step(`^the (\w+) "([^"]*)" should be (private|public)$`, s.resourceShouldBe)

	// Discovery steps
	sc.Step(`^I search users for "([^"]*)"$`, s.iSearchUsers)
	sc.Step(`^I search public resources for "([^"]*)"$`, s.iSearchPublicResources)
	sc.Step(`^I list public resources of "([^"]*)"$`, s.iListPublicResourcesOf)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response should list (\d+) items?$`, s.theResponseShouldListItems)
	sc.Step(`^the response should include "([^"]*)"$`, s.theResponseShouldInclude)
	sc.Step(`^the response should not include "([^"]*)"$`, s.theResponseShouldNotInclude)
	sc.Step(`^the response should report access (granted|denied)$`, s.theResponseShouldReportAccess)
}

// Background steps

func (s *StepsContext) aServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) aUserExists(userID, email string) error {
	return s.tc.DB.Exec(`
		INSERT INTO users (user_id, display_name, email) VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET email = EXCLUDED.email
	`, userID, userID, email).Error
}

func (s *StepsContext) userOwnsPrivateResource(ownerID, kind, resourceID, name string) error {
	return s.tc.DB.Exec(`
		INSERT INTO resources (resource_id, kind, owner_id, name, visibility)
		VALUES (?, ?, ?, ?, 'private')
		ON CONFLICT (kind, resource_id) DO UPDATE SET owner_id = EXCLUDED.owner_id, visibility = 'private'
	`, resourceID, kind, ownerID, name).Error
}

func (s *StepsContext) iAmAuthenticatedAs(userID string) error {
	s.currentUser = userID

	if _, ok := s.tokens[userID]; ok {
		return nil
	}

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.tc.TokenKey)
	if err != nil {
		return fmt.Errorf("failed to mint token: %w", err)
	}

	s.tokens[userID] = signed
	return nil
}

// HTTP plumbing

func (s *StepsContext) do(method, path string, body interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, s.tc.ServerURL+path, reader)
	if err != nil {
		return err
	}
	if token, ok := s.tokens[s.currentUser]; ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	s.response, err = s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}

	s.responseBody, err = io.ReadAll(s.response.Body)
	_ = s.response.Body.Close()
	return err
}

// Share request steps

func (s *StepsContext) iRequestAccess(kind, resourceID string) error {
	err := s.do("POST", "/share-requests", map[string]string{
		"resource_kind": kind,
		"resource_id":   resourceID,
	})
	if err != nil {
		return err
	}

	if s.response.StatusCode == http.StatusCreated {
		var created struct {
			RequestID string `json:"request_id"`
		}
		if err := json.Unmarshal(s.responseBody, &created); err == nil {
			s.requestIDs[s.currentUser] = created.RequestID
		}
	}
	return nil
}

func (s *StepsContext) iListPendingRequests() error {
	return s.do("GET", "/share-requests/pending", nil)
}

func (s *StepsContext) iDecideRequest(verb, requesterID string) error {
	requestID, ok := s.requestIDs[requesterID]
	if !ok {
		return fmt.Errorf("no known request from %s", requesterID)
	}
	return s.do("POST", fmt.Sprintf("/share-requests/%s/%s", requestID, verb), nil)
}

func (s *StepsContext) iListSharedResources() error {
	return s.do("GET", "/shared-resources", nil)
}

func (s *StepsContext) iCheckAccess(kind, resourceID string) error {
	return s.do("GET", fmt.Sprintf("/resources/%s/%s/access", kind, resourceID), nil)
}

// Visibility steps

func (s *StepsContext) iToggleVisibility(kind, resourceID string) error {
	return s.do("PATCH", fmt.Sprintf("/resources/%s/%s/visibility", kind, resourceID), nil)
}

func (s *StepsContext) resourceShouldBe(kind, resourceID, visibility string) error {
	var got string
	if err := s.tc.DB.Raw(`
		SELECT visibility FROM resources WHERE kind = ? AND resource_id = ?
	`, kind, resourceID).Scan(&got).Error; err != nil {
		return err
	}
	if got != visibility {
		return fmt.Errorf("expected %s/%s to be %s, got %s", kind, resourceID, visibility, got)
	}
	return nil
}

// Discovery steps

func (s *StepsContext) iSearchUsers(query string) error {
	return s.do("GET", "/search/users?q="+url.QueryEscape(query), nil)
}

func (s *StepsContext) iSearchPublicResources(query string) error {
	return s.do("GET", "/search/public?q="+url.QueryEscape(query), nil)
}

func (s *StepsContext) iListPublicResourcesOf(userID string) error {
	return s.do("GET", fmt.Sprintf("/users/%s/public-resources", url.PathEscape(userID)), nil)
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(expectedStatus int) error {
	if s.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d: %s", expectedStatus, s.response.StatusCode, string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) theResponseShouldListItems(expected int) error {
	var items []json.RawMessage
	if err := json.Unmarshal(s.responseBody, &items); err != nil {
		return fmt.Errorf("failed to parse response as list: %w", err)
	}
	if len(items) != expected {
		return fmt.Errorf("expected %d items, got %d: %s", expected, len(items), string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) theResponseShouldInclude(substr string) error {
	if !bytes.Contains(s.responseBody, []byte(substr)) {
		return fmt.Errorf("expected response to include %q: %s", substr, string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) theResponseShouldNotInclude(substr string) error {
	if bytes.Contains(s.responseBody, []byte(substr)) {
		return fmt.Errorf("expected response to not include %q: %s", substr, string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) theResponseShouldReportAccess(outcome string) error {
	var result struct {
		HasAccess bool `json:"has_access"`
	}
	if err := json.Unmarshal(s.responseBody, &result); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	want := outcome == "granted"
	if result.HasAccess != want {
		return fmt.Errorf("expected has_access=%v, got %v", want, result.HasAccess)
	}
	return nil
}
