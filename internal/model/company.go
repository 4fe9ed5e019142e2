package model

import (
	"strings"
	"time"
)

// Company is a discovered prospect matching the ICP criteria.
type Company struct {
	Name        string    `json:"name"`
	Industry    string    `json:"industry"`
	Domain      string    `json:"domain,omitempty"`
	LinkedInURL string    `json:"linkedin_url,omitempty"`
	Description string    `json:"description,omitempty"`
	Source      string    `json:"source"`
	ICPScore    int       `json:"icp_score"`
	Contacts    []Contact `json:"contacts,omitempty"`

	// Trigger is set by the trigger detection collaborator, never by
	// discovery itself.
	Trigger *TriggerEvent `json:"trigger,omitempty"`
}

// Key returns the deduplication key for a company: its lower-cased name.
func (c Company) Key() string {
	return strings.ToLower(c.Name)
}

// Contact is a decision-maker extracted from search-result text.
// First and last name come straight out of NER output; LastName may be
// a multi-token remainder ("Van Der Berg").
type Contact struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Title           string `json:"title"`
	LinkedInURL     string `json:"linkedin_url,omitempty"`
	Source          string `json:"source"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	EmailValid      bool   `json:"email_valid"`
	ConfidenceScore int    `json:"confidence_score"`
}

// Key returns the per-company deduplication key: the exact
// concatenation of first and last name as extracted.
func (c Contact) Key() string {
	return c.FirstName + c.LastName
}

// Valid reports whether the contact carries enough identity to keep.
func (c Contact) Valid() bool {
	return c.FirstName != "" && c.LastName != ""
}

// FullName returns the display name for exports and logs.
func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// TriggerEvent is a buying signal attached to a company by the trigger
// detection collaborator. The core never produces these; it only
// carries them through to exports.
type TriggerEvent struct {
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
}

// RunStatus represents the state of a prospecting run.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Run records one end-to-end prospecting execution.
type Run struct {
	ID        string    `json:"id"`
	Industry  string    `json:"industry"`
	SizeRange string    `json:"size_range"`
	Location  string    `json:"location"`
	Status    RunStatus `json:"status"`
	Companies int       `json:"companies"`
	Contacts  int       `json:"contacts"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
