package entity

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrMissingContact is returned when a subscriber has neither email nor phone.
	ErrMissingContact = errors.New("subscriber requires an email or a phone")
	// ErrMalformedTimestamp is returned when a message creation date cannot be parsed.
	ErrMalformedTimestamp = errors.New("malformed message timestamp")
)

// Priority is the upstream severity level, 1 being the most severe.
type Priority int

const (
	PriorityVerySerious Priority = iota + 1
	PriorityMajor
	PriorityDisruption
	PriorityInformation
	PriorityMinor
)

var priorityLabels = map[Priority]string{
	PriorityVerySerious: "Very serious incident",
	PriorityMajor:       "Major incident",
	PriorityDisruption:  "Disruption",
	PriorityInformation: "Information",
	PriorityMinor:       "Minor disruption",
}

// Label returns the display name of the priority.
func (p Priority) Label() string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}

	return "Unknown"
}

// Category is the upstream kind of disturbance.
type Category int

const (
	CategoryRoadTraffic Category = iota
	CategoryPublicTransport
	CategoryPlannedDisruption
	CategoryOther
)

var categoryLabels = map[Category]string{
	CategoryRoadTraffic:       "Road traffic",
	CategoryPublicTransport:   "Public transport",
	CategoryPlannedDisruption: "Planned disruption",
	CategoryOther:             "Other",
}

// Label returns the display name of the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}

	return "Unknown"
}

// TrafficMessage is an immutable snapshot of one upstream disturbance report.
type TrafficMessage struct {
	ID            int64    `json:"id"`
	Area          string   `json:"area"`         // The traffic area the message was fetched under.
	CreatedDate   string   `json:"created_date"` // Raw upstream timestamp; see CreatedAt.
	Priority      Priority `json:"priority"`
	Category      Category `json:"category"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	ExactLocation *string  `json:"exact_location,omitempty"`
}

// CreatedAt parses the upstream creation date.
func (m *TrafficMessage) CreatedAt() (time.Time, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(m.CreatedDate))
	if err != nil {
		return time.Time{}, errors.Join(ErrMalformedTimestamp, err)
	}

	return createdAt, nil
}

// IsNewerThan reports whether the message was created strictly after boundary.
// A message whose timestamp cannot be parsed is never new.
func (m *TrafficMessage) IsNewerThan(boundary time.Time) (bool, error) {
	createdAt, err := m.CreatedAt()
	if err != nil {
		return false, err
	}

	return createdAt.After(boundary), nil
}

// HasExactLocation reports whether a non-blank exact location is present.
func (m *TrafficMessage) HasExactLocation() bool {
	return m.ExactLocation != nil && strings.TrimSpace(*m.ExactLocation) != ""
}
