// Package screenplay defines the beat/scene domain types shared by the board
// and the CLI surfaces.
package screenplay

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status identifies how far along a scene is.
type Status string

const (
	// StatusDraft is the default state for a freshly written scene.
	StatusDraft Status = "draft"
	// StatusReview marks a scene waiting on notes.
	StatusReview Status = "review"
	// StatusFinal marks a locked scene.
	StatusFinal Status = "final"
)

// AllStatuses returns the list of supported scene statuses.
func AllStatuses() []Status {
	return []Status{
		StatusDraft,
		StatusReview,
		StatusFinal,
	}
}

// ParseStatus converts a string to a Status or returns an error for unknown
// values. Empty input maps to StatusDraft.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return StatusDraft, nil
	}
	for _, candidate := range AllStatuses() {
		if candidate == s {
			return candidate, nil
		}
	}
	return StatusDraft, fmt.Errorf("screenplay: unknown status %q", raw)
}

// MustStatus parses the input and panics on error. Intended for tests.
func MustStatus(raw string) Status {
	s, err := ParseStatus(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// Scene is a single screenplay unit. Scenes are owned by exactly one beat at
// a time; the remote service is the only writer.
type Scene struct {
	ID           string   `json:"id"`
	Number       int      `json:"number,omitempty"`
	Heading      string   `json:"heading,omitempty"`
	Status       Status   `json:"status,omitempty"`
	Synopsis     string   `json:"synopsis,omitempty"`
	CharacterIDs []string `json:"character_ids,omitempty"`
	LocationID   string   `json:"location_id,omitempty"`
	ImageURLs    []string `json:"image_urls,omitempty"`
}

// UnmarshalJSON applies the default status so downstream code never sees an
// empty one.
func (s *Scene) UnmarshalJSON(data []byte) error {
	type alias Scene
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.Status == "" {
		a.Status = StatusDraft
	} else if parsed, err := ParseStatus(string(a.Status)); err == nil {
		a.Status = parsed
	} else {
		a.Status = StatusDraft
	}
	*s = Scene(a)
	return nil
}

// Label returns a human-friendly identifier for the scene.
func (s Scene) Label() string {
	if s.Heading != "" {
		return s.Heading
	}
	return s.ID
}
