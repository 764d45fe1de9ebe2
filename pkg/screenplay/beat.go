package screenplay

import (
	"encoding/json"
	"strings"
)

// Beat is a named structural segment of a screenplay grouping an ordered list
// of scenes. Beats are owned and mutated exclusively by the remote screenplay
// service; this repository only reads them and issues move requests.
type Beat struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Position    int       `json:"position,omitempty"`
	Scenes      SceneList `json:"scenes"`
}

// Label returns a human-friendly identifier for the beat.
func (b Beat) Label() string {
	if b.Title != "" {
		return b.Title
	}
	return b.ID
}

// SceneList is an ordered scene sequence that decodes defensively: the
// service has been observed returning null or junk for a beat's scenes, and
// that must read as an empty list rather than a decode failure.
type SceneList []Scene

// UnmarshalJSON coerces any non-array value (null, number, string, object) to
// an empty list.
func (l *SceneList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if !strings.HasPrefix(trimmed, "[") {
		*l = SceneList{}
		return nil
	}
	var scenes []Scene
	if err := json.Unmarshal(data, &scenes); err != nil {
		*l = SceneList{}
		return nil
	}
	*l = SceneList(scenes)
	return nil
}

// Normalize returns a copy of beats where every scene list is non-nil.
// Applied once at the store boundary so downstream view-model and controller
// code can assume the invariant holds.
func Normalize(beats []Beat) []Beat {
	if len(beats) == 0 {
		return nil
	}
	out := make([]Beat, len(beats))
	for i, b := range beats {
		if b.Scenes == nil {
			b.Scenes = SceneList{}
		}
		out[i] = b
	}
	return out
}

// FindSceneBeat scans the beats' scene lists for the given scene id and
// returns the owning beat. The second return reports whether it was found.
func FindSceneBeat(beats []Beat, sceneID string) (Beat, bool) {
	if sceneID == "" {
		return Beat{}, false
	}
	for _, b := range beats {
		for _, s := range b.Scenes {
			if s.ID == sceneID {
				return b, true
			}
		}
	}
	return Beat{}, false
}

// SceneCount returns the number of scenes currently in the identified beat,
// or -1 when the beat is unknown.
func SceneCount(beats []Beat, beatID string) int {
	for _, b := range beats {
		if b.ID == beatID {
			return len(b.Scenes)
		}
	}
	return -1
}
