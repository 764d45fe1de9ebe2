package screenplay

import (
	"encoding/json"
	"testing"
)

func TestSceneListCoercesNonArrays(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{name: "null", body: `{"id":"B1","title":"Setup","scenes":null}`},
		{name: "missing", body: `{"id":"B1","title":"Setup"}`},
		{name: "number", body: `{"id":"B1","title":"Setup","scenes":7}`},
		{name: "string", body: `{"id":"B1","title":"Setup","scenes":"oops"}`},
		{name: "object", body: `{"id":"B1","title":"Setup","scenes":{"id":"S1"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var b Beat
			if err := json.Unmarshal([]byte(tc.body), &b); err != nil {
				t.Fatalf("decode beat: %v", err)
			}
			if b.Scenes == nil && tc.name != "missing" {
				t.Fatalf("expected coerced scene list, got nil")
			}
			if len(b.Scenes) != 0 {
				t.Fatalf("expected empty scene list, got %d", len(b.Scenes))
			}
		})
	}
}

func TestSceneListDecodesArrays(t *testing.T) {
	body := `{"id":"B1","title":"Setup","scenes":[{"id":"S1","heading":"INT. LAB - NIGHT"},{"id":"S2","status":"final"}]}`
	var b Beat
	if err := json.Unmarshal([]byte(body), &b); err != nil {
		t.Fatalf("decode beat: %v", err)
	}
	if len(b.Scenes) != 2 {
		t.Fatalf("expected 2 scenes, got %d", len(b.Scenes))
	}
	if b.Scenes[0].Status != StatusDraft {
		t.Fatalf("expected default draft status, got %q", b.Scenes[0].Status)
	}
	if b.Scenes[1].Status != StatusFinal {
		t.Fatalf("expected final status, got %q", b.Scenes[1].Status)
	}
}

func TestNormalizeReplacesNilSceneLists(t *testing.T) {
	beats := Normalize([]Beat{
		{ID: "B1"},
		{ID: "B2", Scenes: SceneList{{ID: "S1"}}},
	})
	if beats[0].Scenes == nil {
		t.Fatalf("expected non-nil scene list after normalize")
	}
	if len(beats[1].Scenes) != 1 {
		t.Fatalf("normalize should not drop scenes")
	}
}

func TestFindSceneBeat(t *testing.T) {
	beats := []Beat{
		{ID: "B1", Scenes: SceneList{{ID: "S1"}}},
		{ID: "B2", Scenes: SceneList{{ID: "S2"}, {ID: "S3"}}},
	}
	b, ok := FindSceneBeat(beats, "S3")
	if !ok || b.ID != "B2" {
		t.Fatalf("expected S3 owned by B2, got %q ok=%v", b.ID, ok)
	}
	if _, ok := FindSceneBeat(beats, "S9"); ok {
		t.Fatalf("expected miss for unknown scene")
	}
	if _, ok := FindSceneBeat(beats, ""); ok {
		t.Fatalf("expected miss for empty scene id")
	}
}

func TestSceneCount(t *testing.T) {
	beats := []Beat{
		{ID: "B1", Scenes: SceneList{{ID: "S1"}, {ID: "S2"}}},
		{ID: "B2", Scenes: SceneList{}},
	}
	if got := SceneCount(beats, "B1"); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := SceneCount(beats, "B2"); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := SceneCount(beats, "B9"); got != -1 {
		t.Fatalf("expected -1 for unknown beat, got %d", got)
	}
}

func TestParseStatus(t *testing.T) {
	if s, err := ParseStatus(" Review "); err != nil || s != StatusReview {
		t.Fatalf("expected review, got %q err=%v", s, err)
	}
	if s, err := ParseStatus(""); err != nil || s != StatusDraft {
		t.Fatalf("expected draft default, got %q err=%v", s, err)
	}
	if _, err := ParseStatus("published"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}
