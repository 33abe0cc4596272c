package story

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewStore()
	s.PutBackground(Background{
		Name:     "den",
		URL:      "http://example.com/den.jpg",
		Channels: [3]int{255, 128, 0},
	})
	sl := Slide{
		Name:        "Living",
		Description: "A dusty living room.",
		Background:  "den",
		Actions: []Action{
			{Text: "Go north", TargetSlide: "Hall"},
			{Text: "Sit down", TargetSlide: "Living"},
		},
	}
	s.PutSlide(sl)
	s.PutSlide(Slide{Name: "Hall", Description: "Bare walls."})

	path := filepath.Join(t.TempDir(), "story.yaml")
	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got, ok := loaded.Slide("Living")
	if !ok {
		t.Fatal("loaded store is missing slide Living")
	}
	if got.Description != sl.Description || got.Background != sl.Background {
		t.Errorf("slide round trip mismatch: %+v", got)
	}
	if len(got.Actions) != 2 || got.Actions[0].TargetSlide != "Hall" {
		t.Errorf("actions round trip mismatch: %+v", got.Actions)
	}

	bg, ok := loaded.BackgroundRecord("den")
	if !ok {
		t.Fatal("loaded store is missing background den")
	}
	if bg.Channels != [3]int{255, 128, 0} {
		t.Errorf("channels round trip mismatch: %v", bg.Channels)
	}
}

func TestLoadRejectsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "story.yaml")
	doc := `slides:
  - name: Living
    description: one
  - name: Living
    description: two
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("duplicate slide names must fail to load")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("loading a missing file must fail")
	}
}
