package background

import (
	"testing"
	"time"

	"github.com/fableterm/fableterm/story"
)

func testStoreWithBackground(t *testing.T, name, url string) *story.Store {
	t.Helper()
	s := story.NewStore()
	if err := s.PutBackground(story.Background{
		Name:     name,
		URL:      url,
		Channels: [3]int{255, 255, 255},
	}); err != nil {
		t.Fatalf("PutBackground: %v", err)
	}
	return s
}

func flatCells(v uint8) []uint8 {
	cells := make([]uint8, GridWidth*GridHeight)
	for i := range cells {
		cells[i] = v
	}
	return cells
}

// pollUntilReady simulates ticks until the fetch result lands.
func pollUntilReady(t *testing.T, svc *Service, name string) Grid {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		svc.Poll()
		if grid, status := svc.Render(name, 1); status == StatusReady {
			return grid
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("fetch result never arrived")
	return Grid{}
}

func TestServiceFetchLifecycle(t *testing.T) {
	store := testStoreWithBackground(t, "den", "http://example.com/den.png")
	svc := NewService(store)
	svc.fetch = func(bg story.Background) ([]uint8, error) {
		return flatCells(255), nil
	}

	if _, status := svc.Render("ghost", 1); status != StatusNotFound {
		t.Errorf("unknown background status = %v, want NotFound", status)
	}

	// First render starts the fetch and reports pending
	if _, status := svc.Render("den", 1); status != StatusPending {
		t.Errorf("first render status = %v, want Pending", status)
	}

	grid := pollUntilReady(t, svc, "den")
	if grid.Rows()[0][0] != '$' {
		t.Errorf("rendered cell = %q, want full intensity", grid.Rows()[0][0])
	}
}

func TestServiceDropsStaleResult(t *testing.T) {
	store := testStoreWithBackground(t, "den", "http://example.com/new.png")
	svc := NewService(store)

	// Result fetched for an URL the record no longer has
	svc.accept(result{name: "den", url: "http://example.com/old.png", cells: flatCells(10)})
	if _, status := svc.Render("den", 1); status == StatusReady {
		t.Error("stale-URL result must be dropped")
	}

	// Result for a background that was deleted meanwhile
	svc.accept(result{name: "gone", url: "http://example.com/x.png", cells: flatCells(10)})
	if _, ok := svc.cache["gone"]; ok {
		t.Error("result for a missing background must be dropped")
	}

	// Matching result is kept
	svc.accept(result{name: "den", url: "http://example.com/new.png", cells: flatCells(10)})
	if _, status := svc.Render("den", 1); status != StatusReady {
		t.Error("matching result must be cached")
	}
}

func TestServiceFollowsRenames(t *testing.T) {
	store := testStoreWithBackground(t, "den", "http://example.com/den.png")
	svc := NewService(store)
	svc.cache["den"] = flatCells(200)
	svc.requested["den"] = true

	if err := store.RenameBackground("den", "study"); err != nil {
		t.Fatalf("RenameBackground: %v", err)
	}
	svc.Poll()

	if _, status := svc.Render("study", 1); status != StatusReady {
		t.Error("cache must follow the rename")
	}
	if _, ok := svc.cache["den"]; ok {
		t.Error("old cache key must be evicted")
	}
}

func TestServiceEvictsOnDeleteAndUpdate(t *testing.T) {
	store := testStoreWithBackground(t, "den", "http://example.com/den.png")
	store.PutBackground(story.Background{Name: "attic", URL: "http://example.com/attic.png"})
	svc := NewService(store)
	svc.cache["den"] = flatCells(200)
	svc.cache["attic"] = flatCells(200)
	svc.requested["den"] = true
	svc.requested["attic"] = true

	if err := store.DeleteBackground("attic"); err != nil {
		t.Fatalf("DeleteBackground: %v", err)
	}
	// Update (URL change) forces a refetch
	store.PutBackground(story.Background{Name: "den", URL: "http://example.com/den2.png"})
	svc.Poll()

	if _, ok := svc.cache["attic"]; ok {
		t.Error("deleted background must be evicted")
	}
	if _, ok := svc.cache["den"]; ok {
		t.Error("updated background must be invalidated")
	}
	if svc.requested["den"] {
		t.Error("updated background must be refetchable")
	}
}
