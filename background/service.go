package background

import (
	"log"

	"golang.org/x/sync/singleflight"

	"github.com/fableterm/fableterm/story"
)

// Status reports what Render could produce for a background name.
type Status int

const (
	// StatusReady means the grid was rendered from fetched image data.
	StatusReady Status = iota
	// StatusPending means the fetch has not completed yet. Not an error.
	StatusPending
	// StatusNotFound means no background record has that name.
	StatusNotFound
)

// result travels from a fetch goroutine back to the owning service.
type result struct {
	name  string
	url   string
	cells []uint8
	err   error
}

// Service owns the background intensity cache and the fetch pipeline.
// Fetches run on their own goroutines and report through a channel that the
// main goroutine drains once per tick via Poll; everything else happens on
// the tick goroutine, so no locking is needed beyond the channel.
type Service struct {
	store *story.Store
	feed  *story.Feed

	cache     map[string][]uint8
	requested map[string]bool

	results chan result
	group   singleflight.Group
	fetch   fetchFunc
}

// NewService creates a service bound to a store. It subscribes to the
// store's background notifications.
func NewService(store *story.Store) *Service {
	client := newHTTPClient()
	return &Service{
		store:     store,
		feed:      store.SubscribeBackgrounds(),
		cache:     make(map[string][]uint8),
		requested: make(map[string]bool),
		results:   make(chan result, 16),
		fetch: func(bg story.Background) ([]uint8, error) {
			return httpFetch(client, bg)
		},
	}
}

// Poll applies pending background notifications and drains completed
// fetches. Call once per tick, before Render.
func (s *Service) Poll() {
	for _, n := range s.feed.Drain() {
		switch n.Kind {
		case story.NoteRenamed:
			if cells, ok := s.cache[n.Old]; ok {
				s.cache[n.Name] = cells
				delete(s.cache, n.Old)
			}
			if s.requested[n.Old] {
				s.requested[n.Name] = true
				delete(s.requested, n.Old)
			}
		case story.NoteDeleted:
			delete(s.cache, n.Name)
			delete(s.requested, n.Name)
		case story.NoteUpdated:
			// URL or weights may have changed, refetch on next Render
			delete(s.cache, n.Name)
			delete(s.requested, n.Name)
		}
	}

	for {
		select {
		case res := <-s.results:
			s.accept(res)
		default:
			return
		}
	}
}

// accept files a fetch result, dropping it when the background vanished or
// changed its URL while the fetch was in flight.
func (s *Service) accept(res result) {
	if res.err != nil {
		log.Printf("background %q fetch failed: %v", res.name, res.err)
		return
	}
	rec, ok := s.store.BackgroundRecord(res.name)
	if !ok || rec.URL != res.url {
		log.Printf("background %q: dropping stale fetch result", res.name)
		return
	}
	s.cache[res.name] = res.cells
}

// Render returns the character grid for a background at the given opacity.
// The first call for an unfetched background starts the fetch and reports
// StatusPending; callers render a placeholder instead of blocking.
func (s *Service) Render(name string, opacity float64) (Grid, Status) {
	rec, ok := s.store.BackgroundRecord(name)
	if !ok {
		return Grid{}, StatusNotFound
	}

	if cells, ok := s.cache[name]; ok {
		return gridFromIntensities(cells, opacity), StatusReady
	}

	if !s.requested[name] {
		s.requested[name] = true
		s.request(rec)
	}
	return Grid{}, StatusPending
}

// Invalidate drops cached data and forces a refetch on the next Render.
func (s *Service) Invalidate(name string) {
	delete(s.cache, name)
	delete(s.requested, name)
}

// request launches the fetch goroutine. Concurrent requests for the same
// name and URL collapse to a single download.
func (s *Service) request(rec story.Background) {
	go func() {
		v, err, _ := s.group.Do(rec.Name+"\x00"+rec.URL, func() (any, error) {
			return s.fetch(rec)
		})
		res := result{name: rec.Name, url: rec.URL, err: err}
		if err == nil {
			res.cells = v.([]uint8)
		}
		s.results <- res
	}()
}
