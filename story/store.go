package story

import (
	"fmt"
	"sort"
)

// ErrNameTaken is returned when a create or rename would duplicate a name.
var ErrNameTaken = fmt.Errorf("name already taken")

// ErrNotFound is returned when a mutation targets a missing record.
var ErrNotFound = fmt.Errorf("not found")

// Store holds the content graph: slides and backgrounds keyed by unique
// name. All mutation goes through the editor-facing methods below, which
// append notifications for subscribed consumers. The store is not
// goroutine-safe; it lives on the main tick goroutine.
type Store struct {
	slides      map[string]Slide
	backgrounds map[string]Background

	slideJournal journal
	bgJournal    journal
}

// NewStore creates an empty content graph.
func NewStore() *Store {
	return &Store{
		slides:      make(map[string]Slide),
		backgrounds: make(map[string]Background),
	}
}

// SubscribeSlides returns a feed of slide notifications.
func (s *Store) SubscribeSlides() *Feed {
	return s.slideJournal.subscribe()
}

// SubscribeBackgrounds returns a feed of background notifications.
func (s *Store) SubscribeBackgrounds() *Feed {
	return s.bgJournal.subscribe()
}

// Slide returns a snapshot of the named slide.
func (s *Store) Slide(name string) (Slide, bool) {
	sl, ok := s.slides[name]
	if !ok {
		return Slide{}, false
	}
	return sl.Clone(), true
}

// BackgroundRecord returns the named background record.
func (s *Store) BackgroundRecord(name string) (Background, bool) {
	bg, ok := s.backgrounds[name]
	return bg, ok
}

// SlideNames returns all slide names in sorted order.
func (s *Store) SlideNames() []string {
	names := make([]string, 0, len(s.slides))
	for name := range s.slides {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PutSlide inserts or replaces a slide. Replacing emits Updated; inserting
// emits nothing (the player only tracks existing references).
func (s *Store) PutSlide(sl Slide) error {
	if sl.Name == "" {
		return fmt.Errorf("slide name must not be empty")
	}
	_, existed := s.slides[sl.Name]
	s.slides[sl.Name] = sl.Clone()
	if existed {
		s.slideJournal.append(Note{Kind: NoteUpdated, Name: sl.Name})
	}
	return nil
}

// RenameSlide changes a slide's unique name.
func (s *Store) RenameSlide(old, new string) error {
	if new == "" {
		return fmt.Errorf("slide name must not be empty")
	}
	sl, ok := s.slides[old]
	if !ok {
		return fmt.Errorf("rename slide %q: %w", old, ErrNotFound)
	}
	if _, taken := s.slides[new]; taken && new != old {
		return fmt.Errorf("rename slide to %q: %w", new, ErrNameTaken)
	}
	delete(s.slides, old)
	sl.Name = new
	s.slides[new] = sl
	s.slideJournal.append(Note{Kind: NoteRenamed, Old: old, Name: new})
	return nil
}

// DeleteSlide removes a slide. Actions elsewhere that target it become
// dangling links, which is valid data.
func (s *Store) DeleteSlide(name string) error {
	if _, ok := s.slides[name]; !ok {
		return fmt.Errorf("delete slide %q: %w", name, ErrNotFound)
	}
	delete(s.slides, name)
	s.slideJournal.append(Note{Kind: NoteDeleted, Name: name})
	return nil
}

// PutBackground inserts or replaces a background record.
func (s *Store) PutBackground(bg Background) error {
	if bg.Name == "" {
		return fmt.Errorf("background name must not be empty")
	}
	_, existed := s.backgrounds[bg.Name]
	s.backgrounds[bg.Name] = bg
	if existed {
		s.bgJournal.append(Note{Kind: NoteUpdated, Name: bg.Name})
	}
	return nil
}

// RenameBackground changes a background's unique name. Slides referencing
// the old name are updated in place so the graph stays consistent.
func (s *Store) RenameBackground(old, new string) error {
	if new == "" {
		return fmt.Errorf("background name must not be empty")
	}
	bg, ok := s.backgrounds[old]
	if !ok {
		return fmt.Errorf("rename background %q: %w", old, ErrNotFound)
	}
	if _, taken := s.backgrounds[new]; taken && new != old {
		return fmt.Errorf("rename background to %q: %w", new, ErrNameTaken)
	}
	delete(s.backgrounds, old)
	bg.Name = new
	s.backgrounds[new] = bg
	for name, sl := range s.slides {
		if sl.Background == old {
			sl.Background = new
			s.slides[name] = sl
		}
	}
	s.bgJournal.append(Note{Kind: NoteRenamed, Old: old, Name: new})
	return nil
}

// DeleteBackground removes a background record. Refused while any slide
// still references it, matching the editor's delete guard.
func (s *Store) DeleteBackground(name string) error {
	if _, ok := s.backgrounds[name]; !ok {
		return fmt.Errorf("delete background %q: %w", name, ErrNotFound)
	}
	for _, sl := range s.slides {
		if sl.Background == name {
			return fmt.Errorf("delete background %q: still referenced by slide %q", name, sl.Name)
		}
	}
	delete(s.backgrounds, name)
	s.bgJournal.append(Note{Kind: NoteDeleted, Name: name})
	return nil
}
