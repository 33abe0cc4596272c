package story

// NoteKind discriminates notification variants.
type NoteKind int

const (
	NoteRenamed NoteKind = iota
	NoteUpdated
	NoteDeleted
)

// Note is a single mutation notification. Renamed carries Old and Name
// (the new name); Updated and Deleted carry Name only.
type Note struct {
	Kind NoteKind
	Old  string
	Name string
}

// journal is an append-only notification log. Feeds hold cursors into it so
// every consumer sees every note exactly once, in arrival order.
type journal struct {
	notes []Note
	feeds []*Feed
}

func (j *journal) append(n Note) {
	j.notes = append(j.notes, n)
}

func (j *journal) subscribe() *Feed {
	f := &Feed{journal: j, cursor: len(j.notes)}
	j.feeds = append(j.feeds, f)
	return f
}

// compact drops notes every live feed has already consumed.
func (j *journal) compact() {
	min := len(j.notes)
	for _, f := range j.feeds {
		if f.cursor < min {
			min = f.cursor
		}
	}
	if min == 0 {
		return
	}
	j.notes = append([]Note(nil), j.notes[min:]...)
	for _, f := range j.feeds {
		f.cursor -= min
	}
}

// Feed is one consumer's view of a journal.
type Feed struct {
	journal *journal
	cursor  int
}

// Drain returns all notes appended since the previous Drain, oldest first.
// The returned slice is owned by the caller.
func (f *Feed) Drain() []Note {
	pending := f.journal.notes[f.cursor:]
	if len(pending) == 0 {
		return nil
	}
	out := make([]Note, len(pending))
	copy(out, pending)
	f.cursor = len(f.journal.notes)
	f.journal.compact()
	return out
}
