package story

// Slide is a named unit of narrative content.
type Slide struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Background  string   `yaml:"background,omitempty"`
	Actions     []Action `yaml:"actions,omitempty"`
}

// Action is a labeled link to another slide. TargetSlide may reference a
// slide that does not currently exist; broken links are displayable data,
// not an error.
type Action struct {
	Text        string `yaml:"text"`
	TargetSlide string `yaml:"target_slide"`
}

// Background names a remote image and the RGB weights used when collapsing
// its pixels to intensities. Equal weights mean a plain average.
type Background struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Channels [3]int `yaml:"channels,flow"`
}

// Clone returns a deep copy so store snapshots cannot alias caller slices.
func (s Slide) Clone() Slide {
	out := s
	out.Actions = make([]Action, len(s.Actions))
	copy(out.Actions, s.Actions)
	return out
}
