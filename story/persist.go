package story

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// file is the on-disk story layout.
type file struct {
	Slides      []Slide      `yaml:"slides"`
	Backgrounds []Background `yaml:"backgrounds,omitempty"`
}

// Load reads a story file and returns a populated store.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse story %s: %w", path, err)
	}

	s := NewStore()
	for _, bg := range f.Backgrounds {
		if _, dup := s.backgrounds[bg.Name]; dup {
			return nil, fmt.Errorf("story %s: duplicate background %q", path, bg.Name)
		}
		if err := s.PutBackground(bg); err != nil {
			return nil, fmt.Errorf("story %s: %w", path, err)
		}
	}
	for _, sl := range f.Slides {
		if _, dup := s.slides[sl.Name]; dup {
			return nil, fmt.Errorf("story %s: duplicate slide %q", path, sl.Name)
		}
		if err := s.PutSlide(sl); err != nil {
			return nil, fmt.Errorf("story %s: %w", path, err)
		}
	}
	return s, nil
}

// Save writes the store to a story file, records sorted by name.
func (s *Store) Save(path string) error {
	var f file
	for _, name := range s.SlideNames() {
		f.Slides = append(f.Slides, s.slides[name])
	}
	for name := range s.backgrounds {
		f.Backgrounds = append(f.Backgrounds, s.backgrounds[name])
	}
	sort.Slice(f.Backgrounds, func(i, j int) bool {
		return f.Backgrounds[i].Name < f.Backgrounds[j].Name
	})

	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("encode story: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
