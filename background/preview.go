package background

import (
	"github.com/fableterm/fableterm/story"
)

// FetchGrid downloads and renders a background synchronously. Intended for
// one-shot tooling; the player goes through Service instead.
func FetchGrid(bg story.Background, opacity float64) (Grid, error) {
	cells, err := httpFetch(newHTTPClient(), bg)
	if err != nil {
		return Grid{}, err
	}
	return gridFromIntensities(cells, opacity), nil
}
