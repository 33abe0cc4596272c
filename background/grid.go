package background

// Grid dimensions in terminal cells. Height compensates for the roughly
// 2:1 cell aspect, so the source image is sampled at half vertical density.
const (
	GridWidth  = 128
	GridHeight = GridWidth / 4
)

// ramp maps intensity to display runes, darkest first.
var ramp = []rune(".^,:_=~+Oo*#&%B@$")

// Grid is a fixed-size character rendering of a background image.
type Grid struct {
	rows []string
}

// Rows returns the grid lines, top to bottom. Every line is GridWidth runes.
func (g Grid) Rows() []string {
	return g.rows
}

// rampRune maps a 0-255 intensity to its ramp character.
func rampRune(v uint8) rune {
	idx := int(v) * len(ramp) / 256
	return ramp[idx]
}

// gridFromIntensities renders intensity bytes at the given opacity.
// Opacity 0 yields the blank-intensity grid (all darkest runes), opacity 1
// the full image; values are clamped.
func gridFromIntensities(cells []uint8, opacity float64) Grid {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}

	rows := make([]string, GridHeight)
	line := make([]rune, GridWidth)
	for y := 0; y < GridHeight; y++ {
		for x := 0; x < GridWidth; x++ {
			v := uint8(float64(cells[y*GridWidth+x]) * opacity)
			line[x] = rampRune(v)
		}
		rows[y] = string(line)
	}
	return Grid{rows: rows}
}

// BlankGrid returns the zero-intensity grid, used when a slide has no
// background at all.
func BlankGrid() Grid {
	return gridFromIntensities(make([]uint8, GridWidth*GridHeight), 0)
}
