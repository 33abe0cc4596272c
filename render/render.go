package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/fableterm/fableterm/background"
	"github.com/fableterm/fableterm/player"
)

// Fixed vertical layout, top to bottom: background grid, a blank row, the
// description region, a blank row, then the choice column. Hit-testing in
// the input package uses the same numbers, so they live here.
const (
	// DescriptionRows is the height reserved for the slide text.
	DescriptionRows = 8
)

// DescriptionTop returns the first row of the description region.
func DescriptionTop() int {
	return background.GridHeight + 1
}

// ChoicesOriginY returns the row of choice index 0.
func ChoicesOriginY() int {
	return DescriptionTop() + DescriptionRows + 1
}

var (
	styleBackground = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleText       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleChoice     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHovered    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	styleNotice     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleMissing    = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Draw paints one display frame with the given choice spacing. The caller
// is expected to diff against the previous frame before calling if redraws
// are expensive; Draw itself just paints.
func Draw(screen tcell.Screen, d player.Display, choiceSpacing int) {
	screen.Clear()
	width, _ := screen.Size()

	if d.Missing {
		printAt(screen, 0, 0, d.Notice, styleMissing)
		screen.Show()
		return
	}

	for y, row := range d.BackgroundRows {
		printAt(screen, 0, y, row, styleBackground)
	}
	if d.Notice != "" {
		printAt(screen, 0, background.GridHeight/2, d.Notice, styleNotice)
	}

	for i, line := range wrap(d.Description, width) {
		if i >= DescriptionRows {
			break
		}
		printAt(screen, 0, DescriptionTop()+i, line, styleText)
	}

	for i, choice := range d.Choices {
		y := ChoicesOriginY() + i*choiceSpacing
		style := styleChoice
		label := "  " + choice.Text
		if choice.Hovered && d.HoverBlink {
			style = styleHovered
			label = "> " + choice.Text
		}
		printAt(screen, 0, y, label, style)
	}

	screen.Show()
}

func printAt(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// wrap breaks s into lines no wider than width, on rune boundaries.
func wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	runes := []rune(s)
	var lines []string
	for len(runes) > width {
		lines = append(lines, string(runes[:width]))
		runes = runes[width:]
	}
	return append(lines, string(runes))
}
