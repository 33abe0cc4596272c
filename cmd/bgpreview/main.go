// Command bgpreview fetches an image URL and prints its character-grid
// rendering, for checking how a background will look in the player.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fableterm/fableterm/background"
	"github.com/fableterm/fableterm/story"
)

var (
	urlFlag     = flag.String("url", "", "Image URL to fetch (required)")
	opacityFlag = flag.Float64("opacity", 1.0, "Blend opacity in [0,1]")
	redFlag     = flag.Int("r", 255, "Red channel weight")
	greenFlag   = flag.Int("g", 255, "Green channel weight")
	blueFlag    = flag.Int("b", 255, "Blue channel weight")
)

func main() {
	flag.Parse()
	if *urlFlag == "" {
		flag.Usage()
		os.Exit(2)
	}

	bg := story.Background{
		Name:     "preview",
		URL:      *urlFlag,
		Channels: [3]int{*redFlag, *greenFlag, *blueFlag},
	}

	grid, err := background.FetchGrid(bg, *opacityFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bgpreview: %v\n", err)
		os.Exit(1)
	}

	for _, row := range grid.Rows() {
		fmt.Println(row)
	}
}
