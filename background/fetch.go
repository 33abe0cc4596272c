package background

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"time"

	"golang.org/x/image/draw"

	"github.com/fableterm/fableterm/story"
)

// maxImageBytes bounds how much of a response body is read.
const maxImageBytes = 32 << 20

// fetchFunc retrieves and converts one background to intensity cells.
// Swappable so tests can run without a network.
type fetchFunc func(bg story.Background) ([]uint8, error)

// httpFetch downloads the background image and converts it to a
// GridWidth x GridHeight intensity plane.
func httpFetch(client *http.Client, bg story.Background) ([]uint8, error) {
	resp, err := client.Get(bg.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", bg.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %s", bg.URL, resp.Status)
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", bg.URL, err)
	}
	return convert(img, bg.Channels), nil
}

// convert resamples an image onto the grid and collapses each pixel to a
// weighted intensity.
func convert(img image.Image, channels [3]int) []uint8 {
	scaled := image.NewRGBA(image.Rect(0, 0, GridWidth, GridHeight))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	cells := make([]uint8, GridWidth*GridHeight)
	for y := 0; y < GridHeight; y++ {
		for x := 0; x < GridWidth; x++ {
			i := scaled.PixOffset(x, y)
			r := int(scaled.Pix[i])
			g := int(scaled.Pix[i+1])
			b := int(scaled.Pix[i+2])
			cells[y*GridWidth+x] = weighted(r, g, b, channels)
		}
	}
	return cells
}

// weighted collapses an RGB triple using the background's channel weights.
// Equal weights degrade to a plain average.
func weighted(r, g, b int, c [3]int) uint8 {
	if c[0] == c[1] && c[1] == c[2] {
		return uint8((r + g + b) / 3)
	}
	total := c[0] + c[1] + c[2]
	if total == 0 {
		return 0
	}
	return uint8((r*c[0] + g*c[1] + b*c[2]) / total)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}
