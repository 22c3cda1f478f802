package marquee

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Item is one renderable unit of the marquee. The marquee treats it as
// opaque: it only measures, duplicates, and positions items, leaving the
// drawing to the host.
type Item struct {
	// Content is the application payload rendered by the host.
	Content any
}

// Key identifies one rendered occurrence of an item across strip copies.
// It stays stable across duplication passes so hosts can preserve identity
// when the copy count changes.
type Key struct {
	Copy  int
	Index int
}

// String renders the key in "copy-index" form.
func (k Key) String() string {
	return fmt.Sprintf("%d-%d", k.Copy, k.Index)
}

// Tile is a simple colored block payload, handy for demos and tests.
type Tile struct {
	Label  string
	Color  colorful.Color
	Width  float64
	Height float64
}

// Hex returns the tile color as an RGB hex string.
func (t Tile) Hex() string {
	return t.Color.Hex()
}

// Tiles builds n evenly-hued tiles of the given size.
func Tiles(n int, width, height float64) []Item {
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		hue := float64(i) * 360.0 / float64(n)
		items = append(items, Item{Content: Tile{
			Label:  fmt.Sprintf("tile-%d", i),
			Color:  colorful.Hsv(hue, 0.65, 0.95),
			Width:  width,
			Height: height,
		}})
	}
	return items
}
