package marquee

import "github.com/Pvlcrp/marquee/host"

// Strip is the rendered layout of the marquee at one progress value: a
// container holding the duplicated item sequence, shifted left as progress
// advances. Hosts draw it verbatim; nothing here retains state.
type Strip struct {
	// Width is the container width: one strip width times the copy count.
	// Meaningless when Auto is true.
	Width float64

	// Height is the height of the tallest item.
	Height float64

	// Auto is true when the items have not been measured yet; hosts should
	// size the container automatically instead of using Width/Height.
	Auto bool

	// TranslateX is the horizontal offset of the container in pixels.
	// It starts at -Width/2, which centers the midpoint of the loop so the
	// visible window always has content on both sides, and slides a further
	// strip width to the left over one cycle.
	TranslateX float64

	// Items holds every placed copy of the item sequence in draw order.
	Items []PlacedItem

	// Attrs carries unrecognized configuration attributes through to the
	// root rendered element.
	Attrs map[string]string
}

// PlacedItem is one item occurrence positioned within the strip.
type PlacedItem struct {
	Key    Key
	Item   Item
	X      float64
	Width  float64
	Height float64
}

// buildStrip lays out the duplicated item sequence for the given progress.
// It is a pure function of its inputs. Unmeasured items produce an Auto
// strip with zero item boxes; zero items produce an empty strip.
func buildStrip(items []Item, sizes []host.Size, copies int, progress float64, easing func(float64) float64, attrs map[string]string) Strip {
	if copies < defaultCopies {
		copies = defaultCopies
	}
	eased := progress
	if easing != nil {
		eased = easing(progress)
	}

	stripW := stripWidth(sizes)
	strip := Strip{
		Width:  stripW * float64(copies),
		Height: stripHeight(sizes),
		Auto:   len(sizes) != len(items),
		Items:  make([]PlacedItem, 0, copies*len(items)),
		Attrs:  attrs,
	}
	strip.TranslateX = -strip.Width/2 - eased*stripW

	var x float64
	for c := 0; c < copies; c++ {
		for i, item := range items {
			placed := PlacedItem{
				Key:  Key{Copy: c, Index: i},
				Item: item,
				X:    x,
			}
			if i < len(sizes) {
				placed.Width = sizes[i].Width
				placed.Height = sizes[i].Height
			}
			x += placed.Width
			strip.Items = append(strip.Items, placed)
		}
	}
	return strip
}
