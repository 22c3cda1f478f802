package marquee

import "github.com/Pvlcrp/marquee/host"

// defaultCopies is the minimum number of strip copies needed for a seamless
// two-copy loop when the content already spans the viewport. It also serves
// as the fallback whenever the strip is unmeasured.
const defaultCopies = 2

// measureItems reads the rendered boxes of the first n original items from
// the surface. It is a pure read of committed layout. It returns nil when
// the surface is not attached yet or any box is unavailable; callers treat
// nil as "not ready" and re-measure after attach or resize.
func measureItems(surface host.Surface, n int) []host.Size {
	if surface == nil || n <= 0 {
		return nil
	}
	if _, ok := surface.Bounds(); !ok {
		return nil
	}

	sizes := make([]host.Size, 0, n)
	for i := 0; i < n; i++ {
		size, ok := surface.ItemSize(i)
		if !ok {
			return nil
		}
		sizes = append(sizes, size)
	}
	return sizes
}

// stripWidth returns the total width of one copy of the item sequence.
func stripWidth(sizes []host.Size) float64 {
	var total float64
	for _, s := range sizes {
		total += s.Width
	}
	return total
}

// stripHeight returns the height of the tallest item.
func stripHeight(sizes []host.Size) float64 {
	var max float64
	for _, s := range sizes {
		if s.Height > max {
			max = s.Height
		}
	}
	return max
}

// copiesFor returns how many copies of the item sequence are needed so the
// combined strip covers the viewport without a visible gap. Content that
// already spans the viewport needs only the two-copy minimum; an unmeasured
// (zero-width) strip falls back to the same default. Identical inputs
// always produce identical output.
func copiesFor(stripW, viewportW float64) int {
	if stripW <= 0 || stripW >= viewportW {
		return defaultCopies
	}
	copies := int(viewportW / (stripW / 2))
	if copies < defaultCopies {
		copies = defaultCopies
	}
	return copies
}
