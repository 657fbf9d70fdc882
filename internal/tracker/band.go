package tracker

import (
	"fmt"
	"strconv"
)

// Band is the detection band: the part of the viewport in which a heading
// counts as "in view". It starts below the fixed header and ends
// BottomRatio of the viewport height above the bottom edge.
type Band struct {
	HeaderOffset float64 // px reserved at the top for the fixed header
	BottomRatio  float64 // fraction of the viewport excluded at the bottom
}

// DefaultBand is the band used by the site: below a 100px header, within the
// upper 40% of the viewport.
var DefaultBand = Band{HeaderOffset: 100, BottomRatio: 0.6}

// Bounds returns the band's top and bottom edges in viewport coordinates.
func (b Band) Bounds(viewportHeight float64) (top, bottom float64) {
	return b.HeaderOffset, viewportHeight * (1 - b.BottomRatio)
}

// Intersects reports whether an element spanning [top, bottom] overlaps the band.
func (b Band) Intersects(top, bottom, viewportHeight float64) bool {
	bandTop, bandBottom := b.Bounds(viewportHeight)
	if bandBottom <= bandTop {
		return false
	}
	return bottom >= bandTop && top <= bandBottom
}

// RootMargin renders the band as an IntersectionObserver rootMargin.
func (b Band) RootMargin() string {
	return fmt.Sprintf("-%spx 0px -%s%% 0px",
		strconv.FormatFloat(b.HeaderOffset, 'f', -1, 64),
		strconv.FormatFloat(b.BottomRatio*100, 'f', -1, 64))
}
