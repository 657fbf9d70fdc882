package tracker

// Offsets describes the fixed header a scroll target has to clear.
type Offsets struct {
	Header       float64 // header height on wide viewports
	NarrowHeader float64 // header height below NarrowBelow
	NarrowBelow  float64 // viewport width under which NarrowHeader applies
}

// DefaultOffsets matches the site's navbar.
var DefaultOffsets = Offsets{Header: 100, NarrowHeader: 80, NarrowBelow: 768}

// ScrollTop returns the document scroll position that brings an anchor whose
// document offset is anchorTop just below the header.
func (o Offsets) ScrollTop(anchorTop, viewportWidth float64) float64 {
	header := o.Header
	if o.NarrowBelow > 0 && viewportWidth < o.NarrowBelow {
		header = o.NarrowHeader
	}
	if top := anchorTop - header; top > 0 {
		return top
	}
	return 0
}
