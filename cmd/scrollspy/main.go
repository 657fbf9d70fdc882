//go:build js && wasm

// Command scrollspy is the browser half of the category pages. It tracks the
// section in view, highlights the matching sidebar link and keeps the URL in
// sync when a sidebar link is clicked.
//
// jayshree serve and jayshree build compile it into the assets directory
// when it is missing (see site.BuildTracker).
package main

import (
	"strconv"
	"strings"
	"syscall/js"

	"github.com/jayshree-infra/website/internal/route"
	"github.com/jayshree-infra/website/internal/tracker"
	"github.com/jayshree-infra/website/internal/tracker/domspy"
)

func main() {
	doc := js.Global().Get("document")
	page := doc.Call("querySelector", "[data-category-page]")
	if page.IsNull() {
		return
	}

	category := stringData(page, "category")
	band := tracker.Band{
		HeaderOffset: floatData(page, "headerOffset", tracker.DefaultBand.HeaderOffset),
		BottomRatio:  floatData(page, "bandBottom", tracker.DefaultBand.BottomRatio),
	}
	offsets := tracker.Offsets{
		Header:       band.HeaderOffset,
		NarrowHeader: floatData(page, "narrowHeaderOffset", tracker.DefaultOffsets.NarrowHeader),
		NarrowBelow:  floatData(page, "narrowBelow", tracker.DefaultOffsets.NarrowBelow),
	}
	threshold := floatData(page, "topThreshold", tracker.DefaultTopThreshold)

	obs := domspy.New(band)
	t := tracker.New(band, threshold, obs)
	obs.Bind(t)

	var ids []string
	anchors := doc.Call("querySelectorAll", "[data-topic-anchor]")
	for i := 0; i < anchors.Length(); i++ {
		ids = append(ids, anchors.Index(i).Get("id").String())
	}

	t.Subscribe(highlight(doc))
	if err := t.Track(ids); err != nil {
		js.Global().Get("console").Call("error", "scrollspy:", err.Error())
		return
	}
	if initial := stringData(page, "active"); initial != "" {
		highlight(doc)(initial)
		if len(ids) > 0 && initial != ids[0] {
			scrollTo(offsets, initial, "auto")
		}
	}

	onClick := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		ev.Call("preventDefault")
		slug := this.Get("dataset").Get("slug").String()
		scrollTo(offsets, slug, "smooth")
		js.Global().Get("history").Call("replaceState", js.Null(), "", route.TopicPath(category, slug))
		return nil
	})
	links := doc.Call("querySelectorAll", "a[data-toc-link]")
	for i := 0; i < links.Length(); i++ {
		links.Index(i).Call("addEventListener", "click", onClick)
	}
	page.Get("dataset").Set("scrollspy", "ready")

	onUnload := js.FuncOf(func(this js.Value, args []js.Value) any {
		t.Close()
		obs.Close()
		onClick.Release()
		return nil
	})
	js.Global().Call("addEventListener", "pagehide", onUnload)

	select {}
}

// highlight returns a subscriber that marks the sidebar link for the active slug.
func highlight(doc js.Value) func(string) {
	return func(active string) {
		links := doc.Call("querySelectorAll", "a[data-toc-link]")
		for i := 0; i < links.Length(); i++ {
			link := links.Index(i)
			on := link.Get("dataset").Get("slug").String() == active
			link.Get("classList").Call("toggle", "active", on)
			if on {
				link.Call("setAttribute", "aria-current", "location")
			} else {
				link.Call("removeAttribute", "aria-current")
			}
		}
	}
}

// scrollTo scrolls the anchor just below the fixed header. A missing anchor
// is ignored; it can race with rendering.
func scrollTo(offsets tracker.Offsets, slug, behavior string) {
	el := js.Global().Get("document").Call("getElementById", slug)
	if el.IsNull() {
		return
	}
	top := offsets.ScrollTop(el.Get("offsetTop").Float(), js.Global().Get("innerWidth").Float())
	opts := js.Global().Get("Object").New()
	opts.Set("top", top)
	opts.Set("behavior", behavior)
	js.Global().Call("scrollTo", opts)
}

func stringData(el js.Value, key string) string {
	v := el.Get("dataset").Get(key)
	if v.IsUndefined() || v.IsNull() {
		return ""
	}
	return v.String()
}

func floatData(el js.Value, key string, def float64) float64 {
	v := el.Get("dataset").Get(key)
	if v.IsUndefined() {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
	if err != nil {
		return def
	}
	return f
}
