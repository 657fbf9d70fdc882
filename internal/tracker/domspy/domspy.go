//go:build js && wasm

// Package domspy feeds a tracker.Tracker from the browser's
// IntersectionObserver.
package domspy

import (
	"syscall/js"

	"github.com/jayshree-infra/website/internal/tracker"
)

// Observer implements tracker.Observer on top of one IntersectionObserver.
// Elements are looked up by id when observed; the element references are
// dropped on Unobserve and Close.
type Observer struct {
	doc      js.Value
	window   js.Value
	io       js.Value
	callback js.Func
	elements map[string]js.Value
	tracker  *tracker.Tracker
}

// New creates an observer whose rootMargin is derived from band. Bind must be
// called before notifications can reach a tracker.
func New(band tracker.Band) *Observer {
	o := &Observer{
		doc:      js.Global().Get("document"),
		window:   js.Global(),
		elements: make(map[string]js.Value),
	}
	o.callback = js.FuncOf(o.onIntersect)

	opts := js.Global().Get("Object").New()
	opts.Set("root", js.Null())
	opts.Set("rootMargin", band.RootMargin())
	opts.Set("threshold", 0)
	o.io = js.Global().Get("IntersectionObserver").New(o.callback, opts)
	return o
}

// Bind directs notifications to t.
func (o *Observer) Bind(t *tracker.Tracker) { o.tracker = t }

// Observe starts watching the element with the given id.
func (o *Observer) Observe(id string) bool {
	el := o.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return false
	}
	o.io.Call("observe", el)
	o.elements[id] = el
	return true
}

// Unobserve stops watching id.
func (o *Observer) Unobserve(id string) {
	el, ok := o.elements[id]
	if !ok {
		return
	}
	o.io.Call("unobserve", el)
	delete(o.elements, id)
}

// Close disconnects the IntersectionObserver and releases the callback.
func (o *Observer) Close() {
	o.io.Call("disconnect")
	o.elements = make(map[string]js.Value)
	o.callback.Release()
}

func (o *Observer) onIntersect(this js.Value, args []js.Value) any {
	if o.tracker == nil || len(args) == 0 {
		return nil
	}
	entries := args[0]
	n := entries.Length()
	batch := make([]tracker.Entry, 0, n)
	for i := 0; i < n; i++ {
		e := entries.Index(i)
		rect := e.Get("boundingClientRect")
		batch = append(batch, tracker.Entry{
			ID:           e.Get("target").Get("id").String(),
			Top:          rect.Get("top").Float(),
			Bottom:       rect.Get("bottom").Float(),
			Intersecting: e.Get("isIntersecting").Bool(),
		})
	}
	o.tracker.Update(batch, o.window.Get("scrollY").Float())
	return nil
}
