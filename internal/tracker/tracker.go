// Package tracker decides which section of a page is currently in view.
//
// A Tracker is fed visibility notifications for a set of anchor ids and keeps
// a single active id. It does not know about the DOM; an Observer supplies
// the notifications and is released when the tracked set changes or the
// tracker is closed.
package tracker

import (
	"errors"
	"slices"
	"sync"
)

// ErrClosed is returned by Track after Close.
var ErrClosed = errors.New("tracker closed")

// DefaultTopThreshold is the scroll offset under which the first section is
// considered active when nothing intersects the band.
const DefaultTopThreshold = 100

// Entry is one visibility notification for an anchor element. Top and
// Bottom are relative to the viewport's top edge.
type Entry struct {
	ID           string
	Top          float64
	Bottom       float64
	Intersecting bool
}

// Rect is an element's vertical extent relative to the viewport.
type Rect struct {
	Top    float64
	Bottom float64
}

// Observer watches anchor elements and delivers their notifications to the
// tracker. Observe returns false when no element with the id exists yet.
type Observer interface {
	Observe(id string) bool
	Unobserve(id string)
}

// Tracker holds the active-section state machine for one page.
type Tracker struct {
	band         Band
	topThreshold float64
	observer     Observer

	mu       sync.Mutex
	ids      []string
	tracked  map[string]bool
	observed []string
	active   string
	closed   bool
	subs     map[int]func(string)
	nextSub  int
}

// New creates a tracker. observer may be nil when notifications are fed
// directly through Update or Measure.
func New(band Band, topThreshold float64, observer Observer) *Tracker {
	return &Tracker{
		band:         band,
		topThreshold: topThreshold,
		observer:     observer,
		tracked:      make(map[string]bool),
		subs:         make(map[int]func(string)),
	}
}

// Band returns the detection band the tracker was built with.
func (t *Tracker) Band() Band { return t.band }

// Track replaces the tracked id set. When the set changes, every element
// observed for the previous set is released, the new ids are observed and the
// active id is cleared. Tracking the same ids again is a no-op.
func (t *Tracker) Track(ids []string) error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return ErrClosed
	}
	if slices.Equal(t.ids, ids) {
		t.mu.Unlock()
		return nil
	}

	t.releaseLocked()
	t.ids = slices.Clone(ids)
	t.tracked = make(map[string]bool, len(ids))
	for _, id := range ids {
		if t.tracked[id] {
			continue
		}
		t.tracked[id] = true
		if t.observer != nil && t.observer.Observe(id) {
			t.observed = append(t.observed, id)
		}
	}
	changed := t.active != ""
	t.active = ""
	subs := t.subscribersLocked()
	t.mu.Unlock()

	if changed {
		notify(subs, "")
	}
	return nil
}

// IDs returns the tracked ids in page order.
func (t *Tracker) IDs() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.ids)
}

// Active returns the current active id, or "" before the first determination.
func (t *Tracker) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Update applies one batch of notifications and returns the active id.
//
// Among the batch's intersecting, tracked entries the one whose top edge is
// closest to the top of the viewport wins. With no intersecting entry and the
// page scrolled less than the top threshold, the first tracked id wins.
// Otherwise the previous value is kept.
func (t *Tracker) Update(batch []Entry, scrollY float64) string {
	t.mu.Lock()
	next := ""
	var best *Entry
	for i := range batch {
		e := &batch[i]
		if !e.Intersecting || !t.tracked[e.ID] {
			continue
		}
		if best == nil || e.Top <= best.Top {
			best = e
		}
	}
	switch {
	case best != nil:
		next = best.ID
	case scrollY < t.topThreshold && len(t.ids) > 0:
		next = t.ids[0]
	}

	if next == "" || next == t.active {
		active := t.active
		t.mu.Unlock()
		return active
	}
	t.active = next
	subs := t.subscribersLocked()
	t.mu.Unlock()

	notify(subs, next)
	return next
}

// Measure computes intersection against the band for the given element
// positions and applies the result as one batch. Ids without a rect are
// treated as not mounted.
func (t *Tracker) Measure(rects map[string]Rect, viewportHeight, scrollY float64) string {
	ids := t.IDs()
	batch := make([]Entry, 0, len(ids))
	for _, id := range ids {
		r, ok := rects[id]
		if !ok {
			continue
		}
		batch = append(batch, Entry{
			ID:           id,
			Top:          r.Top,
			Bottom:       r.Bottom,
			Intersecting: t.band.Intersects(r.Top, r.Bottom, viewportHeight),
		})
	}
	return t.Update(batch, scrollY)
}

// Subscribe registers fn to be called with the new active id whenever it
// changes. The returned function removes the subscription.
func (t *Tracker) Subscribe(fn func(active string)) (cancel func()) {
	t.mu.Lock()
	id := t.nextSub
	t.nextSub++
	t.subs[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
	}
}

// Close releases every observed element. It is safe to call more than once.
func (t *Tracker) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.releaseLocked()
	t.closed = true
	t.subs = make(map[int]func(string))
	return nil
}

func (t *Tracker) releaseLocked() {
	if t.observer != nil {
		for _, id := range t.observed {
			t.observer.Unobserve(id)
		}
	}
	t.observed = nil
}

func (t *Tracker) subscribersLocked() []func(string) {
	if len(t.subs) == 0 {
		return nil
	}
	keys := make([]int, 0, len(t.subs))
	for k := range t.subs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	fns := make([]func(string), len(keys))
	for i, k := range keys {
		fns[i] = t.subs[k]
	}
	return fns
}

func notify(subs []func(string), active string) {
	for _, fn := range subs {
		fn(active)
	}
}
