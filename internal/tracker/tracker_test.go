package tracker

import (
	"errors"
	"slices"
	"testing"
)

// fakeObserver records observe/unobserve calls. Ids in missing are treated as
// not yet mounted.
type fakeObserver struct {
	missing  map[string]bool
	observed map[string]bool
	calls    []string
}

func newFakeObserver(missing ...string) *fakeObserver {
	o := &fakeObserver{missing: make(map[string]bool), observed: make(map[string]bool)}
	for _, id := range missing {
		o.missing[id] = true
	}
	return o
}

func (o *fakeObserver) Observe(id string) bool {
	o.calls = append(o.calls, "observe:"+id)
	if o.missing[id] {
		return false
	}
	o.observed[id] = true
	return true
}

func (o *fakeObserver) Unobserve(id string) {
	o.calls = append(o.calls, "unobserve:"+id)
	delete(o.observed, id)
}

func newTracked(t *testing.T, ids ...string) *Tracker {
	t.Helper()
	tr := New(DefaultBand, DefaultTopThreshold, nil)
	if err := tr.Track(ids); err != nil {
		t.Fatalf("Track: %v", err)
	}
	return tr
}

func TestInitialStateEmpty(t *testing.T) {
	tr := newTracked(t, "a", "b")
	if got := tr.Active(); got != "" {
		t.Errorf("Active() = %q, want empty", got)
	}
}

func TestClosestToTopWins(t *testing.T) {
	tr := newTracked(t, "a", "b")
	got := tr.Update([]Entry{
		{ID: "b", Top: 150, Bottom: 200, Intersecting: true},
		{ID: "a", Top: 20, Bottom: 120, Intersecting: true},
	}, 500)
	if got != "a" {
		t.Errorf("active = %q, want a", got)
	}
}

func TestClosestToTopNotDocumentOrder(t *testing.T) {
	tr := newTracked(t, "a", "b", "c")
	got := tr.Update([]Entry{
		{ID: "a", Top: 300, Bottom: 340, Intersecting: true},
		{ID: "c", Top: -10, Bottom: 120, Intersecting: true},
	}, 900)
	if got != "c" {
		t.Errorf("active = %q, want c", got)
	}
}

func TestClosestToTopTieGoesToLater(t *testing.T) {
	tr := newTracked(t, "a", "b")
	got := tr.Update([]Entry{
		{ID: "a", Top: 120, Bottom: 300, Intersecting: true},
		{ID: "b", Top: 120, Bottom: 300, Intersecting: true},
	}, 500)
	if got != "b" {
		t.Errorf("active = %q, want b", got)
	}
}

func TestFallbackToFirstNearTop(t *testing.T) {
	tr := newTracked(t, "first", "second")
	got := tr.Update([]Entry{{ID: "second", Top: 700, Bottom: 740}}, 0)
	if got != "first" {
		t.Errorf("active = %q, want first", got)
	}
}

func TestRetainPreviousWhenNothingIntersects(t *testing.T) {
	tr := newTracked(t, "a", "b", "c")
	tr.Update([]Entry{{ID: "b", Top: 120, Bottom: 160, Intersecting: true}}, 800)

	got := tr.Update([]Entry{{ID: "b", Top: -300, Bottom: -260}}, 1200)
	if got != "b" {
		t.Errorf("active = %q, want b retained", got)
	}
	if tr.Active() != "b" {
		t.Errorf("Active() = %q, want b", tr.Active())
	}
}

func TestUntrackedEntriesIgnored(t *testing.T) {
	tr := newTracked(t, "a")
	got := tr.Update([]Entry{{ID: "other", Top: 0, Bottom: 50, Intersecting: true}}, 500)
	if got != "" {
		t.Errorf("active = %q, want empty", got)
	}
}

func TestMeasureUsesBand(t *testing.T) {
	tr := newTracked(t, "a", "b", "c")
	// Viewport 1000px tall: band spans 100..400.
	rects := map[string]Rect{
		"a": {Top: -500, Bottom: -450},
		"b": {Top: 250, Bottom: 290},
		"c": {Top: 600, Bottom: 640},
	}
	if got := tr.Measure(rects, 1000, 900); got != "b" {
		t.Errorf("active = %q, want b", got)
	}

	// Heading above the header band does not count; b keeps its place.
	rects = map[string]Rect{
		"b": {Top: 40, Bottom: 80},
		"c": {Top: 450, Bottom: 490},
	}
	if got := tr.Measure(rects, 1000, 1100); got != "b" {
		t.Errorf("active = %q, want b retained", got)
	}
}

func TestTrackReleasesPreviousObservers(t *testing.T) {
	obs := newFakeObserver("missing")
	tr := New(DefaultBand, DefaultTopThreshold, obs)

	if err := tr.Track([]string{"a", "missing", "b"}); err != nil {
		t.Fatal(err)
	}
	if !obs.observed["a"] || !obs.observed["b"] || obs.observed["missing"] {
		t.Fatalf("observed = %v", obs.observed)
	}
	tr.Update([]Entry{{ID: "a", Top: 120, Bottom: 160, Intersecting: true}}, 500)

	if err := tr.Track([]string{"x", "y"}); err != nil {
		t.Fatal(err)
	}
	if obs.observed["a"] || obs.observed["b"] {
		t.Errorf("previous ids still observed: %v", obs.observed)
	}
	if !obs.observed["x"] || !obs.observed["y"] {
		t.Errorf("new ids not observed: %v", obs.observed)
	}
	if slices.Contains(obs.calls, "unobserve:missing") {
		t.Error("unobserved an element that was never observed")
	}
	if tr.Active() != "" {
		t.Errorf("active not reset after navigation: %q", tr.Active())
	}
}

func TestTrackSameSetIsNoop(t *testing.T) {
	obs := newFakeObserver()
	tr := New(DefaultBand, DefaultTopThreshold, obs)
	tr.Track([]string{"a", "b"})
	tr.Update([]Entry{{ID: "b", Top: 120, Bottom: 160, Intersecting: true}}, 500)
	calls := len(obs.calls)

	tr.Track([]string{"a", "b"})
	if len(obs.calls) != calls {
		t.Errorf("re-tracking same ids touched the observer: %v", obs.calls[calls:])
	}
	if tr.Active() != "b" {
		t.Errorf("active = %q, want b", tr.Active())
	}
}

func TestCloseReleasesEverything(t *testing.T) {
	obs := newFakeObserver()
	tr := New(DefaultBand, DefaultTopThreshold, obs)
	tr.Track([]string{"a", "b", "c"})

	if err := tr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if len(obs.observed) != 0 {
		t.Errorf("observers leaked: %v", obs.observed)
	}
	if err := tr.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if err := tr.Track([]string{"d"}); !errors.Is(err, ErrClosed) {
		t.Errorf("Track after Close err = %v, want ErrClosed", err)
	}
}

func TestSubscribeNotifiesOnChange(t *testing.T) {
	tr := newTracked(t, "a", "b")
	var seen []string
	cancel := tr.Subscribe(func(active string) { seen = append(seen, active) })

	tr.Update(nil, 0) // first
	tr.Update([]Entry{{ID: "a", Top: 110, Bottom: 150, Intersecting: true}}, 10)
	tr.Update([]Entry{{ID: "b", Top: 110, Bottom: 150, Intersecting: true}}, 600)
	cancel()
	tr.Update([]Entry{{ID: "a", Top: 110, Bottom: 150, Intersecting: true}}, 10)

	want := []string{"a", "b"}
	if !slices.Equal(seen, want) {
		t.Errorf("notifications = %v, want %v", seen, want)
	}
}

func TestBandRootMargin(t *testing.T) {
	if got := DefaultBand.RootMargin(); got != "-100px 0px -60% 0px" {
		t.Errorf("RootMargin() = %q", got)
	}
	b := Band{HeaderOffset: 72.5, BottomRatio: 0.55}
	if got := b.RootMargin(); got != "-72.5px 0px -55% 0px" {
		t.Errorf("RootMargin() = %q", got)
	}
}

func TestBandIntersects(t *testing.T) {
	tests := []struct {
		name        string
		top, bottom float64
		want        bool
	}{
		{"inside", 150, 200, true},
		{"straddles header edge", 60, 140, true},
		{"above", 10, 90, false},
		{"below", 450, 500, false},
		{"spans band", -100, 900, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultBand.Intersects(tt.top, tt.bottom, 1000); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.top, tt.bottom, got, tt.want)
			}
		})
	}
}

func TestScrollTop(t *testing.T) {
	if got := DefaultOffsets.ScrollTop(1200, 1440); got != 1100 {
		t.Errorf("wide ScrollTop = %v, want 1100", got)
	}
	if got := DefaultOffsets.ScrollTop(1200, 390); got != 1120 {
		t.Errorf("narrow ScrollTop = %v, want 1120", got)
	}
	if got := DefaultOffsets.ScrollTop(40, 1440); got != 0 {
		t.Errorf("clamped ScrollTop = %v, want 0", got)
	}
}
