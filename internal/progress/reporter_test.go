package progress

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestCIReporterCountsSteps(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}
	r.Start(3)

	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Step("page")
		}()
	}
	wg.Wait()
	r.Finish()

	out := buf.String()
	if !strings.HasPrefix(out, "Exporting 3 pages\n") {
		t.Errorf("missing header in %q", out)
	}
	if !strings.Contains(out, "[3/3] page") {
		t.Errorf("missing final step in %q", out)
	}
	if !strings.HasSuffix(out, "Site export complete\n") {
		t.Errorf("missing footer in %q", out)
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}
