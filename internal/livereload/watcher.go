package livereload

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 300 * time.Millisecond

// Watcher calls OnChange once the watched content has settled after a change.
// Files are watched through their parent directory so editors that replace
// the file on save are still seen. Directories are watched recursively.
type Watcher struct {
	Paths    []string
	OnChange func()
	Debounce time.Duration

	files map[string]bool
	roots []string
}

// NewWatcher watches paths, skipping empty ones.
func NewWatcher(onChange func(), paths ...string) *Watcher {
	w := &Watcher{OnChange: onChange, Debounce: DefaultDebounce}
	for _, p := range paths {
		if p != "" {
			w.Paths = append(w.Paths, p)
		}
	}
	return w
}

// Run watches until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := w.addTargets(fw); err != nil {
		return err
	}

	var (
		timer  *time.Timer
		settle <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			if ev.Has(fsnotify.Create) && isDir(ev.Name) {
				if err := addTree(fw, ev.Name); err != nil {
					log.Printf("livereload: watching %s: %v", ev.Name, err)
				}
			}
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
			} else {
				timer.Reset(w.Debounce)
			}
			settle = timer.C
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("livereload: watcher error: %v", err)
		case <-settle:
			settle = nil
			if w.OnChange != nil {
				w.OnChange()
			}
		}
	}
}

func (w *Watcher) addTargets(fw *fsnotify.Watcher) error {
	w.files = make(map[string]bool)
	w.roots = nil
	for _, p := range w.Paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}
		if info.IsDir() {
			w.roots = append(w.roots, abs)
			if err := addTree(fw, abs); err != nil {
				return fmt.Errorf("watching %s: %w", p, err)
			}
			continue
		}
		w.files[abs] = true
		if err := fw.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watching %s: %w", p, err)
		}
	}
	return nil
}

// relevant filters out attribute changes and siblings of watched files.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	name := filepath.Clean(ev.Name)
	if w.files[name] {
		return true
	}
	for _, root := range w.roots {
		if name == root || strings.HasPrefix(name, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func addTree(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
