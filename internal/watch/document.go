package watch

import (
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadStore is the slice of the folder store the document watcher needs.
type ReloadStore interface {
	Reload() error
	LastLocalWrite() time.Time
	Path() string
}

// DocumentWatcher observes the shared folder document for writes by other
// running instances. Events inside the suppress window after a local write
// are attributed to this process and ignored; the rest arm a debouncer so
// a burst of external changes collapses into exactly one reload plus one
// refresh signal.
type DocumentWatcher struct {
	store     ReloadStore
	suppress  time.Duration
	debounce  time.Duration
	onRefresh func()

	watcher   *fsnotify.Watcher
	debouncer Debouncer
	done      chan struct{}
}

// NewDocumentWatcher starts watching the store's document. onRefresh is
// invoked (after the debounced reload) so the owning surface can redraw.
func NewDocumentWatcher(st ReloadStore, suppress, debounce time.Duration, onRefresh func()) (*DocumentWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: atomic replace (temp + rename)
	// swaps the inode, which would silently drop a file-level watch.
	if err := fw.Add(filepath.Dir(st.Path())); err != nil {
		fw.Close()
		return nil, err
	}

	w := &DocumentWatcher{
		store:     st,
		suppress:  suppress,
		debounce:  debounce,
		onRefresh: onRefresh,
		watcher:   fw,
		done:      make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *DocumentWatcher) loop() {
	defer close(w.done)
	docName := filepath.Base(w.store.Path())
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != docName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			w.handleChange()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("document watcher: %v", err)
		}
	}
}

func (w *DocumentWatcher) handleChange() {
	if time.Since(w.store.LastLocalWrite()) < w.suppress {
		// Our own write echoing back through the filesystem.
		return
	}
	w.debouncer.Arm(w.debounce, func() {
		if err := w.store.Reload(); err != nil {
			log.Printf("document watcher: reload failed: %v", err)
			return
		}
		if w.onRefresh != nil {
			w.onRefresh()
		}
	})
}

// Close cancels the pending reload and the filesystem subscription.
func (w *DocumentWatcher) Close() error {
	w.debouncer.Stop()
	err := w.watcher.Close()
	<-w.done
	return err
}
