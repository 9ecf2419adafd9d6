package watch

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/pders01/folderclip/internal/models"
	"github.com/pders01/folderclip/internal/store"
)

// Notifier surfaces a non-blocking, user-facing summary message.
type Notifier func(msg string)

// Reconciler observes workspace delete and rename events and repairs the
// stored file references: deleted paths are removed from every folder,
// renamed files are rewritten, and a renamed directory renames the
// same-named folders scoped to the current workspace. That last match is a
// base-name heuristic, not an identity check, because folders carry no
// filesystem binding; two unrelated folders sharing the old directory name
// will both be renamed.
type Reconciler struct {
	store        store.Store
	workspace    string
	debounce     time.Duration
	renameWindow time.Duration
	onRefresh    func()
	notify       Notifier

	watcher   *fsnotify.Watcher
	debouncer Debouncer
	done      chan struct{}

	// The OS reports a move as a bare Rename on the old path followed by a
	// Create on the new one. Pending old paths queue up in event order and
	// pair FIFO with arriving Creates, so two moves in quick succession
	// (Rename a, Rename b, Create x, Create y) reconcile as a->x and b->y.
	// A pending entry whose Create never arrives within renameWindow
	// decays into a delete.
	mu      sync.Mutex
	pending []*pendingRename
}

type pendingRename struct {
	oldPath string
	timer   *time.Timer
}

// NewReconciler starts watching the workspace tree rooted at workspace.
func NewReconciler(st store.Store, workspace string, debounce, renameWindow time.Duration, onRefresh func(), notify Notifier) (*Reconciler, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	r := &Reconciler{
		store:        st,
		workspace:    workspace,
		debounce:     debounce,
		renameWindow: renameWindow,
		onRefresh:    onRefresh,
		notify:       notify,
		watcher:      fw,
		done:         make(chan struct{}),
	}

	if err := r.addTree(workspace); err != nil {
		fw.Close()
		return nil, err
	}

	go r.loop()
	return r, nil
}

// addTree subscribes to dir and every directory below it. fsnotify watches
// are not recursive, so new directories are added as Create events arrive.
func (r *Reconciler) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Printf("reconciler: skipping %s: %v", path, err)
			return nil
		}
		if d.IsDir() {
			if err := r.watcher.Add(path); err != nil {
				log.Printf("reconciler: cannot watch %s: %v", path, err)
			}
		}
		return nil
	})
}

func (r *Reconciler) loop() {
	defer close(r.done)
	for {
		select {
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			r.handleEvent(event)
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("reconciler: %v", err)
		}
	}
}

func (r *Reconciler) handleEvent(event fsnotify.Event) {
	switch {
	case event.Has(fsnotify.Remove):
		r.HandleDeletes([]string{event.Name})
	case event.Has(fsnotify.Rename):
		r.setPending(event.Name)
	case event.Has(fsnotify.Create):
		if old, ok := r.takePending(); ok {
			r.HandleRename(old, event.Name)
		}
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := r.watcher.Add(event.Name); err != nil {
				log.Printf("reconciler: cannot watch %s: %v", event.Name, err)
			}
		}
	}
}

func (r *Reconciler) setPending(old string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry := &pendingRename{oldPath: old}
	entry.timer = time.AfterFunc(r.renameWindow, func() {
		if r.removePending(entry) {
			// No Create followed: the path left the workspace for good.
			r.HandleDeletes([]string{old})
		}
	})
	r.pending = append(r.pending, entry)
}

// takePending pops the oldest pending old path, matching it to the Create
// that just arrived.
func (r *Reconciler) takePending() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.pending) == 0 {
		return "", false
	}
	entry := r.pending[0]
	r.pending = r.pending[1:]
	entry.timer.Stop()
	return entry.oldPath, true
}

// removePending unlinks one entry whose decay timer fired. Reports false
// when a Create already claimed it.
func (r *Reconciler) removePending(target *pendingRename) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, entry := range r.pending {
		if entry == target {
			r.pending = append(r.pending[:i], r.pending[i+1:]...)
			return true
		}
	}
	return false
}

// HandleDeletes removes every deleted URI (and, for directories, every URI
// below it) from all folders in one batch. Returns the number of removed
// references.
func (r *Reconciler) HandleDeletes(paths []string) int {
	removed := 0
	for _, f := range r.store.FindAll() {
		n := 0
		for _, path := range paths {
			n += removeDangling(f, path)
		}
		if n == 0 {
			continue
		}
		if err := r.store.Save(f); err != nil {
			log.Printf("reconciler: failed to save folder %q: %v", f.Name, err)
			continue
		}
		removed += n
	}
	if removed > 0 {
		r.notifyf("Removed %d deleted file reference(s) from folders", removed)
		r.scheduleRefresh()
	}
	return removed
}

// HandleRename reconciles one old-path/new-path pair. Directory renames
// rename matching folders; file renames rewrite the stored URI in every
// containing folder (removal + append, position is not preserved).
// Returns the number of folders changed.
func (r *Reconciler) HandleRename(oldPath, newPath string) int {
	info, err := os.Stat(newPath)
	if err != nil {
		log.Printf("reconciler: cannot classify renamed path %s: %v", newPath, err)
		return 0
	}
	if info.IsDir() {
		return r.renameDirectory(oldPath, newPath)
	}
	return r.renameFile(oldPath, newPath)
}

func (r *Reconciler) renameDirectory(oldPath, newPath string) int {
	oldBase := filepath.Base(oldPath)
	newBase := filepath.Base(newPath)
	if oldBase == newBase {
		return 0
	}

	renamed := 0
	for _, f := range r.store.FindByWorkspace(r.workspace) {
		if f.Name != oldBase {
			continue
		}
		if err := f.Rename(newBase); err != nil {
			log.Printf("reconciler: cannot rename folder %q: %v", f.Name, err)
			continue
		}
		if err := r.store.Save(f); err != nil {
			log.Printf("reconciler: failed to save folder %q: %v", f.Name, err)
			continue
		}
		renamed++
	}
	if renamed > 0 {
		r.notifyf("Renamed %d folder(s) from %q to %q", renamed, oldBase, newBase)
		r.scheduleRefresh()
	}
	return renamed
}

func (r *Reconciler) renameFile(oldPath, newPath string) int {
	changed := 0
	for _, f := range r.store.FindAll() {
		if !f.RemoveFile(oldPath) {
			continue
		}
		f.AddFile(newPath)
		if err := r.store.Save(f); err != nil {
			log.Printf("reconciler: failed to save folder %q: %v", f.Name, err)
			continue
		}
		changed++
	}
	if changed > 0 {
		r.notifyf("Updated renamed file in %d folder(s)", changed)
		r.scheduleRefresh()
	}
	return changed
}

// removeDangling drops path and anything below it from the folder's file
// list, returning the number of removals.
func removeDangling(f *models.Folder, path string) int {
	prefix := path + string(filepath.Separator)
	var doomed []string
	for _, file := range f.Files {
		if file == path || strings.HasPrefix(file, prefix) {
			doomed = append(doomed, file)
		}
	}
	return f.RemoveFiles(doomed)
}

func (r *Reconciler) notifyf(format string, args ...any) {
	if r.notify != nil {
		r.notify(fmt.Sprintf(format, args...))
	}
}

func (r *Reconciler) scheduleRefresh() {
	if r.onRefresh == nil {
		return
	}
	r.debouncer.Arm(r.debounce, r.onRefresh)
}

// Close cancels pending timers and the filesystem subscription.
func (r *Reconciler) Close() error {
	r.debouncer.Stop()
	r.mu.Lock()
	for _, entry := range r.pending {
		entry.timer.Stop()
	}
	r.pending = nil
	r.mu.Unlock()
	err := r.watcher.Close()
	<-r.done
	return err
}
