package watcher

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/obby/watch-runner/internal/patterns"
)

// FileWatcher wraps fsnotify and classifies raw notifications into
// pending changes. Accepted events pass through the debouncer and land
// in the shared ChangeSet; the watch loop drains them on its own cadence.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	debouncer *Debouncer
	matcher   *patterns.Matcher
	changes   *ChangeSet
	mu        sync.Mutex
	watching  map[string]bool
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// NewFileWatcher creates a file watcher feeding the given change set
func NewFileWatcher(debounce time.Duration, matcher *patterns.Matcher, changes *ChangeSet) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &FileWatcher{
		watcher:   w,
		debouncer: NewDebouncer(debounce),
		matcher:   matcher,
		changes:   changes,
		watching:  make(map[string]bool),
		ctx:       ctx,
		cancel:    cancel,
	}, nil
}

// Start launches the event-processing goroutine
func (fw *FileWatcher) Start() error {
	fw.wg.Add(1)
	go fw.processEvents()
	return nil
}

// Stop cancels event processing, waits for the goroutine to exit, and
// closes the underlying watcher
func (fw *FileWatcher) Stop() error {
	fw.cancel()
	fw.wg.Wait()
	fw.debouncer.Stop()
	return fw.watcher.Close()
}

// AddPath starts watching a path; directories are added recursively
func (fw *FileWatcher) AddPath(path string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return fw.addDirectoryRecursive(absPath)
	}
	return fw.addLocked(absPath, false)
}

// addLocked registers a single path with fsnotify; caller holds fw.mu
func (fw *FileWatcher) addLocked(path string, isDir bool) error {
	if fw.watching[path] {
		return nil
	}
	if err := fw.watcher.Add(path); err != nil {
		return err
	}
	fw.watching[path] = isDir
	return nil
}

// addDirectoryRecursive registers a directory and all subdirectories;
// caller holds fw.mu
func (fw *FileWatcher) addDirectoryRecursive(dirPath string) error {
	return filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip unreadable entries
		}
		if !info.IsDir() {
			return nil
		}
		if err := fw.addLocked(path, true); err != nil {
			log.Printf("Error watching directory %s: %v", path, err)
		}
		return nil
	})
}

// processEvents consumes fsnotify events until the watcher is stopped
func (fw *FileWatcher) processEvents() {
	defer fw.wg.Done()
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handleEvent(event)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		case <-fw.ctx.Done():
			return
		}
	}
}

// handleEvent classifies a single fsnotify event. Created paths record
// no change, but newly created directories extend the watch. The kind
// check order mirrors fsnotify's op bits: a single event can carry
// several, the first tracked one wins.
func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	isDir := fw.isDirectory(event.Name)

	if event.Op&fsnotify.Create == fsnotify.Create {
		if isDir {
			fw.mu.Lock()
			if err := fw.addDirectoryRecursive(event.Name); err != nil {
				log.Printf("Error watching new directory %s: %v", event.Name, err)
			}
			fw.mu.Unlock()
		}
		return
	}

	var kind Kind
	switch {
	case event.Op&fsnotify.Write == fsnotify.Write:
		kind = KindModified
	case event.Op&fsnotify.Remove == fsnotify.Remove:
		kind = KindDeleted
		fw.forget(event.Name)
	case event.Op&fsnotify.Rename == fsnotify.Rename:
		// fsnotify reports the source path of a rename; the
		// destination shows up separately as a create.
		kind = KindRenamed
		fw.forget(event.Name)
	default:
		return // Chmod and friends
	}

	if !fw.matcher.ShouldProcess(event.Name, isDir) {
		return
	}

	change := Change{Kind: kind, Path: event.Name}
	fw.debouncer.Process(change, func() {
		fw.changes.Insert(change)
	})
}

// isDirectory reports whether path is a directory. For deleted or
// renamed paths a stat no longer works, so the watch registry is
// consulted as well.
func (fw *FileWatcher) isDirectory(path string) bool {
	if info, err := os.Stat(path); err == nil {
		return info.IsDir()
	}
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return fw.watching[path]
}

// forget drops a vanished path from the watch registry
func (fw *FileWatcher) forget(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	delete(fw.watching, path)
}
