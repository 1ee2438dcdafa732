package assets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/anima2d/engine/core"
)

// Kind classifies a file by its extension.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindImage
	KindFont
	KindBitmapFont
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindFont:
		return "font"
	case KindBitmapFont:
		return "bitmap font"
	default:
		return "unknown"
	}
}

func KindOf(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return KindImage
	case ".ttf", ".otf", ".ttc":
		return KindFont
	case ".fnt":
		return KindBitmapFont
	default:
		return KindUnknown
	}
}

type AssetInfo struct {
	Path        string
	Kind        Kind
	LastChanged time.Time
}

// events buffered between two frames; changes beyond that are dropped
const pendingEvents = 256

// Watcher indexes the assets below a directory and reports changes to
// them. The engine drains the changes once per frame and hands them to the
// application as core.AssetChangedEvent.
type Watcher struct {
	root   string
	assets map[string]AssetInfo

	mutex sync.RWMutex

	fsnotify *fsnotify.Watcher
	events   chan core.AssetChangedEvent
	done     chan struct{}
	wg       sync.WaitGroup
	isClosed bool
}

// NewWatcher walks root, indexes every known asset and starts watching
// root and all of its sub-directories.
func NewWatcher(root string) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		root:     filepath.Clean(root),
		assets:   make(map[string]AssetInfo),
		fsnotify: fsWatch,
		events:   make(chan core.AssetChangedEvent, pendingEvents),
		done:     make(chan struct{}),
	}
	if err := w.watchRecursive(w.root); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w.wg.Add(1)
	go w.start()

	core.LogDebug("watching %d assets below %s", len(w.assets), w.root)
	return w, nil
}

func (w *Watcher) Root() string {
	return w.root
}

// Lookup returns the indexed asset at path.
func (w *Watcher) Lookup(path string) (AssetInfo, bool) {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	info, ok := w.assets[filepath.Clean(path)]
	return info, ok
}

// Assets lists the indexed assets sorted by path.
func (w *Watcher) Assets() []AssetInfo {
	w.mutex.RLock()
	out := make([]AssetInfo, 0, len(w.assets))
	for _, info := range w.assets {
		out = append(out, info)
	}
	w.mutex.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// Drain returns the changes observed since the previous call without
// blocking.
func (w *Watcher) Drain() []core.Event {
	var out []core.Event
	for {
		select {
		case e := <-w.events:
			out = append(out, e)
		default:
			return out
		}
	}
}

func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return core.ErrClosed
	}
	w.isClosed = true
	w.mutex.Unlock()

	close(w.done)
	w.wg.Wait()
	return w.fsnotify.Close()
}

func (w *Watcher) start() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			w.handle(e)

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %s", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handle(e fsnotify.Event) {
	path := filepath.Clean(e.Name)
	switch {
	case e.Has(fsnotify.Create):
		if s, err := os.Stat(path); err == nil && s.IsDir() {
			if err := w.watchRecursive(path); err != nil {
				core.LogWarn("failed to watch %s: %s", path, err)
			}
			return
		}
		if w.index(path) {
			w.emit(path, core.AssetCreated)
		}
	case e.Has(fsnotify.Write):
		if w.index(path) {
			w.emit(path, core.AssetModified)
		}
	case e.Has(fsnotify.Remove), e.Has(fsnotify.Rename):
		// A removed directory cannot be told apart from a removed file, so
		// try both.
		w.fsnotify.Remove(path)
		if w.forget(path) {
			w.emit(path, core.AssetRemoved)
		}
	}
}

func (w *Watcher) emit(path string, op core.AssetOp) {
	select {
	case w.events <- core.AssetChangedEvent{Path: path, Op: op}:
	default:
		core.LogDebug("asset event queue full, dropping %s %s", op, path)
	}
}

// watchRecursive adds path and every directory below it to the watch list
// and indexes the files it finds.
func (w *Watcher) watchRecursive(path string) error {
	return filepath.WalkDir(path, func(walkPath string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.fsnotify.Add(walkPath)
		}
		w.index(walkPath)
		return nil
	})
}

func (w *Watcher) index(path string) bool {
	kind := KindOf(path)
	if kind == KindUnknown {
		return false
	}
	w.mutex.Lock()
	defer w.mutex.Unlock()
	w.assets[path] = AssetInfo{
		Path:        path,
		Kind:        kind,
		LastChanged: time.Now(),
	}
	return true
}

func (w *Watcher) forget(path string) bool {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if _, ok := w.assets[path]; !ok {
		return false
	}
	delete(w.assets, path)
	return true
}
