package watcher

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"d2dfavicon/src/config"

	"github.com/fsnotify/fsnotify"
)

// Converter regenerates the favicon set
type Converter interface {
	Convert() bool
}

// Watcher monitors the logo file and regenerates favicons when it changes
type Watcher struct {
	logoPath  string
	debounce  time.Duration
	converter Converter
	watcher   *fsnotify.Watcher
	events    chan Event

	mu      sync.Mutex
	timer   *time.Timer
	started bool
	stopped bool
	done    chan struct{}
	pending sync.WaitGroup

	// serializes conversions so two debounced bursts never write at once
	convertMu sync.Mutex
}

// Event represents a handled change to the logo
type Event struct {
	Type     EventType
	FilePath string
	// Success reports the conversion outcome; always false for EventDeleted
	Success bool
}

// EventType represents the type of file event
type EventType int

const (
	EventCreated EventType = iota
	EventModified
	EventDeleted
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventModified:
		return "modified"
	case EventDeleted:
		return "deleted"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// NewWatcher creates a new logo watcher
func NewWatcher(cfg *config.Config, converter Converter) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		logoPath:  cfg.LogoPath,
		debounce:  cfg.Watch.Debounce(),
		converter: converter,
		watcher:   fsWatcher,
		events:    make(chan Event, 100),
		done:      make(chan struct{}),
	}, nil
}

// Start begins monitoring the directory that holds the logo.
// The directory is watched rather than the file so that editors which
// replace the file on save are still picked up.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.logoPath)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch folder %s: %w", dir, err)
	}
	log.Printf("Watching %s for changes", w.logoPath)

	w.mu.Lock()
	w.started = true
	w.mu.Unlock()

	go w.processEvents()

	return nil
}

// processEvents filters fsnotify events down to the logo and debounces them
func (w *Watcher) processEvents() {
	defer close(w.done)

	name := filepath.Base(w.logoPath)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Favicons are usually written next to the logo; ignore them
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			w.schedule(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// schedule restarts the debounce timer; only the last event of a burst is handled
func (w *Watcher) schedule(event fsnotify.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() { w.fire(event) })
}

func (w *Watcher) fire(event fsnotify.Event) {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.pending.Add(1)
	w.mu.Unlock()

	defer w.pending.Done()
	w.handleEvent(event)
}

// handleEvent regenerates favicons for a single debounced logo event
func (w *Watcher) handleEvent(event fsnotify.Event) {
	var eventType EventType

	switch {
	case event.Op&fsnotify.Create == fsnotify.Create:
		eventType = EventCreated
		log.Printf("🖼️  Logo created: %s", event.Name)
	case event.Op&fsnotify.Write == fsnotify.Write:
		eventType = EventModified
		log.Printf("🖼️  Logo modified: %s", event.Name)
	default:
		// Remove or rename away: keep the favicons from the last good logo
		eventType = EventDeleted
		log.Printf("Logo removed: %s (keeping existing favicons)", event.Name)
	}

	success := false
	if eventType != EventDeleted {
		w.convertMu.Lock()
		success = w.converter.Convert()
		w.convertMu.Unlock()

		if success {
			log.Printf("✅ Favicons regenerated")
		} else {
			log.Printf("❌ Favicon regeneration failed")
		}
	}

	select {
	case w.events <- Event{Type: eventType, FilePath: event.Name, Success: success}:
	default:
		log.Printf("Event channel full, dropping %v event for %s", eventType, event.Name)
	}
}

// Events returns the event channel. It is closed by Stop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop stops the watcher and waits for an in-flight conversion to finish
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	started := w.started
	w.mu.Unlock()

	err := w.watcher.Close()
	if started {
		<-w.done
	}
	w.pending.Wait()
	close(w.events)

	return err
}
