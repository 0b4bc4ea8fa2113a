package watcher

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fredcamaral/slidedeck/internal/domain/ports"
)

// PollingWatcher detects slide changes in a directory by rescanning it
type PollingWatcher struct {
	fs        ports.FileSystem
	extension string
	interval  time.Duration
	debounce  time.Duration
	logger    *slog.Logger

	snapMu   sync.Mutex
	snapshot map[string]FileInfo

	events  chan ports.DeckChange
	mu      sync.Mutex
	wg      sync.WaitGroup
	stopped bool
	stopCh  chan struct{}
}

// FileInfo stores what a scan saw of one slide file
type FileInfo struct {
	Size     int64
	ModTime  time.Time
	Checksum string
}

// NewPollingWatcher creates a watcher for files ending in extension.
// Changes are delivered once the directory has been quiet for debounce.
func NewPollingWatcher(fs ports.FileSystem, extension string, interval, debounce time.Duration, logger *slog.Logger) *PollingWatcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &PollingWatcher{
		fs:        fs,
		extension: extension,
		interval:  interval,
		debounce:  debounce,
		logger:    logger,
		snapshot:  make(map[string]FileInfo),
		events:    make(chan ports.DeckChange, 10),
		stopCh:    make(chan struct{}),
	}
}

// Watch takes an initial snapshot of dir and starts polling it
func (w *PollingWatcher) Watch(ctx context.Context, dir string) (<-chan ports.DeckChange, error) {
	snapshot, err := w.scan(dir)
	if err != nil {
		return nil, fmt.Errorf("initial scan: %w", err)
	}

	w.snapMu.Lock()
	w.snapshot = snapshot
	w.snapMu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.pollLoop(ctx, dir)
	}()

	return w.events, nil
}

// Stop stops polling and closes the change channel
func (w *PollingWatcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	close(w.stopCh)
	w.mu.Unlock()

	w.wg.Wait()
	close(w.events)

	return nil
}

// Poll rescans dir and returns the changes since the previous scan
func (w *PollingWatcher) Poll(dir string) ([]ports.FileChangeEvent, error) {
	w.snapMu.Lock()
	defer w.snapMu.Unlock()

	current, err := w.scanAgainst(dir, w.snapshot)
	if err != nil {
		return nil, err
	}

	changes := diff(w.snapshot, current)
	w.snapshot = current

	return changes, nil
}

// pollLoop rescans on every tick and flushes pending changes once they settle
func (w *PollingWatcher) pollLoop(ctx context.Context, dir string) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var pending []ports.FileChangeEvent
	var lastChange time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			changes, err := w.Poll(dir)
			if err != nil {
				w.logger.Warn("Watch scan failed",
					slog.String("dir", dir),
					slog.String("error", err.Error()),
				)
				continue
			}

			if len(changes) > 0 {
				pending = append(pending, changes...)
				lastChange = time.Now()
			}

			if len(pending) == 0 || time.Since(lastChange) < w.debounce {
				continue
			}

			change := ports.DeckChange{Events: pending, Timestamp: time.Now()}
			select {
			case w.events <- change:
				pending = nil
			case <-ctx.Done():
				return
			case <-w.stopCh:
				return
			}
		}
	}
}

func (w *PollingWatcher) scan(dir string) (map[string]FileInfo, error) {
	return w.scanAgainst(dir, nil)
}

// scanAgainst reads the slide files of dir. Files whose size and
// modification time match previous reuse its checksum.
func (w *PollingWatcher) scanAgainst(dir string, previous map[string]FileInfo) (map[string]FileInfo, error) {
	result := make(map[string]FileInfo)

	entries, err := w.fs.ListFiles(dir)
	if err != nil {
		if ports.IsNotExist(err) {
			return result, nil
		}
		return nil, fmt.Errorf("%w %s: %w", ports.ErrListDirectory, dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir || !strings.HasSuffix(entry.Name, w.extension) {
			continue
		}

		info, err := w.fs.Stat(entry.Path)
		if err != nil {
			// removed between listing and stat
			continue
		}

		old, seen := previous[entry.Path]
		if seen && old.Size == info.Size() && old.ModTime.Equal(info.ModTime()) {
			result[entry.Path] = old
			continue
		}

		checksum, err := w.checksum(entry.Path)
		if err != nil {
			w.logger.Debug("Skipping unreadable slide",
				slog.String("path", entry.Path),
				slog.String("error", err.Error()),
			)
			continue
		}

		result[entry.Path] = FileInfo{
			Size:     info.Size(),
			ModTime:  info.ModTime(),
			Checksum: checksum,
		}
	}

	return result, nil
}

// checksum returns the SHA256 of a file's content
func (w *PollingWatcher) checksum(path string) (string, error) {
	text, err := w.fs.ReadAllText(path)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:]), nil
}

// diff compares two snapshots, ordered by path
func diff(before, after map[string]FileInfo) []ports.FileChangeEvent {
	var changes []ports.FileChangeEvent

	for path, info := range after {
		old, existed := before[path]
		switch {
		case !existed:
			changes = append(changes, ports.FileChangeEvent{Path: path, Type: ports.Created})
		case old.Checksum != info.Checksum:
			changes = append(changes, ports.FileChangeEvent{Path: path, Type: ports.Modified})
		}
	}

	for path := range before {
		if _, exists := after[path]; !exists {
			changes = append(changes, ports.FileChangeEvent{Path: path, Type: ports.Deleted})
		}
	}

	slices.SortFunc(changes, func(a, b ports.FileChangeEvent) int {
		return strings.Compare(a.Path, b.Path)
	})

	return changes
}

var _ ports.DeckWatcher = (*PollingWatcher)(nil)
