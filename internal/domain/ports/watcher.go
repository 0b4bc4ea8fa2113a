package ports

import (
	"context"
	"time"
)

// DeckWatcher reports changes to the slide files of a directory
type DeckWatcher interface {
	// Watch starts watching dir and delivers one DeckChange per settled batch of edits
	Watch(ctx context.Context, dir string) (<-chan DeckChange, error)
	// Stop stops the watcher and closes the change channel
	Stop() error
}

// DeckChange is a batch of file changes observed together
type DeckChange struct {
	Events    []FileChangeEvent
	Timestamp time.Time
}

// FileChangeEvent represents a change to one slide file
type FileChangeEvent struct {
	Path string
	Type ChangeType
}

// ChangeType represents the type of file change
type ChangeType int

const (
	// Modified indicates the file content changed
	Modified ChangeType = iota
	// Created indicates the file appeared
	Created
	// Deleted indicates the file disappeared
	Deleted
)

// String returns the string representation of ChangeType
func (c ChangeType) String() string {
	switch c {
	case Modified:
		return "modified"
	case Created:
		return "created"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}
