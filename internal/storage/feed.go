package storage

import (
	"sync"
	"time"
)

// Table names published on the change feed.
const (
	TablePhotos       = "photos"
	TableVideos       = "videos"
	TableAlbums       = "albums"
	TableAlbumMembers = "album_members"
)

// Change tells subscribers that a cached table was modified.
type Change struct {
	Table string
	At    time.Time
}

// ChangeFeed fans out table change notifications to subscribers.
// Slow subscribers miss notifications rather than blocking writers.
type ChangeFeed struct {
	mu   sync.Mutex
	subs map[chan Change]struct{}
}

// NewChangeFeed creates an empty feed.
func NewChangeFeed() *ChangeFeed {
	return &ChangeFeed{subs: make(map[chan Change]struct{})}
}

// Subscribe registers a new subscriber. The returned func unsubscribes and
// closes the channel.
func (f *ChangeFeed) Subscribe() (<-chan Change, func()) {
	ch := make(chan Change, 16)
	f.mu.Lock()
	f.subs[ch] = struct{}{}
	f.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, ch)
			f.mu.Unlock()
			close(ch)
		})
	}
}

// Publish notifies every subscriber that table changed. Safe on a nil feed.
func (f *ChangeFeed) Publish(table string) {
	if f == nil {
		return
	}
	change := Change{Table: table, At: time.Now().UTC()}

	f.mu.Lock()
	defer f.mu.Unlock()
	for ch := range f.subs {
		select {
		case ch <- change:
		default:
		}
	}
}
