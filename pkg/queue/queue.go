// pkg/queue/queue.go
package queue

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/daradege/dastore/pkg/core"
)

// Queue is a thread-safe install queue. Packages are deduplicated by name;
// subscribers are notified on every change.
type Queue struct {
	mu    sync.Mutex
	items []*core.Package
	subs  []func([]*core.Package)
}

func New() *Queue {
	return &Queue{}
}

// Subscribe registers a callback invoked with a snapshot after every change.
func (q *Queue) Subscribe(fn func([]*core.Package)) {
	q.mu.Lock()
	q.subs = append(q.subs, fn)
	q.mu.Unlock()
}

// Add appends a package unless one with the same name is already queued.
// It reports whether the package was added.
func (q *Queue) Add(p *core.Package) bool {
	q.mu.Lock()
	for _, item := range q.items {
		if item.Name == p.Name {
			q.mu.Unlock()
			return false
		}
	}
	q.items = append(q.items, p)
	q.notifyLocked()
	q.mu.Unlock()
	return true
}

// Remove drops the named package from the queue.
func (q *Queue) Remove(name string) {
	q.mu.Lock()
	filtered := q.items[:0]
	for _, item := range q.items {
		if item.Name != name {
			filtered = append(filtered, item)
		}
	}
	q.items = filtered
	q.notifyLocked()
	q.mu.Unlock()
}

// Clear empties the queue.
func (q *Queue) Clear() {
	q.mu.Lock()
	q.items = nil
	q.notifyLocked()
	q.mu.Unlock()
}

// Items returns a snapshot of the queued packages.
func (q *Queue) Items() []*core.Package {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]*core.Package(nil), q.items...)
}

// Len returns the number of queued packages.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Split separates the queue into official-repository and AUR batches, in
// queue order. Repository packages install in one pacman transaction, AUR
// packages in one helper run.
func (q *Queue) Split() (official, aur []*core.Package) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, item := range q.items {
		if item.FromAUR() {
			aur = append(aur, item)
		} else {
			official = append(official, item)
		}
	}
	return official, aur
}

// notifyLocked must be called with q.mu held.
func (q *Queue) notifyLocked() {
	snapshot := append([]*core.Package(nil), q.items...)
	for _, fn := range q.subs {
		fn(snapshot)
	}
}

// DefaultPath is where the queue persists between runs.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "dastore", "queue.yaml")
	}
	return filepath.Join(home, ".cache", "dastore", "queue.yaml")
}

// Load restores a queue from disk. A missing file yields an empty queue.
func Load(path string) (*Queue, error) {
	if path == "" {
		path = DefaultPath()
	}

	q := New()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return q, nil
		}
		return nil, errors.Wrap(err, "reading queue")
	}
	if err := yaml.Unmarshal(data, &q.items); err != nil {
		return nil, errors.Wrap(err, "parsing queue")
	}
	return q, nil
}

// Save writes the queue to disk.
func (q *Queue) Save(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "creating queue directory")
	}

	data, err := yaml.Marshal(q.Items())
	if err != nil {
		return errors.Wrap(err, "marshaling queue")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "writing queue")
	}
	return nil
}
