package task

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/AbdulRehmanAnsari35/cli-todo2/internal/model"
)

var ErrNotFound = errors.New("task not found")

// Patch represents a partial update.
// nil pointer => "no change"
// empty string for DueDate/DueTime/Description => clear (set to nil)
type Patch struct {
	Title       *string          `json:"title,omitempty"`
	Description *string          `json:"description,omitempty"`
	DueDate     *string          `json:"due_date,omitempty"`
	DueTime     *string          `json:"due_time,omitempty"`
	Priority    *model.Priority  `json:"priority,omitempty"`
	Tags        *[]string        `json:"tags,omitempty"`
	Recurring   *model.Recurring `json:"recurring,omitempty"`
}

// Snapshot is the persistence hook: Save rewrites the full collection,
// Load brings it back. A nil Snapshot makes the store memory-only.
type Snapshot interface {
	Load() ([]model.Task, error)
	Save(tasks []model.Task) error
}

// Store owns the task collection and the id counter. Mutations validate
// first, commit second, persist third; a failed validation leaves both
// the collection and the counter untouched. Persistence failures are
// logged and do not undo the in-memory mutation.
type Store struct {
	mu     sync.RWMutex
	tasks  map[int]model.Task
	order  []int
	nextID int

	snap  Snapshot
	warnf func(format string, args ...any)
}

// NewStore builds a store over the given snapshot. A load failure is
// reported through warnf and the store starts empty; it is never fatal.
func NewStore(snap Snapshot) *Store {
	s := &Store{
		tasks:  map[int]model.Task{},
		nextID: 1,
		snap:   snap,
		warnf:  log.Printf,
	}
	if snap == nil {
		return s
	}
	loaded, err := snap.Load()
	if err != nil {
		s.warnf("load tasks: %v (starting empty)", err)
		return s
	}
	for _, t := range loaded {
		s.tasks[t.ID] = t
		s.order = append(s.order, t.ID)
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return s
}

// SetWarnFunc redirects non-fatal warnings (persistence and recurrence
// failures). The default goes to the standard logger.
func (s *Store) SetWarnFunc(fn func(format string, args ...any)) {
	if fn != nil {
		s.warnf = fn
	}
}

// NextID returns the id the next Add would assign.
func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID
}

// Add validates and inserts a new task, returning its assigned id. The
// candidate's ID, Completed and CreatedAt fields are overwritten.
func (s *Store) Add(candidate model.Task) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate.Completed = false
	candidate.CreatedAt = time.Now()
	if err := Validate(&candidate); err != nil {
		return 0, err
	}

	candidate.ID = s.nextID
	s.nextID++
	s.tasks[candidate.ID] = candidate
	s.order = append(s.order, candidate.ID)
	s.persistLocked()
	return candidate.ID, nil
}

// Get returns a copy of the task with the given id.
func (s *Store) Get(id int) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, false
	}
	return t.Clone(), true
}

// All returns copies of every task in insertion order.
func (s *Store) All() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Task, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.tasks[id].Clone())
	}
	return out
}

// Update applies a partial patch, re-validates the merged task and
// commits only on success; the stored task is never mutated in place.
func (s *Store) Update(id int, p Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.tasks[id]
	if !ok {
		return ErrNotFound
	}

	staged := cur.Clone()
	applyPatch(&staged, p)
	if err := Validate(&staged); err != nil {
		return err
	}

	s.tasks[id] = staged
	s.persistLocked()
	return nil
}

// Delete removes the task with the given id. The id is never reused.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(s.tasks, id)
	for i, have := range s.order {
		if have == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.persistLocked()
	return nil
}

// ToggleCompletion flips the completed flag. Completing an enabled
// recurring task additionally inserts its next occurrence under a fresh
// id; if that generation fails the toggle still stands and the failure
// is downgraded to a warning.
func (s *Store) ToggleCompletion(id int) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.tasks[id]
	if !ok {
		return model.Task{}, ErrNotFound
	}

	wasCompleted := cur.Completed
	cur.Completed = !cur.Completed
	s.tasks[id] = cur

	if !wasCompleted && cur.Completed && cur.Recurring.Active() {
		next, err := NextOccurrence(cur)
		if err != nil {
			s.warnf("next occurrence for task %d: %v", id, err)
		} else {
			next.ID = s.nextID
			s.nextID++
			s.tasks[next.ID] = next
			s.order = append(s.order, next.ID)
		}
	}

	s.persistLocked()
	return cur.Clone(), nil
}

func (s *Store) persistLocked() {
	if s.snap == nil {
		return
	}
	all := make([]model.Task, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, s.tasks[id])
	}
	if err := s.snap.Save(all); err != nil {
		s.warnf("save tasks: %v (changes kept in memory)", err)
	}
}

func applyPatch(t *model.Task, p Patch) {
	if p.Title != nil {
		t.Title = *p.Title
	}

	// pointer string fields with "empty clears" semantics
	if p.Description != nil {
		if *p.Description == "" {
			t.Description = nil
		} else {
			t.Description = p.Description
		}
	}
	if p.DueDate != nil {
		if *p.DueDate == "" {
			t.DueDate = nil
		} else {
			t.DueDate = p.DueDate
		}
	}
	if p.DueTime != nil {
		if *p.DueTime == "" {
			t.DueTime = nil
		} else {
			t.DueTime = p.DueTime
		}
	}

	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Tags != nil {
		if *p.Tags == nil {
			t.Tags = []string{}
		} else {
			t.Tags = append([]string(nil), *p.Tags...)
		}
	}
	if p.Recurring != nil {
		t.Recurring = p.Recurring
	}
}
