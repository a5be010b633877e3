// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sync"

// ItemList is the live, ordered collection of entities shown to the user.
// It is safe for concurrent use; the sync orchestrator mutates it in place
// while merging server responses.
type ItemList struct {
	mu    sync.RWMutex
	items []Entity
}

// NewItemList returns a list holding items in the given order.
func NewItemList(items ...Entity) *ItemList {
	l := &ItemList{items: make([]Entity, 0, len(items))}
	l.items = append(l.items, items...)
	return l
}

// All returns a copy of the current items in order.
func (l *ItemList) All() []Entity {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entity, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items.
func (l *ItemList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Find returns the item with the given id.
func (l *ItemList) Find(id string) (Entity, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if idx := l.indexOf(id); idx != -1 {
		return l.items[idx], true
	}
	return nil, false
}

// Upsert replaces the item with the same id in place, keeping its position,
// or appends e when no such item exists. Entities without an id are ignored.
func (l *ItemList) Upsert(e Entity) {
	id := e.ID()
	if id == "" {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if idx := l.indexOf(id); idx != -1 {
		l.items[idx] = e
		return
	}
	l.items = append(l.items, e)
}

// Remove deletes the item with the given id and reports whether it existed.
func (l *ItemList) Remove(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx == -1 {
		return false
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return true
}

// Replace swaps the whole content of the list.
func (l *ItemList) Replace(items []Entity) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = make([]Entity, 0, len(items))
	l.items = append(l.items, items...)
}

func (l *ItemList) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.items {
		if item.ID() == id {
			return i
		}
	}
	return -1
}

// Selection holds the id of the currently selected or active entity.
// The zero value has nothing selected.
type Selection struct {
	mu sync.RWMutex
	id string
}

// NewSelection returns a selection pointing at id.
func NewSelection(id string) *Selection {
	return &Selection{id: id}
}

// Current returns the selected id, or an empty string.
func (s *Selection) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// Set selects id.
func (s *Selection) Set(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.id = id
}

// Clear drops the selection.
func (s *Selection) Clear() {
	s.Set("")
}
