// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	tab     key.Binding
	backtab key.Binding
	review  key.Binding
	close   key.Binding
	sync    key.Binding
	markAll key.Binding
	copy    key.Binding
	quit    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next platform")),
	backtab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev platform")),
	review:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "review queue")),
	close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close review")),
	sync:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync")),
	markAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "mark all")),
	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy id")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.review, k.sync, k.markAll, k.copy, k.tab, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.tab, k.backtab},
		{k.review, k.close, k.sync, k.markAll, k.copy, k.quit},
	}
}
