// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-account-sync/internal/notify"
	"github.com/MKhiriev/go-account-sync/internal/service"
)

const (
	refreshInterval = 250 * time.Millisecond
	toastTTL        = 4 * time.Second
	maxToasts       = 3
	idColumnWidth   = 36
	labelWidth      = 40
)

// queueRow is one pending change in the review list.
type queueRow struct {
	id       string
	label    string
	deletion bool
}

type reviewModel struct {
	ctx        context.Context
	instances  []service.ClientSyncService
	active     int
	recorder   *notify.Recorder
	notifier   notify.Notifier
	translator notify.Translator

	copyToClipboard func(string) error
	now             func() time.Time

	rows    []queueRow
	idx     int
	toasts  []notify.Notification
	spinner spinner.Model
	help    help.Model
}

func newReviewModel(
	ctx context.Context,
	instances []service.ClientSyncService,
	recorder *notify.Recorder,
	notifier notify.Notifier,
	translator notify.Translator,
) reviewModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return reviewModel{
		ctx:             ctx,
		instances:       instances,
		recorder:        recorder,
		notifier:        notifier,
		translator:      translator,
		copyToClipboard: clipboard.WriteAll,
		now:             time.Now,
		spinner:         s,
		help:            help.New(),
	}
}

func (m reviewModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, refresh())
}

func refresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return refreshMsg(t) })
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case refreshMsg:
		return m.reload(), refresh()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case syncDoneMsg:
		return m.reload(), nil
	case copiedMsg:
		if msg.err != nil {
			m.notifier.Error(fmt.Sprintf("copy to clipboard: %v", msg.err))
		} else {
			m.notifier.Success(m.translator.T(notify.KeyCopied))
		}
		return m.reload(), nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m reviewModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		for _, svc := range m.instances {
			svc.CloseQueueReview()
		}
		return m, tea.Quit
	}

	svc, ok := m.current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.tab):
		return m.switchTo(m.active + 1), nil
	case key.Matches(msg, keys.backtab):
		return m.switchTo(m.active - 1), nil
	case key.Matches(msg, keys.review):
		svc.OpenQueueReview()
	case key.Matches(msg, keys.close):
		svc.CloseQueueReview()
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.sync):
		return m.reload(), m.cmdSync(svc)
	case key.Matches(msg, keys.markAll):
		if svc.MarkAllForSync(m.ctx) {
			m.notifier.Success(m.translator.T(notify.KeyMarkedAllForSync))
		} else {
			m.notifier.Info(m.translator.T(notify.KeyNoItemsToSync))
		}
	case key.Matches(msg, keys.copy):
		if row, found := m.selectedRow(); found {
			return m, m.cmdCopy(row.id)
		}
	}

	return m.reload(), nil
}

func (m reviewModel) cmdSync(svc service.ClientSyncService) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		outcome, err := svc.Sync(ctx)
		return syncDoneMsg{platform: svc.Platform(), outcome: outcome, err: err}
	}
}

func (m reviewModel) cmdCopy(text string) tea.Cmd {
	copyFn := m.copyToClipboard
	return func() tea.Msg {
		return copiedMsg{err: copyFn(text)}
	}
}

// switchTo activates instance i (wrapping around) and closes the review of
// the one being left.
func (m reviewModel) switchTo(i int) reviewModel {
	n := len(m.instances)
	if n == 0 {
		return m
	}
	if svc, ok := m.current(); ok {
		svc.CloseQueueReview()
	}
	m.active = ((i % n) + n) % n
	m.idx = 0
	return m.reload()
}

func (m reviewModel) current() (service.ClientSyncService, bool) {
	if m.active < 0 || m.active >= len(m.instances) {
		return nil, false
	}
	return m.instances[m.active], true
}

func (m reviewModel) selectedRow() (queueRow, bool) {
	if m.idx < 0 || m.idx >= len(m.rows) {
		return queueRow{}, false
	}
	return m.rows[m.idx], true
}

// reload rebuilds the queue rows of the active instance and folds freshly
// recorded notifications into the toast list.
func (m reviewModel) reload() reviewModel {
	m.rows = nil
	if svc, ok := m.current(); ok && svc.IsQueueReviewOpen() {
		m.rows = queueRows(svc)
	}
	if m.idx >= len(m.rows) {
		m.idx = len(m.rows) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}

	if m.recorder != nil {
		m.toasts = append(m.toasts, m.recorder.Drain()...)
	}
	cutoff := m.now().Add(-toastTTL)
	live := make([]notify.Notification, 0, len(m.toasts))
	for _, t := range m.toasts {
		if t.At.After(cutoff) {
			live = append(live, t)
		}
	}
	if len(live) > maxToasts {
		live = live[len(live)-maxToasts:]
	}
	m.toasts = live

	return m
}

func queueRows(svc service.ClientSyncService) []queueRow {
	field := svc.LabelField()
	upserts := svc.PendingUpserts()
	deletions := svc.PendingDeletions()

	rows := make([]queueRow, 0, len(upserts)+len(deletions))
	for _, e := range upserts {
		rows = append(rows, queueRow{id: e.ID(), label: valueOrDash(e.Label(field))})
	}
	for _, t := range deletions {
		rows = append(rows, queueRow{id: t.ID, label: valueOrDash(t.Label), deletion: true})
	}
	return rows
}

func (m reviewModel) View() string {
	svc, ok := m.current()
	if !ok {
		return renderPage("ACCOUNT SYNC", "no sync instances configured", m.help.View(keys))
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")
	b.WriteString(m.viewStatus(svc))
	b.WriteString("\n\n")

	if svc.IsQueueReviewOpen() {
		b.WriteString(m.viewQueue())
	} else {
		b.WriteString(helpStyle.Render("press enter to review pending changes"))
	}

	if len(m.toasts) > 0 {
		b.WriteString("\n\n")
		for _, t := range m.toasts {
			b.WriteString(toastStyle(t.Level).Render(t.Message))
			b.WriteString("\n")
		}
	}

	return renderPage("ACCOUNT SYNC", strings.TrimRight(b.String(), "\n"), m.help.View(keys))
}

func (m reviewModel) viewTabs() string {
	tabs := make([]string, 0, len(m.instances))
	for i, svc := range m.instances {
		if i == m.active {
			tabs = append(tabs, activeTabStyle.Render(svc.Platform()))
		} else {
			tabs = append(tabs, tabStyle.Render(svc.Platform()))
		}
	}
	return strings.Join(tabs, " ")
}

func (m reviewModel) viewStatus(svc service.ClientSyncService) string {
	out := badgeStyle(svc.StorageStatusClass()).Render(svc.StorageStatusText())
	out += fmt.Sprintf("  version %d", svc.LastVersion())
	if svc.IsSyncing() {
		out += "  " + m.spinner.View() + " " + m.translator.T(notify.KeySyncingData)
	}
	if svc.IsLoadingFromSync() {
		out += "  " + helpStyle.Render("refreshing")
	}
	return out
}

func (m reviewModel) viewQueue() string {
	if len(m.rows) == 0 {
		return "no pending changes"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("pending changes: %d\n", len(m.rows)))
	for i, row := range m.rows {
		marker := "+"
		if row.deletion {
			marker = "-"
		}
		line := fmt.Sprintf("%s %-*s %s", marker, idColumnWidth, fitText(row.id, idColumnWidth), fitText(row.label, labelWidth))

		switch {
		case i == m.idx:
			line = selectedRowStyle.Render(line)
		case row.deletion:
			line = deletionRowStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
