package tui

import (
	"homeinsight-listings/pkg/listings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Close()
		return m, tea.Quit
	case "tab", "down":
		return m.focusField((m.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return m.focusField((m.focus + fieldCount - 1) % fieldCount)
	case "enter":
		m.debouncer.Stop()
		cmd := m.dispatch(actionSearch)
		return m, cmd
	case "esc":
		m.inputs[m.focus].Blur()
		m.editing = false
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		m.scheduleSearch()
	}
	return m, cmd
}

func (m Model) focusField(i int) (tea.Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m, m.inputs[m.focus].Focus()
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	paged := m.session(m.view).Mode() == listings.ModePaged

	switch msg.String() {
	case "ctrl+c", "q":
		m.Close()
		return m, tea.Quit
	case "/", "i":
		m.editing = true
		return m, m.inputs[m.focus].Focus()
	case "j", "down":
		if m.cursor < len(m.snapshot.Results)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "m":
		if paged {
			break
		}
		if !m.snapshot.CanLoadMore {
			m.status = m.blockedReason(listings.ErrNoMorePages)
			return m, nil
		}
		cmd := m.dispatch(actionLoadMore)
		return m, cmd
	case "n", "right":
		if !m.canPage(m.snapshot.Pagination.HasNext()) {
			m.status = m.blockedReason(listings.ErrNoMorePages)
			return m, nil
		}
		cmd := m.dispatch(actionNext)
		return m, cmd
	case "p", "left":
		if !m.canPage(m.snapshot.Pagination.HasPrevious()) {
			m.status = m.blockedReason(listings.ErrPageOutOfRange)
			return m, nil
		}
		cmd := m.dispatch(actionPrevious)
		return m, cmd
	case "r":
		if m.snapshot.CanRetry {
			cmd := m.dispatch(actionRetry)
			return m, cmd
		}
	case "enter":
		return m.openDetail()
	case "v":
		return m.switchView(m.nextView())
	}
	return m, nil
}

// canPage reports whether paging from the displayed results is possible. In
// load-more mode next appends, so it follows CanLoadMore.
func (m Model) canPage(exists bool) bool {
	v := m.snapshot
	if !v.Searched || v.SearchFailed {
		return false
	}
	if m.session(m.view).Mode() == listings.ModeLoadMore && v.Err != nil {
		return false
	}
	return exists
}

func (m Model) blockedReason(fallback error) string {
	switch {
	case m.snapshot.SearchFailed:
		return listings.ErrSearchFailed.Error()
	case m.snapshot.CanRetry:
		return "press r to try again first"
	}
	return fallback.Error()
}

func (m Model) nextView() ViewKind {
	next := (m.view + 1) % ViewKind(len(viewNames))
	if next == ViewAdmin && m.opts.Admin == nil {
		next = ViewBuy
	}
	return next
}

// switchView shows v, searching with the current inputs on first visit.
func (m Model) switchView(v ViewKind) (tea.Model, tea.Cmd) {
	if v == m.view {
		return m, nil
	}
	m.debouncer.Stop()
	m = m.closeDetail()
	m.view = v
	m.cursor = 0
	m.status = ""
	m.snapshot = m.session(v).Snapshot()
	if !m.snapshot.Searched {
		cmd := m.dispatch(actionSearch)
		return m, cmd
	}
	return m, nil
}
