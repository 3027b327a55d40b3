package tui

import (
	"context"
	"strings"

	"homeinsight-listings/pkg/listings"
	"homeinsight-listings/pkg/logger"

	tea "github.com/charmbracelet/bubbletea"
)

// DetailSource loads a single listing for the detail pane.
type DetailSource interface {
	Property(ctx context.Context, id string) (*listings.Listing, error)
}

type detailDoneMsg struct {
	id      string
	listing *listings.Listing
	err     error
}

func (m Model) fetchDetail(id string) tea.Cmd {
	ctx, source := m.ctx, m.opts.Detail
	return func() tea.Msg {
		l, err := source.Property(ctx, id)
		return detailDoneMsg{id: id, listing: l, err: err}
	}
}

// openDetail shows the listing under the cursor and loads its full record.
func (m Model) openDetail() (tea.Model, tea.Cmd) {
	if m.opts.Detail == nil || m.cursor >= len(m.snapshot.Results) {
		return m, nil
	}
	selected := m.snapshot.Results[m.cursor]
	if selected.ID == "" {
		return m, nil
	}
	m.detailID = selected.ID
	m.detail = &selected
	m.detailErr = ""
	m.detailLoading = true
	m.inflight++
	return m, tea.Batch(m.fetchDetail(selected.ID), m.spinner.Tick)
}

func (m Model) closeDetail() Model {
	m.detailID = ""
	m.detail = nil
	m.detailErr = ""
	m.detailLoading = false
	return m
}

func (m Model) finishDetail(msg detailDoneMsg) Model {
	if m.inflight > 0 {
		m.inflight--
	}
	if msg.id != m.detailID {
		return m
	}
	m.detailLoading = false
	if msg.err != nil {
		logger.GlobalLogger.Errorf("Property fetch failed: id=%s, error=%v", msg.id, msg.err)
		m.detailErr = listings.Message(msg.err)
		return m
	}
	m.detail = msg.listing
	return m
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.Close()
		return m, tea.Quit
	case "esc", "backspace", "enter":
		return m.closeDetail(), nil
	}
	return m, nil
}

func (m Model) detailView() string {
	l := m.detail
	if l == nil {
		return ""
	}

	lines := []string{
		nameStyle.Render(l.Title()) + "  " + priceStyle.Render(listings.FormatPrice(l.Price, l.Purpose)),
	}
	facts := make([]string, 0, 5)
	for _, f := range []string{l.Location, l.PropertyType} {
		if f != "" {
			facts = append(facts, f)
		}
	}
	if l.Bedrooms != "" {
		facts = append(facts, l.Bedrooms+" bed")
	}
	if l.Bathrooms != "" {
		facts = append(facts, l.Bathrooms+" bath")
	}
	if l.Area != "" {
		facts = append(facts, strings.TrimSpace(l.Area+" "+l.AreaUnit))
	}
	if len(facts) > 0 {
		lines = append(lines, mutedStyle.Render(strings.Join(facts, " · ")))
	}
	if l.Description != "" {
		lines = append(lines, "", l.Description)
	}
	if m.opts.ImageURL != nil && len(l.Images) > 0 {
		lines = append(lines, "")
		for _, img := range l.Images {
			lines = append(lines, mutedStyle.Render("image: "+m.opts.ImageURL(img)))
		}
	}

	switch {
	case m.detailLoading:
		lines = append(lines, "", m.spinner.View()+" Loading details...")
	case m.detailErr != "":
		lines = append(lines, "", errorStyle.Render(m.detailErr))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}
