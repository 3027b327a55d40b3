package tui

import (
	"fmt"
	"strconv"
	"strings"

	"homeinsight-listings/pkg/listings"

	"github.com/charmbracelet/lipgloss"
)

var fieldLabels = [fieldCount]string{
	fieldSearch:   "Search",
	fieldLocation: "Location",
	fieldType:     "Type",
	fieldBedrooms: "Bedrooms",
	fieldMinPrice: "Min ₹",
	fieldMaxPrice: "Max ₹",
}

// rows taken by everything except the result list
const chromeRows = 16

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.tabs())
	b.WriteString("\n\n")
	b.WriteString(panelStyle.Render(m.filters()))
	b.WriteString("\n\n")
	if m.detailID != "" {
		b.WriteString(m.detailView())
	} else {
		b.WriteString(m.results())
	}
	b.WriteString("\n")
	b.WriteString(m.footer())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help()))
	return b.String()
}

func (m Model) tabs() string {
	parts := []string{titleStyle.Render("HomeInsight")}
	for i, name := range viewNames {
		if ViewKind(i) == ViewAdmin && m.opts.Admin == nil {
			continue
		}
		if ViewKind(i) == m.view {
			parts = append(parts, activeTabStyle.Render(name))
		} else {
			parts = append(parts, tabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) filters() string {
	lines := make([]string, 0, 3)
	row := func(fields ...int) string {
		cells := make([]string, 0, len(fields))
		for _, f := range fields {
			label := labelStyle
			if m.editing && m.focus == f {
				label = focusedLabel
			}
			cells = append(cells, label.Render(fieldLabels[f])+m.inputs[f].View())
		}
		return strings.Join(cells, "  ")
	}
	lines = append(lines, row(fieldSearch))
	lines = append(lines, row(fieldLocation, fieldType, fieldBedrooms))
	lines = append(lines, row(fieldMinPrice, fieldMaxPrice))
	return strings.Join(lines, "\n")
}

func (m Model) results() string {
	view := m.snapshot
	if !view.Searched && m.inflight > 0 {
		return m.spinner.View() + " Loading properties..."
	}
	if len(view.Results) == 0 {
		if view.Err != nil {
			return ""
		}
		if view.Searched {
			return mutedStyle.Render("No properties found matching your criteria.")
		}
		return ""
	}

	visible := max(3, m.height-chromeRows)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(len(view.Results), start+visible)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.listingLine(i, view.Results[i]))
	}
	return strings.Join(lines, "\n")
}

func (m Model) listingLine(i int, l listings.Listing) string {
	marker := "  "
	if !m.editing && i == m.cursor {
		marker = cursorStyle.Render("> ")
	}
	line := marker + nameStyle.Render(l.Title()) + "  " + priceStyle.Render(listings.FormatPrice(l.Price, l.Purpose))

	details := make([]string, 0, 4)
	if l.Location != "" {
		details = append(details, l.Location)
	}
	if l.PropertyType != "" {
		details = append(details, l.PropertyType)
	}
	if l.Bedrooms != "" {
		details = append(details, l.Bedrooms+" bed")
	}
	if l.Area != "" {
		details = append(details, strings.TrimSpace(l.Area+" "+l.AreaUnit))
	}
	if m.view == ViewAdmin && l.Status != "" {
		details = append(details, l.Status)
	}
	if len(details) > 0 {
		line += "  " + mutedStyle.Render(strings.Join(details, " · "))
	}
	if l.Featured {
		line += " " + featuredStyle.Render("★")
	}
	return line
}

func (m Model) footer() string {
	view := m.snapshot
	var parts []string

	if m.inflight > 0 && view.Searched {
		parts = append(parts, m.spinner.View()+" Loading...")
	}
	if view.ErrMessage != "" {
		msg := errorStyle.Render(view.ErrMessage)
		if view.CanRetry {
			msg += mutedStyle.Render("  r: try again")
		}
		parts = append(parts, msg)
	}
	if m.status != "" {
		parts = append(parts, mutedStyle.Render(m.status))
	}
	if img := m.selectedImage(); img != "" {
		parts = append(parts, mutedStyle.Render("image: "+img))
	}

	if view.Searched && len(view.Results) > 0 {
		if m.session(m.view).Mode() == listings.ModePaged {
			parts = append(parts, pageLinks(view.Pagination))
		} else {
			summary := fmt.Sprintf("Showing %d of %d", len(view.Results), view.Pagination.TotalCount)
			if view.CanLoadMore {
				summary += "  m: load more"
			}
			parts = append(parts, mutedStyle.Render(summary))
		}
	}
	return strings.Join(parts, "\n")
}

func (m Model) selectedImage() string {
	if m.editing || m.detailID != "" || m.opts.ImageURL == nil || m.cursor >= len(m.snapshot.Results) {
		return ""
	}
	images := m.snapshot.Results[m.cursor].Images
	if len(images) == 0 {
		return ""
	}
	return m.opts.ImageURL(images[0])
}

// pageLinks renders ‹ 1 … 4 [5] 6 … 10 ›.
func pageLinks(p listings.PaginationState) string {
	var b strings.Builder
	if p.HasPrevious() {
		b.WriteString(otherPage.Render("‹"))
	}
	for _, link := range listings.PageWindow(p.CurrentPage, p.TotalPages, 1) {
		switch {
		case link.Ellipsis:
			b.WriteString(otherPage.Render("…"))
		case link.Current:
			b.WriteString(currentPage.Render(strconv.Itoa(link.Number)))
		default:
			b.WriteString(otherPage.Render(strconv.Itoa(link.Number)))
		}
	}
	if p.HasNext() {
		b.WriteString(otherPage.Render("›"))
	}
	return b.String()
}

func (m Model) help() string {
	if m.detailID != "" {
		return "esc: back to results • q: quit"
	}
	if m.editing {
		return "tab: next field • enter: search • esc: browse results • ctrl+c: quit"
	}
	return "/: edit filters • j/k: move • enter: details • n/p: next/prev page • m: load more • v: switch view • q: quit"
}
