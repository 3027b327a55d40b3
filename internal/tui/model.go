// Package tui is a terminal front end for the listing views. It drives one
// listings.Session per view and renders its snapshots.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"homeinsight-listings/pkg/listings"
	"homeinsight-listings/pkg/logger"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewKind selects which listing page is shown.
type ViewKind int

const (
	ViewBuy ViewKind = iota
	ViewRent
	ViewAdmin
)

var viewNames = []string{"Buy", "Rent", "Admin"}

func (v ViewKind) String() string {
	if int(v) < len(viewNames) {
		return viewNames[v]
	}
	return "Unknown"
}

// ParseView accepts buy, rent or admin in any case.
func ParseView(s string) (ViewKind, error) {
	for i, name := range viewNames {
		if strings.EqualFold(s, name) {
			return ViewKind(i), nil
		}
	}
	return ViewBuy, fmt.Errorf("unknown view %q (want buy, rent or admin)", s)
}

// Options configures a Model.
type Options struct {
	// Public serves the Buy and Rent views.
	Public listings.PageSource
	// Admin serves the admin view; nil disables it.
	Admin    listings.PageSource
	PageSize int
	Debounce time.Duration
	View     ViewKind
	// ImageURL resolves listing image paths for display; optional.
	ImageURL func(path string) string
	// Detail loads a listing for the detail pane; nil disables it.
	Detail DetailSource
}

const (
	fieldSearch = iota
	fieldLocation
	fieldType
	fieldBedrooms
	fieldMinPrice
	fieldMaxPrice
	fieldCount
)

type action int

const (
	actionSearch action = iota
	actionLoadMore
	actionNext
	actionPrevious
	actionRetry
)

type fetchDoneMsg struct {
	view   ViewKind
	action action
	err    error
}

type searchDueMsg struct {
	view ViewKind
}

// Model is the bubbletea model of the browser.
type Model struct {
	opts     Options
	ctx      context.Context
	sessions map[ViewKind]*listings.Session

	view     ViewKind
	inputs   []textinput.Model
	focus    int
	editing  bool
	spinner  spinner.Model
	inflight int
	cursor   int
	height   int

	debouncer *listings.Debouncer
	events    chan tea.Msg

	snapshot listings.View
	status   string

	detailID      string
	detail        *listings.Listing
	detailErr     string
	detailLoading bool
}

// New builds a model. Fetches run under ctx; the first search starts from
// Init.
func New(ctx context.Context, opts Options) Model {
	if opts.PageSize <= 0 {
		opts.PageSize = listings.DefaultLimit
	}
	if opts.Admin == nil && opts.View == ViewAdmin {
		opts.View = ViewBuy
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	m := Model{
		opts:      opts,
		ctx:       ctx,
		sessions:  make(map[ViewKind]*listings.Session),
		view:      opts.View,
		inputs:    newInputs(),
		editing:   true,
		spinner:   sp,
		height:    24,
		debouncer: listings.NewDebouncer(opts.Debounce),
		events:    make(chan tea.Msg, 1),
		inflight:  1,
	}
	m.inputs[fieldSearch].Focus()
	return m
}

func newInputs() []textinput.Model {
	placeholders := [fieldCount]string{
		fieldSearch:   "Search by name, location or description",
		fieldLocation: "Location",
		fieldType:     "Type (all)",
		fieldBedrooms: "Bedrooms (all)",
		fieldMinPrice: "Min price",
		fieldMaxPrice: "Max price",
	}
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = ""
		ti.CharLimit = 64
		switch i {
		case fieldSearch:
			ti.Width = 40
		case fieldMinPrice, fieldMaxPrice:
			ti.Width = 10
		default:
			ti.Width = 16
		}
		inputs[i] = ti
	}
	return inputs
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForEvent(), m.fetch(actionSearch), m.spinner.Tick)
}

// session returns the view's session, creating it on first use.
func (m Model) session(v ViewKind) *listings.Session {
	if s, ok := m.sessions[v]; ok {
		return s
	}
	var s *listings.Session
	if v == ViewAdmin {
		s = listings.NewSession(m.opts.Admin, listings.WithLimit(listings.AdminLimit), listings.WithMode(listings.ModePaged))
	} else {
		s = listings.NewSession(m.opts.Public, listings.WithLimit(m.opts.PageSize))
	}
	m.sessions[v] = s
	return s
}

// filter reads the inputs; Buy and Rent preset the purpose.
func (m Model) filter() listings.FilterState {
	f := listings.FilterInput{
		Search:       m.inputs[fieldSearch].Value(),
		Location:     m.inputs[fieldLocation].Value(),
		PropertyType: m.inputs[fieldType].Value(),
		Bedrooms:     m.inputs[fieldBedrooms].Value(),
		MinPrice:     m.inputs[fieldMinPrice].Value(),
		MaxPrice:     m.inputs[fieldMaxPrice].Value(),
	}.State(listings.DefaultSentinels)

	switch m.view {
	case ViewBuy:
		return f.WithPurpose(listings.PurposeSale)
	case ViewRent:
		return f.WithPurpose(listings.PurposeRent)
	}
	return f
}

// fetch runs a on the current view's session in a command goroutine.
func (m Model) fetch(a action) tea.Cmd {
	s := m.session(m.view)
	v := m.view
	f := m.filter()
	ctx := m.ctx
	return func() tea.Msg {
		var err error
		switch a {
		case actionSearch:
			err = s.Search(ctx, f)
		case actionLoadMore:
			err = s.LoadMore(ctx)
		case actionNext:
			err = s.Next(ctx)
		case actionPrevious:
			err = s.Previous(ctx)
		case actionRetry:
			err = s.Retry(ctx)
		}
		return fetchDoneMsg{view: v, action: a, err: err}
	}
}

// dispatch is fetch plus the spinner.
func (m *Model) dispatch(a action) tea.Cmd {
	m.inflight++
	m.status = ""
	return tea.Batch(m.fetch(a), m.spinner.Tick)
}

func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		return <-events
	}
}

// scheduleSearch restarts the debounce wait for a search of the current view.
func (m Model) scheduleSearch() {
	events := m.events
	due := searchDueMsg{view: m.view}
	m.debouncer.Trigger(func() {
		select {
		case events <- due:
		default:
		}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.detailID != "" {
			return m.updateDetail(msg)
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)

	case searchDueMsg:
		if msg.view != m.view {
			return m, m.waitForEvent()
		}
		cmd := m.dispatch(actionSearch)
		return m, tea.Batch(m.waitForEvent(), cmd)

	case fetchDoneMsg:
		return m.finish(msg), nil

	case detailDoneMsg:
		return m.finishDetail(msg), nil

	case spinner.TickMsg:
		if m.inflight == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.editing {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) finish(msg fetchDoneMsg) Model {
	if m.inflight > 0 {
		m.inflight--
	}
	switch {
	case msg.err == nil:
	case errors.Is(msg.err, listings.ErrStaleResponse):
		return m
	case errors.Is(msg.err, listings.ErrNoMorePages),
		errors.Is(msg.err, listings.ErrPageOutOfRange),
		errors.Is(msg.err, listings.ErrNoSearch),
		errors.Is(msg.err, listings.ErrNothingToRetry),
		errors.Is(msg.err, listings.ErrSearchFailed):
		m.status = msg.err.Error()
	default:
		logger.GlobalLogger.Errorf("Listings fetch failed: view=%s, error=%v", msg.view, msg.err)
	}
	if msg.view != m.view {
		return m
	}
	s := m.session(m.view)
	m.snapshot = s.Snapshot()
	if msg.err == nil && (msg.action == actionSearch || s.Mode() == listings.ModePaged) {
		m.cursor = 0
	}
	if m.cursor >= len(m.snapshot.Results) {
		m.cursor = max(0, len(m.snapshot.Results)-1)
	}
	return m
}

// Close cancels pending work.
func (m Model) Close() {
	m.debouncer.Stop()
	for _, s := range m.sessions {
		s.Cancel()
	}
}
