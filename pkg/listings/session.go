package listings

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"homeinsight-listings/pkg/logger"
)

// Page sizes used by the listing views.
const (
	DefaultLimit = 9
	AdminLimit   = 12
)

// Mode selects how the session pages through results.
type Mode int

const (
	// ModeLoadMore accumulates pages below each other.
	ModeLoadMore Mode = iota
	// ModePaged shows one page at a time with numbered navigation.
	ModePaged
)

var (
	ErrNoSearch       = errors.New("no search has been run")
	ErrNoMorePages    = errors.New("no more pages to load")
	ErrPageOutOfRange = errors.New("page out of range")
	ErrNothingToRetry = errors.New("nothing to retry")
	ErrSearchFailed   = errors.New("the last search failed, retry it first")
	ErrStaleResponse  = errors.New("response superseded by a newer request")
)

// View is a consistent snapshot of a session for rendering. SearchFailed is
// set while the latest search has failed and the displayed results still
// belong to the previous query.
type View struct {
	Filter       FilterState
	Query        CanonicalQuery
	Results      []Listing
	Pagination   PaginationState
	Loading      bool
	Err          error
	ErrMessage   string
	Searched     bool
	SearchFailed bool
	CanLoadMore  bool
	CanRetry     bool
}

// Session drives one listing view: it owns the displayed results and the
// pagination state and updates them from the fetcher's results. filter and
// query always describe the displayed results; a search only replaces them
// once its first page arrives.
type Session struct {
	fetcher *Fetcher
	limit   int
	mode    Mode

	mu         sync.RWMutex
	filter     FilterState
	query      CanonicalQuery
	searched   bool
	results    []Listing
	pagination PaginationState
	err        error
	last       *request
}

type request struct {
	action Action
	page   int
	filter FilterState
	query  CanonicalQuery
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLimit sets the page size sent with every request.
func WithLimit(n int) SessionOption {
	return func(s *Session) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithMode sets the paging mode.
func WithMode(m Mode) SessionOption {
	return func(s *Session) {
		s.mode = m
	}
}

// NewSession creates a session fetching from source.
func NewSession(source PageSource, opts ...SessionOption) *Session {
	s := &Session{
		fetcher: NewFetcher(source),
		limit:   DefaultLimit,
		mode:    ModeLoadMore,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetcher exposes the session's fetcher.
func (s *Session) Fetcher() *Fetcher {
	return s.fetcher
}

// Limit returns the page size.
func (s *Session) Limit() int {
	return s.limit
}

// Mode returns the paging mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Search runs a new search for f and shows its first page.
func (s *Session) Search(ctx context.Context, f FilterState) error {
	req := &request{action: ActionSearch, page: 1, filter: f, query: BuildQuery(f)}

	s.mu.Lock()
	s.searched = true
	s.last = req
	s.mu.Unlock()

	return s.run(ctx, req)
}

// LoadMore fetches the next page with the current query and appends it.
func (s *Session) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if err := s.checkFollowUp(); err != nil {
		s.mu.Unlock()
		return err
	}
	if !s.pagination.CanLoadMore() {
		s.mu.Unlock()
		return ErrNoMorePages
	}
	req := s.followUp(ActionLoadMore, s.pagination.CurrentPage+1)
	s.mu.Unlock()

	return s.run(ctx, req)
}

// GoTo fetches page n with the current query and shows it alone.
func (s *Session) GoTo(ctx context.Context, n int) error {
	s.mu.Lock()
	if err := s.checkFollowUp(); err != nil {
		s.mu.Unlock()
		return err
	}
	if n < 1 || (s.pagination.TotalPages >= 1 && n > s.pagination.TotalPages) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, n, s.pagination.TotalPages)
	}
	req := s.followUp(ActionGoTo, n)
	s.mu.Unlock()

	return s.run(ctx, req)
}

// checkFollowUp reports why the displayed query cannot be paged further.
// Callers hold s.mu.
func (s *Session) checkFollowUp() error {
	if !s.searched {
		return ErrNoSearch
	}
	if s.searchFailedLocked() {
		return ErrSearchFailed
	}
	return nil
}

// followUp records a request for page of the displayed query. Callers hold s.mu.
func (s *Session) followUp(action Action, page int) *request {
	s.last = &request{action: action, page: page, filter: s.filter, query: s.query}
	return s.last
}

// Next moves to the following page. In load-more mode it appends.
func (s *Session) Next(ctx context.Context) error {
	if s.mode == ModeLoadMore {
		return s.LoadMore(ctx)
	}
	s.mu.RLock()
	p := s.pagination
	s.mu.RUnlock()
	if !p.HasNext() {
		if s.failedSearch() {
			return ErrSearchFailed
		}
		return ErrNoMorePages
	}
	return s.GoTo(ctx, p.CurrentPage+1)
}

// Previous moves to the preceding page.
func (s *Session) Previous(ctx context.Context) error {
	s.mu.RLock()
	p := s.pagination
	s.mu.RUnlock()
	if !p.HasPrevious() {
		if s.failedSearch() {
			return ErrSearchFailed
		}
		return fmt.Errorf("%w: already on the first page", ErrPageOutOfRange)
	}
	return s.GoTo(ctx, p.CurrentPage-1)
}

func (s *Session) failedSearch() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchFailedLocked()
}

func (s *Session) searchFailedLocked() bool {
	return s.err != nil && s.last != nil && s.last.action == ActionSearch
}

// Retry re-issues the last request with the same query. It only applies
// while that request's failure is displayed.
func (s *Session) Retry(ctx context.Context) error {
	s.mu.RLock()
	last := s.last
	failed := s.err != nil
	s.mu.RUnlock()
	if last == nil || !failed {
		return ErrNothingToRetry
	}
	return s.run(ctx, last)
}

// Cancel aborts the in-flight request.
func (s *Session) Cancel() {
	s.fetcher.Cancel()
}

// Snapshot returns the current state of the session.
func (s *Session) Snapshot() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]Listing, len(s.results))
	copy(results, s.results)
	return View{
		Filter:       s.filter,
		Query:        s.query,
		Results:      results,
		Pagination:   s.pagination,
		Loading:      s.fetcher.Loading(),
		Err:          s.err,
		ErrMessage:   Message(s.err),
		Searched:     s.searched,
		SearchFailed: s.searchFailedLocked(),
		CanLoadMore:  s.err == nil && s.pagination.CanLoadMore(),
		CanRetry:     s.err != nil && s.last != nil,
	}
}

func (s *Session) run(ctx context.Context, req *request) error {
	action, page := req.action, req.page
	res := s.fetcher.Fetch(ctx, req.query.ForPage(page, s.limit))
	if res.Stale {
		logger.GlobalLogger.Debugf("Discarding stale listings response: seq=%d, action=%s, page=%d", res.Seq, action, page)
		return ErrStaleResponse
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if res.Seq != s.fetcher.Latest() {
		return ErrStaleResponse
	}
	if res.Err != nil {
		s.err = res.Err
		return res.Err
	}

	merge := MergeFor(action, res.Page)
	if s.mode == ModePaged {
		merge = MergeReplace
	}
	s.filter = req.filter
	s.query = req.query
	s.results = Accumulate(s.results, res.Page, merge)
	s.pagination = NewPaginationState(res.Page)
	s.err = nil
	return nil
}
