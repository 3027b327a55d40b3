package listings

import (
	"context"
	"errors"
	"sync"
)

// State is a step of the fetch lifecycle.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateFailure
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateFailure:
		return "failure"
	}
	return "unknown"
}

// Result is the outcome of one Fetch call.
type Result struct {
	Seq   uint64
	Page  *Page
	Err   error
	Stale bool
}

// Fetcher issues page requests against a PageSource. Each request is tagged
// with a sequence number; starting a new request cancels the previous one, and
// a request that resolves after a newer one was issued is reported stale.
type Fetcher struct {
	source PageSource

	// OnTransition, when set, is called on every lifecycle step of the
	// latest request.
	OnTransition func(State)

	mu       sync.Mutex
	seq      uint64
	cancel   context.CancelFunc
	inFlight int
	state    State
}

// NewFetcher creates a Fetcher for source.
func NewFetcher(source PageSource) *Fetcher {
	return &Fetcher{source: source}
}

// Fetch requests the page described by q and blocks until it resolves.
func (f *Fetcher) Fetch(ctx context.Context, q CanonicalQuery) Result {
	seq, reqCtx := f.begin(ctx)
	defer f.finish(seq)

	page, err := f.source.FetchPage(reqCtx, q)

	f.mu.Lock()
	latest := seq == f.seq
	f.mu.Unlock()

	if !latest {
		return Result{Seq: seq, Page: page, Err: err, Stale: true}
	}
	if err != nil {
		if errors.Is(reqCtx.Err(), context.Canceled) && ctx.Err() == nil {
			// Cancelled through Cancel() with no newer request.
			return Result{Seq: seq, Err: err, Stale: true}
		}
		f.transition(seq, StateFailure)
		return Result{Seq: seq, Err: err}
	}
	f.transition(seq, StateSuccess)
	return Result{Seq: seq, Page: page}
}

// Loading reports whether any request is in flight.
func (f *Fetcher) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inFlight > 0
}

// State returns the lifecycle step of the latest request.
func (f *Fetcher) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Latest returns the sequence number of the most recently issued request.
func (f *Fetcher) Latest() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seq
}

// Cancel aborts the in-flight request, if any. Its result will be stale.
func (f *Fetcher) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

func (f *Fetcher) begin(ctx context.Context) (uint64, context.Context) {
	reqCtx, cancel := context.WithCancel(ctx)

	f.mu.Lock()
	if f.cancel != nil {
		f.cancel()
	}
	f.seq++
	seq := f.seq
	f.cancel = cancel
	f.inFlight++
	f.state = StateLoading
	hook := f.OnTransition
	f.mu.Unlock()

	if hook != nil {
		hook(StateLoading)
	}
	return seq, reqCtx
}

// finish runs on every exit path of Fetch.
func (f *Fetcher) finish(seq uint64) {
	f.mu.Lock()
	f.inFlight--
	latest := seq == f.seq
	if latest {
		if f.cancel != nil {
			f.cancel()
			f.cancel = nil
		}
		f.state = StateIdle
	}
	hook := f.OnTransition
	f.mu.Unlock()

	if latest && hook != nil {
		hook(StateIdle)
	}
}

func (f *Fetcher) transition(seq uint64, s State) {
	f.mu.Lock()
	if seq != f.seq {
		f.mu.Unlock()
		return
	}
	f.state = s
	hook := f.OnTransition
	f.mu.Unlock()

	if hook != nil {
		hook(s)
	}
}
