package listings

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"
)

// catalog serves total generated listings, paginated by the query's page
// and limit.
type catalog struct {
	mu      sync.Mutex
	total   int
	fail    error
	queries []CanonicalQuery
}

func (c *catalog) FetchPage(ctx context.Context, q CanonicalQuery) (*Page, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queries = append(c.queries, q)
	if c.fail != nil {
		err := c.fail
		c.fail = nil
		return nil, err
	}

	page := queryInt(q, ParamPage, 1)
	limit := queryInt(q, ParamLimit, DefaultLimit)
	pages := (c.total + limit - 1) / limit
	if pages < 1 {
		pages = 1
	}

	out := &Page{Items: []Listing{}, Current: page, Pages: pages, Total: c.total}
	for i := (page - 1) * limit; i < page*limit && i < c.total; i++ {
		out.Items = append(out.Items, Listing{ID: fmt.Sprintf("p%d", i+1)})
	}
	return out, nil
}

func (c *catalog) failNext(err error) {
	c.mu.Lock()
	c.fail = err
	c.mu.Unlock()
}

func (c *catalog) lastQuery() CanonicalQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queries[len(c.queries)-1]
}

func queryInt(q CanonicalQuery, key string, def int) int {
	v, ok := q.Get(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

type reply struct {
	page *Page
	err  error
}

type pendingCall struct {
	query CanonicalQuery
	reply chan reply
}

// gatedSource holds every request until the test replies to it. With
// ignoreCancel set it keeps waiting for a reply after its context is done.
type gatedSource struct {
	calls        chan *pendingCall
	ignoreCancel bool
}

func newGatedSource(ignoreCancel bool) *gatedSource {
	return &gatedSource{calls: make(chan *pendingCall, 8), ignoreCancel: ignoreCancel}
}

func (g *gatedSource) FetchPage(ctx context.Context, q CanonicalQuery) (*Page, error) {
	c := &pendingCall{query: q, reply: make(chan reply, 1)}
	g.calls <- c
	if g.ignoreCancel {
		r := <-c.reply
		return r.page, r.err
	}
	select {
	case r := <-c.reply:
		return r.page, r.err
	case <-ctx.Done():
		return nil, transportError(ctx.Err())
	}
}

func (g *gatedSource) next(t *testing.T) *pendingCall {
	t.Helper()
	select {
	case c := <-g.calls:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for request")
		return nil
	}
}

func pageOf(current, pages, total int, ids ...string) *Page {
	return &Page{Items: items(ids...), Current: current, Pages: pages, Total: total}
}
