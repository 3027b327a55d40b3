package listings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(ls []Listing) []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.ID
	}
	return out
}

func TestSession_SearchThenLoadMoreToEnd(t *testing.T) {
	ctx := context.Background()
	src := &catalog{total: 20}
	s := NewSession(src)

	sale := FilterState{Location: "Vijayawada"}.WithPurpose(PurposeSale)
	require.NoError(t, s.Search(ctx, sale))

	v := s.Snapshot()
	assert.Len(t, v.Results, 9)
	assert.Equal(t, PaginationState{CurrentPage: 1, TotalPages: 3, TotalCount: 20}, v.Pagination)
	assert.True(t, v.CanLoadMore)
	assert.False(t, v.Loading)
	assert.Equal(t, map[string]string{"location": "Vijayawada", "purpose": "sale", "page": "1", "limit": "9"}, src.lastQuery().Map())

	require.NoError(t, s.LoadMore(ctx))
	v = s.Snapshot()
	assert.Len(t, v.Results, 18)
	assert.Equal(t, "p1", v.Results[0].ID)
	assert.Equal(t, "p18", v.Results[17].ID)
	assert.Equal(t, map[string]string{"location": "Vijayawada", "purpose": "sale", "page": "2", "limit": "9"}, src.lastQuery().Map())

	require.NoError(t, s.LoadMore(ctx))
	v = s.Snapshot()
	assert.Len(t, v.Results, 20)
	assert.False(t, v.CanLoadMore)
	assert.Equal(t, 3, v.Pagination.CurrentPage)

	assert.ErrorIs(t, s.LoadMore(ctx), ErrNoMorePages)
	assert.Len(t, src.queries, 3)
}

func TestSession_NewSearchReplacesResults(t *testing.T) {
	ctx := context.Background()
	src := &catalog{total: 27}
	s := NewSession(src)

	require.NoError(t, s.Search(ctx, FilterState{}.WithPurpose(PurposeRent)))
	require.NoError(t, s.LoadMore(ctx))
	require.Len(t, s.Snapshot().Results, 18)

	src.total = 5
	require.NoError(t, s.Search(ctx, FilterState{Bedrooms: String("2")}.WithPurpose(PurposeRent)))
	v := s.Snapshot()
	assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, ids(v.Results))
	assert.Equal(t, PaginationState{CurrentPage: 1, TotalPages: 1, TotalCount: 5}, v.Pagination)
	assert.False(t, v.CanLoadMore)
}

func TestSession_EmptyResults(t *testing.T) {
	s := NewSession(&catalog{total: 0})
	require.NoError(t, s.Search(context.Background(), FilterState{Search: "castle"}))

	v := s.Snapshot()
	assert.True(t, v.Searched)
	assert.Empty(t, v.Results)
	assert.Equal(t, 0, v.Pagination.TotalCount)
	assert.False(t, v.CanLoadMore)
	assert.NoError(t, v.Err)
}

func TestSession_FailureKeepsResultsAndRetries(t *testing.T) {
	ctx := context.Background()
	src := &catalog{total: 20}
	s := NewSession(src)
	require.NoError(t, s.Search(ctx, FilterState{}.WithPurpose(PurposeSale)))

	src.failNext(statusError(500, "500 Internal Server Error", []byte("boom")))
	err := s.LoadMore(ctx)
	require.Error(t, err)

	v := s.Snapshot()
	assert.Len(t, v.Results, 9, "a failed fetch leaves displayed results alone")
	assert.Equal(t, 1, v.Pagination.CurrentPage)
	assert.Equal(t, MsgServerFailure, v.ErrMessage)
	assert.True(t, v.CanRetry)
	assert.False(t, v.CanLoadMore)

	require.NoError(t, s.Retry(ctx))
	v = s.Snapshot()
	assert.Nil(t, v.Err)
	assert.Empty(t, v.ErrMessage)
	assert.Len(t, v.Results, 18)
	assert.Equal(t, "2", func() string { p, _ := src.lastQuery().Get(ParamPage); return p }())
}

func TestSession_FailedFirstSearchShowsNothing(t *testing.T) {
	src := &catalog{total: 20}
	src.failNext(transportError(errors.New("connection refused")))
	s := NewSession(src)

	require.Error(t, s.Search(context.Background(), FilterState{}))
	v := s.Snapshot()
	assert.Empty(t, v.Results)
	assert.Equal(t, MsgNetworkFailure, v.ErrMessage)
	assert.True(t, v.CanRetry)

	require.NoError(t, s.Retry(context.Background()))
	assert.Len(t, s.Snapshot().Results, 9)
}

func TestSession_FailedSearchBlocksPagingOldResults(t *testing.T) {
	ctx := context.Background()
	src := &catalog{total: 27}
	s := NewSession(src)
	require.NoError(t, s.Search(ctx, FilterState{Location: "Guntur"}))

	src.failNext(statusError(503, "503 Service Unavailable", nil))
	require.Error(t, s.Search(ctx, FilterState{Location: "Tenali"}))

	v := s.Snapshot()
	assert.True(t, v.SearchFailed)
	assert.Equal(t, "Guntur", v.Filter.Location, "displayed filter stays with displayed results")
	loc, _ := v.Query.Get(ParamLocation)
	assert.Equal(t, "Guntur", loc)
	assert.Len(t, v.Results, 9)

	assert.ErrorIs(t, s.LoadMore(ctx), ErrSearchFailed)
	assert.ErrorIs(t, s.Next(ctx), ErrSearchFailed)
	assert.ErrorIs(t, s.GoTo(ctx, 2), ErrSearchFailed)
	assert.Len(t, src.queries, 2, "no page of the failed query is fetched")
	assert.Len(t, s.Snapshot().Results, 9)

	require.NoError(t, s.Retry(ctx))
	v = s.Snapshot()
	assert.False(t, v.SearchFailed)
	assert.Equal(t, "Tenali", v.Filter.Location)
	assert.Equal(t, map[string]string{"location": "Tenali", "page": "1", "limit": "9"}, src.lastQuery().Map())

	require.NoError(t, s.LoadMore(ctx))
	assert.Len(t, s.Snapshot().Results, 18)
	assert.Equal(t, map[string]string{"location": "Tenali", "page": "2", "limit": "9"}, src.lastQuery().Map())
}

func TestSession_RetryWithoutFailureIsRejected(t *testing.T) {
	ctx := context.Background()
	src := &catalog{total: 27}
	s := NewSession(src)
	require.NoError(t, s.Search(ctx, FilterState{}))
	require.NoError(t, s.LoadMore(ctx))

	assert.ErrorIs(t, s.Retry(ctx), ErrNothingToRetry)
	v := s.Snapshot()
	assert.Len(t, v.Results, 18)
	assert.Equal(t, "p18", v.Results[17].ID)
	assert.False(t, v.CanRetry)
	assert.Len(t, src.queries, 2)
}

func TestSession_RequiresSearchFirst(t *testing.T) {
	ctx := context.Background()
	s := NewSession(&catalog{total: 20})

	assert.ErrorIs(t, s.LoadMore(ctx), ErrNoSearch)
	assert.ErrorIs(t, s.GoTo(ctx, 2), ErrNoSearch)
	assert.ErrorIs(t, s.Retry(ctx), ErrNothingToRetry)
	assert.False(t, s.Snapshot().Searched)
}

func TestSession_PagedMode(t *testing.T) {
	ctx := context.Background()
	src := &catalog{total: 30}
	s := NewSession(src, WithMode(ModePaged), WithLimit(AdminLimit))
	assert.Equal(t, AdminLimit, s.Limit())
	assert.Equal(t, ModePaged, s.Mode())

	require.NoError(t, s.Search(ctx, FilterState{}))
	assert.Equal(t, 3, s.Snapshot().Pagination.TotalPages)

	require.NoError(t, s.GoTo(ctx, 3))
	v := s.Snapshot()
	assert.Equal(t, []string{"p25", "p26", "p27", "p28", "p29", "p30"}, ids(v.Results))
	assert.Equal(t, 3, v.Pagination.CurrentPage)

	require.NoError(t, s.Previous(ctx))
	v = s.Snapshot()
	assert.Len(t, v.Results, 12)
	assert.Equal(t, "p13", v.Results[0].ID)

	require.NoError(t, s.Next(ctx))
	assert.Equal(t, 3, s.Snapshot().Pagination.CurrentPage)
	assert.ErrorIs(t, s.Next(ctx), ErrNoMorePages)

	assert.ErrorIs(t, s.GoTo(ctx, 5), ErrPageOutOfRange)
	assert.ErrorIs(t, s.GoTo(ctx, 0), ErrPageOutOfRange)
	require.NoError(t, s.GoTo(ctx, 1))
	assert.ErrorIs(t, s.Previous(ctx), ErrPageOutOfRange)
}

func TestSession_NextInLoadMoreModeAppends(t *testing.T) {
	ctx := context.Background()
	s := NewSession(&catalog{total: 12})
	require.NoError(t, s.Search(ctx, FilterState{}))
	require.NoError(t, s.Next(ctx))
	assert.Len(t, s.Snapshot().Results, 12)
}

func TestSession_LateResponseIsDiscarded(t *testing.T) {
	ctx := context.Background()
	src := newGatedSource(true)
	s := NewSession(src)

	first := make(chan error, 1)
	go func() { first <- s.Search(ctx, FilterState{Location: "Guntur"}) }()
	callA := src.next(t)
	assert.True(t, s.Snapshot().Loading)

	second := make(chan error, 1)
	go func() { second <- s.Search(ctx, FilterState{Location: "Tenali"}) }()
	callB := src.next(t)

	loc, _ := callB.query.Get(ParamLocation)
	assert.Equal(t, "Tenali", loc)

	callB.reply <- reply{page: pageOf(1, 1, 2, "T1", "T2")}
	require.NoError(t, <-second)

	callA.reply <- reply{page: pageOf(1, 1, 3, "G1", "G2", "G3")}
	assert.ErrorIs(t, <-first, ErrStaleResponse)

	v := s.Snapshot()
	assert.Equal(t, []string{"T1", "T2"}, ids(v.Results))
	assert.Equal(t, 2, v.Pagination.TotalCount)
	assert.Equal(t, "Tenali", v.Filter.Location)
	assert.False(t, v.Loading)
}

func TestSession_SnapshotIsACopy(t *testing.T) {
	s := NewSession(&catalog{total: 3})
	require.NoError(t, s.Search(context.Background(), FilterState{}))

	v := s.Snapshot()
	v.Results[0].ID = "changed"
	assert.Equal(t, "p1", s.Snapshot().Results[0].ID)
}
