package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	entrezerrors "github.com/entrezutils/entrez-sdk-go/pkg/errors"
	"github.com/entrezutils/entrez-sdk-go/pkg/eutils"
)

func sessionHistory(count string) eutils.History {
	return eutils.History{WebEnv: "MCID_64f0a8", QueryKey: "1", Count: count}
}

// pageResponse labels each page with its retstart so tests can verify
// ordering and stitching.
func pageResponse(c call) (string, error) {
	start := c.params[eutils.ParamRetStart]
	return fmt.Sprintf("page-%s-a\npage-%s-b\n", start, start), nil
}

func TestPaginateWindows(t *testing.T) {
	fake := &fakeTransport{respond: pageResponse}
	c := New(fake)

	pages, err := c.Paginate(context.Background(), eutils.ToolFetch, "protein",
		sessionHistory("1001"), eutils.Params{
			eutils.ParamRetType: "fasta",
			eutils.ParamRetMode: "text",
		})
	if err != nil {
		t.Fatalf("Paginate() error: %v", err)
	}
	got, err := pages.Collect()
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}

	// 1001 elements in windows of 500 means offsets 0, 500, 1000.
	if len(fake.calls) != 3 {
		t.Fatalf("Expected 3 round trips, got %d", len(fake.calls))
	}
	wantStarts := []string{"0", "500", "1000"}
	for i, call := range fake.calls {
		if call.tool != eutils.ToolFetch {
			t.Errorf("call %d tool = %q, want efetch", i, call.tool)
		}
		if got := call.params[eutils.ParamRetStart]; got != wantStarts[i] {
			t.Errorf("call %d retstart = %q, want %q", i, got, wantStarts[i])
		}
		if got := call.params[eutils.ParamRetMax]; got != "500" {
			t.Errorf("call %d retmax = %q, want 500", i, got)
		}
		if got := call.params[eutils.ParamWebEnv]; got != "MCID_64f0a8" {
			t.Errorf("call %d WebEnv = %q", i, got)
		}
		if got := call.params[eutils.ParamQueryKey]; got != "1" {
			t.Errorf("call %d query_key = %q", i, got)
		}
		if got := call.params[eutils.ParamRetType]; got != "fasta" {
			t.Errorf("call %d rettype = %q, want fasta", i, got)
		}
	}

	want := []string{
		"page-0-a", "page-0-b",
		"page-500-a", "page-500-b",
		"page-1000-a", "page-1000-b",
	}
	if len(got) != len(want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPaginateLazyFetch(t *testing.T) {
	fake := &fakeTransport{respond: pageResponse}
	c := New(fake)

	pages, err := c.Paginate(context.Background(), eutils.ToolSummary, "pubmed",
		sessionHistory("1200"), nil)
	if err != nil {
		t.Fatalf("Paginate() error: %v", err)
	}
	defer pages.Close()

	// Planning alone must not touch the network.
	if len(fake.calls) != 0 {
		t.Fatalf("Expected no round trips before consumption, got %d", len(fake.calls))
	}

	// Consuming the first page must not fetch the later ones.
	for i := 0; i < 2; i++ {
		if !pages.Next() {
			t.Fatalf("Expected line %d", i)
		}
	}
	if len(fake.calls) != 1 {
		t.Errorf("Expected 1 round trip after first page, got %d", len(fake.calls))
	}

	// Crossing the page boundary pulls exactly the next window.
	if !pages.Next() {
		t.Fatal("Expected a line from the second page")
	}
	if len(fake.calls) != 2 {
		t.Errorf("Expected 2 round trips after crossing the boundary, got %d", len(fake.calls))
	}
}

func TestPaginateSinglePage(t *testing.T) {
	fake := &fakeTransport{respond: pageResponse}
	c := New(fake)

	pages, err := c.Paginate(context.Background(), eutils.ToolFetch, "protein",
		sessionHistory("42"), nil)
	if err != nil {
		t.Fatalf("Paginate() error: %v", err)
	}
	if _, err := pages.Collect(); err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if len(fake.calls) != 1 {
		t.Errorf("Expected 1 round trip for a sub-page count, got %d", len(fake.calls))
	}
}

func TestPaginateCountDefaultsToOne(t *testing.T) {
	fake := &fakeTransport{respond: pageResponse}
	c := New(fake)

	hist := eutils.History{WebEnv: "MCID_x", QueryKey: "2"} // no Count
	pages, err := c.Paginate(context.Background(), eutils.ToolFetch, "protein", hist, nil)
	if err != nil {
		t.Fatalf("Paginate() error: %v", err)
	}
	if _, err := pages.Collect(); err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if len(fake.calls) != 1 {
		t.Errorf("Expected exactly 1 window for a missing count, got %d", len(fake.calls))
	}
}

func TestPaginateZeroCount(t *testing.T) {
	fake := &fakeTransport{respond: pageResponse}
	c := New(fake)

	pages, err := c.Paginate(context.Background(), eutils.ToolFetch, "protein",
		sessionHistory("0"), nil)
	if err != nil {
		t.Fatalf("Paginate() error: %v", err)
	}
	got, err := pages.Collect()
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected an empty stream, got %q", got)
	}
	if len(fake.calls) != 0 {
		t.Errorf("Expected no round trips for count 0, got %d", len(fake.calls))
	}
}

func TestPaginateMissingHistory(t *testing.T) {
	fake := &fakeTransport{respond: pageResponse}
	c := New(fake)

	tests := []eutils.History{
		{},
		{WebEnv: "MCID_x"},
		{QueryKey: "1"},
	}
	for _, hist := range tests {
		_, err := c.Paginate(context.Background(), eutils.ToolFetch, "protein", hist, nil)
		if err == nil {
			t.Errorf("Expected Paginate with handle %+v to fail", hist)
			continue
		}
		if !entrezerrors.IsCode(err, entrezerrors.CodeMissingHistory) {
			t.Errorf("Expected CodeMissingHistory, got: %v", err)
		}
	}
	if len(fake.calls) != 0 {
		t.Errorf("Expected no network activity, got %d calls", len(fake.calls))
	}
}

func TestPaginateInvalidCount(t *testing.T) {
	fake := &fakeTransport{respond: pageResponse}
	c := New(fake)

	for _, count := range []string{"NaN", "-5", "12.5"} {
		_, err := c.Paginate(context.Background(), eutils.ToolFetch, "protein",
			sessionHistory(count), nil)
		if err == nil {
			t.Errorf("Expected count %q to be rejected", count)
			continue
		}
		if !entrezerrors.IsCode(err, entrezerrors.CodeInvalidCount) {
			t.Errorf("Expected CodeInvalidCount for %q, got: %v", count, err)
		}
	}
	if len(fake.calls) != 0 {
		t.Errorf("Expected no network activity, got %d calls", len(fake.calls))
	}
}

func TestPaginateWithPageSize(t *testing.T) {
	fake := &fakeTransport{respond: pageResponse}
	c := New(fake)

	pages, err := c.Paginate(context.Background(), eutils.ToolSummary, "pubmed",
		sessionHistory("25"), nil, WithPageSize(10))
	if err != nil {
		t.Fatalf("Paginate() error: %v", err)
	}
	if _, err := pages.Collect(); err != nil {
		t.Fatalf("Collect() error: %v", err)
	}

	if len(fake.calls) != 3 {
		t.Fatalf("Expected 3 windows of 10 for count 25, got %d", len(fake.calls))
	}
	for i, call := range fake.calls {
		if got := call.params[eutils.ParamRetStart]; got != strconv.Itoa(i*10) {
			t.Errorf("call %d retstart = %q, want %d", i, got, i*10)
		}
		if got := call.params[eutils.ParamRetMax]; got != "10" {
			t.Errorf("call %d retmax = %q, want 10", i, got)
		}
	}
}

func TestPaginateBadPageSize(t *testing.T) {
	fake := &fakeTransport{respond: pageResponse}
	c := New(fake)

	for _, size := range []int{0, -1, 100001} {
		_, err := c.Paginate(context.Background(), eutils.ToolFetch, "protein",
			sessionHistory("10"), nil, WithPageSize(size))
		if err == nil {
			t.Errorf("Expected page size %d to be rejected", size)
			continue
		}
		if !entrezerrors.IsCode(err, entrezerrors.CodeInvalidPageSize) {
			t.Errorf("Expected CodeInvalidPageSize for %d, got: %v", size, err)
		}
		if !entrezerrors.IsCategory(err, entrezerrors.CategoryValidation) {
			t.Errorf("Expected validation category for %d, got: %v", size, err)
		}
	}
	if len(fake.calls) != 0 {
		t.Errorf("Expected no network activity, got %d calls", len(fake.calls))
	}
}

func TestPaginateMidStreamFailure(t *testing.T) {
	failure := errors.New("connection reset by peer")
	fake := &fakeTransport{}
	fake.respond = func(c call) (string, error) {
		if c.params[eutils.ParamRetStart] == "500" {
			return "", entrezerrors.TransportError("efetch", "efetch.fcgi", failure)
		}
		return pageResponse(c)
	}
	c := New(fake)

	pages, err := c.Paginate(context.Background(), eutils.ToolFetch, "protein",
		sessionHistory("900"), nil)
	if err != nil {
		t.Fatalf("Paginate() error: %v", err)
	}
	got, err := pages.Collect()
	if !errors.Is(err, failure) {
		t.Fatalf("Collect() error = %v, want the transport failure", err)
	}
	// The first page's lines were already delivered.
	if len(got) != 2 || got[0] != "page-0-a" {
		t.Errorf("lines before failure = %q, want the first page", got)
	}
	// A failed stream must stay failed.
	if pages.Next() {
		t.Error("Expected failed stream to stay failed")
	}
}

func TestPaginateDoesNotMutateParams(t *testing.T) {
	fake := &fakeTransport{respond: pageResponse}
	c := New(fake)

	params := eutils.Params{eutils.ParamRetType: "fasta"}
	pages, err := c.Paginate(context.Background(), eutils.ToolFetch, "protein",
		sessionHistory("600"), params)
	if err != nil {
		t.Fatalf("Paginate() error: %v", err)
	}
	if _, err := pages.Collect(); err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	for _, key := range []string{eutils.ParamRetStart, eutils.ParamRetMax, eutils.ParamWebEnv} {
		if _, ok := params[key]; ok {
			t.Errorf("Paginate mutated the caller's params (%s)", key)
		}
	}
}

func TestSearchApply(t *testing.T) {
	fake := &fakeTransport{}
	fake.respond = func(c call) (string, error) {
		if c.tool == eutils.ToolSearch {
			return "<Count>1001</Count>\n<QueryKey>1</QueryKey><WebEnv>MCID_sa</WebEnv>\n", nil
		}
		return pageResponse(c)
	}
	c := New(fake)

	pages, err := c.SearchApply(context.Background(), "protein", "archaea[orgn]",
		eutils.ToolFetch, "protein", eutils.Params{eutils.ParamRetType: "fasta"})
	if err != nil {
		t.Fatalf("SearchApply() error: %v", err)
	}
	got, err := pages.Collect()
	if err != nil {
		t.Fatalf("Collect() error: %v", err)
	}

	// One search plus three fetch windows for count 1001.
	if len(fake.calls) != 4 {
		t.Fatalf("Expected 4 round trips, got %d", len(fake.calls))
	}
	search := fake.calls[0]
	if search.tool != eutils.ToolSearch {
		t.Errorf("first call tool = %q, want esearch", search.tool)
	}
	if search.params[eutils.ParamTerm] != "archaea[orgn]" {
		t.Errorf("search term = %q", search.params[eutils.ParamTerm])
	}
	if search.params[eutils.ParamUseHistory] != "y" {
		t.Errorf("search usehistory = %q, want y", search.params[eutils.ParamUseHistory])
	}

	for i, call := range fake.calls[1:] {
		if call.tool != eutils.ToolFetch {
			t.Errorf("apply call %d tool = %q, want efetch", i, call.tool)
		}
		if call.params[eutils.ParamWebEnv] != "MCID_sa" {
			t.Errorf("apply call %d WebEnv = %q, want MCID_sa", i, call.params[eutils.ParamWebEnv])
		}
	}
	if len(got) != 6 {
		t.Errorf("Expected 6 stitched lines, got %d", len(got))
	}
}

func TestSearchApplyReusesSearchDB(t *testing.T) {
	fake := &fakeTransport{}
	fake.respond = func(c call) (string, error) {
		if c.tool == eutils.ToolSearch {
			return "<Count>5</Count>\n<QueryKey>1</QueryKey><WebEnv>MCID_r</WebEnv>\n", nil
		}
		return pageResponse(c)
	}
	c := New(fake)

	pages, err := c.SearchApply(context.Background(), "nucleotide", "phage",
		eutils.ToolSummary, "", nil)
	if err != nil {
		t.Fatalf("SearchApply() error: %v", err)
	}
	if _, err := pages.Collect(); err != nil {
		t.Fatalf("Collect() error: %v", err)
	}
	if len(fake.calls) != 2 {
		t.Fatalf("Expected 2 round trips, got %d", len(fake.calls))
	}
	if got := fake.calls[1].params[eutils.ParamDB]; got != "nucleotide" {
		t.Errorf("apply db = %q, want the search db", got)
	}
}

func TestSearchApplySearchFailure(t *testing.T) {
	fake := &fakeTransport{respond: func(c call) (string, error) {
		return "", entrezerrors.HTTPStatusError("esearch", "esearch.fcgi", 502)
	}}
	c := New(fake)

	_, err := c.SearchApply(context.Background(), "pubmed", "mouse",
		eutils.ToolSummary, "pubmed", nil)
	if err == nil {
		t.Fatal("Expected search failure to propagate")
	}
	if !entrezerrors.IsCode(err, entrezerrors.CodeHTTPStatus) {
		t.Errorf("Expected CodeHTTPStatus, got: %v", err)
	}
	if len(fake.calls) != 1 {
		t.Errorf("Expected no apply calls after a failed search, got %d", len(fake.calls))
	}
}
