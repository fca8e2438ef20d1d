package report

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mwiater/bstreport/internal/source"
)

const (
	testWordURL  = "https://blob.test/word_search_comparison_table.csv"
	testRangeURL = "https://blob.test/range_search_comparison.csv"

	testWordCSV = "Iteration,BST0,Triplet,Improvement %\n" +
		"Iteration 1,1200,900,25.0\n" +
		"Iteration 2,1000,1100,-10.0\n" +
		"Average XYZ,1100,1000,9.09\n"
	testRangeCSV = "Iteration,BST0 Operations,Triplet Operations\n1,200,150\n2,0,10\n"
)

func staticFetcher(tables map[string]string) source.Fetcher {
	return source.FetcherFunc(func(ctx context.Context, url string) (string, error) {
		text, ok := tables[url]
		if !ok {
			return "", &source.StatusError{URL: url, Code: 404, Status: "404 Not Found"}
		}
		return text, nil
	})
}

func testSources() Sources {
	return Sources{WordSearchURL: testWordURL, RangeSearchURL: testRangeURL}
}

func TestLoaderPopulatesState(t *testing.T) {
	loader := NewLoader(staticFetcher(map[string]string{
		testWordURL:  testWordCSV,
		testRangeURL: testRangeCSV,
	}), testSources(), time.Second)

	if !loader.Snapshot().Loading {
		t.Fatal("expected loading before Load")
	}

	state := loader.Load(context.Background())
	if state.Loading {
		t.Fatal("expected loading to be false after Load")
	}
	if len(state.Words) != 3 || len(state.Aggregates) != 1 || len(state.Iterations) != 2 {
		t.Fatalf("unexpected partition: words=%d aggregates=%d iterations=%d",
			len(state.Words), len(state.Aggregates), len(state.Iterations))
	}
	if state.Stats.AverageImprovement != 7.5 || state.Stats.MaxImprovement != 25 || state.Stats.MinImprovement != -10 {
		t.Fatalf("unexpected stats: %+v", state.Stats)
	}
	if len(state.Range) != 2 || state.Range[0].Improvement != 25 || state.Range[1].Improvement != 0 {
		t.Fatalf("unexpected range records: %+v", state.Range)
	}
	select {
	case <-loader.Done():
	default:
		t.Fatal("expected Done to be closed")
	}
}

func TestLoaderBothFetchesFail(t *testing.T) {
	failing := source.FetcherFunc(func(ctx context.Context, url string) (string, error) {
		return "", errors.New("network down")
	})
	loader := NewLoader(failing, testSources(), time.Second)

	before := loader.Snapshot()
	state := loader.Load(context.Background())
	if !before.Loading || state.Loading {
		t.Fatalf("expected loading true -> false, got %v -> %v", before.Loading, state.Loading)
	}
	if len(state.Words) != 0 || len(state.Range) != 0 || len(state.Aggregates) != 0 || len(state.Iterations) != 0 {
		t.Fatalf("expected empty datasets, got %+v", state)
	}
	if state.Words == nil || state.Range == nil {
		t.Fatal("expected empty, non-nil datasets")
	}

	html, err := GenerateHTML(NewView(DefaultPage("", ""), state))
	if err != nil {
		t.Fatalf("GenerateHTML error: %v", err)
	}
	if strings.Contains(html, "Loading data...") {
		t.Fatal("expected loaded-but-empty view, not the loading placeholder")
	}
	if !strings.Contains(html, "No data") {
		t.Fatal("expected empty tables to say No data")
	}
}

func TestLoaderOneSourceFails(t *testing.T) {
	loader := NewLoader(staticFetcher(map[string]string{testRangeURL: testRangeCSV}), testSources(), time.Second)
	state := loader.Load(context.Background())
	if len(state.Words) != 0 {
		t.Fatalf("expected empty word dataset, got %d rows", len(state.Words))
	}
	if len(state.Range) != 2 {
		t.Fatalf("expected range data to survive, got %d rows", len(state.Range))
	}
}

func TestLoaderRunsOnce(t *testing.T) {
	var calls atomic.Int32
	fetcher := source.FetcherFunc(func(ctx context.Context, url string) (string, error) {
		calls.Add(1)
		if url == testWordURL {
			return testWordCSV, nil
		}
		return testRangeCSV, nil
	})
	loader := NewLoader(fetcher, testSources(), 0)
	first := loader.Load(context.Background())
	second := loader.Load(context.Background())
	if calls.Load() != 2 {
		t.Fatalf("expected exactly 2 fetches, got %d", calls.Load())
	}
	if len(first.Words) != len(second.Words) {
		t.Fatal("expected repeated Load to return the settled state")
	}
}

func TestLoaderTimeoutSettles(t *testing.T) {
	blocking := source.FetcherFunc(func(ctx context.Context, url string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	loader := NewLoader(blocking, testSources(), 20*time.Millisecond)
	state := loader.Load(context.Background())
	if state.Loading || len(state.Words) != 0 || len(state.Range) != 0 {
		t.Fatalf("expected settled empty state after timeout, got %+v", state)
	}
}

func TestLoaderRecoversFetcherPanic(t *testing.T) {
	panicking := source.FetcherFunc(func(ctx context.Context, url string) (string, error) {
		if url == testWordURL {
			panic("boom")
		}
		return testRangeCSV, nil
	})
	loader := NewLoader(panicking, testSources(), time.Second)
	state := loader.Load(context.Background())
	if state.Loading {
		t.Fatal("expected pipeline to settle despite panic")
	}
	if len(state.Words) != 0 || len(state.Range) != 2 {
		t.Fatalf("unexpected state after panic: words=%d range=%d", len(state.Words), len(state.Range))
	}
}

func TestLoaderMissingSource(t *testing.T) {
	loader := NewLoader(staticFetcher(map[string]string{testWordURL: testWordCSV}), Sources{WordSearchURL: testWordURL}, time.Second)
	state := loader.Load(context.Background())
	if len(state.Words) != 3 || len(state.Range) != 0 {
		t.Fatalf("unexpected state: words=%d range=%d", len(state.Words), len(state.Range))
	}
}
