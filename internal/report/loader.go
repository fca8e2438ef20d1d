// internal/report/loader.go
package report

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/mwiater/bstreport/internal/dataset"
	"github.com/mwiater/bstreport/internal/logging"
	"github.com/mwiater/bstreport/internal/metrics"
	"github.com/mwiater/bstreport/internal/source"
	"github.com/sourcegraph/conc"
)

// Sources names the two comparison tables the report is built from.
type Sources struct {
	WordSearchURL   string
	RangeSearchURL  string
	AggregateMarker string
}

// State is everything the views render. Loading stays true until both tables
// have settled; after that the datasets never change.
type State struct {
	Loading    bool                        `json:"loading"`
	Words      []dataset.WordSearchRecord  `json:"word_search"`
	Aggregates []dataset.WordSearchRecord  `json:"aggregates"`
	Iterations []dataset.WordSearchRecord  `json:"iterations"`
	Range      []dataset.RangeSearchRecord `json:"range_search"`
	Stats      metrics.SummaryStatistics   `json:"word_search_stats"`
	RangeStats metrics.SummaryStatistics   `json:"range_search_stats"`
}

func initialState() State {
	return State{
		Loading:    true,
		Words:      []dataset.WordSearchRecord{},
		Aggregates: []dataset.WordSearchRecord{},
		Iterations: []dataset.WordSearchRecord{},
		Range:      []dataset.RangeSearchRecord{},
	}
}

// Loader runs the fetch, parse and summarize pipeline exactly once.
type Loader struct {
	fetcher source.Fetcher
	sources Sources
	timeout time.Duration

	once sync.Once
	done chan struct{}

	mu    sync.RWMutex
	state State
}

// NewLoader returns a Loader in the loading state. A zero timeout leaves the
// pipeline bounded only by the caller's context.
func NewLoader(fetcher source.Fetcher, sources Sources, timeout time.Duration) *Loader {
	return &Loader{
		fetcher: fetcher,
		sources: sources,
		timeout: timeout,
		done:    make(chan struct{}),
		state:   initialState(),
	}
}

// Snapshot returns the currently published state.
func (l *Loader) Snapshot() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Done is closed once the state has left the loading phase.
func (l *Loader) Done() <-chan struct{} {
	return l.done
}

// Load runs the pipeline on first call and returns the settled state. Fetch
// and parse failures are logged and leave the affected datasets empty; Load
// itself never fails.
func (l *Loader) Load(ctx context.Context) State {
	l.once.Do(func() {
		l.run(ctx)
	})
	return l.Snapshot()
}

func (l *Loader) run(ctx context.Context) {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	next := initialState()
	next.Loading = false

	var words []dataset.WordSearchRecord
	var ranges []dataset.RangeSearchRecord

	var wg conc.WaitGroup
	wg.Go(func() {
		words = l.loadWordSearch(ctx)
	})
	wg.Go(func() {
		ranges = l.loadRangeSearch(ctx)
	})
	if recovered := wg.WaitAndRecover(); recovered != nil {
		logging.LogEvent("[LOADER] pipeline panic recovered: %v", recovered.Value)
	}

	if words != nil {
		next.Words = words
		next.Aggregates, next.Iterations = dataset.Partition(words, l.sources.AggregateMarker)
		next.Stats = metrics.Summarize(next.Iterations)
	}
	if ranges != nil {
		next.Range = ranges
		next.RangeStats = metrics.SummarizeRange(ranges)
	}

	l.mu.Lock()
	l.state = next
	l.mu.Unlock()
	close(l.done)

	logging.LogEvent("[LOADER] complete: word_rows=%d aggregates=%d iterations=%d range_rows=%d",
		len(next.Words), len(next.Aggregates), len(next.Iterations), len(next.Range))
}

func (l *Loader) loadWordSearch(ctx context.Context) []dataset.WordSearchRecord {
	text, ok := l.fetch(ctx, "word-search", l.sources.WordSearchURL)
	if !ok {
		return nil
	}
	table := dataset.SplitTable(text)
	if len(table.Header) > 0 && !dataset.HeaderMatches(table.Header, dataset.WordSearchHeader) {
		logging.LogEvent("[LOADER] word-search header %q differs from %q; mapping columns by position",
			strings.Join(table.Header, ","), strings.Join(dataset.WordSearchHeader, ","))
	}
	records := dataset.ParseWordSearch(text)
	if len(records) == 0 {
		logging.LogEvent("[LOADER] word-search table %s produced no rows", l.sources.WordSearchURL)
	}
	return records
}

func (l *Loader) loadRangeSearch(ctx context.Context) []dataset.RangeSearchRecord {
	text, ok := l.fetch(ctx, "range-search", l.sources.RangeSearchURL)
	if !ok {
		return nil
	}
	table := dataset.SplitTable(text)
	if len(table.Header) > 0 && !dataset.HeaderMatches(table.Header, dataset.RangeSearchHeader) {
		logging.LogEvent("[LOADER] range-search header %q differs from %q; mapping columns by position",
			strings.Join(table.Header, ","), strings.Join(dataset.RangeSearchHeader, ","))
	}
	records := dataset.ParseRangeSearch(text)
	if len(records) == 0 {
		logging.LogEvent("[LOADER] range-search table %s produced no rows", l.sources.RangeSearchURL)
	}
	return records
}

func (l *Loader) fetch(ctx context.Context, name, url string) (string, bool) {
	if strings.TrimSpace(url) == "" {
		logging.LogEvent("[LOADER] %s source not configured; leaving dataset empty", name)
		return "", false
	}
	if l.fetcher == nil {
		logging.LogEvent("[LOADER] no fetcher configured for %s", name)
		return "", false
	}

	start := time.Now()
	text, err := l.fetcher.FetchText(ctx, url)
	elapsed := time.Since(start)

	status := 0
	var statusErr *source.StatusError
	if errors.As(err, &statusErr) {
		status = statusErr.Code
	}
	logging.LogFetch(name, url, status, len(text), elapsed, err)
	if err != nil {
		return "", false
	}
	return text, true
}
