package catalog

import (
	"sync"
	"time"

	"github.com/elegant-tiles/storefront/internal/debounce"
	"github.com/elegant-tiles/storefront/internal/domain/product"
)

// Result is one recomputed view delivered by LiveSearch.
type Result struct {
	Options  Options
	Products []product.Product
}

// LiveSearch recomputes a query as the shopper edits the search box and the
// filter controls. Keystrokes are debounced; category and sort changes apply
// at once and absorb any pending keystroke.
type LiveSearch struct {
	store    *Store
	debounce *debounce.Debouncer
	onResult func(Result)

	mu   sync.Mutex
	opts Options
}

// NewLiveSearch returns a LiveSearch over store that reports every recomputed
// view to onResult. onResult runs on the debouncer's goroutine for typed
// input and on the caller's goroutine otherwise.
func NewLiveSearch(store *Store, delay time.Duration, onResult func(Result)) *LiveSearch {
	return &LiveSearch{
		store:    store,
		debounce: debounce.New(delay),
		onResult: onResult,
	}
}

// Type records the current search text and schedules a recomputation after
// the quiet period.
func (ls *LiveSearch) Type(text string) {
	ls.mu.Lock()
	ls.opts.Search = text
	ls.mu.Unlock()

	ls.debounce.Trigger(ls.run)
}

// SetCategory applies a category chip immediately.
func (ls *LiveSearch) SetCategory(c product.Category) {
	ls.mu.Lock()
	ls.opts.Category = c
	ls.mu.Unlock()
	ls.flush()
}

// SetSort applies a sort key immediately.
func (ls *LiveSearch) SetSort(k SortKey) {
	ls.mu.Lock()
	ls.opts.Sort = k
	ls.mu.Unlock()
	ls.flush()
}

// Options returns the options the next recomputation will use.
func (ls *LiveSearch) Options() Options {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.opts
}

// Flush delivers a pending keystroke's result now. It reports whether one was
// waiting.
func (ls *LiveSearch) Flush() bool {
	return ls.debounce.Flush()
}

// Close drops any pending recomputation.
func (ls *LiveSearch) Close() {
	ls.debounce.Cancel()
}

func (ls *LiveSearch) flush() {
	ls.debounce.Cancel()
	ls.run()
}

func (ls *LiveSearch) run() {
	opts := ls.Options()
	ls.onResult(Result{
		Options:  opts,
		Products: Query(ls.store.All(), opts),
	})
}
