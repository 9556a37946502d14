package services

import (
	"time"

	"github.com/jonasstalha/inevent-try-to-resolve/internal/catalog"
	"github.com/jonasstalha/inevent-try-to-resolve/internal/monitoring"
)

// SearchService runs the filter engine over catalog snapshots. Search is
// immediate; DebouncedSearch coalesces keystroke-rate calls so only the last
// filter in a burst is executed.
type SearchService struct {
	catalog   *catalog.Catalog
	debouncer *catalog.Debouncer
	monitor   *monitoring.Monitor
}

func NewSearchService(cat *catalog.Catalog, debounce time.Duration, monitor *monitoring.Monitor) *SearchService {
	return &SearchService{
		catalog:   cat,
		debouncer: catalog.NewDebouncer(debounce),
		monitor:   monitor,
	}
}

// Search applies the filter to the current catalog snapshot.
func (ss *SearchService) Search(f catalog.Filter) catalog.Result {
	ss.monitor.TrackSearch(f.Category)
	return f.Apply(ss.catalog.Gigs(), ss.catalog.Artists())
}

// DebouncedSearch schedules the filter to run after the quiet period and
// delivers the result to fn. A newer call supersedes a pending one, so fn
// only ever sees the final filter of a burst.
func (ss *SearchService) DebouncedSearch(f catalog.Filter, fn func(catalog.Result)) {
	ss.debouncer.Trigger(func() {
		fn(ss.Search(f))
	})
}

// Stop cancels any pending debounced search.
func (ss *SearchService) Stop() {
	ss.debouncer.Stop()
}
