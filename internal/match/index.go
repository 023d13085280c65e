// Package match resolves parsed release titles against the library of
// tracked series. The alias index is owned by whoever builds it; there is
// no process-wide instance, so tests and long-running callers can hold
// independent snapshots.
package match

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Digital-Shane/bangumi-tidy/internal/parser"
	"github.com/patrickmn/go-cache"
)

// Series is one tracked series from the library file.
type Series struct {
	Title   string   `json:"title"`
	Season  int      `json:"season,omitempty"`
	Aliases []string `json:"aliases,omitempty"`
	TMDBID  int      `json:"tmdb_id,omitempty"`
}

type aliasEntry struct {
	alias  string
	series *Series
}

// Index maps alias strings to series. Rebuild replaces the whole index
// under the write lock; lookups run under the read lock and are memoized
// because feeds repeat the same handful of titles every poll.
type Index struct {
	mu      sync.RWMutex
	exact   map[string]*Series
	ordered []aliasEntry
	memo    *cache.Cache
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		exact: make(map[string]*Series),
		memo:  cache.New(10*time.Minute, 30*time.Minute),
	}
}

// Rebuild replaces the index contents from the given series list. Blank
// aliases are dropped before indexing and before the length sort; library
// files edited by hand routinely contain them.
func (ix *Index) Rebuild(series []*Series) {
	exact := make(map[string]*Series)
	var ordered []aliasEntry

	for _, s := range series {
		for _, alias := range append([]string{s.Title}, s.Aliases...) {
			alias = normalize(alias)
			if alias == "" {
				continue
			}
			if _, dup := exact[alias]; dup {
				continue
			}
			exact[alias] = s
			ordered = append(ordered, aliasEntry{alias: alias, series: s})
		}
	}

	// Longest alias first so "mushoku tensei s2" beats "mushoku tensei".
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].alias) > len(ordered[j].alias)
	})

	ix.mu.Lock()
	ix.exact = exact
	ix.ordered = ordered
	ix.mu.Unlock()
	ix.memo.Flush()
}

// Lookup resolves one title string: an exact alias hit wins, otherwise the
// longest alias contained in the title.
func (ix *Index) Lookup(title string) (*Series, bool) {
	title = normalize(title)
	if title == "" {
		return nil, false
	}
	if hit, ok := ix.memo.Get(title); ok {
		s, _ := hit.(*Series)
		return s, s != nil
	}

	ix.mu.RLock()
	s := ix.lookupLocked(title)
	ix.mu.RUnlock()

	ix.memo.Set(title, s, cache.DefaultExpiration)
	return s, s != nil
}

func (ix *Index) lookupLocked(title string) *Series {
	if s, ok := ix.exact[title]; ok {
		return s
	}
	for _, e := range ix.ordered {
		if strings.Contains(title, e.alias) {
			return e.series
		}
	}
	return nil
}

// LookupRelease tries every title variant of a parsed record, Chinese
// first since the library is keyed that way, then English, then Japanese.
// Absent variants are skipped.
func (ix *Index) LookupRelease(r *parser.Release) (*Series, bool) {
	if r == nil {
		return nil, false
	}
	for _, title := range []string{r.TitleZH, r.TitleEN, r.TitleJP} {
		if title == "" {
			continue
		}
		if s, ok := ix.Lookup(title); ok {
			return s, true
		}
	}
	return nil, false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
