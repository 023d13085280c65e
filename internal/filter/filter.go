// Package filter compiles user-supplied release filters. A filter is a
// comma-separated list of alternatives ("720,\\d+-tc,OVA") matched
// case-insensitively against raw release titles; feeds are filtered on
// every poll, so compiled matchers are memoized for the life of the
// process.
package filter

import (
	"regexp"
	"strings"

	csmap "github.com/mhmtszr/concurrent-swiss-map"
)

// Matcher reports whether a release title is excluded by one filter string.
type Matcher struct {
	raw string
	re  *regexp.Regexp
}

// Raw returns the filter string the matcher was compiled from.
func (m *Matcher) Raw() string { return m.raw }

// Match reports whether any alternative of the filter hits the title.
// An empty filter matches nothing.
func (m *Matcher) Match(title string) bool {
	if m.re == nil {
		return false
	}
	return m.re.MatchString(title)
}

var cache = csmap.Create[string, *Matcher]()

// Compile returns the matcher for a raw filter string, reusing a cached
// one when the exact same string was compiled before. Identical input
// always yields the same matcher, so concurrent first calls are benign.
func Compile(raw string) *Matcher {
	if m, ok := cache.Load(raw); ok {
		return m
	}
	m := compile(raw)
	cache.Store(raw, m)
	return m
}

// compile joins the alternatives into one case-insensitive pattern. When a
// user alternative is broken regex ("[字幕组"), the whole filter degrades
// to literal matching instead of being dropped.
func compile(raw string) *Matcher {
	alts := splitAlternatives(raw)
	if len(alts) == 0 {
		return &Matcher{raw: raw}
	}
	re, err := regexp.Compile("(?i)" + strings.Join(alts, "|"))
	if err != nil {
		for i, alt := range alts {
			alts[i] = regexp.QuoteMeta(alt)
		}
		re = regexp.MustCompile("(?i)" + strings.Join(alts, "|"))
	}
	return &Matcher{raw: raw, re: re}
}

func splitAlternatives(raw string) []string {
	var alts []string
	for _, alt := range strings.Split(raw, ",") {
		if alt = strings.TrimSpace(alt); alt != "" {
			alts = append(alts, alt)
		}
	}
	return alts
}
