// Package parser turns raw fansub release titles into structured records.
//
// A release title carries three zones: the leading group tag, the name block
// (per-language series titles plus season markers), and the trailing metadata
// block (resolution, source, subtitle tags). Parsing is a pure value
// transform over precompiled patterns, so a Parser-less API of plain
// functions is safe for concurrent use.
package parser

import (
	"strconv"
	"strings"
)

// EpisodeNone marks a record whose episode number could not be read.
// Episode 0 is a real value (specials, OVA pilots), so absence is -1.
const EpisodeNone = -1

// Release is the structured form of one release title. String fields are
// empty when the title does not carry them.
type Release struct {
	Group      string
	TitleZH    string
	TitleEN    string
	TitleJP    string
	Season     int
	SeasonRaw  string
	Episode    int
	Resolution string
	Source     string
	Sub        string
}

// Parse parses a raw release title. It returns nil when no structural
// template matches, which is the only failure signal: a non-nil record may
// still have absent fields. Parse never panics and identical input always
// yields an identical record.
func Parse(raw string) *Release {
	title := preProcess(raw)
	sp := splitStructure(title)
	if sp == nil {
		return nil
	}

	r := &Release{
		Group:   ExtractGroup(title),
		Season:  1,
		Episode: EpisodeNone,
	}
	if sp.season > 0 {
		r.Season = sp.season
	}
	if n, err := strconv.Atoi(sp.episode); err == nil {
		r.Episode = n
	}
	r.Sub, r.Resolution, r.Source = findTags(sp.tags)

	// Name cleanup is anchored on the group tag. Without one there is
	// nothing to anchor, and titles stay absent (Western scene releases
	// hit this path).
	if r.Group != "" {
		name := stripPrefixes(sp.title, r.Group)
		name, seasonRaw, season := extractSeason(name)
		if seasonRaw != "" {
			r.SeasonRaw = seasonRaw
			r.Season = season
		}
		r.TitleEN, r.TitleZH, r.TitleJP = splitName(name)
	}
	return r
}

// ExtractGroup returns the release group from the leading bracket tag, or
// "" when the title carries no brackets or an empty pair. Full-width
// brackets are accepted.
func ExtractGroup(title string) string {
	parts := bracketRe.Split(normalizeBrackets(title), -1)
	if len(parts) > 1 {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func preProcess(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, "\n", " ")
	return normalizeBrackets(raw)
}

func normalizeBrackets(s string) string {
	s = strings.ReplaceAll(s, "【", "[")
	return strings.ReplaceAll(s, "】", "]")
}
