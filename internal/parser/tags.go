package parser

import (
	"regexp"
	"strings"
)

var (
	tagDelimRe = regexp.MustCompile(`[\[\]()（）]`)

	// subRe casts a wide net over CJK subtitle tags plus the common
	// romanized ones. resolutionRe keeps the matched element verbatim, so
	// "1080p", "1080P" and "1920X1080" all survive as written. sourceRe
	// stays narrow on purpose: "WEB-DL" is a rip method, not a source,
	// and matching it would shadow the real source under last-wins.
	subRe        = regexp.MustCompile(`[简繁日字幕]|CH|BIG5|GB`)
	resolutionRe = regexp.MustCompile(`1080|720|2160|4K`)
	sourceRe     = regexp.MustCompile(`B-Global|[Bb]aha|[Bb]ilibili|AT-X|Web|Sentai`)

	subSuffixRe = regexp.MustCompile(`_MP4|_MKV`)
)

// findTags scans the metadata block for subtitle, resolution and source
// tags. Bracket and paren delimiters are flattened to spaces and each
// element claims at most one slot, first class that matches; a later
// element of the same class overwrites an earlier one.
func findTags(block string) (sub, resolution, source string) {
	elements := strings.Split(tagDelimRe.ReplaceAllString(block, " "), " ")
	for _, el := range elements {
		el = strings.TrimSpace(el)
		if el == "" {
			continue
		}
		switch {
		case subRe.MatchString(el):
			sub = el
		case resolutionRe.MatchString(el):
			resolution = el
		case sourceRe.MatchString(el):
			source = el
		}
	}
	return cleanSub(sub), resolution, source
}

// cleanSub drops container suffixes that groups glue onto subtitle tags,
// "GB_MP4" is a GB sub in an MP4, not a distinct language.
func cleanSub(sub string) string {
	return subSuffixRe.ReplaceAllString(sub, "")
}
