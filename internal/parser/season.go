package parser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	bracketRe   = regexp.MustCompile(`[\[\]]`)
	prefixRe    = regexp.MustCompile(`[^\w\s\p{Han}\p{Hiragana}\p{Katakana}-]`)
	newSeriesRe = regexp.MustCompile(`新番|月?番`)

	seasonTokenRe   = regexp.MustCompile(`S\d{1,2}|Season \d{1,2}|第[0-9一二三四五六七八九十]{1,2}[季期]`)
	seasonDigitsRe  = regexp.MustCompile(`\d{1,2}`)
	ordinalSeasonRe = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th) [Ss]eason`)
)

var chineseNumbers = map[string]int{
	"一": 1, "二": 2, "三": 3, "四": 4, "五": 5,
	"六": 6, "七": 7, "八": 8, "九": 9, "十": 10,
}

// stripPrefixes removes the group tag and the seasonal-listing noise fansub
// groups prepend to the name block ("★04月新番★", region locks). Short
// announcement words are enumerated by coarsely splitting on any rune that
// cannot be part of a title, then each hit is cut out with one rune of
// surrounding decoration.
func stripPrefixes(name, group string) string {
	if tag := "[" + group + "]"; strings.Contains(name, tag) {
		name = strings.Replace(name, tag, "", 1)
	} else {
		name = regexp.MustCompile("."+regexp.QuoteMeta(group)+".").ReplaceAllString(name, "")
	}

	coarse := prefixRe.ReplaceAllString(name, "/")
	var args []string
	for _, arg := range strings.Split(coarse, "/") {
		if arg != "" {
			args = append(args, arg)
		}
	}
	if len(args) == 1 {
		args = strings.Split(args[0], " ")
	}
	for _, arg := range args {
		seasonal := newSeriesRe.MatchString(arg) && utf8.RuneCountInString(arg) <= 5
		if seasonal || strings.Contains(arg, "港澳台地区") {
			name = regexp.MustCompile("."+regexp.QuoteMeta(arg)+".").ReplaceAllString(name, "")
		}
	}
	return name
}

// extractSeason pulls the season marker out of the name block. Brackets are
// flattened to spaces first so "[Season 2]" and bare markers read the same.
// Explicit markers ("S02", "Season 2", "第二季") are stripped from the name;
// an English ordinal ("2nd Season") yields the value but stays in the title
// because it is part of how those seasons are actually named.
func extractSeason(name string) (clean, raw string, season int) {
	name = bracketRe.ReplaceAllString(name, " ")
	tokens := seasonTokenRe.FindAllString(name, -1)
	if len(tokens) == 0 {
		if m := ordinalSeasonRe.FindStringSubmatch(name); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				return name, m[0], n
			}
		}
		return name, "", 1
	}

	clean = seasonTokenRe.ReplaceAllString(name, "")
	season = 1
	for _, tok := range tokens {
		if n, ok := seasonValue(tok); ok {
			season = n
			break
		}
	}
	return clean, tokens[0], season
}

func seasonValue(token string) (int, bool) {
	if strings.HasPrefix(token, "S") {
		if n, err := strconv.Atoi(seasonDigitsRe.FindString(token)); err == nil {
			return n, true
		}
		return 0, false
	}
	// Chinese marker: strip 第/季/期 and read what remains.
	core := strings.Trim(token, "第季期 ")
	if n, err := strconv.Atoi(core); err == nil {
		return n, true
	}
	if n, ok := chineseNumbers[core]; ok {
		return n, true
	}
	return 0, false
}
