package parser

import (
	"regexp"
	"strconv"
)

// split is the outcome of structural matching: the name block before the
// episode token, the raw episode digits, and the metadata block after it.
// season is non-zero only for templates that encode one (SxxEyy).
type split struct {
	title   string
	episode string
	tags    string
	season  int
}

// template is one structural convention for placing the episode token.
type template struct {
	name    string
	re      *regexp.Regexp
	extract func(m []string) split
}

func titleEpTags(m []string) split {
	return split{title: m[1], episode: m[2], tags: m[3]}
}

// structuralTemplates is tried in order and the first match wins, so the
// dominant conventions sit on top. Group-1 titles are greedy: with multiple
// candidate episode tokens on a line the rightmost one is structural, the
// earlier ones belong to the series name.
var structuralTemplates = []template{
	{
		// "Title - 01 [tags]", the dominant convention.
		name:    "dash-episode",
		re:      regexp.MustCompile(`^(.*) -\s?(\d{1,4})(\D.*)?$`),
		extract: titleEpTags,
	},
	{
		// "[01]", "[01v2]", "[01 END]", compound "[02(57)]" where the
		// first number is canonical.
		name:    "bracket-episode",
		re:      regexp.MustCompile(`^(.*)\[(\d{1,4})(?:\s?[vV]\d|\(\d{1,4}\)|\s?END)?\](.*)$`),
		extract: titleEpTags,
	},
	{
		// "第02话", "[第02话]", "[02集]".
		name: "cjk-marker",
		re:   regexp.MustCompile(`^(.*)(?:\[第?(\d{1,4})[话話集]\]|第(\d{1,4})[话話集])(.*)$`),
		extract: func(m []string) split {
			ep := m[2]
			if ep == "" {
				ep = m[3]
			}
			return split{title: m[1], episode: ep, tags: m[4]}
		},
	},
	{
		// "Title 02[tags]", "Title 03 [tags]": bare number right before
		// the metadata block.
		name:    "inline-episode",
		re:      regexp.MustCompile(`^(.*) (\d{1,4}) ?(\[.*)$`),
		extract: titleEpTags,
	},
	{
		// Western "S01E05" token.
		name: "sxx-eyy",
		re:   regexp.MustCompile(`^(.*?)[Ss](\d{1,2})[Ee](\d{1,4})(.*)$`),
		extract: func(m []string) split {
			season, _ := strconv.Atoi(m[2])
			return split{title: m[1], episode: m[3], tags: m[4], season: season}
		},
	},
	{
		// "EP33", "E07".
		name:    "ep-prefix",
		re:      regexp.MustCompile(`^(.*)[Ee][Pp]?(\d{1,4})(.*)$`),
		extract: titleEpTags,
	},
	{
		// "Title-01 [tags]": dash glued to the name, seen with
		// full-width punctuation endings.
		name:    "attached-dash",
		re:      regexp.MustCompile(`^(.*\S)-(\d{1,4})\s*(\[.*)$`),
		extract: titleEpTags,
	},
}

// splitStructure locates the episode token. nil means no template matched
// and the title is unparseable; bracket-delimited multi-segment layouts and
// the "[01Pre]" pre-air marker land here on purpose.
func splitStructure(title string) *split {
	for _, t := range structuralTemplates {
		m := t.re.FindStringSubmatch(title)
		if m == nil {
			continue
		}
		sp := t.extract(m)
		return &sp
	}
	return nil
}
