// Package rename turns scanned media files into a rename plan and
// executes it. Planning is pure (parse, match, template), execution
// touches the filesystem and writes the operation log.
package rename

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Digital-Shane/treeview"

	"github.com/Digital-Shane/bangumi-tidy/internal/config"
	"github.com/Digital-Shane/bangumi-tidy/internal/filter"
	"github.com/Digital-Shane/bangumi-tidy/internal/match"
	"github.com/Digital-Shane/bangumi-tidy/internal/parser"
	"github.com/Digital-Shane/bangumi-tidy/internal/scan"
)

// Planner computes destination paths for scanned media files.
type Planner struct {
	Config *config.Config
	Index  *match.Index // optional; nil matches nothing
	Root   string       // destination library root
}

// Plan is the set of annotated file nodes ready for preview or
// execution. Every node carries a *Meta with either a destination path
// or a skip reason.
type Plan struct {
	Files []*treeview.Node[treeview.FileInfo]
}

// Build parses every media file in the tree and attaches the proposed
// destination. Unparseable names, filtered releases and files without an
// episode number are marked skipped, never dropped; the preview shows
// them and execution logs them.
func (p *Planner) Build(ctx context.Context, t *treeview.Tree[treeview.FileInfo]) *Plan {
	plan := &Plan{Files: scan.MediaFiles(ctx, t)}
	for _, node := range plan.Files {
		p.planFile(node)
	}
	return plan
}

func (p *Planner) planFile(node *treeview.Node[treeview.FileInfo]) {
	name := node.Data().Name()
	ext := scan.ExtractExtension(name)
	base := strings.TrimSuffix(name, ext)

	m := EnsureMeta(node)

	if raw, matched := p.matchedFilter(base); matched {
		m.Skip(fmt.Sprintf("matched filter %q", raw))
		return
	}

	rel := parser.Parse(base)
	m.Release = rel
	if rel == nil {
		m.Skip("unrecognized release layout")
		return
	}

	title, season := p.resolveSeries(rel)
	if title == "" {
		m.Skip("no recognizable title")
		return
	}
	if rel.Episode == parser.EpisodeNone {
		m.Skip("no episode number")
		return
	}

	tc := &config.TemplateContext{
		Title:      title,
		Season:     season,
		Episode:    ApplyOffset(rel.Episode, p.Config.Offset(title)),
		Group:      rel.Group,
		Resolution: rel.Resolution,
	}
	m.DestPath = filepath.Join(p.Root,
		p.Config.ApplyShowFolderTemplate(tc),
		p.Config.ApplySeasonFolderTemplate(tc),
		p.Config.ApplyEpisodeTemplate(tc)+ext,
	)
}

// resolveSeries picks the naming title and season for a parsed release.
// A library hit wins so every fansub group's variant of a title lands in
// the same folder; otherwise the parsed titles are used as-is.
func (p *Planner) resolveSeries(rel *parser.Release) (string, int) {
	if p.Index != nil {
		if s, ok := p.Index.LookupRelease(rel); ok {
			season := rel.Season
			if s.Season > 0 {
				season = s.Season
			}
			return s.Title, season
		}
	}
	for _, title := range []string{rel.TitleZH, rel.TitleEN, rel.TitleJP} {
		if title != "" {
			return title, rel.Season
		}
	}
	return "", 0
}

func (p *Planner) matchedFilter(name string) (string, bool) {
	for _, raw := range p.Config.Filters {
		if filter.Compile(raw).Match(name) {
			return raw, true
		}
	}
	return "", false
}
