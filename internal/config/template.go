package config

import (
	"fmt"
	"strings"
)

// TemplateContext carries the values the naming templates can reference.
type TemplateContext struct {
	Title      string
	Season     int
	Episode    int
	Group      string
	Resolution string
}

// applyTemplate substitutes the {title}, {season}, {episode}, {group} and
// {resolution} variables. Season and episode render zero-padded to two
// digits; unknown variables are left in place so a typo stays visible in
// the preview instead of vanishing silently.
func applyTemplate(template string, ctx *TemplateContext) string {
	r := strings.NewReplacer(
		"{title}", ctx.Title,
		"{season}", fmt.Sprintf("%02d", ctx.Season),
		"{episode}", fmt.Sprintf("%02d", ctx.Episode),
		"{group}", ctx.Group,
		"{resolution}", ctx.Resolution,
	)
	return r.Replace(template)
}

// ApplyShowFolderTemplate renders the series folder name.
func (cfg *Config) ApplyShowFolderTemplate(ctx *TemplateContext) string {
	return applyTemplate(cfg.ShowFolder, ctx)
}

// ApplySeasonFolderTemplate renders the season folder name.
func (cfg *Config) ApplySeasonFolderTemplate(ctx *TemplateContext) string {
	return applyTemplate(cfg.SeasonFolder, ctx)
}

// ApplyEpisodeTemplate renders the episode file name, extension excluded.
func (cfg *Config) ApplyEpisodeTemplate(ctx *TemplateContext) string {
	return applyTemplate(cfg.Episode, ctx)
}
