// Package scan indexes a downloads directory into a treeview tree of
// media files. Only video and subtitle files survive the walk; hidden
// files and everything a fansub torrent drags along (screenshots, nfo,
// checksums) are filtered out before parsing ever sees them.
package scan

import (
	"context"
	"fmt"

	"github.com/Digital-Shane/treeview"
)

// DefaultMaxDepth bounds the walk. Fansub downloads nest at most
// torrent-dir/episode-file, with an occasional extras subdirectory.
const DefaultMaxDepth = 3

const traversalCap = 200000

// MediaFilter keeps directories (so the walk can descend) and media
// files, and drops hidden entries outright.
func MediaFilter(info treeview.FileInfo) bool {
	if len(info.Name()) > 0 && info.Name()[0] == '.' {
		return false
	}
	if info.IsDir() {
		return true
	}
	return IsMedia(info.Name())
}

// Scan walks path and returns the media tree. maxDepth <= 0 selects
// DefaultMaxDepth.
func Scan(ctx context.Context, path string, maxDepth int) (*treeview.Tree[treeview.FileInfo], error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	t, err := treeview.NewTreeFromFileSystem(ctx, path, false,
		treeview.WithMaxDepth[treeview.FileInfo](maxDepth),
		treeview.WithTraversalCap[treeview.FileInfo](traversalCap),
		treeview.WithFilterFunc(MediaFilter),
		treeview.WithExpandAll[treeview.FileInfo](),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", path, err)
	}
	return t, nil
}

// MediaFiles flattens the tree into its file nodes, skipping
// directories. Order follows the tree traversal.
func MediaFiles(ctx context.Context, t *treeview.Tree[treeview.FileInfo]) []*treeview.Node[treeview.FileInfo] {
	var files []*treeview.Node[treeview.FileInfo]
	for ni := range t.All(ctx) {
		if !ni.Node.Data().IsDir() {
			files = append(files, ni.Node)
		}
	}
	return files
}
