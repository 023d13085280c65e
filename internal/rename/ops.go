package rename

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Digital-Shane/treeview"

	"github.com/Digital-Shane/bangumi-tidy/internal/log"
)

// Result tallies one plan execution.
type Result struct {
	Moved   int
	Linked  int
	Skipped int
	Errors  int
}

// Execute applies the plan. With link set, files are hard-linked into
// the library and the download stays in place for seeding; otherwise
// they are moved. Skipped files are logged and counted, never fatal.
func Execute(plan *Plan, link bool) Result {
	var res Result
	for _, node := range plan.Files {
		m := GetMeta(node)
		if m == nil {
			continue
		}
		if m.Status == StatusSkipped {
			log.LogSkip(node.Data().Path, m.SkipReason)
			res.Skipped++
			continue
		}
		if m.DestPath == "" {
			continue
		}

		var (
			did bool
			err error
		)
		if link {
			did, err = LinkFile(node, m)
			if did {
				res.Linked++
			}
		} else {
			did, err = MoveFile(node, m)
			if did {
				res.Moved++
			}
		}
		if err != nil {
			res.Errors++
		}
	}
	return res
}

// MoveFile renames a node to its destination path; returns true only
// when an actual filesystem rename occurred.
func MoveFile(node *treeview.Node[treeview.FileInfo], m *Meta) (bool, error) {
	oldPath := node.Data().Path
	destPath, err := sanitizePath(m.DestPath)
	if err != nil {
		log.LogRename(oldPath, "", false, err)
		return false, m.Fail(err)
	}
	if destPath != m.DestPath {
		m.DestPath = destPath
	}
	if oldPath == destPath {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		log.LogRename(oldPath, destPath, false, err)
		return false, m.Fail(err)
	}
	if _, err := os.Stat(destPath); err == nil {
		err := fmt.Errorf("destination already exists")
		log.LogRename(oldPath, destPath, false, err)
		return false, m.Fail(err)
	}
	if err := os.Rename(oldPath, destPath); err != nil {
		log.LogRename(oldPath, destPath, false, err)
		return false, m.Fail(err)
	}

	log.LogRename(oldPath, destPath, true, nil)
	m.Success()
	node.Data().Path = destPath
	return true, nil
}

// LinkFile hard-links a node to its destination path; returns true only
// when a new link was created. An already existing destination counts as
// success so re-running over a partially linked library is incremental.
func LinkFile(node *treeview.Node[treeview.FileInfo], m *Meta) (bool, error) {
	srcPath := node.Data().Path
	destPath, err := sanitizePath(m.DestPath)
	if err != nil {
		log.LogLink(srcPath, "", false, err)
		return false, m.Fail(err)
	}
	if destPath != m.DestPath {
		m.DestPath = destPath
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		log.LogLink(srcPath, destPath, false, err)
		return false, m.Fail(err)
	}
	if _, err := os.Stat(destPath); err == nil {
		log.LogLink(srcPath, destPath, true, nil)
		m.Success()
		return false, nil
	}
	if err := os.Link(srcPath, destPath); err != nil {
		if os.IsExist(err) {
			log.LogLink(srcPath, destPath, true, nil)
			m.Success()
			return false, nil
		}
		log.LogLink(srcPath, destPath, false, err)
		return false, m.Fail(fmt.Errorf("failed to create hard link (possibly cross-filesystem): %w", err))
	}

	log.LogLink(srcPath, destPath, true, nil)
	m.Success()
	return true, nil
}
