package rename

import (
	"github.com/Digital-Shane/treeview"

	"github.com/Digital-Shane/bangumi-tidy/internal/parser"
)

// Status represents the lifecycle stage of one planned operation. A node
// starts at StatusNone; planning may move it to StatusSkipped, execution
// to success or error.
type Status int

const (
	StatusNone    Status = iota // Not yet attempted
	StatusSuccess               // Operation succeeded
	StatusError                 // Operation failed; see Error for detail
	StatusSkipped               // File left alone; see SkipReason
)

// Meta holds per-node plan intent and results. The zero value encodes an
// unprocessed node with no proposal.
type Meta struct {
	Release    *parser.Release
	DestPath   string
	Status     Status
	Error      string
	SkipReason string
}

// GetMeta retrieves the existing *Meta attached to n or nil when absent.
// Safe to call with a nil node.
func GetMeta(n *treeview.Node[treeview.FileInfo]) *Meta {
	if n == nil || n.Data().Extra == nil {
		return nil
	}
	if m, ok := n.Data().Extra["meta"].(*Meta); ok {
		return m
	}
	return nil
}

// EnsureMeta returns the existing *Meta for n, creating and attaching a
// new instance if needed. The returned pointer is always non-nil.
func EnsureMeta(n *treeview.Node[treeview.FileInfo]) *Meta {
	if n.Data().Extra == nil {
		n.Data().Extra = map[string]any{}
	}
	if m, ok := n.Data().Extra["meta"].(*Meta); ok {
		return m
	}
	m := &Meta{}
	n.Data().Extra["meta"] = m
	return m
}

func (m *Meta) Fail(err error) error {
	m.Status = StatusError
	m.Error = err.Error()
	return err
}

func (m *Meta) Success() {
	m.Status = StatusSuccess
}

func (m *Meta) Skip(reason string) {
	m.Status = StatusSkipped
	m.SkipReason = reason
}
