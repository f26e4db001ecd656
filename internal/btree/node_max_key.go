package btree

import (
	"github.com/pkg/errors"

	"github.com/winterrdog/sqlyte-db/internal/codec"
)

// nodeMaxKey returns the largest key stored in the subtree rooted at
// pageNum. For a leaf that's its last cell's key; for an internal node,
// internal keys are only separators, so the true max is the max key of the
// subtree under its right child.
func (t *Tree) nodeMaxKey(pageNum uint32) (uint32, error) {
	page, err := t.getPage(pageNum)
	if err != nil {
		return 0, err
	}

	if codec.GetNodeType(page) == codec.NodeTypeLeaf {
		return codec.LeafKey(page, codec.LeafNumCells(page)-1), nil
	}

	rightChild := codec.RightChild(page)
	if rightChild == codec.InvalidPageNum {
		return 0, errors.Wrapf(ErrInvalidChild, "node_max_key: internal node %d has no right child", pageNum)
	}
	return t.nodeMaxKey(rightChild)
}
