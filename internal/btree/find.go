package btree

import (
	"github.com/pkg/errors"

	"github.com/winterrdog/sqlyte-db/internal/codec"
)

// Find descends from the root to the leaf that would contain key, and
// returns a cursor at the insertion position: if key is present, that's
// its cell; if not, that's the cell it should be inserted before.
func (t *Tree) Find(key uint32) (Cursor, error) {
	return t.findFrom(t.RootPageNum, key)
}

func (t *Tree) findFrom(pageNum uint32, key uint32) (Cursor, error) {
	page, err := t.getPage(pageNum)
	if err != nil {
		return Cursor{}, err
	}

	if codec.GetNodeType(page) == codec.NodeTypeLeaf {
		return t.findInLeaf(pageNum, page, key), nil
	}

	childNum, err := t.findChildIndex(page, key)
	if err != nil {
		return Cursor{}, err
	}
	childPageNum := codec.InternalChild(page, childNum)
	if childPageNum == codec.InvalidPageNum {
		return Cursor{}, errors.Wrapf(ErrInvalidChild, "internal node %d, child index %d", pageNum, childNum)
	}

	return t.findFrom(childPageNum, key)
}

// findChildIndex performs the half-open binary search [lo, hi) for the
// smallest index i such that internal_key(i) >= key — the tie-break that
// sends an exact match down the left ("<=") child.
func (t *Tree) findChildIndex(page []byte, key uint32) (uint32, error) {
	numKeys := codec.InternalNumKeys(page)
	lo, hi := uint32(0), numKeys
	for lo < hi {
		mid := lo + (hi-lo)/2
		if codec.InternalKey(page, mid) >= key {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo, nil
}

// findInLeaf performs the half-open binary search for the smallest index i
// such that leaf_key(i) >= key.
func (t *Tree) findInLeaf(pageNum uint32, page []byte, key uint32) Cursor {
	numCells := codec.LeafNumCells(page)
	lo, hi := uint32(0), numCells
	for lo < hi {
		mid := lo + (hi-lo)/2
		if codec.LeafKey(page, mid) >= key {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return Cursor{PageNum: pageNum, CellNum: lo, EndOfTable: numCells == 0}
}
