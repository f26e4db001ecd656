package btree

import "github.com/winterrdog/sqlyte-db/internal/codec"

// updateInternalNodeKey replaces the separator key that used to equal
// oldKey with newKey. If oldKey was the max key of node's rightmost
// subtree (i.e. not represented by any separator, only implied by the
// right-child pointer), the search lands one past the last valid key and
// the write falls into not-yet-used cell space — harmless, since nothing
// reads a key beyond NumKeys.
func (t *Tree) updateInternalNodeKey(pageNum uint32, oldKey uint32, newKey uint32) error {
	page, err := t.getPage(pageNum)
	if err != nil {
		return err
	}

	idx, err := t.findChildIndex(page, oldKey)
	if err != nil {
		return err
	}
	codec.SetInternalKey(page, idx, newKey)
	return nil
}
