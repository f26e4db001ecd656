package btree

import "github.com/winterrdog/sqlyte-db/internal/codec"

// leafSplitAndInsert is called when LeafInsert finds the target leaf full.
// It allocates a sibling leaf, redistributes the MaxCells+1 logical cells
// (the old leaf's contents plus the new one) between old (left) and new
// (right), relinks the leaf chain, and promotes the split to the parent.
func (t *Tree) leafSplitAndInsert(cursor Cursor, key uint32, value []byte) error {
	oldPage, err := t.getPage(cursor.PageNum)
	if err != nil {
		return err
	}

	oldNumCells := codec.LeafNumCells(oldPage)
	oldMaxKeyBeforeSplit := codec.LeafKey(oldPage, oldNumCells-1)
	wasRoot := codec.IsRoot(oldPage)
	oldParent := codec.ParentPageNum(oldPage)
	oldNextLeaf := codec.NextLeaf(oldPage)

	newPageNum, newPage, err := t.allocatePage()
	if err != nil {
		return err
	}
	codec.InitLeaf(newPage)

	for i := int(codec.LeafNodeMaxCells); i >= 0; i-- {
		idx := uint32(i)

		var destPage []byte
		if idx >= codec.LeafNodeLeftSplitCount {
			destPage = newPage
		} else {
			destPage = oldPage
		}
		destIndex := idx % codec.LeafNodeLeftSplitCount

		switch {
		case idx == cursor.CellNum:
			codec.SetLeafKey(destPage, destIndex, key)
			copy(codec.LeafValue(destPage, destIndex), value)
		case idx > cursor.CellNum:
			copy(codec.LeafCell(destPage, destIndex), codec.LeafCell(oldPage, idx-1))
		default:
			copy(codec.LeafCell(destPage, destIndex), codec.LeafCell(oldPage, idx))
		}
	}

	codec.SetLeafNumCells(oldPage, codec.LeafNodeLeftSplitCount)
	codec.SetLeafNumCells(newPage, codec.LeafNodeRightSplitCount)

	codec.SetNextLeaf(newPage, oldNextLeaf)
	codec.SetNextLeaf(oldPage, newPageNum)
	codec.SetParentPageNum(newPage, oldParent)

	if wasRoot {
		return t.createNewRoot(newPageNum)
	}

	newMaxKeyOfOld := codec.LeafKey(oldPage, codec.LeafNumCells(oldPage)-1)
	if err := t.updateInternalNodeKey(oldParent, oldMaxKeyBeforeSplit, newMaxKeyOfOld); err != nil {
		return err
	}
	return t.internalInsert(oldParent, newPageNum)
}
