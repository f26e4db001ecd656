package btree

import "github.com/winterrdog/sqlyte-db/internal/codec"

// internalSplitAndInsert splits a full internal node to make room for
// childPageNum, whose subtree's max key is childMaxKey. Roughly half of
// oldNode's entries (its current right child plus the upper half of its
// keyed children) move to a freshly allocated sibling; the new child is
// then inserted into whichever of the two halves its key belongs to.
//
// If oldNode is the root, createNewRoot runs first so the split has a
// parent to report the new sibling to; the "old" half then becomes the
// new root's left child rather than staying at its original page number.
func (t *Tree) internalSplitAndInsert(parentPageNum uint32, childPageNum uint32) error {
	oldPageNum := parentPageNum
	oldNode, err := t.getPage(oldPageNum)
	if err != nil {
		return err
	}
	oldMax, err := t.nodeMaxKey(oldPageNum)
	if err != nil {
		return err
	}

	childMaxKey, err := t.nodeMaxKey(childPageNum)
	if err != nil {
		return err
	}

	newPageNum, newNode, err := t.allocatePage()
	if err != nil {
		return err
	}

	rootSplitting := codec.IsRoot(oldNode)

	var parentPage []byte
	if rootSplitting {
		if err := t.createNewRoot(newPageNum); err != nil {
			return err
		}
		parentPage, err = t.getPage(t.RootPageNum)
		if err != nil {
			return err
		}
		oldPageNum = codec.InternalChild(parentPage, 0)
		oldNode, err = t.getPage(oldPageNum)
		if err != nil {
			return err
		}
		newNode, err = t.getPage(newPageNum)
		if err != nil {
			return err
		}
	} else {
		codec.InitInternal(newNode)
	}

	// Move oldNode's right child into newNode first, freeing up the right
	// child slot for the last keyed child moved below.
	currPageNum := codec.RightChild(oldNode)
	currNode, err := t.getPage(currPageNum)
	if err != nil {
		return err
	}
	if err := t.internalInsert(newPageNum, currPageNum); err != nil {
		return err
	}
	codec.SetParentPageNum(currNode, newPageNum)
	codec.SetRightChild(oldNode, codec.InvalidPageNum)

	mid := codec.InternalNodeMaxKeys / 2
	for i := int(codec.InternalNodeMaxKeys) - 1; i != mid; i-- {
		idx := uint32(i)
		currPageNum = codec.InternalChild(oldNode, idx)
		currNode, err = t.getPage(currPageNum)
		if err != nil {
			return err
		}

		if err := t.internalInsert(newPageNum, currPageNum); err != nil {
			return err
		}
		codec.SetParentPageNum(currNode, newPageNum)

		codec.SetInternalNumKeys(oldNode, codec.InternalNumKeys(oldNode)-1)
	}

	// The child just before the (now discarded) middle key becomes
	// oldNode's new right child.
	numKeys := codec.InternalNumKeys(oldNode)
	codec.SetRightChild(oldNode, codec.InternalChild(oldNode, numKeys-1))
	codec.SetInternalNumKeys(oldNode, numKeys-1)

	maxAfterSplit, err := t.nodeMaxKey(oldPageNum)
	if err != nil {
		return err
	}

	destPageNum := newPageNum
	if childMaxKey < maxAfterSplit {
		destPageNum = oldPageNum
	}

	childPage, err := t.getPage(childPageNum)
	if err != nil {
		return err
	}
	if err := t.internalInsert(destPageNum, childPageNum); err != nil {
		return err
	}
	codec.SetParentPageNum(childPage, destPageNum)

	newMax, err := t.nodeMaxKey(oldPageNum)
	if err != nil {
		return err
	}
	if err := t.updateInternalNodeKey(codec.ParentPageNum(oldNode), oldMax, newMax); err != nil {
		return err
	}

	if rootSplitting {
		return nil
	}

	newNodeParent := codec.ParentPageNum(oldNode)
	if err := t.internalInsert(newNodeParent, newPageNum); err != nil {
		return err
	}
	codec.SetParentPageNum(newNode, newNodeParent)
	return nil
}
