package btree

import "github.com/winterrdog/sqlyte-db/internal/codec"

// createNewRoot handles the moment a split reaches the root: it copies the
// current root page verbatim into a newly allocated left child, then
// reinitializes page 0 as an internal node with two children — the old
// root (now relocated) on the left, and rightChildPageNum on the right.
func (t *Tree) createNewRoot(rightChildPageNum uint32) error {
	rootPage, err := t.getPage(t.RootPageNum)
	if err != nil {
		return err
	}

	leftChildPageNum, leftChildPage, err := t.allocatePage()
	if err != nil {
		return err
	}

	wasInternal := codec.GetNodeType(rootPage) == codec.NodeTypeInternal
	if wasInternal {
		rightChildPage, err := t.getPage(rightChildPageNum)
		if err != nil {
			return err
		}
		codec.InitInternal(rightChildPage)
	}

	copy(leftChildPage, rootPage)
	codec.SetIsRoot(leftChildPage, false)

	codec.InitInternal(rootPage)
	codec.SetIsRoot(rootPage, true)
	codec.SetInternalNumKeys(rootPage, 1)
	codec.SetInternalChild(rootPage, 0, leftChildPageNum)

	leftMaxKey, err := t.nodeMaxKey(leftChildPageNum)
	if err != nil {
		return err
	}
	codec.SetInternalKey(rootPage, 0, leftMaxKey)
	codec.SetRightChild(rootPage, rightChildPageNum)

	codec.SetParentPageNum(leftChildPage, t.RootPageNum)
	rightChildPage, err := t.getPage(rightChildPageNum)
	if err != nil {
		return err
	}
	codec.SetParentPageNum(rightChildPage, t.RootPageNum)

	if wasInternal {
		numKeys := codec.InternalNumKeys(leftChildPage)
		for i := uint32(0); i <= numKeys; i++ {
			childPageNum := codec.InternalChild(leftChildPage, i)
			childPage, err := t.getPage(childPageNum)
			if err != nil {
				return err
			}
			codec.SetParentPageNum(childPage, leftChildPageNum)
		}
	}

	return nil
}
