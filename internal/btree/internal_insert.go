package btree

import "github.com/winterrdog/sqlyte-db/internal/codec"

// internalInsert adds a (child, key) entry to parent, where key is the max
// key of the subtree rooted at child. It does not set child's
// parent_page_num — callers that relocate a node are responsible for that
// (see leafSplitAndInsert and internalSplitAndInsert).
func (t *Tree) internalInsert(parentPageNum uint32, childPageNum uint32) error {
	childMaxKey, err := t.nodeMaxKey(childPageNum)
	if err != nil {
		return err
	}

	parent, err := t.getPage(parentPageNum)
	if err != nil {
		return err
	}

	index, err := t.findChildIndex(parent, childMaxKey)
	if err != nil {
		return err
	}

	numKeys := codec.InternalNumKeys(parent)
	if numKeys >= codec.InternalNodeMaxKeys {
		return t.internalSplitAndInsert(parentPageNum, childPageNum)
	}

	rightChildPageNum := codec.RightChild(parent)
	if rightChildPageNum == codec.InvalidPageNum {
		codec.SetRightChild(parent, childPageNum)
		return nil
	}

	rightChildMaxKey, err := t.nodeMaxKey(rightChildPageNum)
	if err != nil {
		return err
	}

	codec.SetInternalNumKeys(parent, numKeys+1)

	if childMaxKey > rightChildMaxKey {
		codec.SetInternalChild(parent, numKeys, rightChildPageNum)
		codec.SetInternalKey(parent, numKeys, rightChildMaxKey)
		codec.SetRightChild(parent, childPageNum)
		return nil
	}

	for i := numKeys; i > index; i-- {
		copy(codec.InternalCell(parent, i), codec.InternalCell(parent, i-1))
	}
	codec.SetInternalChild(parent, index, childPageNum)
	codec.SetInternalKey(parent, index, childMaxKey)
	return nil
}
